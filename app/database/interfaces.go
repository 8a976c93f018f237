package database

import (
	"time"

	"github.com/lysyi3m/podcast-rss/app/podcast"
)

type FeedRepository interface {
	GetFeed(feedName string) (*Feed, error)
	GetFeeds() ([]Feed, error)
	GetFeedCount() (int, error)

	UpsertFeed(feedName, feedURL string) error
	SaveSnapshot(feedName string, snapshot podcast.Podcast, nextFetch time.Time) error
	RecordFailure(feedName string, cause error, nextFetch time.Time) error
	GetSnapshot(feedName string) (podcast.Podcast, error)
}
