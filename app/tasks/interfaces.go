package tasks

import (
	"context"
	"time"

	"github.com/lysyi3m/podcast-rss/app/feed"
	"github.com/lysyi3m/podcast-rss/app/parser"
	"github.com/lysyi3m/podcast-rss/app/podcast"
)

// TaskSchedulerInterface is what the HTTP layer needs from the scheduler.
//
//	scheduler := NewScheduler(configCache, feedRepo, fetcher, parser, interval, workers)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewRefreshFeedTask(...))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}

type Fetcher interface {
	Fetch(ctx context.Context, url string, timeout time.Duration) ([]byte, error)
}

type Parser interface {
	Run(data []byte) (podcast.Podcast, bool, error)
}

var (
	_ Fetcher = (*feed.Fetcher)(nil)
	_ Parser  = (*parser.Parser)(nil)
)
