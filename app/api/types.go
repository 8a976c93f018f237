package api

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/lysyi3m/podcast-rss/app/database"
	"github.com/lysyi3m/podcast-rss/app/feed"
	"github.com/lysyi3m/podcast-rss/app/podcast"
	"github.com/lysyi3m/podcast-rss/app/tasks"
)

// maxParseBody caps POST /api/parse request bodies.
const maxParseBody = 32 << 20

type Handler struct {
	feedRepo     database.FeedRepository
	configCache  *feed.ConfigCache
	fetcher      tasks.Fetcher
	parser       tasks.Parser
	scheduler    tasks.TaskSchedulerInterface
	parseCache   *cache.Cache
	fetchTimeout time.Duration
}

type parseResponse struct {
	Source   string          `json:"source,omitempty"`
	Cached   bool            `json:"cached"`
	Episodes int             `json:"episodes"`
	Podcast  podcast.Podcast `json:"podcast"`
}
