package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/lysyi3m/podcast-rss/app/database"
	"github.com/lysyi3m/podcast-rss/app/feed"
	"github.com/lysyi3m/podcast-rss/app/parser"
	"github.com/lysyi3m/podcast-rss/app/podcast"
	"github.com/lysyi3m/podcast-rss/app/tasks"
)

func NewHandler(configCache *feed.ConfigCache, feedRepo database.FeedRepository, fetcher tasks.Fetcher,
	parser tasks.Parser, scheduler tasks.TaskSchedulerInterface, parseCacheTTL, fetchTimeout time.Duration) *Handler {
	return &Handler{
		feedRepo:     feedRepo,
		configCache:  configCache,
		fetcher:      fetcher,
		parser:       parser,
		scheduler:    scheduler,
		parseCache:   cache.New(parseCacheTTL, 2*parseCacheTTL),
		fetchTimeout: fetchTimeout,
	}
}

// GetFeed serves the stored podcast of a configured feed as JSON.
func (h *Handler) GetFeed(c *gin.Context) {
	name := c.Param("name")

	feedConfig, err := h.configCache.GetConfig(name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feed configuration not found"})
		return
	}

	limit := feedConfig.Settings.MaxEpisodes
	if raw := c.Query("max_episodes"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_episodes must be a non-negative integer"})
			return
		}
	}

	snapshot, err := h.feedRepo.GetSnapshot(name)
	if errors.Is(err, database.ErrSnapshotNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feed has not been fetched yet"})
		return
	}
	if err != nil {
		slog.Error("Database error", "operation", "get_snapshot", "feed", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	snapshot = limitEpisodes(snapshot, limit)

	c.Header("X-Feed-Name", name)
	c.Header("X-Feed-Episodes", strconv.Itoa(len(snapshot.Episodes)))
	if stored, err := h.feedRepo.GetFeed(name); err == nil && stored != nil && stored.LastFetchedAt != nil {
		c.Header("X-Last-Updated", stored.LastFetchedAt.Format(time.RFC3339))
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp":             time.Now().In(time.Local).Format(time.RFC3339),
		"loaded_configurations": h.configCache.Count(),
		"cached_parses":         h.parseCache.ItemCount(),
	}

	if feedCount, err := h.feedRepo.GetFeedCount(); err == nil {
		health["feeds"] = feedCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) APIListFeeds(c *gin.Context) {
	names := h.configCache.Names()
	feeds := make([]gin.H, 0, len(names))

	for _, name := range names {
		feedConfig, err := h.configCache.GetConfig(name)
		if err != nil {
			continue
		}

		feedInfo := gin.H{
			"name":             name,
			"url":              feedConfig.URL,
			"enabled":          feedConfig.Settings.Enabled,
			"max_episodes":     feedConfig.Settings.MaxEpisodes,
			"refresh_interval": (time.Duration(feedConfig.Settings.RefreshInterval) * time.Second).String(),
		}

		if stored, err := h.feedRepo.GetFeed(name); err == nil && stored != nil {
			feedInfo["title"] = stored.Title
			feedInfo["episode_count"] = stored.EpisodeCount
			feedInfo["last_error"] = stored.LastError
			feedInfo["last_fetched_at"] = stored.LastFetchedAt
			feedInfo["next_fetch_at"] = stored.NextFetchAt
		}

		feeds = append(feeds, feedInfo)
	}

	c.JSON(http.StatusOK, gin.H{
		"feeds": feeds,
		"total": len(feeds),
	})
}

// APIRefreshFeed reloads the feed's configuration and queues an immediate refresh.
func (h *Handler) APIRefreshFeed(c *gin.Context) {
	name := c.Param("name")

	if _, err := h.configCache.GetConfig(name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feed configuration not found"})
		return
	}

	feedConfig, err := h.configCache.LoadConfig(name)
	if err != nil {
		slog.Error("Error reloading configuration", "feed", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to reload configuration",
			"details": err.Error(),
		})
		return
	}

	if !feedConfig.Settings.Enabled {
		c.JSON(http.StatusConflict, gin.H{"error": "Feed is disabled"})
		return
	}

	task := tasks.NewRefreshFeedTask(feedConfig, h.fetcher, h.parser, h.feedRepo)
	if err := h.scheduler.EnqueueTask(task); err != nil {
		slog.Error("Error enqueueing refresh task", "feed", name, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Failed to enqueue refresh task",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"feed":    gin.H{"name": name, "url": feedConfig.URL},
		"task":    gin.H{"id": task.ID, "type": task.Type},
	})
}

// APIParseBody parses the request body as a feed document.
func (h *Handler) APIParseBody(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxParseBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	result, ok := h.parse(c, data)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, parseResponse{Episodes: len(result.Episodes), Podcast: result})
}

// APIParseURL fetches and parses ?url=, caching successful results.
func (h *Handler) APIParseURL(c *gin.Context) {
	source := c.Query("url")
	if u, err := url.Parse(source); source == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url must be an absolute http(s) URL"})
		return
	}

	if cached, found := h.parseCache.Get(source); found {
		result := cached.(podcast.Podcast)
		c.JSON(http.StatusOK, parseResponse{Source: source, Cached: true, Episodes: len(result.Episodes), Podcast: result})
		return
	}

	data, err := h.fetcher.Fetch(c.Request.Context(), source, h.fetchTimeout)
	if err != nil {
		slog.Warn("Failed to fetch feed for parsing", "url", source, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch feed", "details": err.Error()})
		return
	}

	result, ok := h.parse(c, data)
	if !ok {
		return
	}

	h.parseCache.SetDefault(source, result)
	c.JSON(http.StatusOK, parseResponse{Source: source, Episodes: len(result.Episodes), Podcast: result})
}

// parse writes the error response itself and reports whether a podcast was produced.
func (h *Handler) parse(c *gin.Context, data []byte) (podcast.Podcast, bool) {
	result, complete, err := h.parser.Run(data)
	switch {
	case err != nil:
		status := http.StatusUnprocessableEntity
		if errors.Is(err, parser.ErrNotRSS) {
			status = http.StatusUnsupportedMediaType
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return podcast.Podcast{}, false
	case !complete:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": parser.ErrIncompletePodcast.Error()})
		return podcast.Podcast{}, false
	}
	return result, true
}

// limitEpisodes keeps the first limit episodes; a limit of zero keeps all of them.
func limitEpisodes(p podcast.Podcast, limit int) podcast.Podcast {
	if limit > 0 && len(p.Episodes) > limit {
		p.Episodes = p.Episodes[:limit]
	}
	return p
}
