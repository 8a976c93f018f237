package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lysyi3m/podcast-rss/app/database"
	"github.com/lysyi3m/podcast-rss/app/feed"
	"github.com/lysyi3m/podcast-rss/app/parser"
)

// RefreshFeedTask downloads a feed, parses it and stores the result as the feed's snapshot.
type RefreshFeedTask struct {
	Task
	FeedConfig *feed.Config
	fetcher    Fetcher
	parser     Parser
	feedRepo   database.FeedRepository
}

func NewRefreshFeedTask(feedConfig *feed.Config, fetcher Fetcher, parser Parser, feedRepo database.FeedRepository) *RefreshFeedTask {
	return &RefreshFeedTask{
		Task:       NewTask(TaskTypeRefreshFeed, feedConfig.Name),
		FeedConfig: feedConfig,
		fetcher:    fetcher,
		parser:     parser,
		feedRepo:   feedRepo,
	}
}

func (t *RefreshFeedTask) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !t.FeedConfig.Settings.Enabled {
		slog.Debug("Feed disabled, skipping", "feed", t.FeedName)
		return nil
	}

	// Refreshes can run before the startup sync task has registered the feed.
	if err := t.feedRepo.UpsertFeed(t.FeedConfig.Name, t.FeedConfig.URL); err != nil {
		return fmt.Errorf("failed to register feed: %w", err)
	}

	nextFetch := time.Now().Add(time.Duration(t.FeedConfig.Settings.RefreshInterval) * time.Second)

	if err := t.refresh(ctx, nextFetch); err != nil {
		if recordErr := t.feedRepo.RecordFailure(t.FeedName, err, nextFetch); recordErr != nil {
			slog.Warn("Failed to record refresh failure", "feed", t.FeedName, "error", recordErr)
		}
		return err
	}

	return nil
}

func (t *RefreshFeedTask) refresh(ctx context.Context, nextFetch time.Time) error {
	timeout := time.Duration(t.FeedConfig.Settings.Timeout) * time.Second

	data, err := t.fetcher.Fetch(ctx, t.FeedConfig.URL, timeout)
	if err != nil {
		return fmt.Errorf("failed to fetch feed: %w", err)
	}

	result, ok, err := t.parser.Run(data)
	if err != nil {
		return fmt.Errorf("failed to parse feed: %w", err)
	}
	if !ok {
		return fmt.Errorf("failed to parse feed: %w", parser.ErrIncompletePodcast)
	}

	if err := t.feedRepo.SaveSnapshot(t.FeedName, result, nextFetch); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	slog.Info("Task completed",
		"type", "RefreshFeed",
		"feed", t.FeedName,
		"duration", t.GetDuration(),
		"title", result.Title,
		"episodes", len(result.Episodes),
		"bytes", len(data))

	return nil
}
