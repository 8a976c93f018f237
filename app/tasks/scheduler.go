package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/podcast-rss/app/database"
	"github.com/lysyi3m/podcast-rss/app/feed"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

const (
	taskQueueSize = 300
	taskTimeout   = 5 * time.Minute
	maxRetryDelay = 30 * time.Second
)

type Scheduler struct {
	feedRepo    database.FeedRepository
	configCache *feed.ConfigCache
	fetcher     Fetcher
	parser      Parser
	interval    time.Duration
	workerCount int
	retryDelay  time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewScheduler(configCache *feed.ConfigCache, feedRepo database.FeedRepository, fetcher Fetcher, parser Parser,
	interval time.Duration, workerCount int) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		feedRepo:    feedRepo,
		configCache: configCache,
		fetcher:     fetcher,
		parser:      parser,
		interval:    interval,
		workerCount: max(workerCount, 1),
		retryDelay:  time.Second,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, taskQueueSize),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueStartupTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueTasks()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}

	select {
	case s.taskQueue <- task:
		return nil
	default:
		return fmt.Errorf("task queue is full")
	}
}

// RefreshTask builds a refresh task wired to the scheduler's own dependencies.
func (s *Scheduler) RefreshTask(feedConfig *feed.Config) *RefreshFeedTask {
	return NewRefreshFeedTask(feedConfig, s.fetcher, s.parser, s.feedRepo)
}

func (s *Scheduler) enqueueStartupTasks() {
	names := s.configCache.Names()
	if len(names) == 0 {
		slog.Debug("No feed configurations found")
		return
	}

	slog.Debug("Processing feed configurations", "count", len(names))

	for _, name := range names {
		feedConfig, err := s.configCache.GetConfig(name)
		if err != nil {
			continue
		}

		if err := s.EnqueueTask(NewSyncFeedConfigTask(feedConfig, s.feedRepo)); err != nil {
			slog.Warn("Failed to enqueue SyncFeedConfigTask", "feed", name, "error", err)
			continue
		}

		if !feedConfig.Settings.Enabled {
			slog.Debug("Feed disabled, skipping RefreshFeedTask", "feed", name)
			continue
		}

		if err := s.EnqueueTask(s.RefreshTask(feedConfig)); err != nil {
			slog.Warn("Failed to enqueue RefreshFeedTask", "feed", name, "error", err)
		}
	}
}

func (s *Scheduler) enqueueTasks() {
	names := s.configCache.EnabledNames()
	if len(names) == 0 {
		slog.Debug("No enabled feed configurations found")
		return
	}

	now := time.Now()
	for _, name := range names {
		feedConfig, err := s.configCache.GetConfig(name)
		if err != nil {
			continue
		}

		stored, err := s.feedRepo.GetFeed(name)
		if err != nil {
			slog.Warn("Failed to get feed from database, skipping", "feed", name, "error", err)
			continue
		}

		if stored != nil && !stored.IsDue(now) {
			slog.Debug("Feed not due for refresh yet", "feed", name, "next_fetch_at", stored.NextFetchAt)
			continue
		}

		if err := s.EnqueueTask(s.RefreshTask(feedConfig)); err != nil {
			slog.Warn("Failed to enqueue RefreshFeedTask", "feed", name, "error", err)
		}
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task := <-s.taskQueue:
			s.executeTask(id, task)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, taskTimeout)
	defer cancel()

	err := task.Execute(taskCtx)
	if err == nil {
		return
	}

	slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

	if !task.CanRetry() {
		slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		return
	}

	task.IncrementRetryCount()
	delay := min(s.retryDelay<<(task.GetRetryCount()-1), maxRetryDelay)

	slog.Warn("Task retry scheduled", "type", string(task.GetType()), "feed", task.GetFeedName(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", delay.String())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		select {
		case <-s.ctx.Done():
			slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
		case <-time.After(delay):
			if retryErr := s.EnqueueTask(task); retryErr != nil {
				slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
			}
		}
	}()
}
