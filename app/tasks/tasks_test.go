package tasks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lysyi3m/podcast-rss/app/database"
	"github.com/lysyi3m/podcast-rss/app/feed"
	"github.com/lysyi3m/podcast-rss/app/parser"
)

const podcastXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>Test Show</title>
    <link>https://example.com</link>
    <description>A test show</description>
    <language>en</language>
    <itunes:author>Someone</itunes:author>
    <item>
      <title>Episode 1</title>
      <enclosure url="https://example.com/1.mp3" length="1024" type="audio/mpeg"/>
    </item>
    <item>
      <title>Episode 2</title>
    </item>
  </channel>
</rss>`

const incompleteXML = `<rss version="2.0"><channel><title>Only a title</title></channel></rss>`

func newRepository(t *testing.T) *database.Repository {
	t.Helper()

	db, err := database.NewConnection(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, _, err = database.RunMigrations(db)
	require.NoError(t, err)

	return database.NewRepository(db)
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func feedConfig(name, url string) *feed.Config {
	return &feed.Config{
		Name: name,
		URL:  url,
		Settings: feed.ConfigSettings{
			Enabled:         true,
			RefreshInterval: 3600,
			Timeout:         5,
		},
	}
}

func TestNewTask(t *testing.T) {
	first := NewTask(TaskTypeRefreshFeed, "show")
	second := NewTask(TaskTypeRefreshFeed, "show")

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "show", first.GetFeedName())
	assert.Equal(t, DefaultMaxRetries, first.GetMaxRetries())
	assert.Zero(t, first.GetDuration())

	for i := 0; i < DefaultMaxRetries; i++ {
		assert.True(t, first.CanRetry())
		first.IncrementRetryCount()
	}
	assert.False(t, first.CanRetry())

	first.Start()
	assert.NotNil(t, first.StartedAt)
}

func TestRefreshFeedTaskStoresSnapshot(t *testing.T) {
	repo := newRepository(t)
	server := serve(t, http.StatusOK, podcastXML)

	task := NewRefreshFeedTask(feedConfig("show", server.URL), feed.NewFetcher(server.Client(), "test"), parser.NewParser(), repo)
	task.Start()
	require.NoError(t, task.Execute(context.Background()))

	snapshot, err := repo.GetSnapshot("show")
	require.NoError(t, err)
	assert.Equal(t, "Test Show", snapshot.Title)
	require.Len(t, snapshot.Episodes, 2)
	require.NotNil(t, snapshot.Episodes[0].Enclosure)
	assert.Equal(t, int64(1024), snapshot.Episodes[0].Enclosure.Length)
	require.NotNil(t, snapshot.ITunes)
	assert.Equal(t, "Someone", snapshot.ITunes.Author)

	stored, err := repo.GetFeed("show")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.EpisodeCount)
	assert.False(t, stored.IsDue(time.Now()))
}

func TestRefreshFeedTaskFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"http error", http.StatusInternalServerError, "boom", nil},
		{"not rss", http.StatusOK, `{"title": "json"}`, parser.ErrNotRSS},
		{"incomplete channel", http.StatusOK, incompleteXML, parser.ErrIncompletePodcast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepository(t)
			server := serve(t, tt.status, tt.body)

			task := NewRefreshFeedTask(feedConfig("show", server.URL), feed.NewFetcher(server.Client(), "test"), parser.NewParser(), repo)
			err := task.Execute(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			stored, err := repo.GetFeed("show")
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.NotEmpty(t, stored.LastError)
			assert.False(t, stored.HasSnapshot)

			_, err = repo.GetSnapshot("show")
			assert.ErrorIs(t, err, database.ErrSnapshotNotFound)
		})
	}
}

func TestRefreshFeedTaskSkipsDisabledFeed(t *testing.T) {
	repo := newRepository(t)
	config := feedConfig("show", "http://127.0.0.1:1/never")
	config.Settings.Enabled = false

	task := NewRefreshFeedTask(config, feed.NewFetcher(nil, "test"), parser.NewParser(), repo)
	require.NoError(t, task.Execute(context.Background()))

	stored, err := repo.GetFeed("show")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestRefreshFeedTaskCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := NewRefreshFeedTask(feedConfig("show", "http://127.0.0.1:1/never"), feed.NewFetcher(nil, "test"), parser.NewParser(), newRepository(t))
	assert.ErrorIs(t, task.Execute(ctx), context.Canceled)
}

func TestSyncFeedConfigTask(t *testing.T) {
	repo := newRepository(t)

	task := NewSyncFeedConfigTask(feedConfig("show", "https://example.com/feed.xml"), repo)
	assert.Equal(t, TaskTypeSyncFeedConfig, task.GetType())
	require.NoError(t, task.Execute(context.Background()))

	stored, err := repo.GetFeed("show")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "https://example.com/feed.xml", stored.URL)
}

func TestSchedulerRefreshesConfiguredFeeds(t *testing.T) {
	server := serve(t, http.StatusOK, podcastXML)

	feedsDir := t.TempDir()
	writeFeed := func(name string, enabled bool) {
		content := "url: \"" + server.URL + "\"\nsettings:\n  enabled: " + map[bool]string{true: "true", false: "false"}[enabled] + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(feedsDir, name+".yml"), []byte(content), 0644))
	}
	writeFeed("enabled-show", true)
	writeFeed("disabled-show", false)

	configCache := feed.NewConfigCache(feedsDir)
	require.NoError(t, configCache.Run())

	repo := newRepository(t)
	scheduler := NewScheduler(configCache, repo, feed.NewFetcher(server.Client(), "test"), parser.NewParser(), time.Hour, 2)
	scheduler.Start()
	defer scheduler.Stop()

	require.Eventually(t, func() bool {
		_, err := repo.GetSnapshot("enabled-show")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	require.Eventually(t, func() bool {
		stored, err := repo.GetFeed("disabled-show")
		return err == nil && stored != nil
	}, 5*time.Second, 20*time.Millisecond)

	stored, err := repo.GetFeed("disabled-show")
	require.NoError(t, err)
	assert.False(t, stored.HasSnapshot)
}

type flakyTask struct {
	Task
	failures int32
	runs     atomic.Int32
}

func (f *flakyTask) Execute(ctx context.Context) error {
	if f.runs.Add(1) <= f.failures {
		return errors.New("temporary failure")
	}
	return nil
}

func TestSchedulerRetriesFailedTasks(t *testing.T) {
	scheduler := NewScheduler(feed.NewConfigCache(t.TempDir()), newRepository(t), nil, nil, time.Hour, 1)
	scheduler.retryDelay = time.Millisecond
	scheduler.Start()
	defer scheduler.Stop()

	task := &flakyTask{Task: NewTask(TaskTypeRefreshFeed, "show"), failures: 2}
	require.NoError(t, scheduler.EnqueueTask(task))

	require.Eventually(t, func() bool { return task.runs.Load() == 3 }, 5*time.Second, 5*time.Millisecond)
}

func TestSchedulerGivesUpAfterMaxRetries(t *testing.T) {
	scheduler := NewScheduler(feed.NewConfigCache(t.TempDir()), newRepository(t), nil, nil, time.Hour, 1)
	scheduler.retryDelay = time.Millisecond
	scheduler.Start()
	defer scheduler.Stop()

	task := &flakyTask{Task: NewTask(TaskTypeRefreshFeed, "show"), failures: 100}
	require.NoError(t, scheduler.EnqueueTask(task))

	require.Eventually(t, func() bool { return task.runs.Load() == DefaultMaxRetries+1 }, 5*time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(DefaultMaxRetries+1), task.runs.Load())
}

func TestEnqueueAfterStop(t *testing.T) {
	scheduler := NewScheduler(feed.NewConfigCache(t.TempDir()), newRepository(t), nil, nil, time.Hour, 1)
	scheduler.Start()
	scheduler.Stop()

	task := NewTask(TaskTypeRefreshFeed, "show")
	assert.Error(t, scheduler.EnqueueTask(&flakyTask{Task: task}))
}
