package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lysyi3m/podcast-rss/app/podcast"
)

var ErrSnapshotNotFound = errors.New("feed snapshot not found")

var _ FeedRepository = (*Repository)(nil)

// Repository stores one row per configured feed together with the latest parsed podcast.
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

const feedColumns = `name, url, title, episode_count, snapshot IS NOT NULL, last_error,
	last_fetched_at, next_fetch_at, created_at, updated_at`

func (r *Repository) UpsertFeed(feedName, feedURL string) error {
	now := formatTime(time.Now())

	// A changed URL invalidates the schedule so the feed is fetched on the next tick.
	_, err := r.db.Exec(`
		INSERT INTO feeds (name, url, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			next_fetch_at = CASE WHEN feeds.url = excluded.url THEN feeds.next_fetch_at ELSE NULL END,
			url = excluded.url,
			updated_at = excluded.updated_at
	`, feedName, feedURL, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert feed: %w", err)
	}

	return nil
}

// GetFeed returns nil without an error when the feed has never been synced.
func (r *Repository) GetFeed(feedName string) (*Feed, error) {
	row := r.db.QueryRow(`SELECT `+feedColumns+` FROM feeds WHERE name = ?`, feedName)

	feed, err := scanFeed(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}

	return feed, nil
}

func (r *Repository) GetFeeds() ([]Feed, error) {
	rows, err := r.db.Query(`SELECT ` + feedColumns + ` FROM feeds ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feeds: %w", err)
	}
	defer rows.Close()

	var feeds []Feed
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed: %w", err)
		}
		feeds = append(feeds, *feed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feeds: %w", err)
	}

	return feeds, nil
}

func (r *Repository) GetFeedCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM feeds`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count feeds: %w", err)
	}
	return count, nil
}

// SaveSnapshot replaces the stored podcast and clears any previous failure.
func (r *Repository) SaveSnapshot(feedName string, snapshot podcast.Podcast, nextFetch time.Time) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	now := formatTime(time.Now())
	res, err := r.db.Exec(`
		UPDATE feeds
		SET title = ?, episode_count = ?, snapshot = ?, last_error = '',
			last_fetched_at = ?, next_fetch_at = ?, updated_at = ?
		WHERE name = ?
	`, snapshot.Title, len(snapshot.Episodes), string(data), now, formatTime(nextFetch), now, feedName)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return requireRow(res, feedName)
}

// RecordFailure keeps the previous snapshot and remembers why the refresh failed.
func (r *Repository) RecordFailure(feedName string, cause error, nextFetch time.Time) error {
	message := "unknown error"
	if cause != nil {
		message = cause.Error()
	}

	now := formatTime(time.Now())
	res, err := r.db.Exec(`
		UPDATE feeds
		SET last_error = ?, last_fetched_at = ?, next_fetch_at = ?, updated_at = ?
		WHERE name = ?
	`, message, now, formatTime(nextFetch), now, feedName)
	if err != nil {
		return fmt.Errorf("failed to record failure: %w", err)
	}

	return requireRow(res, feedName)
}

func (r *Repository) GetSnapshot(feedName string) (podcast.Podcast, error) {
	var data sql.NullString
	err := r.db.QueryRow(`SELECT snapshot FROM feeds WHERE name = ?`, feedName).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !data.Valid) {
		return podcast.Podcast{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, feedName)
	}
	if err != nil {
		return podcast.Podcast{}, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshot podcast.Podcast
	if err := json.Unmarshal([]byte(data.String), &snapshot); err != nil {
		return podcast.Podcast{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return snapshot, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFeed(s scanner) (*Feed, error) {
	var (
		feed          Feed
		lastFetchedAt sql.NullString
		nextFetchAt   sql.NullString
		createdAt     string
		updatedAt     string
	)

	err := s.Scan(&feed.Name, &feed.URL, &feed.Title, &feed.EpisodeCount, &feed.HasSnapshot, &feed.LastError,
		&lastFetchedAt, &nextFetchAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if feed.LastFetchedAt, err = parseNullTime(lastFetchedAt); err != nil {
		return nil, err
	}
	if feed.NextFetchAt, err = parseNullTime(nextFetchAt); err != nil {
		return nil, err
	}
	if feed.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, err
	}
	if feed.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, err
	}

	return &feed, nil
}

func requireRow(res sql.Result, feedName string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("feed %s is not registered", feedName)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseNullTime(value sql.NullString) (*time.Time, error) {
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
