package database

import (
	"time"
)

// Feed is the stored state of one configured feed. The parsed podcast itself is
// kept separately as a JSON snapshot, see Repository.GetSnapshot.
type Feed struct {
	Name          string // Configuration feed identifier derived from filename
	URL           string
	Title         string
	EpisodeCount  int
	HasSnapshot   bool
	LastError     string // Empty after a successful refresh
	LastFetchedAt *time.Time
	NextFetchAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsDue reports whether the feed should be refreshed at now.
func (f *Feed) IsDue(now time.Time) bool {
	return f.NextFetchAt == nil || !f.NextFetchAt.After(now)
}
