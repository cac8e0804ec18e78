package domain

import "time"

// CategoryStats holds the outcome of warming one category.
type CategoryStats struct {
	Category Category
	Records  int
	Err      error
}

// SyncStats holds statistics about a warm run.
type SyncStats struct {
	Categories []CategoryStats
	Errors     int
	Published  bool
	StartedAt  time.Time
	Duration   time.Duration
}

// Records returns the total record count across categories.
func (s *SyncStats) Records() int {
	total := 0
	for _, c := range s.Categories {
		total += c.Records
	}
	return total
}

// SyncState is the persisted outcome of the latest warm run for a category.
type SyncState struct {
	ID           int64     `db:"id" json:"-"`
	Category     string    `db:"category" json:"category"`
	LastSyncedAt time.Time `db:"last_synced_at" json:"lastSyncedAt"`
	RecordCount  int       `db:"record_count" json:"recordCount"`
	LastError    string    `db:"last_error" json:"lastError,omitempty"`
	TotalSyncs   int64     `db:"total_syncs" json:"totalSyncs"`
}
