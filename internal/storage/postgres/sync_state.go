package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"portfolio_content/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

// Get returns the stored state for category, or an empty state if it has never been warmed.
func (s *SyncStateStore) Get(ctx context.Context, category domain.Category) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `
		SELECT id, category, last_synced_at, record_count, last_error, total_syncs
		FROM sync_state
		WHERE category = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, string(category))
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.SyncState{Category: string(category)}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Record upserts the outcome of one warm run for a category and bumps its run counter.
func (s *SyncStateStore) Record(ctx context.Context, stats domain.CategoryStats, syncedAt time.Time) error {
	lastError := ""
	if stats.Err != nil {
		lastError = stats.Err.Error()
	}

	query := `
		INSERT INTO sync_state (category, last_synced_at, record_count, last_error, total_syncs)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (category) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			record_count = EXCLUDED.record_count,
			last_error = EXCLUDED.last_error,
			total_syncs = sync_state.total_syncs + 1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		string(stats.Category),
		syncedAt,
		stats.Records,
		lastError,
	)
	return err
}

// List returns the state of every category that has been warmed.
func (s *SyncStateStore) List(ctx context.Context) ([]domain.SyncState, error) {
	query := `
		SELECT id, category, last_synced_at, record_count, last_error, total_syncs
		FROM sync_state
		ORDER BY category`

	var states []domain.SyncState
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &states, query)
	return states, err
}
