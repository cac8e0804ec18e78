package warmer

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"portfolio_content/internal/domain"
)

type ContentFetcher interface {
	FetchProfile(ctx context.Context) (*domain.Profile, error)
	FetchExperiences(ctx context.Context) ([]domain.Experience, error)
	FetchProjects(ctx context.Context) ([]domain.Project, error)
	FetchBlogPosts(ctx context.Context) []domain.BlogPost
}

type SyncStateStore interface {
	Record(ctx context.Context, stats domain.CategoryStats, syncedAt time.Time) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, stats *domain.SyncStats) error
	Close() error
}
