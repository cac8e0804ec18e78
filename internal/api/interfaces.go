package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"portfolio_content/internal/domain"
)

type ContentService interface {
	FetchProfile(ctx context.Context) (*domain.Profile, error)
	FetchExperiences(ctx context.Context) ([]domain.Experience, error)
	FetchProjects(ctx context.Context) ([]domain.Project, error)
	FetchProjectBySlug(ctx context.Context, slug string) (*domain.Project, error)
	FetchBlogPosts(ctx context.Context) []domain.BlogPost
}

type SyncStateReader interface {
	Get(ctx context.Context, category domain.Category) (*domain.SyncState, error)
	List(ctx context.Context) ([]domain.SyncState, error)
}
