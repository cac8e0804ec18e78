package content

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"portfolio_content/internal/notion"
)

type Querier interface {
	Query(ctx context.Context, q notion.Query) ([]notion.Page, error)
}

type ImageCacher interface {
	EnsureCached(ctx context.Context, remoteURL, ownerID string) string
}
