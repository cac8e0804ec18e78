// Package warmer runs every content fetch ahead of page traffic so remote
// images are already cached when visitors arrive.
package warmer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portfolio_content/internal/domain"
)

type Service struct {
	content   ContentFetcher
	syncState SyncStateStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

// NewService wires a warmer. syncState, txManager and publisher may be nil
// when persistence or notifications are disabled.
func NewService(
	content ContentFetcher,
	syncState SyncStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *Service {
	return &Service{
		content:   content,
		syncState: syncState,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "warmer"),
	}
}

func (s *Service) Sync(ctx context.Context) (*domain.SyncStats, error) {
	stats := &domain.SyncStats{StartedAt: time.Now()}
	s.logger.Info("starting warm run")

	for _, category := range domain.Categories {
		cs := s.warm(ctx, category)
		if cs.Err != nil {
			stats.Errors++
			s.logger.Warn("category warm failed", "category", category, "error", cs.Err)
		}
		stats.Categories = append(stats.Categories, cs)
	}

	if err := s.recordState(ctx, stats); err != nil {
		stats.Duration = time.Since(stats.StartedAt)
		return stats, fmt.Errorf("record sync state: %w", err)
	}

	if stats.Errors > 0 && stats.Records() == 0 {
		stats.Duration = time.Since(stats.StartedAt)
		return stats, fmt.Errorf("warm content: nothing warmed, %d categories failed", stats.Errors)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, stats); err != nil {
			s.logger.Error("failed to publish content synced", "error", err)
		} else {
			stats.Published = true
		}
	}

	stats.Duration = time.Since(stats.StartedAt)

	s.logger.Info("warm run completed",
		"records", stats.Records(),
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *Service) warm(ctx context.Context, category domain.Category) domain.CategoryStats {
	cs := domain.CategoryStats{Category: category}

	switch category {
	case domain.CategoryProfile:
		if _, err := s.content.FetchProfile(ctx); err != nil {
			cs.Err = err
		} else {
			cs.Records = 1
		}
	case domain.CategoryExperience:
		exps, err := s.content.FetchExperiences(ctx)
		cs.Records, cs.Err = len(exps), err
	case domain.CategoryProjects:
		projects, err := s.content.FetchProjects(ctx)
		cs.Records, cs.Err = len(projects), err
	case domain.CategoryBlog:
		cs.Records = len(s.content.FetchBlogPosts(ctx))
	default:
		cs.Err = fmt.Errorf("unknown category %q", category)
	}

	return cs
}

func (s *Service) recordState(ctx context.Context, stats *domain.SyncStats) error {
	if s.syncState == nil {
		return nil
	}

	record := func(ctx context.Context) error {
		for _, cs := range stats.Categories {
			if err := s.syncState.Record(ctx, cs, stats.StartedAt); err != nil {
				return fmt.Errorf("record %s: %w", cs.Category, err)
			}
		}
		return nil
	}

	if s.txManager == nil {
		return record(ctx)
	}
	return s.txManager.WithTransaction(ctx, record)
}
