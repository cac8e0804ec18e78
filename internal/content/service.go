// Package content turns loosely-typed Notion pages into the fixed-shape
// records the site renders. Field defects are recovered with fallbacks;
// only whole-query failures reach the caller.
package content

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"portfolio_content/internal/domain"
	"portfolio_content/internal/notion"
)

const defaultImageConcurrency = 4

type Config struct {
	// ImageConcurrency bounds parallel image resolution within one project batch.
	ImageConcurrency int
}

type Service struct {
	source      Querier
	images      ImageCacher
	concurrency int
	logger      *slog.Logger
}

func NewService(source Querier, images ImageCacher, logger *slog.Logger, cfg Config) *Service {
	if cfg.ImageConcurrency < 1 {
		cfg.ImageConcurrency = defaultImageConcurrency
	}
	return &Service{
		source:      source,
		images:      images,
		concurrency: cfg.ImageConcurrency,
		logger:      logger.With("component", "content"),
	}
}

// FetchProfile returns the MainProfile record. It fails with
// domain.ErrNotFound when no such record exists.
func (s *Service) FetchProfile(ctx context.Context) (*domain.Profile, error) {
	pages, err := s.source.Query(ctx, notion.Query{Category: domain.CategoryProfile})
	if err != nil {
		s.logger.Error("failed to fetch profile", "error", err)
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("fetch profile: %w: no %s record", domain.ErrNotFound, domain.CategoryProfile)
	}

	page := pages[0]
	profile := &domain.Profile{ID: page.ID}
	profileSchema.apply(page.Properties, profile)
	profile.CurrentWork = parseActivities(page.Properties.Text(activitiesProperty))

	if profile.ProfileImage == "" {
		profile.ProfileImage = DefaultProfileImage
	} else {
		profile.ProfileImage = s.resolveImage(ctx, profile.ProfileImage, page.ID)
	}

	return profile, nil
}

// FetchExperiences returns every experience, newest start date first.
func (s *Service) FetchExperiences(ctx context.Context) ([]domain.Experience, error) {
	pages, err := s.source.Query(ctx, notion.Query{
		Category: domain.CategoryExperience,
		Sorts:    []notion.Sort{{Property: startDateProperty, Direction: notion.Descending}},
	})
	if err != nil {
		s.logger.Error("failed to fetch experiences", "error", err)
		return nil, fmt.Errorf("fetch experiences: %w", err)
	}

	experiences := make([]domain.Experience, len(pages))
	for i, page := range pages {
		experiences[i].ID = page.ID
		experienceSchema.apply(page.Properties, &experiences[i])
	}

	sortExperiences(experiences)
	return experiences, nil
}

// FetchProjects returns projects in source order with images resolved to
// local paths where caching succeeds.
func (s *Service) FetchProjects(ctx context.Context) ([]domain.Project, error) {
	pages, err := s.source.Query(ctx, notion.Query{Category: domain.CategoryProjects})
	if err != nil {
		s.logger.Error("failed to fetch projects", "error", err)
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	projects := make([]domain.Project, len(pages))
	for i, page := range pages {
		projects[i].ID = page.ID
		projectSchema.apply(page.Properties, &projects[i])
		projects[i].Technologies = page.Properties.MultiSelectNames(techProperty)
		if projects[i].Technologies == nil {
			projects[i].Technologies = []string{}
		}
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := range projects {
		if projects[i].Image == "" {
			continue
		}
		g.Go(func() error {
			projects[i].Image = s.resolveImage(ctx, projects[i].Image, projects[i].ID)
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Debug("fetched projects", "count", len(projects))
	return projects, nil
}

// FetchProjectBySlug returns the project whose title slug matches.
func (s *Service) FetchProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	projects, err := s.FetchProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if Slug(projects[i].Title) == slug {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", slug, domain.ErrNotFound)
}

// FetchBlogPosts returns well-formed posts, newest first. Blog content is
// not critical, so failures are logged and yield an empty list.
func (s *Service) FetchBlogPosts(ctx context.Context) []domain.BlogPost {
	pages, err := s.source.Query(ctx, notion.Query{
		Category: domain.CategoryBlog,
		Sorts:    []notion.Sort{{Timestamp: notion.TimestampCreate, Direction: notion.Descending}},
	})
	if err != nil {
		s.logger.Warn("failed to fetch blog posts", "error", err)
		return []domain.BlogPost{}
	}

	posts := make([]domain.BlogPost, 0, len(pages))
	for _, page := range pages {
		post := domain.BlogPost{ID: page.ID}
		blogSchema.apply(page.Properties, &post)
		if post.Title == "" || post.URL == "" {
			s.logger.Debug("dropping incomplete blog post", "page_id", page.ID)
			continue
		}
		post.Platform = PlatformFromURL(post.URL)
		posts = append(posts, post)
	}

	return posts
}

func (s *Service) resolveImage(ctx context.Context, remoteURL, ownerID string) string {
	if s.images == nil {
		return remoteURL
	}
	return s.images.EnsureCached(ctx, remoteURL, ownerID)
}
