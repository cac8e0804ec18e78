package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"portfolio_content/internal/content/mocks"
	"portfolio_content/internal/domain"
	"portfolio_content/internal/notion"
)

func richText(v string) notion.Property {
	return notion.Property{Type: "rich_text", RichText: []notion.RichText{{Type: "text", PlainText: v}}}
}

func title(v string) notion.Property {
	return notion.Property{Type: "title", Title: []notion.RichText{{Type: "text", PlainText: v}}}
}

func files(url string) notion.Property {
	return notion.Property{Type: "files", Files: []notion.File{{Type: "file", File: &notion.FileObject{URL: url}}}}
}

func urlProp(v string) notion.Property {
	return notion.Property{Type: "url", URL: &v}
}

func multiSelect(names ...string) notion.Property {
	opts := make([]notion.Option, len(names))
	for i, n := range names {
		opts[i] = notion.Option{Name: n}
	}
	return notion.Property{Type: "multi_select", MultiSelect: opts}
}

type ServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source *mocks.MockQuerier
	images *mocks.MockImageCacher

	service *Service
	ctx     context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = mocks.NewMockQuerier(s.ctrl)
	s.images = mocks.NewMockImageCacher(s.ctrl)
	s.ctx = context.Background()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewService(s.source, s.images, logger, Config{ImageConcurrency: 3})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) expectQuery(q notion.Query, pages []notion.Page, err error) {
	s.source.EXPECT().Query(s.ctx, q).Return(pages, err)
}

func (s *ServiceTestSuite) TestFetchProfile_MapsFields() {
	s.expectQuery(notion.Query{Category: domain.CategoryProfile}, []notion.Page{{
		ID: "profile-1",
		Properties: notion.Properties{
			"Name":                     title("Ada Lovelace"),
			"JobTitle":                 richText("Engineer"),
			"IntroText":                richText("Hello there."),
			"ProfileImage":             files("https://files.example.com/ada.png"),
			"WhatsKeepingMeBusyLately": richText("Mar 2024 - Compilers\nFeb 2024 - Go"),
			"GitHub":                   urlProp("https://github.com/ada"),
		},
	}}, nil)
	s.images.EXPECT().
		EnsureCached(gomock.Any(), "https://files.example.com/ada.png", "profile-1").
		Return("/cached-images/profile-1.png")

	profile, err := s.service.FetchProfile(s.ctx)

	s.Require().NoError(err)
	s.Equal("profile-1", profile.ID)
	s.Equal("Ada Lovelace", profile.Name)
	s.Equal("Engineer", profile.Title)
	s.Equal("Hello there.", profile.Introduction)
	s.Equal("/cached-images/profile-1.png", profile.ProfileImage)
	s.Equal("https://github.com/ada", profile.GitHub)
	s.Equal("", profile.Email)
	s.Equal([]domain.Activity{
		{Date: "Mar 2024", Activity: "Compilers"},
		{Date: "Feb 2024", Activity: "Go"},
	}, profile.CurrentWork)
}

func (s *ServiceTestSuite) TestFetchProfile_Fallbacks() {
	s.expectQuery(notion.Query{Category: domain.CategoryProfile}, []notion.Page{{
		ID: "profile-1",
		Properties: notion.Properties{
			"JobTitle": richText("   "),
			// Wrong property type degrades to the default activity.
			"WhatsKeepingMeBusyLately": urlProp("https://example.com"),
		},
	}}, nil)

	profile, err := s.service.FetchProfile(s.ctx)

	s.Require().NoError(err)
	s.Equal("Your Name", profile.Name)
	s.Equal("Your Title", profile.Title)
	s.Equal("Your introduction", profile.Introduction)
	s.Equal(DefaultProfileImage, profile.ProfileImage)
	s.Equal([]domain.Activity{defaultActivity}, profile.CurrentWork)
}

func (s *ServiceTestSuite) TestFetchProfile_NotFound() {
	s.expectQuery(notion.Query{Category: domain.CategoryProfile}, nil, nil)

	profile, err := s.service.FetchProfile(s.ctx)

	s.Nil(profile)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ServiceTestSuite) TestFetchProfile_SourceError() {
	srcErr := fmt.Errorf("query MainProfile: %w", domain.ErrFetchFailed)
	s.expectQuery(notion.Query{Category: domain.CategoryProfile}, nil, srcErr)

	profile, err := s.service.FetchProfile(s.ctx)

	s.Nil(profile)
	s.ErrorIs(err, domain.ErrFetchFailed)
	s.Contains(err.Error(), "fetch profile")
}

func (s *ServiceTestSuite) TestFetchExperiences_SortsAndDefaults() {
	q := notion.Query{
		Category: domain.CategoryExperience,
		Sorts:    []notion.Sort{{Property: "WorkStartDate", Direction: notion.Descending}},
	}
	s.expectQuery(q, []notion.Page{
		{ID: "undated", Properties: notion.Properties{"WorkCompany": richText("Mystery Co")}},
		{ID: "old", Properties: notion.Properties{
			"WorkCompany":   richText("Old Corp"),
			"WorkStartDate": richText("Jan 2018"),
			"WorkEndDate":   richText("Dec 2020"),
		}},
		{ID: "new", Properties: notion.Properties{
			"WorkCompany":     richText("New Inc"),
			"WorkTitle":       richText("Staff Engineer"),
			"WorkStartDate":   richText("Feb 2022"),
			"WorkDescription": richText("Platform work."),
		}},
	}, nil)

	exps, err := s.service.FetchExperiences(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(exps, 3)
	s.Equal([]string{"new", "old", "undated"}, []string{exps[0].ID, exps[1].ID, exps[2].ID})

	s.Equal("Staff Engineer", exps[0].Title)
	s.True(exps[0].Ongoing())
	s.Equal("Platform work.", exps[0].Description)

	s.Require().NotNil(exps[1].EndDate)
	s.Equal("Dec 2020", *exps[1].EndDate)
	s.Equal(notAvailable, exps[1].Title)
	s.Equal(noDescription, exps[1].Description)

	s.Equal(notAvailable, exps[2].StartDate)
}

func (s *ServiceTestSuite) TestFetchExperiences_SourceError() {
	s.source.EXPECT().Query(s.ctx, gomock.Any()).Return(nil, domain.ErrFetchFailed)

	exps, err := s.service.FetchExperiences(s.ctx)

	s.Nil(exps)
	s.ErrorIs(err, domain.ErrFetchFailed)
}

func (s *ServiceTestSuite) TestFetchProjects_PreservesOrderAndFallsBack() {
	s.expectQuery(notion.Query{Category: domain.CategoryProjects}, []notion.Page{
		{ID: "p1", Properties: notion.Properties{
			"ProjectTitle":        richText("Slow One"),
			"ProjectImage":        files("https://img.example.com/p1.png"),
			"ProjectTechnologies": multiSelect("Go", "Postgres"),
			"ProjectGithub":       urlProp("https://github.com/me/p1"),
		}},
		{ID: "p2", Properties: notion.Properties{
			"ProjectTitle": richText("No Image"),
		}},
		{ID: "p3", Properties: notion.Properties{
			"ProjectTitle": richText("Broken Image"),
			"ProjectImage": files("https://img.example.com/p3.png"),
		}},
		{ID: "p4", Properties: notion.Properties{
			"ProjectTitle":        richText("Fast One"),
			"Project Description": richText("Quick."),
			"ProjectImage":        files("https://img.example.com/p4.jpg"),
		}},
	}, nil)

	s.images.EXPECT().EnsureCached(gomock.Any(), "https://img.example.com/p1.png", "p1").
		DoAndReturn(func(context.Context, string, string) string {
			time.Sleep(30 * time.Millisecond)
			return "/cached-images/p1.png"
		})
	s.images.EXPECT().EnsureCached(gomock.Any(), "https://img.example.com/p3.png", "p3").
		Return("https://img.example.com/p3.png")
	s.images.EXPECT().EnsureCached(gomock.Any(), "https://img.example.com/p4.jpg", "p4").
		Return("/cached-images/p4.jpg")

	projects, err := s.service.FetchProjects(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(projects, 4)
	s.Equal([]string{"p1", "p2", "p3", "p4"}, []string{projects[0].ID, projects[1].ID, projects[2].ID, projects[3].ID})

	s.Equal("/cached-images/p1.png", projects[0].Image)
	s.Equal([]string{"Go", "Postgres"}, projects[0].Technologies)
	s.Equal("https://github.com/me/p1", projects[0].GitHub)
	s.Equal(noDescription, projects[0].Description)

	s.Equal("", projects[1].Image)
	s.NotNil(projects[1].Technologies)
	s.Empty(projects[1].Technologies)

	s.Equal("https://img.example.com/p3.png", projects[2].Image)
	s.Equal("/cached-images/p4.jpg", projects[3].Image)
	s.Equal("Quick.", projects[3].Description)
}

func (s *ServiceTestSuite) TestFetchProjects_SourceError() {
	s.source.EXPECT().Query(s.ctx, gomock.Any()).Return(nil, errors.New("boom"))

	projects, err := s.service.FetchProjects(s.ctx)

	s.Nil(projects)
	s.ErrorContains(err, "fetch projects")
}

func (s *ServiceTestSuite) TestFetchProjects_SourceErrorIsLogged() {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	svc := NewService(s.source, s.images, logger, Config{})
	s.source.EXPECT().Query(s.ctx, gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.FetchProjects(s.ctx)

	s.Require().Error(err)
	s.Contains(logs.String(), `"level":"ERROR"`)
	s.Contains(logs.String(), `"msg":"failed to fetch projects"`)
	s.Contains(logs.String(), `"component":"content"`)
}

func (s *ServiceTestSuite) TestFetchProjectBySlug() {
	pages := []notion.Page{
		{ID: "p1", Properties: notion.Properties{"ProjectTitle": richText("Portfolio Site")}},
		{ID: "p2", Properties: notion.Properties{"ProjectTitle": richText("CLI Tool (Go)")}},
	}
	s.source.EXPECT().Query(s.ctx, notion.Query{Category: domain.CategoryProjects}).Return(pages, nil).Times(2)

	project, err := s.service.FetchProjectBySlug(s.ctx, "cli-tool-go")
	s.Require().NoError(err)
	s.Equal("p2", project.ID)

	project, err = s.service.FetchProjectBySlug(s.ctx, "missing")
	s.Nil(project)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ServiceTestSuite) TestFetchBlogPosts_DropsIncomplete() {
	q := notion.Query{
		Category: domain.CategoryBlog,
		Sorts:    []notion.Sort{{Timestamp: notion.TimestampCreate, Direction: notion.Descending}},
	}
	s.expectQuery(q, []notion.Page{
		{ID: "b1", Properties: notion.Properties{
			"ArticleTitle": richText("Newest"),
			"ArticleURL":   urlProp("https://www.linkedin.com/pulse/newest"),
			"ReadingTime":  richText("4 min read"),
		}},
		{ID: "b2", Properties: notion.Properties{"ArticleTitle": richText("No URL")}},
		{ID: "b3", Properties: notion.Properties{"ArticleURL": urlProp("https://medium.com/@me/no-title")}},
		{ID: "b4", Properties: notion.Properties{
			"ArticleTitle": richText("Older"),
			"ArticleURL":   urlProp("https://medium.com/@me/older"),
		}},
		{ID: "b5", Properties: notion.Properties{
			"ArticleTitle": richText("Elsewhere"),
			"ArticleURL":   urlProp("https://blog.example.com/post"),
		}},
	}, nil)

	posts := s.service.FetchBlogPosts(s.ctx)

	s.Equal([]domain.BlogPost{
		{ID: "b1", Title: "Newest", URL: "https://www.linkedin.com/pulse/newest", Platform: domain.PlatformLinkedIn, ReadingTime: "4 min read"},
		{ID: "b4", Title: "Older", URL: "https://medium.com/@me/older", Platform: domain.PlatformMedium},
		{ID: "b5", Title: "Elsewhere", URL: "https://blog.example.com/post", Platform: domain.PlatformMedium},
	}, posts)
}

func (s *ServiceTestSuite) TestFetchBlogPosts_ErrorYieldsEmpty() {
	s.source.EXPECT().Query(s.ctx, gomock.Any()).Return(nil, domain.ErrFetchFailed)

	posts := s.service.FetchBlogPosts(s.ctx)

	s.NotNil(posts)
	s.Empty(posts)
}

func TestNewService_NilImagesPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockQuerier(ctrl)
	source.EXPECT().Query(gomock.Any(), gomock.Any()).Return([]notion.Page{
		{ID: "p1", Properties: notion.Properties{"ProjectImage": files("https://img.example.com/a.png")}},
	}, nil)

	svc := NewService(source, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), Config{})
	projects, err := svc.FetchProjects(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := projects[0].Image; got != "https://img.example.com/a.png" {
		t.Errorf("got %q, want remote url", got)
	}
}
