package content

import (
	"strings"

	"portfolio_content/internal/domain"
	"portfolio_content/internal/notion"
)

// extractor reads one named property as a string.
type extractor func(props notion.Properties, name string) string

var (
	text    extractor = notion.Properties.Text
	fileURL extractor = notion.Properties.FileURL
	link    extractor = notion.Properties.URL
	email   extractor = notion.Properties.Email
)

// field binds an output field to its source property and fallback literal.
type field[T any] struct {
	property string
	extract  extractor
	fallback string
	set      func(dst *T, v string)
}

// schema maps a page's properties onto T. Each field is extracted
// independently, and blank values are replaced by the field's fallback.
type schema[T any] []field[T]

func (s schema[T]) apply(props notion.Properties, dst *T) {
	for _, f := range s {
		v := strings.TrimSpace(f.extract(props, f.property))
		if v == "" {
			v = f.fallback
		}
		f.set(dst, v)
	}
}

const (
	DefaultProfileImage = "/default-profile.jpg"
	notAvailable        = "N/A"
	noDescription       = "No description provided."

	activitiesProperty = "WhatsKeepingMeBusyLately"
	techProperty       = "ProjectTechnologies"
	startDateProperty  = "WorkStartDate"
)

var profileSchema = schema[domain.Profile]{
	{"Name", text, "Your Name", func(p *domain.Profile, v string) { p.Name = v }},
	{"JobTitle", text, "Your Title", func(p *domain.Profile, v string) { p.Title = v }},
	{"IntroText", text, "Your introduction", func(p *domain.Profile, v string) { p.Introduction = v }},
	{"ProfileImage", fileURL, "", func(p *domain.Profile, v string) { p.ProfileImage = v }},
	{"Bio", text, "", func(p *domain.Profile, v string) { p.Bio = v }},
	{"Email", email, "", func(p *domain.Profile, v string) { p.Email = v }},
	{"Location", text, "", func(p *domain.Profile, v string) { p.Location = v }},
	{"GitHub", link, "", func(p *domain.Profile, v string) { p.GitHub = v }},
	{"LinkedIn", link, "", func(p *domain.Profile, v string) { p.LinkedIn = v }},
	{"ResumeURL", link, "", func(p *domain.Profile, v string) { p.ResumeURL = v }},
}

var experienceSchema = schema[domain.Experience]{
	{"WorkCompany", text, notAvailable, func(e *domain.Experience, v string) { e.Company = v }},
	{"WorkTitle", text, notAvailable, func(e *domain.Experience, v string) { e.Title = v }},
	{startDateProperty, text, notAvailable, func(e *domain.Experience, v string) { e.StartDate = v }},
	{"WorkEndDate", text, "", func(e *domain.Experience, v string) {
		if v != "" {
			e.EndDate = &v
		}
	}},
	{"WorkDescription", text, noDescription, func(e *domain.Experience, v string) { e.Description = v }},
}

var projectSchema = schema[domain.Project]{
	{"ProjectTitle", text, notAvailable, func(p *domain.Project, v string) { p.Title = v }},
	{"Project Description", text, noDescription, func(p *domain.Project, v string) { p.Description = v }},
	{"ProjectImage", fileURL, "", func(p *domain.Project, v string) { p.Image = v }},
	{"ProjectLink", link, "", func(p *domain.Project, v string) { p.Link = v }},
	{"ProjectGithub", link, "", func(p *domain.Project, v string) { p.GitHub = v }},
}

// Blog fields have no fallbacks: posts missing a title or URL are dropped.
var blogSchema = schema[domain.BlogPost]{
	{"ArticleTitle", text, "", func(b *domain.BlogPost, v string) { b.Title = v }},
	{"ArticleURL", link, "", func(b *domain.BlogPost, v string) { b.URL = v }},
	{"ReadingTime", text, "", func(b *domain.BlogPost, v string) { b.ReadingTime = v }},
}
