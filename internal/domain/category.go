package domain

// Category is the PageType select value that assigns a source record to a page section.
type Category string

const (
	CategoryProfile    Category = "MainProfile"
	CategoryExperience Category = "Experience"
	CategoryProjects   Category = "Projects"
	CategoryBlog       Category = "Blog"
)

// Categories lists every category in warm-run order.
var Categories = []Category{
	CategoryProfile,
	CategoryExperience,
	CategoryProjects,
	CategoryBlog,
}

// Platform is the publishing platform a blog post links to.
type Platform string

const (
	PlatformMedium   Platform = "medium"
	PlatformLinkedIn Platform = "linkedin"
)
