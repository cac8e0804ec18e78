package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio_content/internal/domain"
)

type Handler struct {
	content   ContentService
	syncState SyncStateReader
}

// NewHandler builds the handlers. syncState may be nil when the database
// is disabled; the sync state routes are not registered then.
func NewHandler(content ContentService, syncState SyncStateReader) *Handler {
	return &Handler{content: content, syncState: syncState}
}

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.content.FetchProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) ListExperiences(c *gin.Context) {
	exps, err := h.content.FetchExperiences(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if exps == nil {
		exps = []domain.Experience{}
	}
	c.JSON(http.StatusOK, exps)
}

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.content.FetchProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	project, err := h.content.FetchProjectBySlug(c.Request.Context(), slug)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListBlogPosts always answers 200; an unavailable source yields an empty list.
func (h *Handler) ListBlogPosts(c *gin.Context) {
	posts := h.content.FetchBlogPosts(c.Request.Context())
	if posts == nil {
		posts = []domain.BlogPost{}
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) ListSyncStates(c *gin.Context) {
	states, err := h.syncState.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if states == nil {
		states = []domain.SyncState{}
	}
	c.JSON(http.StatusOK, states)
}

func (h *Handler) GetSyncState(c *gin.Context) {
	category, ok := parseCategory(c.Param("category"))
	if !ok {
		c.Error(fmt.Errorf("category %q: %w", c.Param("category"), domain.ErrNotFound))
		return
	}

	state, err := h.syncState.Get(c.Request.Context(), category)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func parseCategory(raw string) (domain.Category, bool) {
	for _, category := range domain.Categories {
		if strings.EqualFold(raw, string(category)) {
			return category, true
		}
	}
	return "", false
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
