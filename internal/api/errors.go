package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_content/internal/domain"
)

const (
	msgNotFound = "not found"
	msgInternal = "content temporarily unavailable"
)

// ToHTTPStatus maps a service error to the status code returned to the site.
func ToHTTPStatus(err error) int {
	if errors.Is(err, domain.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorMiddleware renders the last error a handler attached with c.Error.
// Internal details are logged, never returned.
func ErrorMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := ToHTTPStatus(err)

		if status == http.StatusNotFound {
			c.JSON(status, gin.H{"error": msgNotFound})
			return
		}

		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(status, gin.H{"error": msgInternal})
	}
}
