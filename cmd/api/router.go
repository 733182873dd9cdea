package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the HTTP surface on the given engine
func SetupRoutes(r *gin.Engine, handler *Handler, apiToken string) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		protected := api.Group("")
		protected.Use(TokenMiddleware(apiToken))
		{
			protected.GET("/tasks", handler.GetTasks)
			protected.PATCH("/tasks/:id/toggle", handler.ToggleTask)
			protected.GET("/notes", handler.GetNotes)
			protected.DELETE("/notes/:id", handler.DeleteNote)
			protected.GET("/meetings", handler.GetMeetings)
			protected.GET("/projects", handler.GetProjects)
			protected.GET("/search", handler.Search)
		}
	}
}

// TokenMiddleware checks the static bearer token. An empty configured
// token disables the whole protected surface rather than opening it.
func TokenMiddleware(apiToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiToken == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "API is not configured"})
			c.Abort()
			return
		}

		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(apiToken)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
