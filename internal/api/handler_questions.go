package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hackathon-registration-backend/internal/form"
)

// GetQuestions returns the static question configuration the form is
// built from. The response never changes for a given build, so the route
// sits behind the response cache.
func (h *Handler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, form.Questions())
}

// Health handles the GET /api/healthz liveness check.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
