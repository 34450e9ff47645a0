package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/store"
)

// GetOwnForm handles the GET /api/auth/form request: the caller's own
// submission, used by the dashboard to prefill the read-only form view.
func (h *Handler) GetOwnForm(c *gin.Context) {
	token := h.sessionToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no valid session found"})
		return
	}

	email, err := h.verifier.Verify(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired, please sign in again"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no valid session found"})
		return
	}

	sub, err := h.store.GetSubmission(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "form not submitted yet"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve submission"})
		return
	}

	c.JSON(http.StatusOK, sub)
}
