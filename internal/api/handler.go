package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/form"
	"hackathon-registration-backend/internal/store"
)

// Submitter runs the guarded submission sequence for one form post.
type Submitter interface {
	Submit(ctx context.Context, token string, fields form.Fields) (email string, err error)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	guard      Submitter
	store      store.Store
	verifier   auth.Verifier
	cookieName string
}

// NewHandler creates a new API handler.
func NewHandler(g Submitter, s store.Store, v auth.Verifier, cookieName string) *Handler {
	return &Handler{
		guard:      g,
		store:      s,
		verifier:   v,
		cookieName: cookieName,
	}
}

// sessionToken extracts the session cookie value, or "" when absent.
func (h *Handler) sessionToken(c *gin.Context) string {
	token, err := c.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return token
}
