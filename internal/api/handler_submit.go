package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hackathon-registration-backend/internal/form"
	"hackathon-registration-backend/internal/guard"
)

// SubmitForm handles the POST /api/auth/submit-form request. The response
// is a plain-text confirmation or a human-readable failure; internals are
// never exposed in 4xx bodies.
func (h *Handler) SubmitForm(c *gin.Context) {
	token := h.sessionToken(c)

	fields := form.Fields{}
	if mf, err := c.MultipartForm(); err == nil {
		fields = form.Fields(mf.Value)
	}

	email, err := h.guard.Submit(c.Request.Context(), token, fields)
	if err == nil {
		c.String(http.StatusOK, "Successful: %s", email)
		return
	}

	var verr *form.ValidationError
	var perr *guard.PersistenceError
	switch {
	case errors.Is(err, guard.ErrNoSession):
		c.String(http.StatusUnauthorized, "No valid session found")
	case errors.Is(err, guard.ErrSessionExpired):
		c.String(http.StatusInternalServerError, "Session expired. Please sign out and sign in again")
	case errors.Is(err, guard.ErrAlreadySubmitted):
		c.String(http.StatusBadRequest, "Form already submitted")
	case errors.As(err, &verr):
		c.String(http.StatusBadRequest, "Incorrect form data: %s", verr.Error())
	case errors.As(err, &perr):
		c.String(http.StatusInternalServerError, "Something went wrong submitting the form for %s", perr.Email)
	default:
		c.String(http.StatusInternalServerError, "Something went wrong submitting the form")
	}
}
