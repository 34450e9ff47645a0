package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackathon-registration-backend/config"
	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/model"
	"hackathon-registration-backend/internal/store"
)

// fakeVerifier is a mock implementation of the auth.Verifier interface.
type fakeVerifier struct {
	email string
	err   error
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (string, error) {
	return f.email, f.err
}

// fakeStore is a mock implementation of the store.Store interface.
type fakeStore struct {
	sub    *model.FormSubmission
	getErr error
}

func (f *fakeStore) HasSubmission(ctx context.Context, email string) (bool, error) {
	return f.sub != nil, nil
}

func (f *fakeStore) CreateSubmission(ctx context.Context, sub *model.FormSubmission) error {
	return nil
}

func (f *fakeStore) GetSubmission(ctx context.Context, email string) (*model.FormSubmission, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.sub, nil
}

func setupFormRouter(v auth.Verifier, s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(&fakeGuard{}, s, v, "__session")
	return NewRouter(handler, &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 1,
	})
}

func getOwnForm(router *gin.Engine, session string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/form", nil)
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "__session", Value: session})
	}
	router.ServeHTTP(w, req)
	return w
}

func TestGetOwnForm(t *testing.T) {
	t.Run("returns the caller's submission", func(t *testing.T) {
		sub := &model.FormSubmission{
			Email:     "alice@example.com",
			FirstName: "Alice",
			AppStatus: model.StatusWaiting,
		}
		router := setupFormRouter(&fakeVerifier{email: "alice@example.com"}, &fakeStore{sub: sub})

		w := getOwnForm(router, "session-token")
		require.Equal(t, http.StatusOK, w.Code)

		var got model.FormSubmission
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, model.StatusWaiting, got.AppStatus)
	})

	t.Run("401 without a session cookie", func(t *testing.T) {
		router := setupFormRouter(&fakeVerifier{}, &fakeStore{})

		w := getOwnForm(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("401 on an invalid session", func(t *testing.T) {
		router := setupFormRouter(&fakeVerifier{err: auth.ErrInvalidSession}, &fakeStore{})

		w := getOwnForm(router, "bad-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("404 before the form is submitted", func(t *testing.T) {
		router := setupFormRouter(
			&fakeVerifier{email: "alice@example.com"},
			&fakeStore{getErr: store.ErrNotFound},
		)

		w := getOwnForm(router, "session-token")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
