package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hackathon-registration-backend/config"
	"hackathon-registration-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(handler *Handler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/healthz", handler.Health)

		// GET /api/questions is static per build, safe to cache.
		api.GET("/questions", caching, handler.GetQuestions)

		authed := api.Group("/auth")
		{
			authed.POST("/submit-form", handler.SubmitForm)
			authed.GET("/form", handler.GetOwnForm)
		}
	}

	return r
}
