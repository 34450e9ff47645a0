package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hackathon-registration-backend/config"
	"hackathon-registration-backend/internal/api"
	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/db"
	"hackathon-registration-backend/internal/guard"
	"hackathon-registration-backend/internal/notification"
	"hackathon-registration-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "registrationd ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	if cfg.Session.Secret == "" {
		logger.Fatalf("session.secret must be configured to verify session cookies")
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	verifier := auth.NewJWTVerifier(&cfg.Session)

	// Start the confirmation mail workers in the background
	mailer := notification.NewMailerPool(
		cfg.WorkerPool.Size,
		notification.NewSMTPSender(&cfg.Mail),
		cfg.Mail.AdminAddress,
	)
	mailer.Start(ctx)

	submissionGuard := guard.New(verifier, appStore, mailer)

	// Initialize router
	handler := api.NewHandler(submissionGuard, appStore, verifier, cfg.Session.CookieName)
	router := api.NewRouter(handler, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
