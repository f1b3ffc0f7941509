// Package main is the entry point for the branding-api server.
// Note: User signup, sessions, and token issuance are handled by the identity
// provider. This API only verifies the HS256 access tokens it issues.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	_ "github.com/joho/godotenv/autoload"

	"github.com/dropshipai/branding-api/internal/config"
	"github.com/dropshipai/branding-api/internal/database"
	"github.com/dropshipai/branding-api/internal/http/handlers"
	"github.com/dropshipai/branding-api/internal/http/mw"
	"github.com/dropshipai/branding-api/internal/logging"
	"github.com/dropshipai/branding-api/internal/repository"
	"github.com/dropshipai/branding-api/internal/service"
	"github.com/dropshipai/branding-api/internal/version"
)

const (
	defaultRequestTimeout = 30 * time.Second
	// Model-backed endpoints fetch pages and wait on inference
	llmRequestTimeout = 120 * time.Second
)

func main() {
	// Initialize logger with TTY detection, source paths, and format control
	logger := logging.SetDefault()

	// Log version info first thing
	v := version.Get()
	logger.Info("starting branding-api",
		"version", v.Version,
		"commit", v.Commit,
		"built", v.Date,
		"go_version", v.GoVersion,
	)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	// Run migrations (with logging for each migration applied)
	if err := database.MigrateWithLogger(db, logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Log current schema version
	applied, err := database.GetAppliedMigrations(db)
	if err != nil {
		logger.Warn("failed to get schema version", "error", err)
	} else if len(applied) > 0 {
		latest := applied[len(applied)-1]
		logger.Info("database schema ready",
			"schema_version", latest.Timestamp, "migrations_applied", len(applied))
	}

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize services
	services, err := service.NewServices(cfg, repos, logger)
	if err != nil {
		logger.Error("failed to initialize services", "error", err)
		os.Exit(1)
	}

	// Token verifier for the identity provider's HS256 access tokens
	verifier := mw.NewVerifier(cfg.JWTSecret)

	// Create router
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	// Request timeout middleware with different timeouts per endpoint type
	router.Use(mw.Timeout(mw.TimeoutConfig{
		Default:  defaultRequestTimeout,
		Extended: llmRequestTimeout,
		// Model-backed operations get extended timeout (page fetch + inference)
		ExtendedPatterns: []string{
			"/generate-branding",
			"/regenerate-branding",
			"/analyze-website",
			"/marketing-plan",
		},
	}))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Request size limit (1MB) - prevent large payload attacks
	router.Use(middleware.RequestSize(1 * 1024 * 1024))

	// Global rate limit by IP (the frontend proxies per-user limits)
	router.Use(httprate.LimitByIP(100, time.Minute))

	// Global concurrency throttle - prevent system overload
	router.Use(middleware.Throttle(100))

	// Create Huma API config with OpenAPI docs
	humaConfig := huma.DefaultConfig("Branding API", "1.0.0")
	humaConfig.Info.Description = "LLM-powered branding, website analysis, and marketing plan generation for dropshipping storefronts."
	humaConfig.Servers = []*huma.Server{
		{URL: cfg.BaseURL, Description: "API Server"},
	}
	// Add security scheme for Bearer auth
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:        "http",
			Scheme:      "bearer",
			Description: "Access token authentication. Include the identity provider's JWT in the Authorization header as `Bearer <token>`.",
		},
	}

	// Main API with OpenAPI docs
	api := humachi.New(router, humaConfig)

	// Config for protected routes (no separate docs - they're served by the main API)
	protectedConfig := huma.DefaultConfig("Branding API", "1.0.0")
	protectedConfig.Info.Description = humaConfig.Info.Description
	protectedConfig.Servers = humaConfig.Servers
	protectedConfig.DocsPath = ""
	protectedConfig.OpenAPIPath = ""
	protectedConfig.SchemasPath = ""

	// Health check (public, shown in docs)
	huma.Get(api, "/api/v1/health", handlers.HealthCheck)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(mw.Auth(verifier))

		protectedAPI := humachi.New(r, protectedConfig)

		brandingHandler := handlers.NewBrandingHandler(services.Branding, logger)
		huma.Post(protectedAPI, "/api/v1/generate-branding", brandingHandler.GenerateBranding)
		huma.Post(protectedAPI, "/api/v1/regenerate-branding", brandingHandler.RegenerateBranding)

		analyzeHandler := handlers.NewAnalyzeHandler(services.Analyzer, logger)
		huma.Post(protectedAPI, "/api/v1/analyze-website", analyzeHandler.AnalyzeWebsite)

		marketingHandler := handlers.NewMarketingHandler(services.Marketing, logger)
		huma.Post(protectedAPI, "/api/v1/marketing-plan", marketingHandler.GeneratePlan)

		segmentsHandler := handlers.NewSegmentsHandler(services.Segments)
		huma.Get(protectedAPI, "/api/v1/segments", segmentsHandler.ListSegments)

		projectsHandler := handlers.NewProjectsHandler(services.Branding, logger)
		huma.Get(protectedAPI, "/api/v1/projects", projectsHandler.ListProjects)
		huma.Get(protectedAPI, "/api/v1/projects/{projectId}/outputs", projectsHandler.ListOutputs)
		huma.Delete(protectedAPI, "/api/v1/projects/{projectId}", projectsHandler.DeleteProject)
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: llmRequestTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan

		logger.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	// Start server
	logger.Info("starting server", "port", cfg.Port, "base_url", cfg.BaseURL)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
