package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DukeRupert/pagekit/internal"
	"github.com/DukeRupert/pagekit/internal/alert"
	"github.com/DukeRupert/pagekit/internal/handler"
	"github.com/DukeRupert/pagekit/internal/metrics"
	"github.com/DukeRupert/pagekit/internal/middleware"
	"github.com/DukeRupert/pagekit/internal/settings"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	resolver, profiles, err := newResolver(cfg, logger)
	if err != nil {
		return err
	}

	// =========================================================================
	// Services
	// =========================================================================

	alerts := alert.NewQueue(alert.NewMemoryStore())

	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	go limiter.Run(ctx)

	isSecure := !cfg.IsDevelopment()
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)
	rateLimitMw := middleware.NewRateLimitMiddleware(limiter, logger)
	metricsAuth := middleware.NewBasicAuthMiddleware("metrics", cfg.MetricsUsername, cfg.MetricsPassword)
	if !metricsAuth.Enabled() {
		logger.Warn("METRICS_USERNAME/METRICS_PASSWORD not set, /metrics is unprotected")
	}

	// =========================================================================
	// Routes
	// =========================================================================

	api := http.NewServeMux()
	handler.NewPagingHandler(resolver, cfg.PagingProfile, profiles, logger).RegisterRoutes(api)
	handler.NewAlertHandler(alerts, logger).RegisterRoutes(api)

	mux := http.NewServeMux()
	mux.Handle("/api/", rateLimitMw.Handler(api))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", metricsAuth.Handler(promhttp.Handler()))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handler.NotFoundResponse(w, r, logger)
	})

	// metrics.Middleware reads the pattern set by the mux, so it stays innermost
	globalMiddleware := middleware.Stack(
		loggingMw.Handler,
		securityMw.Handler,
		metrics.Middleware,
	)

	// =========================================================================
	// Server
	// =========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: globalMiddleware(mux),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env, "profile", cfg.PagingProfile)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

// newResolver chains environment overrides in front of the optional
// profiles file and returns the profile names it knows about.
func newResolver(cfg *internal.Config, logger *slog.Logger) (settings.Resolver, []string, error) {
	chain := settings.Chain{settings.NewEnvSource(cfg.PagingEnvPrefix)}
	profiles := []string{cfg.PagingProfile}

	if cfg.PagingProfilesFile != "" {
		src, err := settings.LoadYAML(cfg.PagingProfilesFile)
		if err != nil {
			return nil, nil, fmt.Errorf("paging profiles: %w", err)
		}
		chain = append(chain, src)
		profiles = append(profiles, src.Profiles()...)
		logger.Info("Paging profiles loaded", "file", cfg.PagingProfilesFile, "count", len(src.Profiles()))
	}

	return chain, profiles, nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
