package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/homeprohq/homepro-platform/internal/api/router"
	"github.com/homeprohq/homepro-platform/internal/booking"
	"github.com/homeprohq/homepro-platform/internal/catalog"
	appconfig "github.com/homeprohq/homepro-platform/internal/config"
	"github.com/homeprohq/homepro-platform/internal/contact"
	"github.com/homeprohq/homepro-platform/internal/observability/metrics"
	"github.com/homeprohq/homepro-platform/internal/reveal"
	"github.com/homeprohq/homepro-platform/internal/reviews"
	"github.com/homeprohq/homepro-platform/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	var logger *logging.Logger
	if cfg.Env == "development" {
		logger = logging.NewText(cfg.LogLevel)
	} else {
		logger = logging.New(cfg.LogLevel)
	}
	logger.Info("starting homepro-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Metrics registry
	registry := prometheus.NewRegistry()
	siteMetrics := metrics.NewSiteMetrics(registry)

	// Helpful-mark tracking falls back to in-process state when redis is not configured.
	var tracker reviews.HelpfulTracker
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Error("redis unreachable, falling back to in-memory helpful tracking", "error", err)
			tracker = reviews.NewMemoryHelpfulTracker()
		} else {
			logger.Info("connected to redis", "addr", cfg.RedisAddr)
			tracker = reviews.NewRedisHelpfulTracker(rdb, cfg.SessionTTL)
		}
		cancel()
	} else {
		tracker = reviews.NewMemoryHelpfulTracker()
	}

	// Initialize handlers
	catalogHandler := catalog.NewHandler(catalog.Seed(), logger)
	reviewsHandler := reviews.NewHandler(reviews.NewInMemoryRepository(reviews.Seed()), tracker, siteMetrics, logger)
	contactHandler := contact.NewHandler(contact.HandlerConfig{
		Metrics:        siteMetrics,
		Logger:         logger,
		SubmitLatency:  cfg.ContactSubmitLatency,
		SuccessDisplay: cfg.ContactSuccessDisplay,
	})
	bookingHandler := booking.NewHandler(booking.HandlerConfig{
		Metrics:       siteMetrics,
		Logger:        logger,
		SubmitLatency: cfg.BookingSubmitLatency,
		SessionTTL:    cfg.SessionTTL,
	})
	revealHandler := reveal.NewHandler(reveal.HandlerConfig{
		Metrics:         siteMetrics,
		Logger:          logger,
		DefaultStagger:  cfg.DefaultStaggerDelay,
		TransitionLeave: cfg.TransitionLeaveLatency,
		TransitionEnter: cfg.TransitionEnterLatency,
		DesktopMinWidth: cfg.DesktopMinWidth,
		ReducedMotion:   cfg.ReducedMotion,
	})
	dashboardHandler := metrics.NewDashboardHandler(registry, logger)

	// Setup router
	routerCfg := &router.Config{
		Logger:             logger,
		CatalogHandler:     catalogHandler,
		ReviewsHandler:     reviewsHandler,
		ContactHandler:     contactHandler,
		BookingHandler:     bookingHandler,
		RevealHandler:      revealHandler,
		DashboardHandler:   dashboardHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	}
	r := router.New(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Evict expired wizard sessions in the background.
	stopSweeper := startSessionSweeper(bookingHandler.Sessions(), cfg.SessionTTL, logger)

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	stopSweeper()
	bookingHandler.Sessions().Close()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// startSessionSweeper evicts expired wizard sessions on a ticker at half the
// session TTL. A TTL of zero or below means sessions never expire, so no
// sweeper runs and the returned stop func is a no-op.
func startSessionSweeper(sessions *booking.Manager, ttl time.Duration, logger *logging.Logger) (stop func()) {
	if ttl <= 0 {
		return func() {}
	}
	interval := ttl / 2
	if interval <= 0 {
		interval = ttl
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := sessions.Sweep(); n > 0 {
					logger.Debug("swept expired booking sessions", "count", n)
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
