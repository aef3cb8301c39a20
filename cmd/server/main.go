package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-dashboard/internal/apiclient"
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/middleware"
	"finance-dashboard/internal/notify"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/views"
	"finance-dashboard/web"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg)

	api := apiclient.New(cfg.API)
	metrics := services.NewDashboardMetrics()
	svc := services.NewDashboardService(api, metrics)
	notifier := notify.NewCenter()

	bindings := views.DefaultBindings()
	renderer, err := views.NewRenderer(web.TemplatesFS, bindings)
	if err != nil {
		slog.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.StaticFS("/static", echo.MustSubFS(web.StaticFS, "static"))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	dashboard := handlers.NewDashboardHandler(svc, bindings, notifier)
	transactions := handlers.NewTransactionHandler(dashboard, svc, notifier)
	csv := handlers.NewCSVHandler(dashboard, svc, notifier)
	health := handlers.NewHealthCheckHandler(api)
	handlers.RegisterRoutes(e, dashboard, transactions, csv, health)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = 60 * time.Second

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	slog.Info("Starting finance dashboard",
		"address", cfg.Server.Address(),
		"api_base_url", cfg.API.BaseURL,
		"environment", cfg.Server.Environment,
	)
	if err := e.Start(cfg.Server.Address()); err != nil && err != http.ErrServerClosed {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	slog.Info("Server stopped gracefully")
}

func setupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
