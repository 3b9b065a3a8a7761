package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/itemapi/docs/swagger"
	"github.com/ghuser/itemapi/pkg/app"
	"github.com/ghuser/itemapi/pkg/config"
	"github.com/ghuser/itemapi/pkg/events"
	"github.com/ghuser/itemapi/pkg/httpx"
	"github.com/ghuser/itemapi/pkg/logger"
	"github.com/ghuser/itemapi/pkg/telemetry"
	itemApi "github.com/ghuser/itemapi/services/item/application/api"
	itemServices "github.com/ghuser/itemapi/services/item/application/services"
)

const indexTitle = "Item API"

// @title					Item API
// @version				1.0
// @description			In-memory item catalogue: create, list and fetch items.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:9000
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Logger:   log,
		EventBus: eventBus,
	}

	itemSvcs, err := itemServices.New(appConfig)
	if err != nil {
		log.Error("failed to build item services", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	subCtx, cancelSubs := context.WithCancel(ctx)
	defer cancelSubs()
	if err := registerSubscribers(subCtx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r, err := newRouter(cfg, appConfig, itemSvcs, metricsHandler)
	if err != nil {
		log.Error("failed to build router", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	srv := httpx.NewServer(cfg.ListenAddr(), r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// newRouter wires the middleware stack, the operational endpoints and every
// service's routes.
func newRouter(cfg *config.Config, a *app.Application, itemSvcs *itemServices.Services, metricsHandler http.Handler) (*chi.Mux, error) {
	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment != config.EnvProduction,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(a.Logger),
		logger.Recovery(a.Logger),
		telemetry.SentryMiddleware(cfg),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	index, err := httpx.IndexHandler(indexTitle, itemApi.Endpoints("/api"))
	if err != nil {
		return nil, err
	}
	r.Get("/", index)
	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		"item_store": itemSvcs.Store,
		"event_bus":  a.EventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, a, itemSvcs)
	})
	return r, nil
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application, itemSvcs *itemServices.Services) {
	itemApi.ItemRoutes(r, a, itemSvcs)
}
