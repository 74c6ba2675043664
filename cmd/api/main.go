package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ppe-dashboard/internal/api/http"
	"github.com/spec-kit/ppe-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/ppe-dashboard/internal/config"
	"github.com/spec-kit/ppe-dashboard/internal/events"
	"github.com/spec-kit/ppe-dashboard/internal/gate"
	"github.com/spec-kit/ppe-dashboard/internal/observability"
	"github.com/spec-kit/ppe-dashboard/internal/service"
	"github.com/spec-kit/ppe-dashboard/internal/session"
	"github.com/spec-kit/ppe-dashboard/internal/session/storage"
	"github.com/spec-kit/ppe-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recorder, pinger, closeStorage, err := buildRecorder(cfg, logger)
	if err != nil {
		logger.Fatal("failed to init session storage", zap.Error(err))
	}
	defer closeStorage()

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	activityService := service.NewActivityService()
	worker.StartActivityWorker(activityService, dispatcher)

	store := session.NewStore(recorder, cfg.Session.RecordKey, logger, dispatcher)
	store.Restore(ctx)

	accessGate := gate.New(store)

	dashboardService := service.NewDashboardService(activityService)
	reportService := service.NewReportService()
	workerService := service.NewWorkerService()
	alertService := service.NewAlertService(dispatcher)
	settingsService := service.NewSettingsService()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pinger),
		Auth:   handlers.NewAuthHandler(store, metrics),
		Views: handlers.NewViewsHandler(store, handlers.ViewsDependencies{
			Dashboard: dashboardService,
			Reports:   reportService,
			Workers:   workerService,
			Alerts:    alertService,
			Settings:  settingsService,
			Activity:  activityService,
		}),
		Guard: httptransport.NewGuard(accessGate, metrics),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func buildRecorder(cfg *config.Config, logger *zap.Logger) (storage.Recorder, handlers.Pinger, func(), error) {
	switch cfg.Session.Backend {
	case "redis":
		recorder := storage.NewRedisRecorder(cfg.Redis, logger)
		return recorder, recorder, recorder.Close, nil
	case "file":
		recorder, err := storage.NewFileRecorder(cfg.Session.StateDir)
		if err != nil {
			return nil, nil, nil, err
		}
		return recorder, nil, func() {}, nil
	default:
		return storage.NewMemoryRecorder(), nil, func() {}, nil
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
