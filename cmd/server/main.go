package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/arifsetiawan/motocare/internal/config"
	"github.com/arifsetiawan/motocare/internal/repository/dataset"
	"github.com/arifsetiawan/motocare/internal/repository/mongodb"
	"github.com/arifsetiawan/motocare/internal/scheduler"
	"github.com/arifsetiawan/motocare/internal/server/handlers"
	"github.com/arifsetiawan/motocare/internal/server/router"
	notificationsvc "github.com/arifsetiawan/motocare/internal/service/notification"
	predictionsvc "github.com/arifsetiawan/motocare/internal/service/prediction"
	"github.com/arifsetiawan/motocare/pkg/clients/wasender"
	"github.com/arifsetiawan/motocare/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	// Dataset ingestion happens exactly once, before any traffic is served.
	// Every ingestion failure degrades to synthetic data inside the loader.
	var source dataset.Source
	switch cfg.Dataset.Source {
	case config.DatasetSourceSheets:
		sheetsSource, err := dataset.NewSheetsSource(context.Background(), cfg.Dataset, baseLogger.Named("repo.dataset"))
		if err != nil {
			baseLogger.Warn("failed to init sheets dataset source, falling back to samples", zap.Error(err))
		} else {
			source = sheetsSource
		}
	default:
		source = dataset.NewCSVSource(cfg.Dataset.Path, baseLogger.Named("repo.dataset"))
	}

	generator := predictionsvc.NewGenerator(nil, baseLogger.Named("svc.prediction"))
	loader := predictionsvc.NewLoader(source, generator, baseLogger.Named("svc.prediction"))
	store := predictionsvc.NewStore(loader.Load(context.Background()))
	baseLogger.Info("prediction store initialized", zap.Int("records", store.Len()))

	var audit mongodb.Repository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Warn("failed to init mongodb audit log, dispatch logging disabled", zap.Error(err))
		} else {
			audit = mongoRepo
			defer func() {
				if err := mongoRepo.Close(context.Background()); err != nil {
					baseLogger.Error("failed to close mongodb connection", zap.Error(err))
				}
			}()
		}
	}

	gatewayClient := wasender.NewClient(cfg.Notif)
	notificationSvc := notificationsvc.NewService(cfg.Notif, gatewayClient, audit, baseLogger.Named("svc.notification"))

	predictionHandler := handlers.NewPredictionHandler(store, baseLogger.Named("handlers.prediction"))
	notificationHandler := handlers.NewNotificationHandler(notificationSvc, baseLogger.Named("handlers.notification"))
	engine := router.New(cfg.Server, predictionHandler, notificationHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reminder, store, notificationSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
