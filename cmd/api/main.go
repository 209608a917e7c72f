package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/config"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/activity"
	appHTTP "github.com/cmlabs-hris/hris-report-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/logging"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hris-report-go/internal/repository/mongodb"
	"github.com/cmlabs-hris/hris-report-go/internal/repository/postgresql"
	activityService "github.com/cmlabs-hris/hris-report-go/internal/service/activity"
	leaveService "github.com/cmlabs-hris/hris-report-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/hris-report-go/internal/service/report"
	trainingService "github.com/cmlabs-hris/hris-report-go/internal/service/training"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Server error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.App.LogLevel, cfg.App.Name, cfg.App.Env)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	var metricsManager *metrics.Manager
	if cfg.Metrics.Enabled {
		metricsManager = metrics.NewManager(metrics.WithNamespace(cfg.Metrics.Namespace))
	}

	var activityRepo activity.Repository
	switch cfg.Activity.Store {
	case config.ActivityStoreMongo:
		mongo, err := database.NewMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return fmt.Errorf("connect to mongodb: %w", err)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongo.Close(closeCtx)
		}()
		activityRepo, err = mongodb.NewActivityRepository(ctx, mongo)
		if err != nil {
			return fmt.Errorf("init mongodb activity store: %w", err)
		}
	default:
		activityRepo = postgresql.NewActivityRepository(db)
	}

	activitySvc := activityService.NewActivityService(activityRepo, metricsManager, logger, activityService.Config{
		BatchSize:     cfg.Activity.BatchSize,
		FlushInterval: cfg.Activity.FlushInterval,
		WorkerCount:   cfg.Activity.Workers,
		QueueSize:     cfg.Activity.QueueSize,
	})
	// Stop after the server has drained so late entries still reach the store.
	defer activitySvc.Stop()

	transactor := postgresql.NewTransactor(db)
	reportRepo := postgresql.NewReportRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	trainingRepo := postgresql.NewTrainingRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	reportSvc := reportService.NewReportService(reportRepo, activitySvc, metricsManager, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, transactor, activitySvc)
	trainingSvc := trainingService.NewTrainingService(trainingRepo, transactor, activitySvc)

	router := appHTTP.NewRouter(logger, JWTService, metricsManager, cfg.App.FrontendURL, appHTTP.Handlers{
		Report:   appHTTP.NewReportHandler(reportSvc),
		Leave:    appHTTP.NewLeaveHandler(leaveSvc),
		Training: appHTTP.NewTrainingHandler(trainingSvc),
		Activity: appHTTP.NewActivityHandler(activitySvc),
		System:   appHTTP.NewSystemHandler(db, dsn),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", slog.String("addr", server.Addr), slog.String("activity_store", cfg.Activity.Store))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
