package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/config"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/activity"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/logging"
	"github.com/cmlabs-hris/hris-report-go/internal/repository/mongodb"
	"github.com/cmlabs-hris/hris-report-go/internal/repository/postgresql"
	activityService "github.com/cmlabs-hris/hris-report-go/internal/service/activity"
	reportService "github.com/cmlabs-hris/hris-report-go/internal/service/report"
)

// app is the wiring a database-backed command needs.
type app struct {
	logger   *slog.Logger
	reports  report.Service
	activity activity.Service
	closers  []func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	a := &app{logger: logging.New(os.Stderr, cfg.App.LogLevel, "hrctl", cfg.App.Env)}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 4, MinConns: 1})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	var activityRepo activity.Repository
	switch cfg.Activity.Store {
	case config.ActivityStoreMongo:
		mongo, err := database.NewMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to mongodb: %w", err)
		}
		a.closers = append(a.closers, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongo.Close(closeCtx)
		})
		if activityRepo, err = mongodb.NewActivityRepository(ctx, mongo); err != nil {
			a.Close()
			return nil, fmt.Errorf("init mongodb activity store: %w", err)
		}
	default:
		activityRepo = postgresql.NewActivityRepository(db)
	}

	// One worker; Close flushes before the process exits.
	a.activity = activityService.NewActivityService(activityRepo, nil, a.logger, activityService.Config{WorkerCount: 1})
	a.closers = append(a.closers, a.activity.Stop)

	a.reports = reportService.NewReportService(postgresql.NewReportRepository(db), a.activity, nil, a.logger)
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
