package activity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/activity"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/metrics"
	"github.com/google/uuid"
)

// Config holds activity recorder configuration
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
	WriteTimeout  time.Duration // default: 30 seconds
}

type service struct {
	repo    activity.Repository
	metrics *metrics.Manager
	logger  *slog.Logger
	config  Config
	now     func() time.Time

	mu      sync.RWMutex
	stopped bool
	queue   chan activity.RecordRequest
	stopCh  chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewActivityService creates the activity trail with background writers.
func NewActivityService(repo activity.Repository, m *metrics.Manager, logger *slog.Logger, cfg Config) activity.Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 30 * time.Second
	}

	s := &service{
		repo:    repo,
		metrics: m,
		logger:  logger,
		config:  cfg,
		now:     time.Now,
		queue:   make(chan activity.RecordRequest, cfg.QueueSize),
		stopCh:  make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	logger.Info("activity recorder started",
		slog.Int("workers", cfg.WorkerCount),
		slog.Int("batch_size", cfg.BatchSize),
		slog.Duration("flush_interval", cfg.FlushInterval),
	)

	return s
}

func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]activity.RecordRequest, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		s.write(id, batch)
		batch = batch[:0]
	}

	for {
		select {
		case req := <-s.queue:
			batch = append(batch, req)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			// Drain whatever is still queued; Stop guarantees nothing new arrives.
			for {
				select {
				case req := <-s.queue:
					batch = append(batch, req)
					if len(batch) >= s.config.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

func (s *service) write(worker int, batch []activity.RecordRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.WriteTimeout)
	defer cancel()

	entries := make([]*activity.Activity, 0, len(batch))
	for _, req := range batch {
		id, err := uuid.NewV7()
		if err != nil {
			s.logger.Error("failed to generate activity id", slog.String("error", err.Error()))
			continue
		}
		entries = append(entries, &activity.Activity{
			ID:          id.String(),
			UserID:      req.UserID,
			Action:      req.Action,
			Description: req.Description,
			EntityType:  req.EntityType,
			EntityID:    req.EntityID,
			CreatedAt:   s.now().UTC(),
		})
	}

	if err := s.repo.CreateBatch(ctx, entries); err != nil {
		s.metrics.IncActivityWriteErrors()
		s.logger.Error("failed to write activity batch",
			slog.Int("worker", worker),
			slog.Int("size", len(entries)),
			slog.String("error", err.Error()),
		)
		return
	}
	s.metrics.AddActivityWritten(len(entries))
	s.logger.Debug("activity batch written", slog.Int("worker", worker), slog.Int("size", len(entries)))
}

// Record queues an entry without blocking. When the queue is full or the
// recorder has stopped the entry is dropped and logged.
func (s *service) Record(ctx context.Context, req activity.RecordRequest) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stopped {
		s.drop(ctx, req, "recorder stopped")
		return
	}

	select {
	case s.queue <- req:
	default:
		s.drop(ctx, req, "queue full")
	}
}

func (s *service) drop(ctx context.Context, req activity.RecordRequest, reason string) {
	s.metrics.IncActivityDropped()
	s.logger.WarnContext(ctx, "activity dropped",
		slog.String("reason", reason),
		slog.String("user_id", req.UserID),
		slog.String("action", string(req.Action)),
		slog.String("entity_type", req.EntityType),
	)
}

// List returns the most recent activities, newest first.
func (s *service) List(ctx context.Context, filter activity.ListFilter) ([]activity.ActivityResponse, error) {
	filter.Normalize()

	activities, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]activity.ActivityResponse, len(activities))
	for i, a := range activities {
		responses[i] = activity.ActivityResponse{
			ID:          a.ID,
			UserID:      a.UserID,
			Action:      a.Action,
			Description: a.Description,
			EntityType:  a.EntityType,
			EntityID:    a.EntityID,
			CreatedAt:   a.CreatedAt,
		}
	}
	return responses, nil
}

// Stop refuses new entries, flushes everything queued and waits for the writers.
func (s *service) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()

		close(s.stopCh)
		s.wg.Wait()
		s.logger.Info("activity recorder stopped")
	})
}
