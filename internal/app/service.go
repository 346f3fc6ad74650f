// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/okian/talentiq/internal/adapters/export"
	reportqueue "github.com/okian/talentiq/internal/adapters/mq/queue"
	reportworker "github.com/okian/talentiq/internal/adapters/mq/worker"
	"github.com/okian/talentiq/internal/adapters/repository"
	"github.com/okian/talentiq/internal/adapters/scheduler"
	"github.com/okian/talentiq/internal/domain/dataset"
	"github.com/okian/talentiq/internal/domain/dedupe"
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/scoring"
	"github.com/okian/talentiq/pkg/logger"
	"github.com/okian/talentiq/pkg/metrics"
)

const (
	defaultRefreshDelay = 800 * time.Millisecond
	defaultDedupeSize   = 1024
	defaultQueueSize    = 64
	defaultWorkerCount  = 2
	recentReports       = 128
	stopTimeout         = 10 * time.Second
)

// lockedRand serialises access to a *rand.Rand shared by the store and the lifecycle view.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))} //nolint:gosec // simulation only
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

// Service implements the API dependencies for the workforce analytics system.
type Service struct {
	mu sync.RWMutex

	// Core components
	dataset   *dataset.Dataset
	store     *repository.InMemoryStore
	deduper   dedupe.Deduper
	engine    *scoring.Engine
	validate  *validator.Validate
	rnd       *lockedRand
	queue     *reportqueue.InMemoryQueue
	pool      *reportworker.Pool
	scheduler *scheduler.Scheduler
	results   *lru.Cache[string, model.ReportResult]

	// Configuration
	refreshDelay   time.Duration
	analysisDelay  time.Duration
	randomSeed     int64
	dedupeSize     int
	reportDir      string
	queueSize      int
	workerCount    int
	reportSchedule string
	strictSkills   bool

	// Counters
	reportsCompleted atomic.Int64
	reportsFailed    atomic.Int64

	// State
	started bool
	cancel  context.CancelFunc

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataset:      dataset.Default(),
		refreshDelay: defaultRefreshDelay,
		dedupeSize:   defaultDedupeSize,
		queueSize:    defaultQueueSize,
		workerCount:  defaultWorkerCount,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       logger.Nop(),
	}
	s.validate.RegisterTagNameFunc(jsonFieldName)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// jsonFieldName reports validation failures under their JSON names.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	s.logger.Info(ctx, "starting talentiq service...")

	deduper, err := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	if err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	results, err := lru.New[string, model.ReportResult](recentReports)
	if err != nil {
		return fmt.Errorf("start service: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.rnd = newLockedRand(s.randomSeed)
	s.store = repository.NewInMemoryStore(runCtx, s.dataset.EmployeesCopy(),
		repository.WithRefreshDelay(s.refreshDelay),
		repository.WithRand(s.rnd),
		repository.WithLogger(s.logger.Named("store")),
	)
	s.deduper = deduper
	s.results = results
	s.engine = scoring.NewEngine(
		scoring.WithSkillGaps(s.dataset.SkillGaps),
		scoring.WithAnalysisDelay(s.analysisDelay),
		scoring.WithStrictSkillLookup(s.strictSkills),
	)

	if s.reportDir != "" {
		if err := s.startReports(runCtx); err != nil {
			cancel()
			_ = s.store.Close()
			return err
		}
	}

	s.cancel = cancel
	s.started = true
	s.logger.Info(ctx, "talentiq service started",
		logger.Int("employees", s.store.Count(ctx)),
		logger.Int("skill_gaps", len(s.dataset.SkillGaps)),
		logger.Bool("reports", s.reportDir != ""),
	)
	return nil
}

// startReports wires the report queue, worker pool and scheduler. Callers hold s.mu.
func (s *Service) startReports(ctx context.Context) error {
	s.queue = reportqueue.NewInMemoryQueue(reportqueue.WithCapacity(s.queueSize))
	writer := export.NewFileWriter(s.reportDir, s.PrintableReport)
	s.pool = reportworker.NewPool(s.workerCount, s.queue, writer,
		reportworker.WithLogger(s.logger.Named("reports")),
		reportworker.WithResultHandler(s.recordResult),
	)
	s.pool.Start(ctx)

	s.scheduler = scheduler.New(s.queue.Enqueue, scheduler.WithLogger(s.logger.Named("scheduler")))
	if s.reportSchedule != "" {
		if _, err := s.scheduler.Add(s.reportSchedule, model.ReportCSV); err != nil {
			_ = s.pool.Shutdown(ctx)
			return fmt.Errorf("start service: %w", err)
		}
	}
	s.scheduler.Start(ctx)
	return nil
}

func (s *Service) recordResult(r model.ReportResult) {
	if r.Err != "" {
		s.reportsFailed.Add(1)
	} else {
		s.reportsCompleted.Add(1)
	}
	s.results.Add(r.JobID, r)
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	s.logger.Info(ctx, "stopping talentiq service...")

	if s.scheduler != nil {
		if err := s.scheduler.Stop(ctx); err != nil {
			s.logger.Warn(ctx, "scheduler stop", logger.Error(err))
		}
	}
	if s.pool != nil {
		if err := s.pool.Shutdown(ctx); err != nil {
			s.logger.Warn(ctx, "report pool shutdown", logger.Error(err))
		}
	}
	s.cancel()
	_ = s.store.Close()

	s.started = false
	s.logger.Info(ctx, "talentiq service stopped")
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":            s.started,
		"refresh_delay_ms":   s.refreshDelay.Milliseconds(),
		"analysis_delay_ms":  s.analysisDelay.Milliseconds(),
		"dedupe_capacity":    s.dedupeSize,
		"reports_enabled":    s.reportDir != "",
		"strict_skill_match": s.strictSkills,
	}

	if s.started {
		stats["employees"] = s.store.Count(ctx)
		stats["refreshing"] = s.store.IsRefreshing()
		stats["idempotency_keys"] = s.deduper.Size()
		stats["reports_completed"] = s.reportsCompleted.Load()
		stats["reports_failed"] = s.reportsFailed.Load()
		if s.queue != nil {
			stats["report_queue_length"] = s.queue.Len(ctx)
			stats["report_queue_capacity"] = s.queue.Cap()
			stats["report_workers"] = s.pool.Size()
			stats["report_schedules"] = s.scheduler.Len()
		}
	}
	return stats
}

// RefreshMetrics republishes the report queue and schedule gauges.
// The roster gauges are kept current by the store itself.
func (s *Service) RefreshMetrics(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started || s.queue == nil {
		return
	}
	metrics.UpdateReportQueue(s.queue.Len(ctx), s.queue.Cap())
	metrics.UpdateReportSchedules(s.scheduler.Len())
}
