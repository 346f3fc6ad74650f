package repository

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/pkg/logger"
	"github.com/okian/talentiq/pkg/metrics"
)

const (
	defaultRefreshDelay   = 800 * time.Millisecond
	defaultMetricsRefresh = 5 * time.Second

	// Refresh moves each attrition risk by an integer in [-maxPerturbation, +maxPerturbation].
	maxPerturbation = 5

	idSuffixLen = 9

	// atRiskThreshold matches the dashboard's high-risk cut-off.
	atRiskThreshold = 50
)

// InMemoryStore keeps the roster as an ordered slice guarded by a RWMutex.
type InMemoryStore struct {
	mu        sync.RWMutex
	employees []model.Employee

	refreshDelay          time.Duration
	metricsUpdateInterval time.Duration
	rnd                   IntSource
	newID                 func() string
	now                   func() time.Time
	log                   logger.Logger

	refreshing atomic.Bool

	// ctx bounds background refreshes started through StartRefresh.
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore builds a store seeded with a copy of seed.
// Background work stops when ctx is cancelled or Close is called.
func NewInMemoryStore(ctx context.Context, seed []model.Employee, opts ...Option) *InMemoryStore {
	s := &InMemoryStore{
		employees:             make([]model.Employee, 0, len(seed)),
		refreshDelay:          defaultRefreshDelay,
		metricsUpdateInterval: defaultMetricsRefresh,
		rnd:                   rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // simulation only
		now:                   time.Now,
		log:                   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.newID == nil {
		s.newID = s.generateID
	}
	for _, e := range seed {
		e = e.Clone()
		e.Clamp()
		s.employees = append(s.employees, e)
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.updateMetrics()
	s.startMetricsUpdater()
	return s
}

// generateID returns emp-{unix millis}-{9 random lowercase hex chars}.
func (s *InMemoryStore) generateID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
	return fmt.Sprintf("emp-%d-%s", s.now().UnixMilli(), suffix)
}

// Close stops background work and waits for it to finish.
func (s *InMemoryStore) Close() error {
	s.stopOnce.Do(func() {
		s.cancel()
	})
	s.wg.Wait()
	return nil
}

func (s *InMemoryStore) List(_ context.Context) []model.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Employee, len(s.employees))
	for i, e := range s.employees {
		out[i] = e.Clone()
	}
	return out
}

func (s *InMemoryStore) Get(_ context.Context, id string) (model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Employee{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.employees[i].Clone(), nil
}

func (s *InMemoryStore) Add(ctx context.Context, e model.Employee) (model.Employee, error) {
	e = e.Clone()
	e.ID = s.newID()
	e.Clamp()

	s.mu.Lock()
	s.employees = append(s.employees, e)
	s.mu.Unlock()

	metrics.RecordEmployeeMutation("add")
	s.updateMetrics()
	s.log.Debug(ctx, "employee added", logger.String("id", e.ID))
	return e.Clone(), nil
}

func (s *InMemoryStore) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i >= 0 {
		s.employees = slices.Delete(s.employees, i, i+1)
	}
	s.mu.Unlock()

	if i < 0 {
		return false
	}
	metrics.RecordEmployeeMutation("remove")
	s.updateMetrics()
	s.log.Debug(ctx, "employee removed", logger.String("id", id))
	return true
}

func (s *InMemoryStore) Update(ctx context.Context, id string, p model.EmployeePatch) (model.Employee, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Employee{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p.Apply(&s.employees[i])
	out := s.employees[i].Clone()
	s.mu.Unlock()

	metrics.RecordEmployeeMutation("update")
	s.updateMetrics()
	s.log.Debug(ctx, "employee updated", logger.String("id", id))
	return out, nil
}

func (s *InMemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

func (s *InMemoryStore) IsRefreshing() bool {
	return s.refreshing.Load()
}

func (s *InMemoryStore) Refresh(ctx context.Context) error {
	if !s.refreshing.CompareAndSwap(false, true) {
		metrics.RecordRefreshRejected()
		return ErrRefreshInProgress
	}
	defer s.refreshing.Store(false)
	return s.refresh(ctx)
}

func (s *InMemoryStore) StartRefresh() bool {
	if !s.refreshing.CompareAndSwap(false, true) {
		metrics.RecordRefreshRejected()
		return false
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.refreshing.Store(false)
		if err := s.refresh(s.ctx); err != nil {
			s.log.Warn(s.ctx, "background refresh aborted", logger.Error(err))
		}
	}()
	return true
}

// refresh assumes the caller holds the refreshing flag.
func (s *InMemoryStore) refresh(ctx context.Context) error {
	start := time.Now()
	metrics.RecordRefreshStarted()

	if s.refreshDelay > 0 {
		t := time.NewTimer(s.refreshDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			metrics.RecordRefreshAborted()
			return ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		metrics.RecordRefreshAborted()
		return err
	}

	s.mu.Lock()
	for i := range s.employees {
		delta := s.rnd.Intn(2*maxPerturbation+1) - maxPerturbation
		s.employees[i].AttritionRisk = model.Clamp100(s.employees[i].AttritionRisk + delta)
	}
	n := len(s.employees)
	s.mu.Unlock()

	elapsed := time.Since(start)
	metrics.RecordRefreshFinished(float64(elapsed.Milliseconds()))
	s.updateMetrics()
	s.log.Info(ctx, "attrition scores refreshed", logger.Int("employees", n), logger.Duration("took", elapsed))
	return nil
}

func (s *InMemoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.employees, func(e model.Employee) bool { return e.ID == id })
}

func (s *InMemoryStore) startMetricsUpdater() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.updateMetrics()
			}
		}
	}()
}

// updateMetrics publishes the roster gauges.
func (s *InMemoryStore) updateMetrics() {
	s.mu.RLock()
	total := len(s.employees)
	var atRisk, keyPersons int
	for _, e := range s.employees {
		if e.AttritionRisk > atRiskThreshold {
			atRisk++
		}
		if e.IsKeyPerson {
			keyPersons++
		}
	}
	s.mu.RUnlock()
	metrics.UpdateRoster(total, atRisk, keyPersons)
}
