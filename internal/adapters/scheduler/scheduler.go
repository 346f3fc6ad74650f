// Package scheduler registers recurring report snapshots on a cron schedule.
package scheduler

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/pkg/logger"
	"github.com/okian/talentiq/pkg/metrics"
)

// Sentinel kinds for scheduling errors.
var (
	ErrInvalidSchedule  = errors.New("invalid cron expression")
	ErrScheduleNotFound = errors.New("schedule not found")
)

// EnqueueFunc hands a report job to the report queue.
type EnqueueFunc func(ctx context.Context, job model.ReportJob) error

// Schedule is one registered recurring report.
type Schedule struct {
	ID        string             `json:"id"`
	Spec      string             `json:"schedule"`
	Format    model.ReportFormat `json:"format"`
	CreatedAt time.Time          `json:"created_at"`
	NextRun   *time.Time         `json:"next_run,omitempty"`
	LastRun   *time.Time         `json:"last_run,omitempty"`
	LastError string             `json:"last_error,omitempty"`
}

type entry struct {
	sched   Schedule
	entryID cron.EntryID
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLocation runs schedules in loc instead of the local time zone.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// Scheduler wraps a cron runner and maps schedule ids to cron entries.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]*entry
	enqueue EnqueueFunc
	log     logger.Logger
	loc     *time.Location
	ctx     context.Context
	cancel  context.CancelFunc
}

// New creates a scheduler that enqueues report jobs through enqueue.
func New(enqueue EnqueueFunc, opts ...Option) *Scheduler {
	s := &Scheduler{
		entries: make(map[string]*entry),
		enqueue: enqueue,
		log:     logger.Nop(),
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cron = cron.New(cron.WithLocation(s.loc))
	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s
}

// Start starts running registered schedules.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	s.log.Info(ctx, "report scheduler started", logger.Int("schedules", s.Len()))
}

// Stop stops the cron runner and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.log.Info(ctx, "report scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// Add registers a recurring report using a standard five-field cron spec or a descriptor like @daily.
func (s *Scheduler) Add(spec string, format model.ReportFormat) (Schedule, error) {
	parsed, err := cron.ParseStandard(spec)
	if err != nil {
		return Schedule{}, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}
	if format == "" {
		format = model.ReportCSV
	}

	e := &entry{sched: Schedule{
		ID:        uuid.NewString(),
		Spec:      spec,
		Format:    format,
		CreatedAt: time.Now(),
	}}

	s.mu.Lock()
	e.entryID = s.cron.Schedule(parsed, cron.FuncJob(func() { s.fire(e) }))
	s.entries[e.sched.ID] = e
	n := len(s.entries)
	out := s.view(e, parsed)
	s.mu.Unlock()

	metrics.UpdateReportSchedules(n)
	s.log.Info(s.ctx, "report schedule added",
		logger.String("schedule_id", e.sched.ID),
		logger.String("spec", spec),
	)
	return out, nil
}

// Remove unregisters a schedule.
func (s *Scheduler) Remove(id string) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok {
		s.cron.Remove(e.entryID)
		delete(s.entries, id)
	}
	n := len(s.entries)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrScheduleNotFound, id)
	}
	metrics.UpdateReportSchedules(n)
	s.log.Info(s.ctx, "report schedule removed", logger.String("schedule_id", id))
	return nil
}

// List returns every schedule, oldest first.
func (s *Scheduler) List() []Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Schedule, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, s.view(e, s.cron.Entry(e.entryID).Schedule))
	}
	slices.SortFunc(out, func(a, b Schedule) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Len returns the number of registered schedules.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// view copies e and fills in the next activation. Callers hold s.mu.
func (s *Scheduler) view(e *entry, sched cron.Schedule) Schedule {
	out := e.sched
	if sched != nil {
		next := sched.Next(time.Now().In(s.loc))
		out.NextRun = &next
	}
	if e.sched.LastRun != nil {
		last := *e.sched.LastRun
		out.LastRun = &last
	}
	return out
}

func (s *Scheduler) fire(e *entry) {
	now := time.Now()
	job := model.ReportJob{
		ID:          uuid.NewString(),
		Format:      e.sched.Format,
		RequestedAt: now,
		ScheduleID:  e.sched.ID,
	}
	err := s.enqueue(s.ctx, job)

	s.mu.Lock()
	e.sched.LastRun = &now
	e.sched.LastError = ""
	if err != nil {
		e.sched.LastError = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		metrics.RecordErrorByComponent("scheduler", "enqueue_failed")
		s.log.Warn(s.ctx, "scheduled report not queued",
			logger.String("schedule_id", e.sched.ID),
			logger.Error(err),
		)
		return
	}
	s.log.Debug(s.ctx, "scheduled report queued",
		logger.String("schedule_id", e.sched.ID),
		logger.String("job_id", job.ID),
	)
}
