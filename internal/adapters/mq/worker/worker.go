package worker

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/pkg/logger"
	"github.com/okian/talentiq/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount  = 2
	poolShutdownTimeout = 30 * time.Second
)

// Job abstracts what workers read off the queue.
type Job = model.ReportJob

// Processor renders one report job.
type Processor interface {
	Process(ctx context.Context, job Job) (model.ReportResult, error)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, job Job) (model.ReportResult, error)

// Process calls f.
func (f ProcessorFunc) Process(ctx context.Context, job Job) (model.ReportResult, error) {
	return f(ctx, job)
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Job
}

// Worker processes report jobs.
type Worker interface {
	// Run starts the worker loop until ctx is canceled or the queue is drained.
	Run(ctx context.Context)

	// Shutdown waits for the worker to exit.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for processing report jobs.
type InMemoryWorker struct {
	queue     Queue
	processor Processor
	name      string
	onResult  func(model.ReportResult)
	processed atomic.Int64

	done   chan struct{}
	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(queue Queue, processor Processor, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:     queue,
		processor: processor,
		name:      "worker",
		onResult:  func(model.ReportResult) {},
		done:      make(chan struct{}),
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.logger.Named(w.name)
	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			if err := w.processJob(ctx, job); err != nil {
				w.logger.Error(ctx, "error processing report job", logger.Error(err))
			}
		}
	}
}

// Shutdown waits for Run to return. Close the queue first so the loop can drain and exit.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// Processed returns how many jobs this worker has handled.
func (w *InMemoryWorker) Processed() int64 {
	return w.processed.Load()
}

func (w *InMemoryWorker) processJob(ctx context.Context, job Job) error {
	start := time.Now()
	res, err := w.processor.Process(ctx, job)
	metrics.RecordReportDuration(float64(time.Since(start).Milliseconds()))
	w.processed.Add(1)

	res.JobID = job.ID
	if res.Finished.IsZero() {
		res.Finished = time.Now()
	}
	if err != nil {
		res.Err = err.Error()
		metrics.RecordReportJob("failed")
		metrics.RecordErrorByComponent("worker", "report_failed")
		w.onResult(res)
		return fmt.Errorf("report job %s: %w", job.ID, err)
	}

	metrics.RecordReportJob("completed")
	w.logger.Info(ctx, "report written",
		logger.String("job_id", job.ID),
		logger.String("path", res.Path),
		logger.Int("rows", res.Rows),
	)
	w.onResult(res)
	return nil
}

// Pool manages multiple workers sharing one queue.
type Pool struct {
	workers []*InMemoryWorker
	queue   Queue
	logger  logger.Logger

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewPool creates a new worker pool. Options are applied to every worker.
func NewPool(workerCount int, queue Queue, processor Processor, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}

	base := &InMemoryWorker{logger: logger.Nop()}
	for _, opt := range opts {
		opt(base)
	}

	p := &Pool{
		workers: make([]*InMemoryWorker, workerCount),
		queue:   queue,
		logger:  base.logger.Named("report-pool"),
	}
	for i := 0; i < workerCount; i++ {
		wopts := append(slices.Clone(opts), WithName("report-worker-"+strconv.Itoa(i)))
		p.workers[i] = NewInMemoryWorker(queue, processor, wopts...)
	}
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Processed returns the total number of jobs handled by all workers.
func (p *Pool) Processed() int64 {
	var n int64
	for _, w := range p.workers {
		n += w.Processed()
	}
	return n
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		for _, w := range p.workers {
			go w.Run(ctx)
		}
		metrics.UpdateReportWorkersActive(len(p.workers))
	})
}

// Shutdown closes the queue, lets workers drain it and waits for them to exit.
func (p *Pool) Shutdown(ctx context.Context) error {
	var err error
	p.stopOnce.Do(func() {
		if closer, ok := p.queue.(interface{ Close() error }); ok {
			if cerr := closer.Close(); cerr != nil {
				p.logger.Error(ctx, "error closing queue", logger.Error(cerr))
			}
		}

		shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
		defer cancel()

		for i, w := range p.workers {
			if werr := w.Shutdown(shutdownCtx); werr != nil {
				p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
				err = werr
			}
		}
		metrics.UpdateReportWorkersActive(0)
	})
	return err
}
