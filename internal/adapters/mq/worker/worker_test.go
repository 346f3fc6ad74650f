package worker_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/okian/talentiq/internal/adapters/mq/queue"
	"github.com/okian/talentiq/internal/adapters/mq/worker"
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

// recordingProcessor remembers every job it sees and fails the ones listed in fail.
type recordingProcessor struct {
	mu   sync.Mutex
	seen []string
	fail map[string]error
}

func (p *recordingProcessor) Process(_ context.Context, job worker.Job) (model.ReportResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, job.ID)
	if err, ok := p.fail[job.ID]; ok {
		return model.ReportResult{}, err
	}
	return model.ReportResult{Path: "/tmp/" + job.ID + ".csv", Rows: 8}, nil
}

func (p *recordingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

type resultSink struct {
	mu      sync.Mutex
	results []model.ReportResult
}

func (s *resultSink) add(r model.ReportResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
}

func (s *resultSink) snapshot() []model.ReportResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ReportResult(nil), s.results...)
}

func TestInMemoryWorker(t *testing.T) {
	convey.Convey("Given a worker reading from a queue", t, func() {
		ctx := context.Background()
		q := queue.NewInMemoryQueue(queue.WithCapacity(8))
		proc := &recordingProcessor{fail: map[string]error{"bad": errors.New("disk full")}}
		sink := &resultSink{}
		w := worker.NewInMemoryWorker(q, proc, worker.WithName("test"), worker.WithResultHandler(sink.add))

		convey.Convey("When jobs are queued and the queue is closed", func() {
			for _, id := range []string{"one", "bad", "two"} {
				convey.So(q.Enqueue(ctx, model.ReportJob{ID: id, Format: model.ReportCSV}), convey.ShouldBeNil)
			}
			_ = q.Close()
			go w.Run(ctx)

			shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			err := w.Shutdown(shutdownCtx)

			convey.Convey("Then every job is processed and reported", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(w.Processed(), convey.ShouldEqual, 3)

				results := sink.snapshot()
				convey.So(results, convey.ShouldHaveLength, 3)
				convey.So(results[0].JobID, convey.ShouldEqual, "one")
				convey.So(results[0].Rows, convey.ShouldEqual, 8)
				convey.So(results[0].Finished.IsZero(), convey.ShouldBeFalse)
				convey.So(results[1].JobID, convey.ShouldEqual, "bad")
				convey.So(results[1].Err, convey.ShouldEqual, "disk full")
				convey.So(results[2].Err, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			go w.Run(cctx)
			cancel()

			convey.Convey("Then the worker exits", func() {
				shutdownCtx, stop := context.WithTimeout(ctx, 2*time.Second)
				defer stop()
				convey.So(w.Shutdown(shutdownCtx), convey.ShouldBeNil)
			})
		})

		convey.Convey("When shutdown times out", func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
			defer cancel()

			convey.Convey("Then a timeout error is returned", func() {
				err := w.Shutdown(shutdownCtx)
				convey.So(errors.Is(err, context.DeadlineExceeded), convey.ShouldBeTrue)
			})
		})
	})
}

func TestPool(t *testing.T) {
	convey.Convey("Given a pool of workers", t, func() {
		ctx := context.Background()
		q := queue.NewInMemoryQueue(queue.WithCapacity(64))
		proc := &recordingProcessor{}
		p := worker.NewPool(3, q, proc)

		convey.So(p.Size(), convey.ShouldEqual, 3)

		convey.Convey("When many jobs are processed and the pool shuts down", func() {
			p.Start(ctx)
			for i := 0; i < 40; i++ {
				convey.So(q.Enqueue(ctx, model.ReportJob{ID: fmt.Sprintf("job-%d", i)}), convey.ShouldBeNil)
			}
			err := p.Shutdown(ctx)

			convey.Convey("Then all queued jobs are drained exactly once", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(proc.count(), convey.ShouldEqual, 40)
				convey.So(p.Processed(), convey.ShouldEqual, 40)
				convey.So(q.IsClosed(), convey.ShouldBeTrue)
			})

			convey.Convey("And shutting down again is safe", func() {
				convey.So(p.Shutdown(ctx), convey.ShouldBeNil)
			})
		})

		convey.Convey("When a non-positive worker count is given", func() {
			convey.So(worker.NewPool(0, q, proc).Size(), convey.ShouldEqual, 2)
		})
	})

	convey.Convey("ProcessorFunc adapts plain functions", t, func() {
		f := worker.ProcessorFunc(func(_ context.Context, job worker.Job) (model.ReportResult, error) {
			return model.ReportResult{Path: job.ID}, nil
		})
		res, err := f.Process(context.Background(), model.ReportJob{ID: "x"})
		convey.So(err, convey.ShouldBeNil)
		convey.So(res.Path, convey.ShouldEqual, "x")
	})
}
