package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/okian/talentiq/internal/adapters/scheduler"
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

type jobSink struct {
	mu   sync.Mutex
	jobs []model.ReportJob
	err  error
}

func (j *jobSink) enqueue(_ context.Context, job model.ReportJob) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jobs = append(j.jobs, job)
	return j.err
}

func (j *jobSink) count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.jobs)
}

func TestScheduler(t *testing.T) {
	convey.Convey("Given a scheduler", t, func() {
		sink := &jobSink{}
		s := scheduler.New(sink.enqueue, scheduler.WithLocation(time.UTC))
		ctx := context.Background()

		convey.Convey("When adding a valid schedule", func() {
			sched, err := s.Add("0 6 * * 1", "")

			convey.Convey("Then it is listed with its next run", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(sched.ID, convey.ShouldNotBeEmpty)
				convey.So(sched.Format, convey.ShouldEqual, model.ReportCSV)
				convey.So(sched.NextRun, convey.ShouldNotBeNil)
				convey.So(sched.NextRun.Weekday(), convey.ShouldEqual, time.Monday)
				convey.So(sched.NextRun.Hour(), convey.ShouldEqual, 6)

				list := s.List()
				convey.So(list, convey.ShouldHaveLength, 1)
				convey.So(list[0].ID, convey.ShouldEqual, sched.ID)
				convey.So(list[0].Spec, convey.ShouldEqual, "0 6 * * 1")
			})

			convey.Convey("And it can be removed once", func() {
				convey.So(s.Remove(sched.ID), convey.ShouldBeNil)
				convey.So(s.Len(), convey.ShouldEqual, 0)
				convey.So(errors.Is(s.Remove(sched.ID), scheduler.ErrScheduleNotFound), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When adding descriptors", func() {
			_, err := s.Add("@daily", model.ReportHTML)
			convey.So(err, convey.ShouldBeNil)
			_, err = s.Add("@every 1h", model.ReportCSV)
			convey.So(err, convey.ShouldBeNil)
			convey.So(s.Len(), convey.ShouldEqual, 2)
			convey.So(s.List()[0].Format, convey.ShouldEqual, model.ReportHTML)
		})

		convey.Convey("When the spec is malformed", func() {
			_, err := s.Add("every tuesday", model.ReportCSV)

			convey.Convey("Then it is rejected", func() {
				convey.So(errors.Is(err, scheduler.ErrInvalidSchedule), convey.ShouldBeTrue)
				convey.So(s.Len(), convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When a schedule fires", func() {
			sched, err := s.Add("@every 1s", model.ReportCSV)
			convey.So(err, convey.ShouldBeNil)
			s.Start(ctx)

			deadline := time.Now().Add(3 * time.Second)
			for sink.count() == 0 && time.Now().Before(deadline) {
				time.Sleep(20 * time.Millisecond)
			}
			stopCtx, cancel := context.WithTimeout(ctx, time.Second)
			defer cancel()
			convey.So(s.Stop(stopCtx), convey.ShouldBeNil)

			convey.Convey("Then a report job tagged with the schedule is enqueued", func() {
				convey.So(sink.count(), convey.ShouldBeGreaterThanOrEqualTo, 1)
				sink.mu.Lock()
				job := sink.jobs[0]
				sink.mu.Unlock()
				convey.So(job.ScheduleID, convey.ShouldEqual, sched.ID)
				convey.So(job.Format, convey.ShouldEqual, model.ReportCSV)
				convey.So(job.ID, convey.ShouldNotBeEmpty)
				convey.So(s.List()[0].LastRun, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When enqueueing fails", func() {
			sink.err = errors.New("queue full")
			_, _ = s.Add("@every 1s", model.ReportCSV)
			s.Start(ctx)

			deadline := time.Now().Add(3 * time.Second)
			for sink.count() == 0 && time.Now().Before(deadline) {
				time.Sleep(20 * time.Millisecond)
			}
			_ = s.Stop(ctx)

			convey.Convey("Then the error is kept on the schedule", func() {
				convey.So(s.List()[0].LastError, convey.ShouldEqual, "queue full")
			})
		})
	})
}
