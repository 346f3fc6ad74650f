package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/talentiq/internal/adapters/scheduler"
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/types"
	"github.com/okian/talentiq/pkg/logger"
)

// Report job states.
const (
	ReportQueued    = "queued"
	ReportCompleted = "completed"
	ReportFailed    = "failed"
)

// ReportStatus is the last known state of a report job.
type ReportStatus struct {
	JobID  string             `json:"job_id"`
	Status string             `json:"status"`
	Result model.ReportResult `json:"result"`
}

func parseFormat(raw string) (model.ReportFormat, error) {
	switch f := model.ReportFormat(types.Normalize(raw)); f {
	case "":
		return model.ReportCSV, nil
	case model.ReportCSV, model.ReportHTML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
}

// EnqueueReport queues a one-off report snapshot in format ("csv" when empty).
func (s *Service) EnqueueReport(ctx context.Context, format string) (model.ReportJob, error) {
	if s.queue == nil {
		return model.ReportJob{}, ErrReportsDisabled
	}
	f, err := parseFormat(format)
	if err != nil {
		return model.ReportJob{}, err
	}
	job := model.ReportJob{ID: uuid.NewString(), Format: f, RequestedAt: time.Now().UTC()}
	s.results.Add(job.ID, model.ReportResult{JobID: job.ID})
	if err := s.queue.Enqueue(ctx, job); err != nil {
		s.results.Remove(job.ID)
		return model.ReportJob{}, fmt.Errorf("enqueue report: %w", err)
	}
	s.logger.Info(ctx, "report queued", logger.String("job_id", job.ID), logger.String("format", string(f)))
	return job, nil
}

// ReportStatus looks up a recent report job.
func (s *Service) ReportStatus(id string) (ReportStatus, error) {
	if s.results == nil {
		return ReportStatus{}, ErrReportsDisabled
	}
	r, ok := s.results.Get(id)
	if !ok {
		return ReportStatus{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	st := ReportStatus{JobID: id, Status: ReportCompleted, Result: r}
	switch {
	case r.Finished.IsZero():
		st.Status = ReportQueued
	case r.Err != "":
		st.Status = ReportFailed
	}
	return st, nil
}

// AddSchedule registers a recurring report using a standard cron spec.
func (s *Service) AddSchedule(spec, format string) (scheduler.Schedule, error) {
	if s.scheduler == nil {
		return scheduler.Schedule{}, ErrSchedulingDisabled
	}
	f, err := parseFormat(format)
	if err != nil {
		return scheduler.Schedule{}, err
	}
	return s.scheduler.Add(spec, f)
}

// ListSchedules returns the registered recurring reports.
func (s *Service) ListSchedules() ([]scheduler.Schedule, error) {
	if s.scheduler == nil {
		return nil, ErrSchedulingDisabled
	}
	return s.scheduler.List(), nil
}

// RemoveSchedule unregisters a recurring report.
func (s *Service) RemoveSchedule(id string) error {
	if s.scheduler == nil {
		return ErrSchedulingDisabled
	}
	return s.scheduler.Remove(id)
}
