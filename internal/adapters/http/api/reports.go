package api

import (
	"errors"
	"net/http"

	reportqueue "github.com/okian/talentiq/internal/adapters/mq/queue"
)

// ReportHandler handles queued report and schedule requests.
type ReportHandler struct {
	deps ReportDependencies
}

// NewReportHandler creates a new report handler.
func NewReportHandler(deps ReportDependencies) *ReportHandler {
	return &ReportHandler{deps: deps}
}

type reportRequest struct {
	Format string `json:"format"`
}

type scheduleRequest struct {
	Schedule string `json:"schedule"`
	Format   string `json:"format"`
}

// HandleEnqueue handles POST /reports/export requests.
func (h *ReportHandler) HandleEnqueue(w http.ResponseWriter, r *http.Request) {
	const op = "api.reports_export"
	var req reportRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	job, err := h.deps.EnqueueReport(r.Context(), req.Format)
	if err != nil {
		switch {
		case errors.Is(err, reportqueue.ErrFull):
			err = WrapKind(op, ErrBackpressure, err)
		case errors.Is(err, reportqueue.ErrClosed):
			err = WrapKind(op, ErrUnavailable, err)
		}
		writeServiceError(w, r, op, err)
		return
	}
	w.Header().Set("Location", "/reports/jobs/"+job.ID)
	writeJSON(w, http.StatusAccepted, job)
}

// HandleJobStatus handles GET /reports/jobs/{id} requests.
func (h *ReportHandler) HandleJobStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.deps.ReportStatus(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "api.report_job", err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// HandleListSchedules handles GET /reports/schedule requests.
func (h *ReportHandler) HandleListSchedules(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.ListSchedules()
	if err != nil {
		writeServiceError(w, r, "api.list_schedules", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// HandleAddSchedule handles POST /reports/schedule requests.
func (h *ReportHandler) HandleAddSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "api.add_schedule"
	var req scheduleRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	sched, err := h.deps.AddSchedule(req.Schedule, req.Format)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, sched)
}

// HandleRemoveSchedule handles DELETE /reports/schedule/{id} requests.
func (h *ReportHandler) HandleRemoveSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.RemoveSchedule(r.PathValue("id")); err != nil {
		writeServiceError(w, r, "api.remove_schedule", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
