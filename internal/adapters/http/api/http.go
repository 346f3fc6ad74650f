// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/okian/talentiq/internal/adapters/export"
	"github.com/okian/talentiq/internal/adapters/repository"
	"github.com/okian/talentiq/internal/adapters/scheduler"
	service "github.com/okian/talentiq/internal/app"
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/scoring"
	"github.com/okian/talentiq/pkg/logger"
)

// EmployeeDependencies covers the roster and its per-employee analyses.
type EmployeeDependencies interface {
	ListEmployees(ctx context.Context) []model.Employee
	GetEmployee(ctx context.Context, id string) (model.Employee, error)
	AddEmployee(ctx context.Context, in service.NewEmployee, idempotencyKey string) (model.Employee, bool, error)
	UpdateEmployee(ctx context.Context, id string, p model.EmployeePatch) (model.Employee, error)
	RemoveEmployee(ctx context.Context, id string) bool
	AttritionAnalysis(ctx context.Context, id string) (scoring.AttritionAnalysis, error)
	RetentionActions(ctx context.Context, id string) ([]string, error)
	StartRefresh(ctx context.Context) error
	IsRefreshing() bool
}

// AnalyticsDependencies covers reference data and the formula endpoints.
type AnalyticsDependencies interface {
	SkillGaps() []model.SkillGap
	Teams() []model.Team
	Trends() []model.TrendPoint
	DashboardSummary(ctx context.Context) service.DashboardSummary
	Decide(ctx context.Context, in scoring.DecisionInputs) (scoring.DecisionOutput, error)
	Lifecycle(ctx context.Context, settings *scoring.TradeoffSettings) scoring.LifecycleReport
	Tradeoff(settings scoring.TradeoffSettings) service.TradeoffView
	HiringCapacity(ctx context.Context, in scoring.HiringCapacityInputs) (scoring.HiringCapacityResult, error)
	TimeToHire(ctx context.Context, in scoring.TimeToHireInputs) (scoring.TimeToHireResult, error)
	Scenario(ctx context.Context, preset string, params *scoring.ScenarioParams) (scoring.ScenarioResult, error)
	ScenarioPresets() []scoring.ScenarioPreset
	KnowledgeRisk(ctx context.Context) scoring.KnowledgeRisk
}

// ReportDependencies covers exports, queued reports and schedules.
type ReportDependencies interface {
	ExportCSV(ctx context.Context, w io.Writer) (string, error)
	PrintableReport(ctx context.Context) export.PrintableReport
	EnqueueReport(ctx context.Context, format string) (model.ReportJob, error)
	ReportStatus(id string) (service.ReportStatus, error)
	AddSchedule(spec, format string) (scheduler.Schedule, error)
	ListSchedules() ([]scheduler.Schedule, error)
	RemoveSchedule(id string) error
}

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	EmployeeDependencies
	AnalyticsDependencies
	ReportDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	employeeHandler  *EmployeeHandler
	analyticsHandler *AnalyticsHandler
	dashboardHandler *DashboardHandler
	exportHandler    *ExportHandler
	reportHandler    *ReportHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		employeeHandler:  NewEmployeeHandler(deps),
		analyticsHandler: NewAnalyticsHandler(deps),
		dashboardHandler: NewDashboardHandler(deps),
		exportHandler:    NewExportHandler(deps),
		reportHandler:    NewReportHandler(deps),
	}
}

type route struct {
	pattern  string
	endpoint string
	handler  http.HandlerFunc
}

func (s *Server) routes() []route {
	e, a, x, rp := s.employeeHandler, s.analyticsHandler, s.exportHandler, s.reportHandler
	return []route{
		{"GET /healthz", "healthz", s.healthHandler.HandleHealth},
		{"GET /metrics", "metrics", s.healthHandler.HandleMetrics},
		{"GET /stats", "stats", s.statsHandler.HandleStats},

		{"GET /employees", "employees", e.HandleList},
		{"POST /employees", "employees", e.HandleCreate},
		{"GET /employees/{id}", "employee", e.HandleGet},
		{"PATCH /employees/{id}", "employee", e.HandleUpdate},
		{"DELETE /employees/{id}", "employee", e.HandleDelete},
		{"GET /employees/{id}/attrition", "attrition", e.HandleAttrition},
		{"GET /employees/{id}/retention-actions", "retention_actions", e.HandleRetentionActions},
		{"POST /refresh", "refresh", e.HandleStartRefresh},
		{"GET /refresh", "refresh", e.HandleRefreshStatus},

		{"GET /skills", "skills", a.HandleSkills},
		{"GET /teams", "teams", a.HandleTeams},
		{"GET /trends", "trends", a.HandleTrends},
		{"GET /dashboard/summary", "dashboard_summary", s.dashboardHandler.HandleSummary},
		{"POST /decision", "decision", a.HandleDecision},
		{"GET /lifecycle", "lifecycle", a.HandleLifecycle},
		{"POST /lifecycle/tradeoff", "lifecycle_tradeoff", a.HandleTradeoff},
		{"POST /simulations/hiring-capacity", "hiring_capacity", a.HandleHiringCapacity},
		{"POST /simulations/time-to-hire", "time_to_hire", a.HandleTimeToHire},
		{"GET /scenarios/presets", "scenario_presets", a.HandleScenarioPresets},
		{"POST /scenarios", "scenarios", a.HandleScenario},
		{"GET /knowledge-risk", "knowledge_risk", a.HandleKnowledgeRisk},

		{"GET /export/csv", "export_csv", x.HandleCSV},
		{"GET /export/print", "export_print", x.HandlePrint},

		{"POST /reports/export", "reports_export", rp.HandleEnqueue},
		{"GET /reports/jobs/{id}", "report_job", rp.HandleJobStatus},
		{"GET /reports/schedule", "reports_schedule", rp.HandleListSchedules},
		{"POST /reports/schedule", "reports_schedule", rp.HandleAddSchedule},
		{"DELETE /reports/schedule/{id}", "reports_schedule", rp.HandleRemoveSchedule},
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	for _, rt := range s.routes() {
		mux.HandleFunc(rt.pattern, MetricsMiddleware(rt.handler, rt.endpoint))
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v before touching the response so an unencodable value
// turns into a logged 500 instead of a success status with an empty body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err != nil {
		logger.Named("api").Error(context.Background(), "encode response",
			logger.Int("status", status),
			logger.Error(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(encodeFailureBody)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

var encodeFailureBody = []byte(`{"code":"internal_error","message":"response could not be encoded"}` + "\n")

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// classify maps service errors to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrReportNotFound),
		errors.Is(err, scheduler.ErrScheduleNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, service.ErrInvalidEmployee),
		errors.Is(err, service.ErrInvalidFormat),
		errors.Is(err, scoring.ErrInvalidSimulation),
		errors.Is(err, scoring.ErrUnknownPreset),
		errors.Is(err, scoring.ErrUnknownSkill),
		errors.Is(err, scheduler.ErrInvalidSchedule):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, repository.ErrRefreshInProgress):
		return http.StatusConflict, "refresh_in_progress"
	case errors.Is(err, ErrBackpressure):
		return http.StatusTooManyRequests, "backpressure"
	case errors.Is(err, service.ErrSchedulingDisabled),
		errors.Is(err, service.ErrReportsDisabled):
		return http.StatusNotImplemented, "not_implemented"
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// writeServiceError classifies err, logs server-side failures and writes the response.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		logger.Named("api").Error(r.Context(), "request failed",
			logger.String("op", op),
			logger.String("path", r.URL.Path),
			logger.Error(err),
		)
	}
	if errors.Is(err, service.ErrSchedulingDisabled) {
		writeJSON(w, status, errorResponse{Code: code, Message: service.SchedulingNotice})
		return
	}
	writeError(w, status, code, err)
}
