package api

import (
	"net/http"
	"strings"

	service "github.com/okian/talentiq/internal/app"
	"github.com/okian/talentiq/internal/domain/model"
)

// IdempotencyKeyHeader lets clients retry an add-employee submission safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// replayHeader is set on responses that return a previously created employee.
const replayHeader = "Idempotent-Replayed"

// EmployeeHandler handles roster requests.
type EmployeeHandler struct {
	deps EmployeeDependencies
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(deps EmployeeDependencies) *EmployeeHandler {
	return &EmployeeHandler{deps: deps}
}

type refreshResponse struct {
	Refreshing bool `json:"refreshing"`
}

// HandleList handles GET /employees requests.
func (h *EmployeeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.ListEmployees(r.Context()))
}

// HandleCreate handles POST /employees requests.
func (h *EmployeeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_employee"
	var req service.NewEmployee
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
	e, replay, err := h.deps.AddEmployee(r.Context(), req, key)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	if replay {
		w.Header().Set(replayHeader, "true")
		writeJSON(w, http.StatusOK, e)
		return
	}
	w.Header().Set("Location", "/employees/"+e.ID)
	writeJSON(w, http.StatusCreated, e)
}

// HandleGet handles GET /employees/{id} requests.
func (h *EmployeeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.deps.GetEmployee(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "api.get_employee", err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// HandleUpdate handles PATCH /employees/{id} requests.
func (h *EmployeeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "api.update_employee"
	var patch model.EmployeePatch
	if err := decodeJSON(w, r, &patch, false); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	e, err := h.deps.UpdateEmployee(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// HandleDelete handles DELETE /employees/{id} requests.
// Deleting an unknown id succeeds without effect.
func (h *EmployeeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.deps.RemoveEmployee(r.Context(), r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// HandleAttrition handles GET /employees/{id}/attrition requests.
func (h *EmployeeHandler) HandleAttrition(w http.ResponseWriter, r *http.Request) {
	a, err := h.deps.AttritionAnalysis(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "api.attrition", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// HandleRetentionActions handles GET /employees/{id}/retention-actions requests.
func (h *EmployeeHandler) HandleRetentionActions(w http.ResponseWriter, r *http.Request) {
	actions, err := h.deps.RetentionActions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "api.retention_actions", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"actions": actions})
}

// HandleStartRefresh handles POST /refresh requests.
func (h *EmployeeHandler) HandleStartRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.StartRefresh(r.Context()); err != nil {
		writeServiceError(w, r, "api.refresh", err)
		return
	}
	writeJSON(w, http.StatusAccepted, refreshResponse{Refreshing: true})
}

// HandleRefreshStatus handles GET /refresh requests.
func (h *EmployeeHandler) HandleRefreshStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, refreshResponse{Refreshing: h.deps.IsRefreshing()})
}
