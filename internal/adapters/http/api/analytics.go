package api

import (
	"net/http"

	"github.com/okian/talentiq/internal/domain/scoring"
	"github.com/okian/talentiq/internal/domain/types"
)

// AnalyticsHandler handles reference data and formula requests.
type AnalyticsHandler struct {
	deps AnalyticsDependencies
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(deps AnalyticsDependencies) *AnalyticsHandler {
	return &AnalyticsHandler{deps: deps}
}

type scenarioRequest struct {
	Preset string                  `json:"preset"`
	Params *scoring.ScenarioParams `json:"params"`
}

// HandleSkills handles GET /skills requests.
func (h *AnalyticsHandler) HandleSkills(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.SkillGaps())
}

// HandleTeams handles GET /teams requests.
func (h *AnalyticsHandler) HandleTeams(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Teams())
}

// HandleTrends handles GET /trends requests.
func (h *AnalyticsHandler) HandleTrends(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Trends())
}

// HandleDecision handles POST /decision requests.
func (h *AnalyticsHandler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	const op = "api.decision"
	var in scoring.DecisionInputs
	if err := decodeJSON(w, r, &in, false); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	in.Urgency = types.Urgency(types.Normalize(string(in.Urgency)))
	in.RiskTolerance = types.RiskTolerance(types.Normalize(string(in.RiskTolerance)))
	out, err := h.deps.Decide(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleLifecycle handles GET /lifecycle requests. The optional query parameters
// external_hiring, upskilling, knowledge_transfer and dependency_reduction move the sliders.
func (h *AnalyticsHandler) HandleLifecycle(w http.ResponseWriter, r *http.Request) {
	const op = "api.lifecycle"
	s := scoring.DefaultTradeoffSettings()
	for key, dst := range map[string]*float64{
		"external_hiring":      &s.ExternalHiring,
		"upskilling":           &s.Upskilling,
		"knowledge_transfer":   &s.KnowledgeTransfer,
		"dependency_reduction": &s.DependencyReduction,
	} {
		if err := queryFloat(r, key, dst); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
	}
	writeJSON(w, http.StatusOK, h.deps.Lifecycle(r.Context(), &s))
}

// HandleTradeoff handles POST /lifecycle/tradeoff requests.
// Omitted sliders keep their default positions.
func (h *AnalyticsHandler) HandleTradeoff(w http.ResponseWriter, r *http.Request) {
	const op = "api.lifecycle_tradeoff"
	s := scoring.DefaultTradeoffSettings()
	if err := decodeJSON(w, r, &s, true); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	for _, v := range []float64{s.ExternalHiring, s.Upskilling, s.KnowledgeTransfer, s.DependencyReduction} {
		if v < 0 || v > 100 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
	}
	writeJSON(w, http.StatusOK, h.deps.Tradeoff(s))
}

// HandleHiringCapacity handles POST /simulations/hiring-capacity requests.
// Omitted fields keep the simulator defaults.
func (h *AnalyticsHandler) HandleHiringCapacity(w http.ResponseWriter, r *http.Request) {
	const op = "api.hiring_capacity"
	in := scoring.DefaultHiringCapacityInputs()
	if err := decodeJSON(w, r, &in, true); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	out, err := h.deps.HiringCapacity(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleTimeToHire handles POST /simulations/time-to-hire requests.
// Omitted fields keep the simulator defaults.
func (h *AnalyticsHandler) HandleTimeToHire(w http.ResponseWriter, r *http.Request) {
	const op = "api.time_to_hire"
	in := scoring.DefaultTimeToHireInputs()
	if err := decodeJSON(w, r, &in, true); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	out, err := h.deps.TimeToHire(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleScenarioPresets handles GET /scenarios/presets requests.
func (h *AnalyticsHandler) HandleScenarioPresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.ScenarioPresets())
}

// HandleScenario handles POST /scenarios requests. A preset name wins over params.
func (h *AnalyticsHandler) HandleScenario(w http.ResponseWriter, r *http.Request) {
	const op = "api.scenario"
	var req scenarioRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	out, err := h.deps.Scenario(r.Context(), req.Preset, req.Params)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleKnowledgeRisk handles GET /knowledge-risk requests.
func (h *AnalyticsHandler) HandleKnowledgeRisk(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.KnowledgeRisk(r.Context()))
}
