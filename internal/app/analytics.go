package service

import (
	"context"
	"io"
	"slices"
	"time"

	"github.com/okian/talentiq/internal/adapters/export"
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/scoring"
	"github.com/okian/talentiq/pkg/logger"
	"github.com/okian/talentiq/pkg/metrics"
)

// DashboardSummary is the executive dashboard payload.
type DashboardSummary struct {
	Metrics        model.DashboardMetrics    `json:"metrics"`
	Roster         scoring.RosterSummary     `json:"roster"`
	Trends         []model.TrendPoint        `json:"trends"`
	CostComparison []model.CostComparisonRow `json:"cost_comparison"`
}

// TradeoffView is the outcome of moving the lifecycle sliders.
type TradeoffView struct {
	Settings scoring.TradeoffSettings `json:"settings"`
	Result   scoring.TradeoffResult   `json:"result"`
	Impacts  []scoring.Impact         `json:"impacts"`
}

// SkillGaps returns the reference skill gaps.
func (s *Service) SkillGaps() []model.SkillGap {
	return s.engine.SkillGaps()
}

// Teams returns the reference teams.
func (s *Service) Teams() []model.Team {
	return s.dataset.TeamsCopy()
}

// Trends returns the monthly trend series.
func (s *Service) Trends() []model.TrendPoint {
	return slices.Clone(s.dataset.Trends)
}

// DashboardSummary combines the static KPI block with live roster figures.
func (s *Service) DashboardSummary(ctx context.Context) DashboardSummary {
	return DashboardSummary{
		Metrics:        *s.dataset.Dashboard,
		Roster:         scoring.Summarize(s.store.List(ctx)),
		Trends:         slices.Clone(s.dataset.Trends),
		CostComparison: slices.Clone(s.dataset.CostComparison),
	}
}

// Decide recommends a capability strategy for in.
func (s *Service) Decide(ctx context.Context, in scoring.DecisionInputs) (scoring.DecisionOutput, error) {
	start := time.Now()
	out, err := s.engine.Decide(ctx, in)
	if err != nil {
		metrics.RecordErrorByComponent("decision", "failed")
		return scoring.DecisionOutput{}, err
	}
	metrics.RecordFormulaLatency("decision", float64(time.Since(start).Milliseconds()))
	metrics.RecordDecision(string(out.RecommendedStrategy), out.SkillFellBack)
	if out.SkillFellBack {
		s.logger.Warn(ctx, "unknown skill, using first skill gap",
			logger.String("requested", in.Skill),
			logger.String("used", out.SkillUsed),
		)
	}
	return out, nil
}

// Lifecycle computes the lifecycle view for the current roster. Nil settings
// use the default slider positions.
func (s *Service) Lifecycle(ctx context.Context, settings *scoring.TradeoffSettings) scoring.LifecycleReport {
	ts := scoring.DefaultTradeoffSettings()
	if settings != nil {
		ts = *settings
	}
	return scoring.Lifecycle(s.store.List(ctx), s.dataset.TeamsCopy(), ts, s.rnd)
}

// Tradeoff evaluates a set of slider positions.
func (s *Service) Tradeoff(settings scoring.TradeoffSettings) TradeoffView {
	return TradeoffView{
		Settings: settings,
		Result:   scoring.EvaluateTradeoff(settings),
		Impacts:  scoring.CrossModuleImpacts(settings),
	}
}

// HiringCapacity runs the recruiter capacity simulator.
func (s *Service) HiringCapacity(ctx context.Context, in scoring.HiringCapacityInputs) (scoring.HiringCapacityResult, error) {
	start := time.Now()
	out, err := s.engine.HiringCapacity(ctx, in)
	if err != nil {
		return scoring.HiringCapacityResult{}, err
	}
	metrics.RecordSimulation("hiring_capacity")
	metrics.RecordFormulaLatency("hiring_capacity", float64(time.Since(start).Milliseconds()))
	return out, nil
}

// TimeToHire runs the time-to-hire inflation simulator.
func (s *Service) TimeToHire(ctx context.Context, in scoring.TimeToHireInputs) (scoring.TimeToHireResult, error) {
	start := time.Now()
	out, err := s.engine.TimeToHire(ctx, in)
	if err != nil {
		return scoring.TimeToHireResult{}, err
	}
	metrics.RecordSimulation("time_to_hire")
	metrics.RecordFormulaLatency("time_to_hire", float64(time.Since(start).Milliseconds()))
	return out, nil
}

// Scenario projects a named preset or, when preset is empty, params.
// Nil params with no preset use the default lever positions.
func (s *Service) Scenario(ctx context.Context, preset string, params *scoring.ScenarioParams) (scoring.ScenarioResult, error) {
	p := scoring.DefaultScenarioParams()
	switch {
	case preset != "":
		found, err := scoring.FindPreset(preset)
		if err != nil {
			return scoring.ScenarioResult{}, err
		}
		p = found.Params
	case params != nil:
		p = *params
	}
	start := time.Now()
	out, err := s.engine.Scenario(ctx, p)
	if err != nil {
		return scoring.ScenarioResult{}, err
	}
	metrics.RecordSimulation("scenario")
	metrics.RecordFormulaLatency("scenario", float64(time.Since(start).Milliseconds()))
	return out, nil
}

// ScenarioPresets lists the built-in scenario presets.
func (s *Service) ScenarioPresets() []scoring.ScenarioPreset {
	return scoring.ScenarioPresets()
}

// KnowledgeRisk summarises knowledge concentration across teams.
func (s *Service) KnowledgeRisk(ctx context.Context) scoring.KnowledgeRisk {
	return scoring.KnowledgeRiskSummary(s.store.List(ctx), s.dataset.TeamsCopy())
}

// ExportCSV writes the current roster as CSV and returns the suggested file name.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) (string, error) {
	name := export.FileName(time.Now(), "csv")
	if err := export.WriteCSV(w, s.store.List(ctx)); err != nil {
		return "", err
	}
	return name, nil
}

// PrintableReport snapshots the roster for the print view and report files.
// It must not take s.mu: report workers call it while Stop waits on them.
func (s *Service) PrintableReport(ctx context.Context) export.PrintableReport {
	employees := s.store.List(ctx)
	m := scoring.DeriveLifecycleMetrics(employees, s.dataset.Teams)
	stability := scoring.CapabilityStability(m.StabilityFactors)
	continuity := scoring.KnowledgeContinuity(m.ContinuityMetrics)
	return export.PrintableReport{
		GeneratedAt:   time.Now(),
		Summary:       scoring.Summarize(employees),
		Employees:     employees,
		KnowledgeRisk: scoring.KnowledgeRiskSummary(employees, s.dataset.Teams),
		Stability:     stability,
		Continuity:    continuity,
		Resilience:    scoring.OrganizationalResilience(stability, continuity),
	}
}
