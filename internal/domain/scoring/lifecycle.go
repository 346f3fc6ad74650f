package scoring

import (
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/types"
)

// Stage is a step of the talent lifecycle pipeline.
type Stage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LifecycleStages is the pipeline in order.
var LifecycleStages = []Stage{
	{ID: "demand", Name: "Demand Forecast"},
	{ID: "hiring", Name: "Hiring"},
	{ID: "development", Name: "Skill Development"},
	{ID: "contribution", Name: "Project Contribution"},
	{ID: "retention", Name: "Retention"},
	{ID: "knowledge", Name: "Knowledge Transfer"},
}

// Simulated organisation-wide inputs that are not derived from the roster.
const (
	simulatedExternalHiringReliance    = 55
	simulatedInternalGrowthRate        = 42
	simulatedDocumentationCompleteness = 62
	simulatedKnowledgeSharingFrequency = 48
	simulatedExpertDependencyReduction = 35
)

// StabilityFactors feed CapabilityStability. All values are 0-100.
type StabilityFactors struct {
	ExternalHiringReliance int `json:"external_hiring_reliance"`
	InternalGrowthRate     int `json:"internal_growth_rate"`
	CriticalAttritionTrend int `json:"critical_attrition_trend"`
	KnowledgeRedundancy    int `json:"knowledge_redundancy"`
	ExpertiseConcentration int `json:"expertise_concentration"`
}

// ContinuityMetrics feed KnowledgeContinuity. All values are 0-100.
type ContinuityMetrics struct {
	DocumentationCompleteness int `json:"documentation_completeness"`
	SkillBackupCoverage       int `json:"skill_backup_coverage"`
	KnowledgeSharingFrequency int `json:"knowledge_sharing_frequency"`
	ExpertDependencyReduction int `json:"expert_dependency_reduction"`
}

// LifecycleMetrics are both input groups as derived from a roster.
type LifecycleMetrics struct {
	StabilityFactors
	ContinuityMetrics
}

// Rating is a rounded score with its qualitative label.
type Rating struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// CapabilityStability rates how stable the organisation's capabilities are.
func CapabilityStability(f StabilityFactors) Rating {
	score := Round(0.20*float64(100-f.ExternalHiringReliance) +
		0.25*float64(f.InternalGrowthRate) +
		0.20*float64(100-f.CriticalAttritionTrend) +
		0.20*float64(f.KnowledgeRedundancy) +
		0.15*float64(100-f.ExpertiseConcentration))

	level := "Low Stability"
	switch {
	case score >= 70:
		level = "High Stability"
	case score >= 45:
		level = "Moderate Stability"
	}
	return Rating{Score: score, Level: level}
}

// KnowledgeContinuity rates how well knowledge survives departures.
func KnowledgeContinuity(m ContinuityMetrics) Rating {
	score := Round(0.25*float64(m.DocumentationCompleteness) +
		0.30*float64(m.SkillBackupCoverage) +
		0.25*float64(m.KnowledgeSharingFrequency) +
		0.20*float64(m.ExpertDependencyReduction))

	level := "Critical"
	switch {
	case score >= 75:
		level = "Excellent"
	case score >= 55:
		level = "Good"
	case score >= 35:
		level = "Needs Improvement"
	}
	return Rating{Score: score, Level: level}
}

// OrganizationalResilience averages the two ratings.
func OrganizationalResilience(stability, continuity Rating) int {
	return Round(float64(stability.Score+continuity.Score) / 2)
}

// DetectBottlenecks returns the ids of the pipeline stages under strain.
func DetectBottlenecks(f StabilityFactors) []string {
	out := make([]string, 0, 4)
	if f.ExternalHiringReliance > 60 {
		out = append(out, "hiring")
	}
	if f.InternalGrowthRate < 40 {
		out = append(out, "development")
	}
	if f.CriticalAttritionTrend > 30 {
		out = append(out, "retention")
	}
	if f.KnowledgeRedundancy < 50 {
		out = append(out, "knowledge")
	}
	return out
}

// DeriveLifecycleMetrics computes the lifecycle inputs from the roster and teams.
// Hiring reliance, growth, documentation, sharing and dependency reduction are
// simulated constants.
func DeriveLifecycleMetrics(employees []model.Employee, teams []model.Team) LifecycleMetrics {
	var critical, criticalAtRisk, keyPersons int
	for _, e := range employees {
		if e.Criticality == types.CriticalityCritical {
			critical++
			if e.AttritionRisk > 60 {
				criticalAtRisk++
			}
		}
		if e.IsKeyPerson {
			keyPersons++
		}
	}

	avgBackup := 0.0
	if len(teams) > 0 {
		sum := 0
		for _, t := range teams {
			sum += t.BackupCoverage
		}
		avgBackup = float64(sum) / float64(len(teams))
	}

	trend := float64(criticalAtRisk) / float64(max(critical, 1)) * 100
	concentration := float64(keyPersons) / float64(max(len(employees), 1)) * 100

	return LifecycleMetrics{
		StabilityFactors: StabilityFactors{
			ExternalHiringReliance: simulatedExternalHiringReliance,
			InternalGrowthRate:     simulatedInternalGrowthRate,
			CriticalAttritionTrend: Round(trend),
			KnowledgeRedundancy:    Round(avgBackup),
			ExpertiseConcentration: Round(concentration),
		},
		ContinuityMetrics: ContinuityMetrics{
			DocumentationCompleteness: simulatedDocumentationCompleteness,
			SkillBackupCoverage:       Round(avgBackup),
			KnowledgeSharingFrequency: simulatedKnowledgeSharingFrequency,
			ExpertDependencyReduction: simulatedExpertDependencyReduction,
		},
	}
}

// TradeoffSettings are the four investment sliders, each 0-100.
type TradeoffSettings struct {
	ExternalHiring      float64 `json:"external_hiring"`
	Upskilling          float64 `json:"upskilling"`
	KnowledgeTransfer   float64 `json:"knowledge_transfer"`
	DependencyReduction float64 `json:"dependency_reduction"`
}

// DefaultTradeoffSettings is the initial slider position.
func DefaultTradeoffSettings() TradeoffSettings {
	return TradeoffSettings{ExternalHiring: 60, Upskilling: 40, KnowledgeTransfer: 35, DependencyReduction: 30}
}

// TradeoffResult is the projected effect of a set of TradeoffSettings.
type TradeoffResult struct {
	CostImpact           int `json:"cost_impact"`
	TimelineImpact       int `json:"timeline_impact"`
	SustainabilityImpact int `json:"sustainability_impact"`
	StabilityChange      int `json:"stability_change"`
}

// EvaluateTradeoff projects cost, timeline, sustainability and stability deltas.
func EvaluateTradeoff(s TradeoffSettings) TradeoffResult {
	return TradeoffResult{
		CostImpact:           Round(s.ExternalHiring*0.4 - s.Upskilling*0.1 - s.DependencyReduction*0.05),
		TimelineImpact:       Round(s.Upskilling*0.15 + s.KnowledgeTransfer*0.1 - s.ExternalHiring*0.08),
		SustainabilityImpact: Round(s.Upskilling*0.3 + s.KnowledgeTransfer*0.25 + s.DependencyReduction*0.2 - s.ExternalHiring*0.15),
		StabilityChange:      Round(s.Upskilling*0.15 + s.KnowledgeTransfer*0.12 + s.DependencyReduction*0.1 - s.ExternalHiring*0.08),
	}
}

// Impact describes how one lever moves another part of the system.
type Impact struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Effect    string `json:"effect"`
	Direction string `json:"direction"` // "up" or "down"
}

// CrossModuleImpacts lists the knock-on effects of the slider positions.
func CrossModuleImpacts(s TradeoffSettings) []Impact {
	var out []Impact
	if s.ExternalHiring > 50 {
		out = append(out,
			Impact{Source: "High Hiring", Target: "Cost", Effect: "Recruitment costs increase", Direction: "up"},
			Impact{Source: "High Hiring", Target: "Dependency", Effect: "External talent dependency rises", Direction: "up"},
		)
	}
	if s.Upskilling > 50 {
		out = append(out,
			Impact{Source: "Upskilling", Target: "Timeline", Effect: "Capability development extends", Direction: "up"},
			Impact{Source: "Upskilling", Target: "Sustainability", Effect: "Long-term capability improves", Direction: "up"},
		)
	}
	if s.KnowledgeTransfer > 40 {
		out = append(out, Impact{Source: "Knowledge Transfer", Target: "Resilience",
			Effect: "Single-point-of-failure risk decreases", Direction: "down"})
	}
	if s.DependencyReduction > 40 {
		out = append(out, Impact{Source: "Dependency Reduction", Target: "Stability",
			Effect: "Capability stability strengthens", Direction: "up"})
	}
	if len(out) == 0 {
		out = append(out, Impact{Source: "Baseline", Target: "All Systems",
			Effect: "Operating at default parameters", Direction: "up"})
	}
	return out
}

// RandomSource yields floats in [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// ResilienceMonths is the length of the resilience projection.
const ResilienceMonths = 12

// ResilienceTrend projects the stability score month by month with ±2 jitter.
func ResilienceTrend(base, stabilityChange int, rnd RandomSource) []int {
	out := make([]int, ResilienceMonths)
	monthly := float64(stabilityChange) / ResilienceMonths
	for i := range out {
		v := float64(base) + monthly*float64(i+1) + (rnd.Float64()*4 - 2)
		out[i] = clampInt(Round(v), 0, 100)
	}
	return out
}

// LifecycleReport bundles everything the lifecycle view shows.
type LifecycleReport struct {
	Metrics         LifecycleMetrics `json:"metrics"`
	Stability       Rating           `json:"capability_stability"`
	Continuity      Rating           `json:"knowledge_continuity"`
	Resilience      int              `json:"organizational_resilience"`
	Bottlenecks     []string         `json:"bottlenecks"`
	Stages          []Stage          `json:"stages"`
	Tradeoff        TradeoffSettings `json:"tradeoff_settings"`
	Result          TradeoffResult   `json:"tradeoff_result"`
	Impacts         []Impact         `json:"cross_module_impacts"`
	ResilienceTrend []int            `json:"resilience_trend"`
}

// Lifecycle computes the full lifecycle report for a roster and slider settings.
func Lifecycle(employees []model.Employee, teams []model.Team, s TradeoffSettings, rnd RandomSource) LifecycleReport {
	m := DeriveLifecycleMetrics(employees, teams)
	stability := CapabilityStability(m.StabilityFactors)
	continuity := KnowledgeContinuity(m.ContinuityMetrics)
	result := EvaluateTradeoff(s)
	return LifecycleReport{
		Metrics:         m,
		Stability:       stability,
		Continuity:      continuity,
		Resilience:      OrganizationalResilience(stability, continuity),
		Bottlenecks:     DetectBottlenecks(m.StabilityFactors),
		Stages:          LifecycleStages,
		Tradeoff:        s,
		Result:          result,
		Impacts:         CrossModuleImpacts(s),
		ResilienceTrend: ResilienceTrend(stability.Score, result.StabilityChange, rnd),
	}
}
