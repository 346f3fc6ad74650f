package model

import (
	"slices"

	"github.com/okian/talentiq/internal/domain/types"
)

// SkillGap is immutable reference data describing one scarce skill.
type SkillGap struct {
	Skill            string         `json:"skill" yaml:"skill"`
	CurrentCapacity  int            `json:"current_capacity" yaml:"current_capacity"`
	RequiredCapacity int            `json:"required_capacity" yaml:"required_capacity"`
	GapPercentage    float64        `json:"gap_percentage" yaml:"gap_percentage"`
	MarketScarcity   types.Scarcity `json:"market_scarcity" yaml:"market_scarcity"`
	AvgHiringTime    float64        `json:"avg_hiring_time" yaml:"avg_hiring_time"` // weeks
	AvgSalary        float64        `json:"avg_salary" yaml:"avg_salary"`
	TrainingCost     float64        `json:"training_cost" yaml:"training_cost"`
	TrainingTime     float64        `json:"training_time" yaml:"training_time"` // weeks
}

// Team is reference data. Members are weak references to employee ids.
type Team struct {
	ID                     string   `json:"id" yaml:"id"`
	Name                   string   `json:"name" yaml:"name"`
	Members                []string `json:"members" yaml:"members"`
	KnowledgeConcentration int      `json:"knowledge_concentration" yaml:"knowledge_concentration"`
	CriticalSkills         []string `json:"critical_skills" yaml:"critical_skills"`
	BackupCoverage         int      `json:"backup_coverage" yaml:"backup_coverage"`
}

// Clone returns a deep copy of t.
func (t Team) Clone() Team {
	t.Members = slices.Clone(t.Members)
	t.CriticalSkills = slices.Clone(t.CriticalSkills)
	return t
}

// TrendPoint is one month of the dashboard trend chart.
type TrendPoint struct {
	Month      string `json:"month" yaml:"month"`
	TalentRisk int    `json:"talent_risk" yaml:"talent_risk"`
	Capability int    `json:"capability" yaml:"capability"`
	Retention  int    `json:"retention" yaml:"retention"`
}

// CostComparisonRow is one strategy on the static cost comparison chart.
type CostComparisonRow struct {
	Strategy       string  `json:"strategy" yaml:"strategy"`
	Cost           float64 `json:"cost" yaml:"cost"`
	Time           float64 `json:"time" yaml:"time"`
	Risk           float64 `json:"risk" yaml:"risk"`
	Sustainability float64 `json:"sustainability" yaml:"sustainability"`
}

// HiringVsUpskilling is the budget split shown on the dashboard.
type HiringVsUpskilling struct {
	Hiring     int `json:"hiring" yaml:"hiring"`
	Upskilling int `json:"upskilling" yaml:"upskilling"`
}

// DashboardMetrics is the headline KPI block.
type DashboardMetrics struct {
	TalentRiskIndex          int                `json:"talent_risk_index" yaml:"talent_risk_index"`
	CapabilityReadinessScore int                `json:"capability_readiness_score" yaml:"capability_readiness_score"`
	HiringVsUpskilling       HiringVsUpskilling `json:"hiring_vs_upskilling" yaml:"hiring_vs_upskilling"`
	RetentionStability       int                `json:"retention_stability" yaml:"retention_stability"`
	AvgTimeToFill            int                `json:"avg_time_to_fill" yaml:"avg_time_to_fill"`
	CriticalRolesOpen        int                `json:"critical_roles_open" yaml:"critical_roles_open"`
	AtRiskEmployees          int                `json:"at_risk_employees" yaml:"at_risk_employees"`
	BudgetUtilization        int                `json:"budget_utilization" yaml:"budget_utilization"`
}
