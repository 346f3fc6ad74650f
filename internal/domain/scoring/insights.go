package scoring

import (
	"slices"

	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/types"
)

// highRiskAttrition is the attrition score above which an employee is flagged.
const highRiskAttrition = 50

// highConcentration is the knowledge concentration at which a team is flagged.
const highConcentration = 70

// TeamRiskLevel maps a knowledge concentration score to a risk tier.
func TeamRiskLevel(concentration int) types.RiskLevel {
	switch {
	case concentration >= 80:
		return types.RiskLevelCritical
	case concentration >= 60:
		return types.RiskLevelHigh
	case concentration >= 40:
		return types.RiskLevelMedium
	}
	return types.RiskLevelLow
}

// TeamRisk is one cell of the knowledge concentration heatmap.
type TeamRisk struct {
	TeamID                 string          `json:"team_id"`
	Name                   string          `json:"name"`
	KnowledgeConcentration int             `json:"knowledge_concentration"`
	BackupCoverage         int             `json:"backup_coverage"`
	RiskLevel              types.RiskLevel `json:"risk_level"`
	Members                int             `json:"members"`
	KeyPersons             int             `json:"key_persons"`
	CriticalSkills         []string        `json:"critical_skills"`
}

// KnowledgeRisk summarises single points of failure across teams.
type KnowledgeRisk struct {
	Teams                []TeamRisk `json:"teams"`
	SinglePointFailures  []string   `json:"single_point_failures"` // employee ids
	HighRiskTeams        []string   `json:"high_risk_teams"`       // team ids
	AverageConcentration int        `json:"average_concentration"`
	AverageBackup        int        `json:"average_backup"`
}

// KnowledgeRiskSummary resolves team membership against the roster.
// Member ids with no matching employee are ignored.
func KnowledgeRiskSummary(employees []model.Employee, teams []model.Team) KnowledgeRisk {
	byID := make(map[string]model.Employee, len(employees))
	out := KnowledgeRisk{Teams: make([]TeamRisk, 0, len(teams))}
	for _, e := range employees {
		byID[e.ID] = e
		if e.IsKeyPerson {
			out.SinglePointFailures = append(out.SinglePointFailures, e.ID)
		}
	}

	var sumConc, sumBackup int
	for _, t := range teams {
		members, keys := 0, 0
		for _, id := range t.Members {
			e, ok := byID[id]
			if !ok {
				continue
			}
			members++
			if e.IsKeyPerson {
				keys++
			}
		}
		out.Teams = append(out.Teams, TeamRisk{
			TeamID:                 t.ID,
			Name:                   t.Name,
			KnowledgeConcentration: t.KnowledgeConcentration,
			BackupCoverage:         t.BackupCoverage,
			RiskLevel:              TeamRiskLevel(t.KnowledgeConcentration),
			Members:                members,
			KeyPersons:             keys,
			CriticalSkills:         slices.Clone(t.CriticalSkills),
		})
		if t.KnowledgeConcentration >= highConcentration {
			out.HighRiskTeams = append(out.HighRiskTeams, t.ID)
		}
		sumConc += t.KnowledgeConcentration
		sumBackup += t.BackupCoverage
	}
	if n := len(teams); n > 0 {
		out.AverageConcentration = Round(float64(sumConc) / float64(n))
		out.AverageBackup = Round(float64(sumBackup) / float64(n))
	}
	return out
}

// RiskBar is one bar of the attrition risk chart.
type RiskBar struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Risk       int    `json:"risk"`
	IsCritical bool   `json:"is_critical"`
}

// RosterSummary is the headline view of the current roster.
type RosterSummary struct {
	Total            int       `json:"total"`
	HighRisk         int       `json:"high_risk"`
	Critical         int       `json:"critical"`
	KeyPersons       int       `json:"key_persons"`
	AverageAttrition int       `json:"average_attrition"`
	RiskChart        []RiskBar `json:"risk_chart"`
}

// Summarize counts the roster and orders it by attrition risk, highest first.
func Summarize(employees []model.Employee) RosterSummary {
	s := RosterSummary{Total: len(employees), RiskChart: make([]RiskBar, 0, len(employees))}
	sum := 0
	for _, e := range employees {
		sum += e.AttritionRisk
		if e.AttritionRisk > highRiskAttrition {
			s.HighRisk++
		}
		if e.Criticality == types.CriticalityCritical {
			s.Critical++
		}
		if e.IsKeyPerson {
			s.KeyPersons++
		}
		s.RiskChart = append(s.RiskChart, RiskBar{
			ID: e.ID, Name: e.Name, Risk: e.AttritionRisk, IsCritical: e.Criticality == types.CriticalityCritical,
		})
	}
	if s.Total > 0 {
		s.AverageAttrition = Round(float64(sum) / float64(s.Total))
	}
	slices.SortStableFunc(s.RiskChart, func(a, b RiskBar) int { return b.Risk - a.Risk })
	return s
}
