package scoring

import (
	"fmt"
	"slices"

	"github.com/okian/talentiq/internal/domain/model"
)

// RiskFactor is one itemised contributor to an employee's attrition risk.
type RiskFactor struct {
	Factor     string `json:"factor"`
	Impact     int    `json:"impact"`
	Suggestion string `json:"suggestion"`
}

// AttritionAnalysis is the output of CalculateAttritionRisk.
// RiskScore is the employee's stored score; it is not recomputed from Factors.
type AttritionAnalysis struct {
	RiskScore int          `json:"risk_score"`
	Factors   []RiskFactor `json:"factors"`
}

// CalculateAttritionRisk lists the sub-factors that cross their thresholds,
// highest impact first.
func CalculateAttritionRisk(e model.Employee) AttritionAnalysis {
	factors := make([]RiskFactor, 0, 5)

	if v := e.CompensationPercentile; v < 60 {
		factors = append(factors, RiskFactor{
			Factor:     "Below-market compensation",
			Impact:     Round(float64(60-v) * 0.8),
			Suggestion: fmt.Sprintf("Consider salary adjustment to %dth percentile", min(80, v+15)),
		})
	}
	if v := e.WorkloadStress; v > 70 {
		factors = append(factors, RiskFactor{
			Factor:     "High workload stress",
			Impact:     Round(float64(v-70) * 0.7),
			Suggestion: "Redistribute workload and consider additional team support",
		})
	}
	if v := e.LearningOpportunities; v < 50 {
		factors = append(factors, RiskFactor{
			Factor:     "Limited learning opportunities",
			Impact:     Round(float64(50-v) * 0.5),
			Suggestion: "Assign stretch projects and provide training budget",
		})
	}
	if v := e.CareerProgression; v < 50 {
		factors = append(factors, RiskFactor{
			Factor:     "Unclear career path",
			Impact:     Round(float64(50-v) * 0.6),
			Suggestion: "Create clear promotion roadmap with mentorship program",
		})
	}
	if v := e.OfferExposure; v > 70 {
		factors = append(factors, RiskFactor{
			Factor:     "High external offer exposure",
			Impact:     Round(float64(v-70) * 0.9),
			Suggestion: "Proactive retention package with equity refresh",
		})
	}

	slices.SortStableFunc(factors, func(a, b RiskFactor) int { return b.Impact - a.Impact })
	return AttritionAnalysis{RiskScore: e.AttritionRisk, Factors: factors}
}

// SubFactors are the five inputs of the creation-time risk formula.
type SubFactors struct {
	CompensationPercentile int `json:"compensation_percentile"`
	WorkloadStress         int `json:"workload_stress"`
	LearningOpportunities  int `json:"learning_opportunities"`
	CareerProgression      int `json:"career_progression"`
	OfferExposure          int `json:"offer_exposure"`
}

// SubFactorsOf extracts the sub-factor scores of e.
func SubFactorsOf(e model.Employee) SubFactors {
	return SubFactors{
		CompensationPercentile: e.CompensationPercentile,
		WorkloadStress:         e.WorkloadStress,
		LearningOpportunities:  e.LearningOpportunities,
		CareerProgression:      e.CareerProgression,
		OfferExposure:          e.OfferExposure,
	}
}

// CreationRisk derives the stored attrition risk of a new employee.
func CreationRisk(f SubFactors) int {
	v := 0.25*float64(100-f.CompensationPercentile) +
		0.20*float64(f.WorkloadStress) +
		0.15*float64(100-f.LearningOpportunities) +
		0.20*float64(100-f.CareerProgression) +
		0.20*float64(f.OfferExposure)
	return clampInt(Round(v), 0, 100)
}

// RetentionActions returns the suggested actions for e in fixed rule order.
func RetentionActions(e model.Employee) []string {
	actions := make([]string, 0, 6)
	if e.CompensationPercentile < 70 {
		actions = append(actions, "Salary adjustment to competitive market rate")
	}
	if e.LearningOpportunities < 60 {
		actions = append(actions, "Skill growth path with dedicated training allocation")
	}
	if e.CareerProgression < 60 {
		actions = append(actions, "Internal mobility opportunity mapping")
	}
	if e.WorkloadStress > 65 {
		actions = append(actions, "Workload rebalancing and support resources")
	}
	if e.IsKeyPerson {
		actions = append(actions,
			"Executive mentorship and strategic project involvement",
			"Reduced dependency planning with knowledge transfer",
		)
	}
	return actions
}
