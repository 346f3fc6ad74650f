package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a named scenario preset does not exist.
var ErrUnknownPreset = errors.New("unknown scenario preset")

const (
	scenarioFirstYear      = 2026
	scenarioLastYear       = 2030
	startingCapability     = 54
	startingRisk           = 68
	startingSustainability = 40
	contractorUnitCost     = 2400
)

// ScenarioParams are the five levers of the five-year projection.
type ScenarioParams struct {
	HiringBudget       float64 `json:"hiring_budget"`
	TrainingInvestment float64 `json:"training_investment"`
	ContractorUsage    float64 `json:"contractor_usage"` // percent
	AIAdoption         float64 `json:"ai_adoption"`      // percent
	AttritionRate      float64 `json:"attrition_rate"`   // percent
}

// DefaultScenarioParams are the starting lever positions.
func DefaultScenarioParams() ScenarioParams {
	return ScenarioParams{HiringBudget: 500000, TrainingInvestment: 150000, ContractorUsage: 20, AIAdoption: 30, AttritionRate: 15}
}

// ScenarioYear is one year of a projection. Cost is in thousands.
type ScenarioYear struct {
	Year           int `json:"year"`
	Capability     int `json:"capability"`
	Cost           int `json:"cost"`
	Risk           int `json:"risk"`
	Sustainability int `json:"sustainability"`
}

// ScenarioBaseline is today's position the final year is compared against.
var ScenarioBaseline = ScenarioYear{Capability: startingCapability, Risk: startingRisk, Sustainability: startingSustainability, Cost: 650}

// ProjectScenario projects capability, cost, risk and sustainability for 2026-2030.
// Capability is capped at 100 but has no lower bound; risk and sustainability stay in [10,100].
func ProjectScenario(p ScenarioParams) []ScenarioYear {
	out := make([]ScenarioYear, 0, scenarioLastYear-scenarioFirstYear+1)
	capability := float64(startingCapability)
	baseCost := p.HiringBudget + p.TrainingInvestment + p.ContractorUsage*contractorUnitCost

	hiringImpact := p.HiringBudget / 100000 * 3
	trainingImpact := p.TrainingInvestment / 50000 * 4
	aiImpact := p.AIAdoption / 10 * 2
	attritionImpact := p.AttritionRate * 1.2

	risk := clamp(startingRisk-p.TrainingInvestment/30000-p.AIAdoption/5+p.ContractorUsage*0.3+p.AttritionRate*1.5, 10, 100)
	sustainability := clamp(startingSustainability+p.TrainingInvestment/20000+p.AIAdoption/3-p.ContractorUsage/4-p.AttritionRate*0.5, 10, 100)

	for year := scenarioFirstYear; year <= scenarioLastYear; year++ {
		elapsed := float64(year - scenarioFirstYear)
		capability = min(100, capability+hiringImpact+trainingImpact+aiImpact-attritionImpact+elapsed*2)

		cost := (baseCost*(1+elapsed*0.05) - p.AIAdoption/100*100000 + p.ContractorUsage/100*150000) / 1000

		out = append(out, ScenarioYear{
			Year:           year,
			Capability:     Round(capability),
			Cost:           Round(cost),
			Risk:           Round(risk),
			Sustainability: Round(sustainability),
		})
	}
	return out
}

// ScenarioDelta compares the final projected year with the baseline.
type ScenarioDelta struct {
	Capability     int `json:"capability"`
	Risk           int `json:"risk"`
	Sustainability int `json:"sustainability"`
	Cost           int `json:"cost"`
}

// ScenarioResult is a projection plus its what-if deltas.
type ScenarioResult struct {
	Params ScenarioParams `json:"params"`
	Years  []ScenarioYear `json:"years"`
	Delta  ScenarioDelta  `json:"delta"`
}

// RunScenario projects p and diffs the last year against ScenarioBaseline.
func RunScenario(p ScenarioParams) ScenarioResult {
	years := ProjectScenario(p)
	last := years[len(years)-1]
	return ScenarioResult{
		Params: p,
		Years:  years,
		Delta: ScenarioDelta{
			Capability:     last.Capability - ScenarioBaseline.Capability,
			Risk:           last.Risk - ScenarioBaseline.Risk,
			Sustainability: last.Sustainability - ScenarioBaseline.Sustainability,
			Cost:           last.Cost - ScenarioBaseline.Cost,
		},
	}
}

// ScenarioPreset is a named set of lever positions.
type ScenarioPreset struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Badge       string         `json:"badge"`
	Params      ScenarioParams `json:"params"`
}

// ScenarioPresets lists the built-in presets.
func ScenarioPresets() []ScenarioPreset {
	return []ScenarioPreset{
		{
			Name: "Aggressive Hiring", Description: "Maximize external hiring to fill gaps quickly", Badge: "High Cost",
			Params: ScenarioParams{HiringBudget: 1200000, TrainingInvestment: 50000, ContractorUsage: 40, AIAdoption: 20, AttritionRate: 18},
		},
		{
			Name: "Sustainable Growth", Description: "Balance hiring with internal development", Badge: "Recommended",
			Params: ScenarioParams{HiringBudget: 400000, TrainingInvestment: 300000, ContractorUsage: 15, AIAdoption: 50, AttritionRate: 10},
		},
		{
			Name: "AI-First Strategy", Description: "Maximize AI augmentation to reduce talent dependency", Badge: "Innovative",
			Params: ScenarioParams{HiringBudget: 200000, TrainingInvestment: 200000, ContractorUsage: 10, AIAdoption: 80, AttritionRate: 12},
		},
		{
			Name: "Cost Minimization", Description: "Minimize spend while maintaining baseline capability", Badge: "Budget",
			Params: ScenarioParams{HiringBudget: 150000, TrainingInvestment: 100000, ContractorUsage: 5, AIAdoption: 40, AttritionRate: 20},
		},
	}
}

// FindPreset looks a preset up by name, ignoring case.
func FindPreset(name string) (ScenarioPreset, error) {
	for _, p := range ScenarioPresets() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return ScenarioPreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
