package scoring

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/types"
)

// Strategy is one of the five fixed ways to close a skill gap.
type Strategy string

const (
	StrategyExternalHiring     Strategy = "External Hiring"
	StrategyInternalUpskilling Strategy = "Internal Upskilling"
	StrategyRoleRedesign       Strategy = "Role Redesign"
	StrategyContractorPartner  Strategy = "Contractor/Partner"
	StrategyAIAugmentation     Strategy = "AI Augmentation"
)

// Strategies lists every strategy in evaluation order.
var Strategies = []Strategy{
	StrategyExternalHiring,
	StrategyInternalUpskilling,
	StrategyRoleRedesign,
	StrategyContractorPartner,
	StrategyAIAugmentation,
}

// DecisionInputs are the parameters of a strategy decision.
type DecisionInputs struct {
	Skill             string              `json:"skill"`
	Urgency           types.Urgency       `json:"urgency"`
	Budget            float64             `json:"budget"`
	InternalInventory float64             `json:"internal_inventory"`
	TimeToDelivery    float64             `json:"time_to_delivery"` // weeks
	RiskTolerance     types.RiskTolerance `json:"risk_tolerance"`
}

// StrategyScore is the evaluation of one strategy.
type StrategyScore struct {
	Strategy       Strategy `json:"strategy"`
	Score          float64  `json:"score"`
	Cost           float64  `json:"cost"`
	Time           float64  `json:"time"`
	Risk           float64  `json:"risk"`
	Sustainability float64  `json:"sustainability"`
}

// CostEstimate is one row of the decision's cost comparison.
type CostEstimate struct {
	Strategy         Strategy `json:"strategy"`
	EstimatedCost    float64  `json:"estimated_cost"`
	TimeToCapability float64  `json:"time_to_capability"`
}

// DecisionOutput is the recommendation for a set of inputs.
type DecisionOutput struct {
	RecommendedStrategy   Strategy        `json:"recommended_strategy"`
	CostComparison        []CostEstimate  `json:"cost_comparison"`
	RiskScore             float64         `json:"risk_score"`
	SustainabilityScore   float64         `json:"sustainability_score"`
	Justification         string          `json:"justification"`
	AlternativeStrategies []Strategy      `json:"alternative_strategies"`
	Scores                []StrategyScore `json:"scores"`
	// SkillFellBack is true when the requested skill was unknown and the first skill gap was used.
	SkillFellBack bool   `json:"skill_fell_back"`
	SkillUsed     string `json:"skill_used"`
}

// ResolveSkillGap returns the gap named skill, or the first gap when there is none.
func ResolveSkillGap(skill string, gaps []model.SkillGap) (model.SkillGap, bool) {
	if i := slices.IndexFunc(gaps, func(g model.SkillGap) bool { return g.Skill == skill }); i >= 0 {
		return gaps[i], true
	}
	if len(gaps) == 0 {
		return model.SkillGap{}, false
	}
	return gaps[0], false
}

// CalculateDecision scores the five strategies for in and recommends the best.
// Inputs are not validated; a non-positive budget or delivery time yields
// unusual but well-typed scores.
func CalculateDecision(in DecisionInputs, gaps []model.SkillGap) DecisionOutput {
	gap, found := ResolveSkillGap(in.Skill, gaps)

	hiringRisk := 40.0
	switch gap.MarketScarcity {
	case types.ScarcityExtreme:
		hiringRisk = 80
	case types.ScarcityHigh:
		hiringRisk = 60
	}

	scores := []StrategyScore{
		scoreStrategy(in, StrategyExternalHiring, gap.AvgSalary*1.3, gap.AvgHiringTime, hiringRisk, 40),
		scoreStrategy(in, StrategyInternalUpskilling, gap.TrainingCost, gap.TrainingTime, 20, 85),
		scoreStrategy(in, StrategyRoleRedesign, 25000, 8, 35, 75),
		scoreStrategy(in, StrategyContractorPartner, gap.AvgSalary*1.5, 4, 70, 25),
		scoreStrategy(in, StrategyAIAugmentation, 85000, 10, 30, 90),
	}
	slices.SortStableFunc(scores, func(a, b StrategyScore) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})

	best := scores[0]
	comparison := make([]CostEstimate, len(scores))
	for i, s := range scores {
		comparison[i] = CostEstimate{Strategy: s.Strategy, EstimatedCost: s.Cost, TimeToCapability: s.Time}
	}
	alternatives := make([]Strategy, 0, 2)
	for _, s := range scores[1:3] {
		alternatives = append(alternatives, s.Strategy)
	}

	return DecisionOutput{
		RecommendedStrategy:   best.Strategy,
		CostComparison:        comparison,
		RiskScore:             best.Risk,
		SustainabilityScore:   best.Sustainability,
		Justification:         justify(best.Strategy, in, gap),
		AlternativeStrategies: alternatives,
		Scores:                scores,
		SkillFellBack:         !found,
		SkillUsed:             gap.Skill,
	}
}

func scoreStrategy(in DecisionInputs, s Strategy, cost, time, risk, sustainability float64) StrategyScore {
	score := 0.0

	// budget fit
	if cost <= in.Budget {
		score += 25 * headroom(cost, in.Budget)
	}

	// time fit
	mult := in.Urgency.Multiplier()
	if time <= in.TimeToDelivery {
		score += 30 * headroom(time, in.TimeToDelivery) * mult
	} else {
		score -= 15 * mult
	}

	// risk alignment
	if risk <= in.RiskTolerance.Threshold() {
		score += 20 * (1 - risk/100)
	} else {
		score -= 10
	}

	score += 25 * (sustainability / 100)

	if in.InternalInventory > 50 {
		score += 10
	}

	return StrategyScore{Strategy: s, Score: score, Cost: cost, Time: time, Risk: risk, Sustainability: sustainability}
}

// headroom is the unused share of limit, 1 - v/limit. A zero limit met
// exactly counts as a full fit so the score stays finite.
func headroom(v, limit float64) float64 {
	if limit == 0 {
		return 1
	}
	return 1 - v/limit
}

func justify(s Strategy, in DecisionInputs, gap model.SkillGap) string {
	switch s {
	case StrategyExternalHiring:
		return fmt.Sprintf("Given the %s urgency and current market conditions for %s, external hiring is recommended. "+
			"While the %s market scarcity presents challenges, your budget of $%s and %s-week timeline make this viable. "+
			"Consider aggressive sourcing strategies and competitive compensation packages to attract top talent.",
			in.Urgency, in.Skill, gap.MarketScarcity, money(in.Budget), num(in.TimeToDelivery))
	case StrategyInternalUpskilling:
		return fmt.Sprintf("Based on your %s risk tolerance and emphasis on sustainable capability building, "+
			"internal upskilling is the optimal strategy for %s. Your existing team has foundational skills that can be "+
			"developed over %s weeks at approximately $%s. This approach minimizes knowledge dependency risks and builds "+
			"long-term organizational resilience.",
			in.RiskTolerance, in.Skill, num(gap.TrainingTime), money(gap.TrainingCost))
	case StrategyRoleRedesign:
		return fmt.Sprintf("Given budget constraints and current internal capabilities at %s%%, role redesign offers an "+
			"efficient path forward. By redistributing %s responsibilities across existing roles and potentially automating "+
			"routine tasks, you can address capability gaps without significant hiring investment while maintaining "+
			"organizational agility.",
			num(in.InternalInventory), in.Skill)
	case StrategyContractorPartner:
		return fmt.Sprintf("Your %s urgency level and %s-week delivery requirement favor a contractor/partner model for %s. "+
			"This approach provides immediate capability access while you develop longer-term talent strategies. "+
			"Consider this as a bridge solution with clear knowledge transfer protocols to mitigate dependency risks.",
			in.Urgency, num(in.TimeToDelivery), in.Skill)
	default:
		return fmt.Sprintf("For %s, AI augmentation presents a compelling long-term strategy. This approach offers the "+
			"highest sustainability score and addresses capability gaps through technology rather than scarce human talent. "+
			"Given the %s market scarcity, reducing human dependency for routine %s tasks is strategically sound.",
			in.Skill, gap.MarketScarcity, in.Skill)
	}
}

// money formats a currency amount with thousands separators and at most three decimals.
func money(v float64) string {
	return humanize.Commaf(math.Round(v*1000) / 1000)
}

// num formats a plain number without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
