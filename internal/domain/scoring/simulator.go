package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/okian/talentiq/internal/domain/types"
)

// ErrInvalidSimulation is returned when simulator inputs would divide by zero.
var ErrInvalidSimulation = errors.New("invalid simulation inputs")

const recruiterLoadedCost = 85000

// HiringCapacityInputs parameterise the recruiter capacity simulator.
type HiringCapacityInputs struct {
	TotalRolesRequired float64 `json:"total_roles_required"`
	RolesPerRecruiter  float64 `json:"roles_per_recruiter"`
	OfferDeclineRate   float64 `json:"offer_decline_rate"` // percent
}

// DefaultHiringCapacityInputs are the simulator's starting values.
func DefaultHiringCapacityInputs() HiringCapacityInputs {
	return HiringCapacityInputs{TotalRolesRequired: 50, RolesPerRecruiter: 8, OfferDeclineRate: 25}
}

// Validate rejects inputs for which the recruiter count is undefined.
func (in HiringCapacityInputs) Validate() error {
	switch {
	case in.TotalRolesRequired < 1:
		return fmt.Errorf("%w: total_roles_required must be at least 1", ErrInvalidSimulation)
	case in.RolesPerRecruiter <= 0:
		return fmt.Errorf("%w: roles_per_recruiter must be positive", ErrInvalidSimulation)
	case in.OfferDeclineRate < 0 || in.OfferDeclineRate >= 100:
		return fmt.Errorf("%w: offer_decline_rate must be in [0,100)", ErrInvalidSimulation)
	}
	return nil
}

// CapacityRow is one bar of the capacity chart.
type CapacityRow struct {
	Name       string  `json:"name"`
	Recruiters int     `json:"recruiters"`
	Capacity   int     `json:"capacity"`
	Actual     float64 `json:"actual"`
}

// HiringCapacityResult is the simulator output.
type HiringCapacityResult struct {
	EffectiveHiresPerRecruiter float64       `json:"effective_hires_per_recruiter"`
	RequiredRecruiters         int           `json:"required_recruiters"`
	RiskLevel                  types.Level   `json:"risk_level"`
	BufferRecommendation       int           `json:"buffer_recommendation"`
	Insights                   []string      `json:"insights"`
	Chart                      []CapacityRow `json:"chart"`
}

// HiringCapacity computes how many recruiters are needed once offer declines are accounted for.
// Callers must pass inputs accepted by Validate.
func HiringCapacity(in HiringCapacityInputs) HiringCapacityResult {
	effective := in.RolesPerRecruiter * (1 - in.OfferDeclineRate/100)
	required := int(math.Ceil(in.TotalRolesRequired / effective))

	risk := types.LevelLow
	switch {
	case in.OfferDeclineRate >= 40 || float64(required) > in.TotalRolesRequired/3:
		risk = types.LevelHigh
	case in.OfferDeclineRate >= 25 || float64(required) > in.TotalRolesRequired/5:
		risk = types.LevelMedium
	}

	multiplier := 0.1
	switch risk {
	case types.LevelHigh:
		multiplier = 0.3
	case types.LevelMedium:
		multiplier = 0.2
	}
	buffer := int(math.Ceil(float64(required) * multiplier))

	var insights []string
	if in.OfferDeclineRate > 30 {
		inflation := Round((1/(1-in.OfferDeclineRate/100) - 1) * 100)
		insights = append(insights, fmt.Sprintf("High offer decline rate (%s%%) inflates recruiter demand by %d%%. "+
			"Consider improving offer competitiveness or employer branding.", num(in.OfferDeclineRate), inflation))
	}
	naive := in.TotalRolesRequired / in.RolesPerRecruiter
	if float64(required) < naive {
		insights = append(insights, "Your current recruiter capacity appears sufficient. Focus on quality over speed.")
	} else {
		shortfall := required - int(math.Floor(naive))
		insights = append(insights, fmt.Sprintf("You need %d additional recruiter(s) to compensate for offer declines. "+
			"Understaffing will lead to missed hiring targets or burnout.", shortfall))
	}
	insights = append(insights, fmt.Sprintf("Adding %d buffer recruiters costs approximately $%.0fK but prevents %d potential unfilled roles.",
		buffer, float64(buffer*recruiterLoadedCost)/1000, Round(float64(buffer)*effective)))

	base := int(math.Ceil(naive))
	chart := []CapacityRow{
		{Name: "Without Decline Adj.", Recruiters: base, Capacity: Round(float64(base) * in.RolesPerRecruiter), Actual: in.TotalRolesRequired},
		{Name: "With Decline Adj.", Recruiters: required, Capacity: Round(float64(required) * effective), Actual: in.TotalRolesRequired},
		{Name: "With Buffer", Recruiters: required + buffer, Capacity: Round(float64(required+buffer) * effective), Actual: in.TotalRolesRequired},
	}

	return HiringCapacityResult{
		EffectiveHiresPerRecruiter: effective,
		RequiredRecruiters:         required,
		RiskLevel:                  risk,
		BufferRecommendation:       buffer,
		Insights:                   insights,
		Chart:                      chart,
	}
}

// TimeToHireInputs parameterise the time-to-hire inflation simulator.
type TimeToHireInputs struct {
	BaseTimeToHire       float64 `json:"base_time_to_hire"`      // days
	CompetitionIncrease  float64 `json:"competition_increase"`   // percent
	AffectedRolesPercent float64 `json:"affected_roles_percent"` // percent
}

// DefaultTimeToHireInputs are the simulator's starting values.
func DefaultTimeToHireInputs() TimeToHireInputs {
	return TimeToHireInputs{BaseTimeToHire: 35, CompetitionIncrease: 40, AffectedRolesPercent: 60}
}

// TimelinePoint is one point of the inflation curve.
type TimelinePoint struct {
	Affected  int     `json:"affected"`
	Baseline  float64 `json:"baseline"`
	Effective int     `json:"effective"`
	Label     string  `json:"label"`
}

// TimeToHireResult is the simulator output.
type TimeToHireResult struct {
	AdjustedTimeAffected float64         `json:"adjusted_time_affected"`
	EffectiveAverageTime float64         `json:"effective_average_time"`
	DelayDays            float64         `json:"delay_days"`
	RiskLevel            types.Level     `json:"risk_level"`
	SuggestedStrategy    []string        `json:"suggested_strategy"`
	Insights             []string        `json:"insights"`
	Timeline             []TimelinePoint `json:"timeline"`
}

// TimeToHire computes how competition inflates the average time to hire.
// Inputs are taken as given; every combination is a defined computation.
func TimeToHire(in TimeToHireInputs) TimeToHireResult {
	adjusted := in.BaseTimeToHire * (1 + in.CompetitionIncrease/100)
	share := in.AffectedRolesPercent / 100
	effective := share*adjusted + (1-share)*in.BaseTimeToHire
	delay := effective - in.BaseTimeToHire

	risk := types.LevelLow
	switch {
	case delay > 15 || effective > 60:
		risk = types.LevelHigh
	case delay > 7 || effective > 45:
		risk = types.LevelMedium
	}

	var strategy []string
	if delay > 10 {
		strategy = append(strategy,
			"Accelerate hiring by expanding sourcing channels",
			"Use contractors to bridge immediate gaps")
	}
	if in.CompetitionIncrease > 30 {
		strategy = append(strategy, "Improve offer competitiveness to reduce negotiation time")
	}
	if in.AffectedRolesPercent > 50 {
		strategy = append(strategy, "Shift focus to internal upskilling for less competitive roles")
	}
	if len(strategy) == 0 {
		strategy = append(strategy, "Current timeline is manageable with standard processes")
	}

	var insights []string
	if in.CompetitionIncrease > 0 {
		insights = append(insights, fmt.Sprintf("Ignoring competition leads to underestimating timelines by %d days on average. "+
			"This compounds across multiple hires, causing significant project delays.", Round(delay)))
	}
	insights = append(insights, fmt.Sprintf("A %d-day delay per hire reduces quarterly hiring capacity by approximately %d%%. "+
		"Plan workforce needs 1-2 quarters ahead to compensate.", Round(delay), Round(delay/90*100)))
	if effective > 45 {
		insights = append(insights, fmt.Sprintf("Extended time-to-hire (%d days) increases candidate dropout risk by 40%%. "+
			"Consider parallel interviewing and faster decision-making.", Round(effective)))
	}

	timeline := make([]TimelinePoint, 0, 11)
	for pct := 0; pct <= 100; pct += 10 {
		s := float64(pct) / 100
		timeline = append(timeline, TimelinePoint{
			Affected:  pct,
			Baseline:  in.BaseTimeToHire,
			Effective: Round(s*adjusted + (1-s)*in.BaseTimeToHire),
			Label:     fmt.Sprintf("%d%%", pct),
		})
	}

	return TimeToHireResult{
		AdjustedTimeAffected: adjusted,
		EffectiveAverageTime: effective,
		DelayDays:            delay,
		RiskLevel:            risk,
		SuggestedStrategy:    strategy,
		Insights:             insights,
		Timeline:             timeline,
	}
}
