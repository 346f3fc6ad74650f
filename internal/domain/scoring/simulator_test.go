package scoring_test

import (
	"errors"
	"testing"

	scoring "github.com/okian/talentiq/internal/domain/scoring"
	"github.com/okian/talentiq/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHiringCapacity(t *testing.T) {
	Convey("Given the default capacity inputs", t, func() {
		r := scoring.HiringCapacity(scoring.DefaultHiringCapacityInputs())

		Convey("Then recruiter demand accounts for declines", func() {
			So(r.EffectiveHiresPerRecruiter, ShouldEqual, 6)
			So(r.RequiredRecruiters, ShouldEqual, 9)
			So(r.RiskLevel, ShouldEqual, types.LevelMedium)
			So(r.BufferRecommendation, ShouldEqual, 2)
		})

		Convey("And the insights explain the shortfall and buffer cost", func() {
			So(r.Insights, ShouldHaveLength, 2)
			So(r.Insights[0], ShouldStartWith, "You need 3 additional recruiter(s) to compensate for offer declines.")
			So(r.Insights[1], ShouldEqual, "Adding 2 buffer recruiters costs approximately $170K but prevents 12 potential unfilled roles.")
		})

		Convey("And the chart compares three staffing levels", func() {
			So(r.Chart, ShouldHaveLength, 3)
			So(r.Chart[0].Recruiters, ShouldEqual, 7)
			So(r.Chart[0].Capacity, ShouldEqual, 56)
			So(r.Chart[1].Recruiters, ShouldEqual, 9)
			So(r.Chart[1].Capacity, ShouldEqual, 54)
			So(r.Chart[2].Recruiters, ShouldEqual, 11)
			So(r.Chart[2].Capacity, ShouldEqual, 66)
			So(r.Chart[2].Actual, ShouldEqual, 50)
		})
	})

	Convey("A high decline rate is high risk and gets an inflation insight", t, func() {
		r := scoring.HiringCapacity(scoring.HiringCapacityInputs{TotalRolesRequired: 30, RolesPerRecruiter: 10, OfferDeclineRate: 50})
		So(r.RiskLevel, ShouldEqual, types.LevelHigh)
		So(r.RequiredRecruiters, ShouldEqual, 6)
		So(r.BufferRecommendation, ShouldEqual, 2)
		So(r.Insights[0], ShouldStartWith, "High offer decline rate (50%) inflates recruiter demand by 100%.")
	})

	Convey("With no declines capacity is sufficient", t, func() {
		r := scoring.HiringCapacity(scoring.HiringCapacityInputs{TotalRolesRequired: 10, RolesPerRecruiter: 8})
		So(r.RiskLevel, ShouldEqual, types.LevelLow)
		So(r.RequiredRecruiters, ShouldEqual, 2)
		So(r.BufferRecommendation, ShouldEqual, 1)
		So(r.Insights[0], ShouldStartWith, "You need 1 additional recruiter(s)")
	})

	Convey("Validation rejects degenerate inputs", t, func() {
		for _, in := range []scoring.HiringCapacityInputs{
			{TotalRolesRequired: 0, RolesPerRecruiter: 8},
			{TotalRolesRequired: 10, RolesPerRecruiter: 0},
			{TotalRolesRequired: 10, RolesPerRecruiter: 8, OfferDeclineRate: 100},
			{TotalRolesRequired: 10, RolesPerRecruiter: 8, OfferDeclineRate: -1},
		} {
			So(errors.Is(in.Validate(), scoring.ErrInvalidSimulation), ShouldBeTrue)
		}
		So(scoring.DefaultHiringCapacityInputs().Validate(), ShouldBeNil)
	})
}

func TestTimeToHire(t *testing.T) {
	Convey("Given the default time-to-hire inputs", t, func() {
		r := scoring.TimeToHire(scoring.DefaultTimeToHireInputs())

		Convey("Then the effective time blends affected and unaffected roles", func() {
			So(r.AdjustedTimeAffected, ShouldAlmostEqual, 49, 1e-9)
			So(r.EffectiveAverageTime, ShouldAlmostEqual, 43.4, 1e-9)
			So(r.DelayDays, ShouldAlmostEqual, 8.4, 1e-9)
			So(r.RiskLevel, ShouldEqual, types.LevelMedium)
		})

		Convey("And strategies target competition and affected share", func() {
			So(r.SuggestedStrategy, ShouldResemble, []string{
				"Improve offer competitiveness to reduce negotiation time",
				"Shift focus to internal upskilling for less competitive roles",
			})
		})

		Convey("And the insights quote the rounded delay", func() {
			So(r.Insights, ShouldHaveLength, 2)
			So(r.Insights[0], ShouldContainSubstring, "by 8 days on average")
			So(r.Insights[1], ShouldStartWith, "A 8-day delay per hire reduces quarterly hiring capacity by approximately 9%.")
		})

		Convey("And the timeline spans 0 to 100 percent affected", func() {
			So(r.Timeline, ShouldHaveLength, 11)
			So(r.Timeline[0].Effective, ShouldEqual, 35)
			So(r.Timeline[10].Effective, ShouldEqual, 49)
			So(r.Timeline[10].Label, ShouldEqual, "100%")
		})
	})

	Convey("Large delays are high risk with acceleration strategies", t, func() {
		r := scoring.TimeToHire(scoring.TimeToHireInputs{BaseTimeToHire: 50, CompetitionIncrease: 60, AffectedRolesPercent: 80})
		So(r.RiskLevel, ShouldEqual, types.LevelHigh)
		So(r.SuggestedStrategy[0], ShouldEqual, "Accelerate hiring by expanding sourcing channels")
		So(r.Insights, ShouldHaveLength, 3)
		So(r.Insights[2], ShouldStartWith, "Extended time-to-hire (74 days)")
	})

	Convey("No competition means a manageable timeline", t, func() {
		r := scoring.TimeToHire(scoring.TimeToHireInputs{BaseTimeToHire: 30, AffectedRolesPercent: 20})
		So(r.DelayDays, ShouldAlmostEqual, 0, 1e-9)
		So(r.RiskLevel, ShouldEqual, types.LevelLow)
		So(r.SuggestedStrategy, ShouldResemble, []string{"Current timeline is manageable with standard processes"})
		So(r.Insights, ShouldHaveLength, 1)
	})

	Convey("Out-of-range inputs are computed rather than rejected", t, func() {
		r := scoring.TimeToHire(scoring.TimeToHireInputs{BaseTimeToHire: -10, CompetitionIncrease: 100, AffectedRolesPercent: 200})
		So(r.AdjustedTimeAffected, ShouldAlmostEqual, -20, 1e-9)
		So(r.EffectiveAverageTime, ShouldAlmostEqual, -30, 1e-9)
		So(r.DelayDays, ShouldAlmostEqual, -20, 1e-9)
		So(r.RiskLevel, ShouldEqual, types.LevelLow)
	})
}
