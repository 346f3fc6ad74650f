package scoring

import (
	"testing"

	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestJustify(t *testing.T) {
	Convey("Given decision inputs and a skill gap", t, func() {
		in := DecisionInputs{
			Skill: "Quantum Computing", Urgency: types.UrgencyCritical, Budget: 1250000.5,
			InternalInventory: 62.5, TimeToDelivery: 20, RiskTolerance: types.RiskToleranceHigh,
		}
		gap := model.SkillGap{Skill: "Quantum Computing", MarketScarcity: types.ScarcityExtreme, TrainingCost: 45000, TrainingTime: 36}

		Convey("External hiring formats the budget with separators", func() {
			s := justify(StrategyExternalHiring, in, gap)
			So(s, ShouldStartWith, "Given the critical urgency and current market conditions for Quantum Computing")
			So(s, ShouldContainSubstring, "While the extreme market scarcity presents challenges")
			So(s, ShouldContainSubstring, "your budget of $1,250,000.5 and 20-week timeline")
		})

		Convey("Contractor mentions the delivery window", func() {
			s := justify(StrategyContractorPartner, in, gap)
			So(s, ShouldStartWith, "Your critical urgency level and 20-week delivery requirement favor a contractor/partner model for Quantum Computing.")
		})

		Convey("AI augmentation mentions scarcity twice-used skill", func() {
			s := justify(StrategyAIAugmentation, in, gap)
			So(s, ShouldStartWith, "For Quantum Computing, AI augmentation presents a compelling long-term strategy.")
			So(s, ShouldEndWith, "reducing human dependency for routine Quantum Computing tasks is strategically sound.")
		})

		Convey("Role redesign keeps fractional inventory", func() {
			So(justify(StrategyRoleRedesign, in, gap), ShouldContainSubstring, "internal capabilities at 62.5%")
		})

		Convey("Upskilling quotes training cost and time", func() {
			s := justify(StrategyInternalUpskilling, in, gap)
			So(s, ShouldContainSubstring, "Based on your high risk tolerance")
			So(s, ShouldContainSubstring, "developed over 36 weeks at approximately $45,000.")
		})
	})

	Convey("Money formatting rounds to three decimals", t, func() {
		So(money(300000), ShouldEqual, "300,000")
		So(money(1234.56789), ShouldEqual, "1,234.568")
		So(num(16), ShouldEqual, "16")
		So(num(8.4), ShouldEqual, "8.4")
	})

	Convey("Round follows half-up semantics", t, func() {
		So(Round(2.5), ShouldEqual, 3)
		So(Round(-2.5), ShouldEqual, -2)
		So(Round(-2.6), ShouldEqual, -3)
		So(Round(0.49), ShouldEqual, 0)
	})
}
