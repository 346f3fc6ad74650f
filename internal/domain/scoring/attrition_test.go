package scoring_test

import (
	"testing"

	"github.com/okian/talentiq/internal/domain/dataset"
	"github.com/okian/talentiq/internal/domain/model"
	scoring "github.com/okian/talentiq/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCalculateAttritionRisk(t *testing.T) {
	Convey("Given the reference roster", t, func() {
		emps := dataset.Default().Employees

		Convey("When analysing Dr. Sarah Chen", func() {
			a := scoring.CalculateAttritionRisk(emps[0])

			Convey("Then the stored score is returned with factors by impact", func() {
				So(a.RiskScore, ShouldEqual, 72)
				So(a.Factors, ShouldHaveLength, 4)
				So(a.Factors[0].Factor, ShouldEqual, "High external offer exposure")
				So(a.Factors[0].Impact, ShouldEqual, 18)
				So(a.Factors[1].Factor, ShouldEqual, "High workload stress")
				So(a.Factors[1].Impact, ShouldEqual, 11)
				So(a.Factors[2].Factor, ShouldEqual, "Unclear career path")
				So(a.Factors[2].Impact, ShouldEqual, 9)
				So(a.Factors[3].Factor, ShouldEqual, "Limited learning opportunities")
				So(a.Factors[3].Impact, ShouldEqual, 5)
			})
		})

		Convey("When analysing Marcus Williams", func() {
			a := scoring.CalculateAttritionRisk(emps[1])

			Convey("Then the compensation suggestion names the target percentile", func() {
				So(a.Factors[0].Impact, ShouldEqual, 23)
				last := a.Factors[len(a.Factors)-1]
				So(last.Factor, ShouldEqual, "Below-market compensation")
				So(last.Impact, ShouldEqual, 4)
				So(last.Suggestion, ShouldEqual, "Consider salary adjustment to 70th percentile")
			})
		})

		Convey("Every analysis is sorted and every factor's condition holds", func() {
			for _, e := range emps {
				a := scoring.CalculateAttritionRisk(e)
				for i := 1; i < len(a.Factors); i++ {
					So(a.Factors[i-1].Impact, ShouldBeGreaterThanOrEqualTo, a.Factors[i].Impact)
				}
				for _, f := range a.Factors {
					switch f.Factor {
					case "Below-market compensation":
						So(e.CompensationPercentile, ShouldBeLessThan, 60)
					case "High workload stress":
						So(e.WorkloadStress, ShouldBeGreaterThan, 70)
					case "Limited learning opportunities":
						So(e.LearningOpportunities, ShouldBeLessThan, 50)
					case "Unclear career path":
						So(e.CareerProgression, ShouldBeLessThan, 50)
					case "High external offer exposure":
						So(e.OfferExposure, ShouldBeGreaterThan, 70)
					default:
						t.Fatalf("unexpected factor %q", f.Factor)
					}
				}
			}
		})
	})

	Convey("Given factors with equal impact", t, func() {
		e := model.Employee{CompensationPercentile: 50, WorkloadStress: 50, LearningOpportunities: 34, CareerProgression: 80, OfferExposure: 10}
		a := scoring.CalculateAttritionRisk(e)

		Convey("Then rule order breaks the tie", func() {
			So(a.Factors, ShouldHaveLength, 2)
			So(a.Factors[0].Impact, ShouldEqual, 8)
			So(a.Factors[1].Impact, ShouldEqual, 8)
			So(a.Factors[0].Factor, ShouldEqual, "Below-market compensation")
			So(a.Factors[0].Suggestion, ShouldEqual, "Consider salary adjustment to 65th percentile")
		})
	})

	Convey("Given an employee with no risk factors", t, func() {
		e := model.Employee{AttritionRisk: 12, CompensationPercentile: 90, WorkloadStress: 30, LearningOpportunities: 90, CareerProgression: 90}
		a := scoring.CalculateAttritionRisk(e)
		So(a.RiskScore, ShouldEqual, 12)
		So(a.Factors, ShouldBeEmpty)
	})

	Convey("A high percentile suggestion is capped at the 80th", t, func() {
		a := scoring.CalculateAttritionRisk(model.Employee{CompensationPercentile: 59, LearningOpportunities: 90, CareerProgression: 90})
		So(a.Factors[0].Suggestion, ShouldEqual, "Consider salary adjustment to 74th percentile")
		So(a.Factors[0].Impact, ShouldEqual, 1)
	})
}

func TestCreationRisk(t *testing.T) {
	Convey("Given the creation-time risk formula", t, func() {
		Convey("Neutral sub-factors give 50", func() {
			So(scoring.CreationRisk(sub(50, 50, 50, 50, 50)), ShouldEqual, 50)
		})
		Convey("A mixed profile is weighted and rounded", func() {
			So(scoring.CreationRisk(sub(65, 85, 40, 35, 90)), ShouldEqual, 66)
		})
		Convey("The extremes stay within bounds", func() {
			So(scoring.CreationRisk(sub(0, 100, 0, 0, 100)), ShouldEqual, 100)
			So(scoring.CreationRisk(sub(100, 0, 100, 100, 0)), ShouldEqual, 0)
			So(scoring.CreationRisk(sub(-50, 200, -50, -50, 200)), ShouldEqual, 100)
		})
		Convey("SubFactorsOf reads an employee", func() {
			e := dataset.Default().Employees[0]
			So(scoring.SubFactorsOf(e), ShouldResemble, sub(65, 85, 40, 35, 90))
		})
	})
}

func TestRetentionActions(t *testing.T) {
	Convey("Given the reference roster", t, func() {
		emps := dataset.Default().Employees

		Convey("A key person with every weakness gets all six actions in order", func() {
			So(scoring.RetentionActions(emps[0]), ShouldResemble, []string{
				"Salary adjustment to competitive market rate",
				"Skill growth path with dedicated training allocation",
				"Internal mobility opportunity mapping",
				"Workload rebalancing and support resources",
				"Executive mentorship and strategic project involvement",
				"Reduced dependency planning with knowledge transfer",
			})
		})

		Convey("A comfortable employee gets none", func() {
			So(scoring.RetentionActions(emps[3]), ShouldBeEmpty)
		})

		Convey("A key person with no weaknesses gets only the two key-person actions", func() {
			e := model.Employee{CompensationPercentile: 90, LearningOpportunities: 90, CareerProgression: 90, WorkloadStress: 10, IsKeyPerson: true}
			So(scoring.RetentionActions(e), ShouldHaveLength, 2)
		})
	})
}

func sub(comp, workload, learning, career, offer int) scoring.SubFactors {
	return scoring.SubFactors{
		CompensationPercentile: comp,
		WorkloadStress:         workload,
		LearningOpportunities:  learning,
		CareerProgression:      career,
		OfferExposure:          offer,
	}
}
