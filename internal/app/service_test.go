package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/talentiq/internal/adapters/repository"
	service "github.com/okian/talentiq/internal/app"
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/scoring"
	"github.com/okian/talentiq/internal/domain/types"
	"github.com/okian/talentiq/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func intPtr(v int) *int { return &v }

func startService(opts ...service.Option) *service.Service {
	opts = append([]service.Option{service.WithRefreshDelay(0), service.WithRandomSeed(7)}, opts...)
	svc := service.New(opts...)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	So(svc.Start(ctx), ShouldBeNil)
	return svc
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, false)
			So(stats["refresh_delay_ms"], ShouldEqual, int64(800))
			So(stats["dedupe_capacity"], ShouldEqual, 1024)
			So(stats["reports_enabled"], ShouldEqual, false)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithRefreshDelay(10*time.Millisecond),
			service.WithDedupeSize(16),
			service.WithStrictSkillLookup(true),
			service.WithDedupeSize(-1),
		)

		Convey("Then invalid values keep the previous setting", func() {
			stats := svc.GetStats()
			So(stats["dedupe_capacity"], ShouldEqual, 16)
			So(stats["strict_skill_match"], ShouldEqual, true)
		})
	})
}

func TestService_StartStop(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startService()
		defer svc.Stop()

		Convey("Then it reports the seed roster", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, true)
			So(stats["employees"], ShouldEqual, 8)
			So(stats["refreshing"], ShouldEqual, false)
		})

		Convey("Then starting again is a no-op", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
		})

		Convey("When stopping the service", func() {
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})

			Convey("And stopping twice is harmless", func() {
				So(func() { svc.Stop() }, ShouldNotPanic)
			})
		})
	})
}

func TestService_AddEmployee(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startService()
		defer svc.Stop()
		ctx := context.Background()

		Convey("When adding an employee with only the required fields", func() {
			e, replay, err := svc.AddEmployee(ctx, service.NewEmployee{
				Name: "  New Hire ", Role: "Engineer", Department: "Platform",
				Skills: []string{"Go", " ", "Go", "SQL "},
			}, "")

			Convey("Then defaults are applied and risk is derived", func() {
				So(err, ShouldBeNil)
				So(replay, ShouldBeFalse)
				So(e.ID, ShouldStartWith, "emp-")
				So(e.Name, ShouldEqual, "New Hire")
				So(e.Criticality, ShouldEqual, types.CriticalityMedium)
				So(e.Tenure, ShouldEqual, 1)
				So(e.Skills, ShouldResemble, []string{"Go", "SQL"})
				So(e.AttritionRisk, ShouldEqual, 50)
				So(len(svc.ListEmployees(ctx)), ShouldEqual, 9)
			})
		})

		Convey("When sub-factors are supplied", func() {
			e, _, err := svc.AddEmployee(ctx, service.NewEmployee{
				Name: "Stressed", Role: "SRE", Department: "Ops", Criticality: "HIGH",
				CompensationPercentile: intPtr(20), WorkloadStress: intPtr(90),
			}, "")

			Convey("Then the creation formula uses them", func() {
				So(err, ShouldBeNil)
				So(e.Criticality, ShouldEqual, types.CriticalityHigh)
				// 20 + 18 + 7.5 + 10 + 10 = 65.5
				So(e.AttritionRisk, ShouldEqual, 66)
			})
		})

		Convey("When required fields are missing", func() {
			_, _, err := svc.AddEmployee(ctx, service.NewEmployee{Name: " ", Criticality: "urgent"}, "")

			Convey("Then a validation error names every field", func() {
				So(errors.Is(err, service.ErrInvalidEmployee), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "name required")
				So(err.Error(), ShouldContainSubstring, "role required")
				So(err.Error(), ShouldContainSubstring, "department required")
				So(err.Error(), ShouldContainSubstring, "criticality oneof")
				So(len(svc.ListEmployees(ctx)), ShouldEqual, 8)
			})
		})

		Convey("When a sub-factor is out of range", func() {
			_, _, err := svc.AddEmployee(ctx, service.NewEmployee{
				Name: "X", Role: "Y", Department: "Z", OfferExposure: intPtr(101),
			}, "")
			So(errors.Is(err, service.ErrInvalidEmployee), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "offer_exposure max")
		})

		Convey("When the same idempotency key is submitted twice", func() {
			in := service.NewEmployee{Name: "Once", Role: "Analyst", Department: "Finance"}
			first, replay1, err1 := svc.AddEmployee(ctx, in, "key-1")
			second, replay2, err2 := svc.AddEmployee(ctx, in, "key-1")

			Convey("Then the second call replays the first record", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(replay1, ShouldBeFalse)
				So(replay2, ShouldBeTrue)
				So(second.ID, ShouldEqual, first.ID)
				So(len(svc.ListEmployees(ctx)), ShouldEqual, 9)
			})

			Convey("And once the record is removed the key creates a new one", func() {
				So(svc.RemoveEmployee(ctx, first.ID), ShouldBeTrue)
				third, replay3, err := svc.AddEmployee(ctx, in, "key-1")
				So(err, ShouldBeNil)
				So(replay3, ShouldBeFalse)
				So(third.ID, ShouldNotEqual, first.ID)
			})
		})
	})
}

func TestService_EmployeeOperations(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startService()
		defer svc.Stop()
		ctx := context.Background()

		Convey("Updating criticality validates and normalises it", func() {
			bad := types.Criticality("sometimes")
			_, err := svc.UpdateEmployee(ctx, "emp-003", model.EmployeePatch{Criticality: &bad})
			So(errors.Is(err, service.ErrInvalidEmployee), ShouldBeTrue)

			good := types.Criticality(" Critical")
			e, err := svc.UpdateEmployee(ctx, "emp-003", model.EmployeePatch{Criticality: &good})
			So(err, ShouldBeNil)
			So(e.Criticality, ShouldEqual, types.CriticalityCritical)
		})

		Convey("Updating an unknown employee is not found", func() {
			name := "x"
			_, err := svc.UpdateEmployee(ctx, "nobody", model.EmployeePatch{Name: &name})
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("Removing an unknown employee is a no-op", func() {
			So(svc.RemoveEmployee(ctx, "nobody"), ShouldBeFalse)
			So(len(svc.ListEmployees(ctx)), ShouldEqual, 8)
		})

		Convey("Attrition analysis reports the stored score", func() {
			e, err := svc.GetEmployee(ctx, "emp-001")
			So(err, ShouldBeNil)
			a, err := svc.AttritionAnalysis(ctx, "emp-001")
			So(err, ShouldBeNil)
			So(a.RiskScore, ShouldEqual, e.AttritionRisk)
			So(a.Factors, ShouldNotBeEmpty)

			_, err = svc.AttritionAnalysis(ctx, "nobody")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("Retention actions end with the key person pair", func() {
			actions, err := svc.RetentionActions(ctx, "emp-001")
			So(err, ShouldBeNil)
			So(len(actions), ShouldBeGreaterThanOrEqualTo, 2)

			_, err = svc.RetentionActions(ctx, "nobody")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestService_Refresh(t *testing.T) {
	Convey("Given a service with a slow refresh", t, func() {
		svc := startService(service.WithRefreshDelay(200 * time.Millisecond))
		defer svc.Stop()
		ctx := context.Background()

		Convey("When two refreshes are requested back to back", func() {
			first := svc.StartRefresh(ctx)
			second := svc.StartRefresh(ctx)

			Convey("Then only the first is accepted", func() {
				So(first, ShouldBeNil)
				So(errors.Is(second, repository.ErrRefreshInProgress), ShouldBeTrue)
				So(svc.IsRefreshing(), ShouldBeTrue)
			})

			Convey("And the flag clears when the refresh completes", func() {
				deadline := time.Now().Add(3 * time.Second)
				for svc.IsRefreshing() && time.Now().Before(deadline) {
					time.Sleep(10 * time.Millisecond)
				}
				So(svc.IsRefreshing(), ShouldBeFalse)
				for _, e := range svc.ListEmployees(ctx) {
					So(e.AttritionRisk, ShouldBeBetweenOrEqual, 0, 100)
				}
			})
		})
	})
}

func TestService_Analytics(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startService()
		defer svc.Stop()
		ctx := context.Background()

		Convey("Reference data is returned", func() {
			So(len(svc.SkillGaps()), ShouldEqual, 5)
			So(len(svc.Teams()), ShouldEqual, 5)
			So(len(svc.Trends()), ShouldEqual, 6)
			So(len(svc.ScenarioPresets()), ShouldEqual, 4)
		})

		Convey("The dashboard summary reflects the live roster", func() {
			d := svc.DashboardSummary(ctx)
			So(d.Roster.Total, ShouldEqual, 8)
			So(d.Roster.HighRisk, ShouldEqual, 3)
			So(d.Roster.KeyPersons, ShouldEqual, 3)
			So(d.Roster.RiskChart[0].ID, ShouldEqual, "emp-002")
			So(len(d.CostComparison), ShouldEqual, 5)
		})

		Convey("A decision for a known skill does not fall back", func() {
			out, err := svc.Decide(ctx, scoring.DecisionInputs{
				Skill: "AI/ML Engineering", Urgency: types.UrgencyCritical, Budget: 500000,
				InternalInventory: 30, TimeToDelivery: 12, RiskTolerance: types.RiskToleranceMedium,
			})
			So(err, ShouldBeNil)
			So(out.SkillFellBack, ShouldBeFalse)
			So(len(out.AlternativeStrategies), ShouldEqual, 2)
		})

		Convey("The lifecycle view uses the seed roster", func() {
			r := svc.Lifecycle(ctx, nil)
			So(r.Stability.Score, ShouldEqual, 42)
			So(r.Bottlenecks, ShouldResemble, []string{"retention", "knowledge"})
			So(len(r.ResilienceTrend), ShouldEqual, scoring.ResilienceMonths)
			So(r.Tradeoff, ShouldResemble, scoring.DefaultTradeoffSettings())
		})

		Convey("A trade-off is evaluated with its impacts", func() {
			v := svc.Tradeoff(scoring.DefaultTradeoffSettings())
			So(v.Result, ShouldResemble, scoring.EvaluateTradeoff(scoring.DefaultTradeoffSettings()))
			So(v.Impacts, ShouldNotBeEmpty)
		})

		Convey("Simulators validate their inputs", func() {
			_, err := svc.HiringCapacity(ctx, scoring.HiringCapacityInputs{TotalRolesRequired: 10, RolesPerRecruiter: 0})
			So(errors.Is(err, scoring.ErrInvalidSimulation), ShouldBeTrue)

			res, err := svc.HiringCapacity(ctx, scoring.DefaultHiringCapacityInputs())
			So(err, ShouldBeNil)
			So(res, ShouldResemble, scoring.HiringCapacity(scoring.DefaultHiringCapacityInputs()))

			tth, err := svc.TimeToHire(ctx, scoring.DefaultTimeToHireInputs())
			So(err, ShouldBeNil)
			So(tth, ShouldResemble, scoring.TimeToHire(scoring.DefaultTimeToHireInputs()))
		})

		Convey("Scenarios run from presets, params or defaults", func() {
			byName, err := svc.Scenario(ctx, "sustainable growth", nil)
			So(err, ShouldBeNil)
			preset, _ := scoring.FindPreset("Sustainable Growth")
			So(byName.Params, ShouldResemble, preset.Params)

			def, err := svc.Scenario(ctx, "", nil)
			So(err, ShouldBeNil)
			So(def.Params, ShouldResemble, scoring.DefaultScenarioParams())

			_, err = svc.Scenario(ctx, "moonshot", nil)
			So(errors.Is(err, scoring.ErrUnknownPreset), ShouldBeTrue)
		})

		Convey("Knowledge risk covers every team", func() {
			k := svc.KnowledgeRisk(ctx)
			So(len(k.Teams), ShouldEqual, 5)
		})
	})

	Convey("Given a service with strict skill lookup", t, func() {
		svc := startService(service.WithStrictSkillLookup(true))
		defer svc.Stop()

		_, err := svc.Decide(context.Background(), scoring.DecisionInputs{Skill: "Basket Weaving", Urgency: types.UrgencyLow})
		So(errors.Is(err, scoring.ErrUnknownSkill), ShouldBeTrue)
	})

	Convey("Given a service with an analysis delay", t, func() {
		svc := startService(service.WithAnalysisDelay(time.Hour))
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := svc.Scenario(ctx, "", nil)
		So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
	})
}

func TestService_ReportsDisabled(t *testing.T) {
	Convey("Given a service without a report directory", t, func() {
		svc := startService()
		defer svc.Stop()
		ctx := context.Background()

		Convey("Then queued reports and schedules are unavailable", func() {
			_, err := svc.EnqueueReport(ctx, "csv")
			So(errors.Is(err, service.ErrReportsDisabled), ShouldBeTrue)

			_, err = svc.AddSchedule("@daily", "")
			So(errors.Is(err, service.ErrSchedulingDisabled), ShouldBeTrue)

			_, err = svc.ListSchedules()
			So(errors.Is(err, service.ErrSchedulingDisabled), ShouldBeTrue)

			So(errors.Is(svc.RemoveSchedule("x"), service.ErrSchedulingDisabled), ShouldBeTrue)
		})

		Convey("Then the printable snapshot still works", func() {
			r := svc.PrintableReport(ctx)
			So(len(r.Employees), ShouldEqual, 8)
			So(r.Stability.Score, ShouldEqual, 42)
		})
	})
}
