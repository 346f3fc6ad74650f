package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/talentiq/internal/adapters/export"
	"github.com/okian/talentiq/internal/domain/scoring"
	"github.com/okian/talentiq/internal/domain/types"
)

func (c *CLI) decideCommand() *cobra.Command {
	in := scoring.DecisionInputs{Budget: 500000, InternalInventory: 20, TimeToDelivery: 16}
	var urgency, tolerance string

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Recommend a capability strategy for a skill gap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := c.dataset()
			if err != nil {
				return err
			}
			in.Urgency = types.Urgency(types.Normalize(urgency))
			in.RiskTolerance = types.RiskTolerance(types.Normalize(tolerance))
			out, err := c.engine(ds).Decide(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Skill, "skill", "", "skill to close (defaults to the first skill gap)")
	f.StringVar(&urgency, "urgency", string(types.UrgencyMedium), "low, medium or critical")
	f.Float64Var(&in.Budget, "budget", in.Budget, "available budget")
	f.Float64Var(&in.InternalInventory, "inventory", in.InternalInventory, "internal talent inventory, percent")
	f.Float64Var(&in.TimeToDelivery, "weeks", in.TimeToDelivery, "time to delivery in weeks")
	f.StringVar(&tolerance, "risk-tolerance", string(types.RiskToleranceMedium), "low, medium or high")
	return cmd
}

func (c *CLI) attritionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attrition [employee-id]",
		Short: "Show the roster summary or one employee's attrition breakdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ds, err := c.dataset()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return c.print(scoring.Summarize(ds.Employees))
			}
			e, err := findEmployee(ds.Employees, args[0])
			if err != nil {
				return err
			}
			return c.print(struct {
				scoring.AttritionAnalysis
				Actions []string `json:"retention_actions"`
			}{scoring.CalculateAttritionRisk(e), scoring.RetentionActions(e)})
		},
	}
}

func (c *CLI) capacityCommand() *cobra.Command {
	in := scoring.DefaultHiringCapacityInputs()
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Simulate recruiter capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := scoring.NewEngine().HiringCapacity(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.TotalRolesRequired, "roles", in.TotalRolesRequired, "total roles to fill")
	f.Float64Var(&in.RolesPerRecruiter, "per-recruiter", in.RolesPerRecruiter, "roles one recruiter can fill")
	f.Float64Var(&in.OfferDeclineRate, "decline", in.OfferDeclineRate, "offer decline rate, percent")
	return cmd
}

func (c *CLI) timeToHireCommand() *cobra.Command {
	in := scoring.DefaultTimeToHireInputs()
	cmd := &cobra.Command{
		Use:   "time-to-hire",
		Short: "Simulate time-to-hire inflation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := scoring.NewEngine().TimeToHire(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.BaseTimeToHire, "base", in.BaseTimeToHire, "base time to hire in days")
	f.Float64Var(&in.CompetitionIncrease, "competition", in.CompetitionIncrease, "competition increase, percent")
	f.Float64Var(&in.AffectedRolesPercent, "affected", in.AffectedRolesPercent, "share of affected roles, percent")
	return cmd
}

func (c *CLI) scenarioCommand() *cobra.Command {
	p := scoring.DefaultScenarioParams()
	var preset string
	var list bool

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Project a five-year workforce scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				return c.print(scoring.ScenarioPresets())
			}
			params := p
			if preset != "" {
				found, err := scoring.FindPreset(preset)
				if err != nil {
					return err
				}
				params = found.Params
			}
			out, err := scoring.NewEngine().Scenario(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&preset, "preset", "", "named preset; overrides the lever flags")
	f.BoolVar(&list, "list", false, "list the presets instead of projecting")
	f.Float64Var(&p.HiringBudget, "hiring-budget", p.HiringBudget, "annual hiring budget")
	f.Float64Var(&p.TrainingInvestment, "training", p.TrainingInvestment, "annual training investment")
	f.Float64Var(&p.ContractorUsage, "contractors", p.ContractorUsage, "contractor usage, percent")
	f.Float64Var(&p.AIAdoption, "ai-adoption", p.AIAdoption, "AI adoption, percent")
	f.Float64Var(&p.AttritionRate, "attrition", p.AttritionRate, "attrition rate, percent")
	return cmd
}

func (c *CLI) lifecycleCommand() *cobra.Command {
	s := scoring.DefaultTradeoffSettings()
	cmd := &cobra.Command{
		Use:   "lifecycle",
		Short: "Compute lifecycle stability, continuity and tradeoffs",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for name, v := range map[string]float64{
				"external-hiring":      s.ExternalHiring,
				"upskilling":           s.Upskilling,
				"knowledge-transfer":   s.KnowledgeTransfer,
				"dependency-reduction": s.DependencyReduction,
			} {
				if v < 0 || v > 100 {
					return fmt.Errorf("--%s must be in [0,100], got %g", name, v)
				}
			}
			ds, err := c.dataset()
			if err != nil {
				return err
			}
			return c.print(scoring.Lifecycle(ds.Employees, ds.Teams, s, c.rand()))
		},
	}
	f := cmd.Flags()
	f.Float64Var(&s.ExternalHiring, "external-hiring", s.ExternalHiring, "external hiring slider, 0-100")
	f.Float64Var(&s.Upskilling, "upskilling", s.Upskilling, "upskilling slider, 0-100")
	f.Float64Var(&s.KnowledgeTransfer, "knowledge-transfer", s.KnowledgeTransfer, "knowledge transfer slider, 0-100")
	f.Float64Var(&s.DependencyReduction, "dependency-reduction", s.DependencyReduction, "dependency reduction slider, 0-100")
	return cmd
}

func (c *CLI) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "csv",
		Short: "Write the roster as CSV to stdout",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ds, err := c.dataset()
			if err != nil {
				return err
			}
			return export.WriteCSV(c.out, ds.Employees)
		},
	})
	return cmd
}
