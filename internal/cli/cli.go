// Package cli implements talentiq-cli, which runs the workforce formulas
// offline against the built-in dataset or a YAML override.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/talentiq/internal/domain/dataset"
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/scoring"
)

// ErrEmployeeNotFound is returned by attrition for an unknown employee id.
var ErrEmployeeNotFound = errors.New("employee not found")

// CLI holds the flags shared by every command.
type CLI struct {
	out         io.Writer
	datasetPath string
	strict      bool
	compact     bool
	seed        int64
}

// NewRootCommand creates the root cobra command writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	c := &CLI{out: out}

	root := &cobra.Command{
		Use:           "talentiq-cli",
		Short:         "Workforce analytics formulas",
		Long:          "Compute attrition, strategy, capacity and scenario formulas against the reference dataset.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.datasetPath, "dataset", "", "YAML file overriding the built-in dataset")
	flags.BoolVar(&c.strict, "strict", false, "reject skills that have no gap record")
	flags.BoolVar(&c.compact, "compact", false, "print JSON on a single line")
	flags.Int64Var(&c.seed, "seed", 0, "seed for randomised projections (0 = time seeded)")

	root.AddCommand(
		c.decideCommand(),
		c.attritionCommand(),
		c.capacityCommand(),
		c.timeToHireCommand(),
		c.scenarioCommand(),
		c.lifecycleCommand(),
		c.exportCommand(),
	)
	return root
}

// Execute runs the root command with args.
func Execute(ctx context.Context, out io.Writer, args []string) error {
	root := NewRootCommand(out)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (c *CLI) dataset() (*dataset.Dataset, error) {
	if c.datasetPath == "" {
		return dataset.Default(), nil
	}
	return dataset.Load(c.datasetPath)
}

func (c *CLI) engine(ds *dataset.Dataset) *scoring.Engine {
	return scoring.NewEngine(
		scoring.WithSkillGaps(ds.SkillGaps),
		scoring.WithStrictSkillLookup(c.strict),
	)
}

func (c *CLI) rand() *rand.Rand {
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // projection jitter only
}

func (c *CLI) print(v any) error {
	enc := json.NewEncoder(c.out)
	if !c.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func findEmployee(employees []model.Employee, id string) (model.Employee, error) {
	for _, e := range employees {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Employee{}, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
}
