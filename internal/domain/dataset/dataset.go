// Package dataset holds the reference roster, teams and skill gaps the service starts from.
package dataset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/talentiq/internal/domain/model"
)

// ErrInvalidDataset is returned when an override file cannot be used.
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset is the full set of reference data.
type Dataset struct {
	Employees      []model.Employee          `yaml:"employees"`
	Teams          []model.Team              `yaml:"teams"`
	SkillGaps      []model.SkillGap          `yaml:"skill_gaps"`
	Trends         []model.TrendPoint        `yaml:"trends"`
	CostComparison []model.CostComparisonRow `yaml:"cost_comparison"`
	Dashboard      *model.DashboardMetrics   `yaml:"dashboard"`
}

// Default returns a fresh copy of the built-in dataset.
func Default() *Dataset {
	d := seedDashboard()
	return &Dataset{
		Employees:      seedEmployees(),
		Teams:          seedTeams(),
		SkillGaps:      seedSkillGaps(),
		Trends:         seedTrends(),
		CostComparison: seedCostComparison(),
		Dashboard:      &d,
	}
}

// Load reads a YAML override from path. Sections missing from the file keep their defaults.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML document on top of the defaults.
func Parse(raw []byte) (*Dataset, error) {
	var over Dataset
	if err := yaml.Unmarshal(raw, &over); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	ds := Default()
	if over.Employees != nil {
		ds.Employees = over.Employees
	}
	if over.Teams != nil {
		ds.Teams = over.Teams
	}
	if over.SkillGaps != nil {
		ds.SkillGaps = over.SkillGaps
	}
	if over.Trends != nil {
		ds.Trends = over.Trends
	}
	if over.CostComparison != nil {
		ds.CostComparison = over.CostComparison
	}
	if over.Dashboard != nil {
		ds.Dashboard = over.Dashboard
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	for i := range ds.Employees {
		ds.Employees[i].Clamp()
	}
	return ds, nil
}

// Validate checks the invariants the formulas rely on.
func (d *Dataset) Validate() error {
	if len(d.SkillGaps) == 0 {
		return fmt.Errorf("%w: at least one skill gap is required", ErrInvalidDataset)
	}
	seen := make(map[string]struct{}, len(d.Employees))
	for _, e := range d.Employees {
		if e.ID == "" {
			return fmt.Errorf("%w: employee %q has no id", ErrInvalidDataset, e.Name)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate employee id %s", ErrInvalidDataset, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

// EmployeesCopy returns a deep copy of the seed employees.
func (d *Dataset) EmployeesCopy() []model.Employee {
	out := make([]model.Employee, len(d.Employees))
	for i, e := range d.Employees {
		out[i] = e.Clone()
	}
	return out
}

// TeamsCopy returns a deep copy of the teams.
func (d *Dataset) TeamsCopy() []model.Team {
	out := make([]model.Team, len(d.Teams))
	for i, t := range d.Teams {
		out[i] = t.Clone()
	}
	return out
}
