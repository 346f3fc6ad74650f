package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/okian/talentiq/internal/adapters/repository"
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/scoring"
	"github.com/okian/talentiq/internal/domain/types"
	"github.com/okian/talentiq/pkg/logger"
	"github.com/okian/talentiq/pkg/metrics"
)

const (
	defaultTenure    = 1
	defaultSubFactor = 50
)

// NewEmployee is the payload of the add-employee form.
// Sub-factors left unset start at the midpoint of the scale.
type NewEmployee struct {
	Name        string            `json:"name" validate:"required"`
	Role        string            `json:"role" validate:"required"`
	Department  string            `json:"department" validate:"required"`
	Skills      []string          `json:"skills"`
	Criticality types.Criticality `json:"criticality" validate:"omitempty,oneof=low medium high critical"`
	Tenure      *int              `json:"tenure" validate:"omitempty,min=0"`
	IsKeyPerson bool              `json:"is_key_person"`

	CompensationPercentile *int `json:"compensation_percentile" validate:"omitempty,min=0,max=100"`
	WorkloadStress         *int `json:"workload_stress" validate:"omitempty,min=0,max=100"`
	LearningOpportunities  *int `json:"learning_opportunities" validate:"omitempty,min=0,max=100"`
	CareerProgression      *int `json:"career_progression" validate:"omitempty,min=0,max=100"`
	OfferExposure          *int `json:"offer_exposure" validate:"omitempty,min=0,max=100"`
}

func (n NewEmployee) employee() model.Employee {
	e := model.Employee{
		Name:                   n.Name,
		Role:                   n.Role,
		Department:             n.Department,
		Skills:                 cleanSkills(n.Skills),
		Criticality:            n.Criticality,
		Tenure:                 valueOr(n.Tenure, defaultTenure),
		IsKeyPerson:            n.IsKeyPerson,
		CompensationPercentile: valueOr(n.CompensationPercentile, defaultSubFactor),
		WorkloadStress:         valueOr(n.WorkloadStress, defaultSubFactor),
		LearningOpportunities:  valueOr(n.LearningOpportunities, defaultSubFactor),
		CareerProgression:      valueOr(n.CareerProgression, defaultSubFactor),
		OfferExposure:          valueOr(n.OfferExposure, defaultSubFactor),
	}
	if e.Criticality == "" {
		e.Criticality = types.CriticalityMedium
	}
	e.AttritionRisk = scoring.CreationRisk(scoring.SubFactorsOf(e))
	return e
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// cleanSkills trims, drops empties and removes duplicates while keeping order.
func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// validationError flattens validator output into a stable, readable message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidEmployee, err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + fields[k]
	}
	return fmt.Errorf("%w: %s", ErrInvalidEmployee, strings.Join(parts, ", "))
}

// ListEmployees returns the roster in insertion order.
func (s *Service) ListEmployees(ctx context.Context) []model.Employee {
	return s.store.List(ctx)
}

// GetEmployee returns one employee by id.
func (s *Service) GetEmployee(ctx context.Context, id string) (model.Employee, error) {
	return s.store.Get(ctx, id)
}

// AddEmployee validates and stores a new employee, deriving its attrition risk
// from the sub-factors. A repeated idempotency key returns the employee first
// created for it and replay is true.
func (s *Service) AddEmployee(ctx context.Context, in NewEmployee, idempotencyKey string) (model.Employee, bool, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
	in.Department = strings.TrimSpace(in.Department)
	in.Criticality = types.Criticality(types.Normalize(string(in.Criticality)))
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return model.Employee{}, false, validationError(err)
	}
	e := in.employee()

	if idempotencyKey == "" {
		added, err := s.store.Add(ctx, e)
		return added, false, err
	}

	if id, ok := s.deduper.Lookup(ctx, idempotencyKey); ok {
		if prior, err := s.store.Get(ctx, id); err == nil {
			metrics.RecordIdempotentReplay()
			return prior, true, nil
		}
		// The original was removed since; the key is free again.
		s.deduper.Unrecord(ctx, idempotencyKey)
	}

	added, err := s.store.Add(ctx, e)
	if err != nil {
		return model.Employee{}, false, err
	}
	if winner, existed := s.deduper.Record(ctx, idempotencyKey, added.ID); existed && winner != added.ID {
		// Lost a race with a concurrent submission under the same key.
		s.store.Remove(ctx, added.ID)
		prior, err := s.store.Get(ctx, winner)
		if err != nil {
			return model.Employee{}, false, err
		}
		metrics.RecordIdempotentReplay()
		return prior, true, nil
	}
	s.logger.Debug(ctx, "employee created",
		logger.String("id", added.ID),
		logger.Int("attrition_risk", added.AttritionRisk),
	)
	return added, false, nil
}

// UpdateEmployee applies a shallow patch to an employee.
func (s *Service) UpdateEmployee(ctx context.Context, id string, p model.EmployeePatch) (model.Employee, error) {
	if p.Criticality != nil {
		c := types.Criticality(types.Normalize(string(*p.Criticality)))
		if !c.Valid() {
			return model.Employee{}, fmt.Errorf("%w: criticality oneof", ErrInvalidEmployee)
		}
		p.Criticality = &c
	}
	if p.Skills != nil {
		skills := cleanSkills(*p.Skills)
		p.Skills = &skills
	}
	return s.store.Update(ctx, id, p)
}

// RemoveEmployee deletes an employee. Unknown ids are a no-op and report false.
func (s *Service) RemoveEmployee(ctx context.Context, id string) bool {
	return s.store.Remove(ctx, id)
}

// AttritionAnalysis itemises the risk factors of one employee.
func (s *Service) AttritionAnalysis(ctx context.Context, id string) (scoring.AttritionAnalysis, error) {
	e, err := s.store.Get(ctx, id)
	if err != nil {
		return scoring.AttritionAnalysis{}, err
	}
	return scoring.CalculateAttritionRisk(e), nil
}

// RetentionActions lists suggested retention actions for one employee.
func (s *Service) RetentionActions(ctx context.Context, id string) ([]string, error) {
	e, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return scoring.RetentionActions(e), nil
}

// StartRefresh kicks off a background re-score of the roster.
// It returns repository.ErrRefreshInProgress when one is already running.
func (s *Service) StartRefresh(ctx context.Context) error {
	if !s.store.StartRefresh() {
		return repository.ErrRefreshInProgress
	}
	s.logger.Info(ctx, "attrition refresh started")
	return nil
}

// IsRefreshing reports whether a refresh is running.
func (s *Service) IsRefreshing() bool {
	return s.store.IsRefreshing()
}
