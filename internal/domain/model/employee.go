// Package model contains domain records passed between layers.
package model

import (
	"slices"

	"github.com/okian/talentiq/internal/domain/types"
)

// Employee is a single person on the roster.
// Every percentage-like field is kept in [0,100].
type Employee struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Role        string            `json:"role" yaml:"role"`
	Department  string            `json:"department" yaml:"department"`
	Skills      []string          `json:"skills" yaml:"skills"`
	Criticality types.Criticality `json:"criticality" yaml:"criticality"`
	Tenure      int               `json:"tenure" yaml:"tenure"`

	AttritionRisk int `json:"attrition_risk" yaml:"attrition_risk"`

	CompensationPercentile int `json:"compensation_percentile" yaml:"compensation_percentile"`
	WorkloadStress         int `json:"workload_stress" yaml:"workload_stress"`
	LearningOpportunities  int `json:"learning_opportunities" yaml:"learning_opportunities"`
	CareerProgression      int `json:"career_progression" yaml:"career_progression"`
	OfferExposure          int `json:"offer_exposure" yaml:"offer_exposure"`

	IsKeyPerson bool `json:"is_key_person" yaml:"is_key_person"`
}

// Clone returns a copy that shares no slices with e.
func (e Employee) Clone() Employee {
	e.Skills = slices.Clone(e.Skills)
	return e
}

// Clamp forces every percentage-like field into [0,100].
func (e *Employee) Clamp() {
	e.AttritionRisk = Clamp100(e.AttritionRisk)
	e.CompensationPercentile = Clamp100(e.CompensationPercentile)
	e.WorkloadStress = Clamp100(e.WorkloadStress)
	e.LearningOpportunities = Clamp100(e.LearningOpportunities)
	e.CareerProgression = Clamp100(e.CareerProgression)
	e.OfferExposure = Clamp100(e.OfferExposure)
}

// Clamp100 clamps v into [0,100].
func Clamp100(v int) int {
	return min(100, max(0, v))
}

// EmployeePatch carries the fields of a shallow update. Nil fields are left untouched.
type EmployeePatch struct {
	Name                   *string            `json:"name,omitempty"`
	Role                   *string            `json:"role,omitempty"`
	Department             *string            `json:"department,omitempty"`
	Skills                 *[]string          `json:"skills,omitempty"`
	Criticality            *types.Criticality `json:"criticality,omitempty"`
	Tenure                 *int               `json:"tenure,omitempty"`
	AttritionRisk          *int               `json:"attrition_risk,omitempty"`
	CompensationPercentile *int               `json:"compensation_percentile,omitempty"`
	WorkloadStress         *int               `json:"workload_stress,omitempty"`
	LearningOpportunities  *int               `json:"learning_opportunities,omitempty"`
	CareerProgression      *int               `json:"career_progression,omitempty"`
	OfferExposure          *int               `json:"offer_exposure,omitempty"`
	IsKeyPerson            *bool              `json:"is_key_person,omitempty"`
}

// Apply merges the non-nil fields of p into e and re-clamps.
func (p EmployeePatch) Apply(e *Employee) {
	setIf(&e.Name, p.Name)
	setIf(&e.Role, p.Role)
	setIf(&e.Department, p.Department)
	if p.Skills != nil {
		e.Skills = slices.Clone(*p.Skills)
	}
	setIf(&e.Criticality, p.Criticality)
	setIf(&e.Tenure, p.Tenure)
	setIf(&e.AttritionRisk, p.AttritionRisk)
	setIf(&e.CompensationPercentile, p.CompensationPercentile)
	setIf(&e.WorkloadStress, p.WorkloadStress)
	setIf(&e.LearningOpportunities, p.LearningOpportunities)
	setIf(&e.CareerProgression, p.CareerProgression)
	setIf(&e.OfferExposure, p.OfferExposure)
	setIf(&e.IsKeyPerson, p.IsKeyPerson)
	e.Clamp()
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
