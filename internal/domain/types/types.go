// Package types contains small enumerations shared across the application.
package types

import "strings"

// Criticality is how critical an employee's role is.
type Criticality string

const (
	CriticalityLow      Criticality = "low"
	CriticalityMedium   Criticality = "medium"
	CriticalityHigh     Criticality = "high"
	CriticalityCritical Criticality = "critical"
)

// Valid reports whether c is one of the known criticality levels.
func (c Criticality) Valid() bool {
	switch c {
	case CriticalityLow, CriticalityMedium, CriticalityHigh, CriticalityCritical:
		return true
	}
	return false
}

// Scarcity is the market scarcity tier of a skill.
type Scarcity string

const (
	ScarcityLow     Scarcity = "low"
	ScarcityMedium  Scarcity = "medium"
	ScarcityHigh    Scarcity = "high"
	ScarcityExtreme Scarcity = "extreme"
)

// Urgency is how soon a capability is needed.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyCritical Urgency = "critical"
)

// Multiplier weights the time-fit component of a strategy score.
// Anything other than critical or medium counts as low.
func (u Urgency) Multiplier() float64 {
	switch u {
	case UrgencyCritical:
		return 1.5
	case UrgencyMedium:
		return 1
	default:
		return 0.7
	}
}

// RiskTolerance is how much delivery risk a decision maker accepts.
type RiskTolerance string

const (
	RiskToleranceLow    RiskTolerance = "low"
	RiskToleranceMedium RiskTolerance = "medium"
	RiskToleranceHigh   RiskTolerance = "high"
)

// Threshold is the highest strategy risk that still counts as aligned.
func (r RiskTolerance) Threshold() float64 {
	switch r {
	case RiskToleranceLow:
		return 30
	case RiskToleranceMedium:
		return 50
	default:
		return 70
	}
}

// Level is a three-tier qualitative rating used by the simulators.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// RiskLevel is the four-tier rating used for knowledge concentration.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// Normalize lower-cases and trims an enum value read from user input.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
