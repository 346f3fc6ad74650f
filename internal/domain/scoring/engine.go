package scoring

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/okian/talentiq/internal/domain/model"
)

// ErrUnknownSkill is returned by a strict Engine when the requested skill has no gap record.
var ErrUnknownSkill = errors.New("unknown skill")

// Option configures an Engine.
type Option func(*Engine)

// WithSkillGaps sets the reference skill gaps decisions are made against.
func WithSkillGaps(gaps []model.SkillGap) Option {
	return func(e *Engine) {
		e.gaps = slices.Clone(gaps)
	}
}

// WithAnalysisDelay simulates the time an analysis takes before results are returned.
func WithAnalysisDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.delay = d
		}
	}
}

// WithStrictSkillLookup makes Decide fail on unknown skills instead of falling back.
func WithStrictSkillLookup(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// Engine runs the formulas behind a context-aware, optionally delayed interface.
type Engine struct {
	gaps   []model.SkillGap
	delay  time.Duration
	strict bool
}

// NewEngine builds an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SkillGaps returns a copy of the engine's skill gaps.
func (e *Engine) SkillGaps() []model.SkillGap {
	return slices.Clone(e.gaps)
}

// Decide runs the strategy decision engine.
func (e *Engine) Decide(ctx context.Context, in DecisionInputs) (DecisionOutput, error) {
	if err := e.wait(ctx); err != nil {
		return DecisionOutput{}, err
	}
	out := CalculateDecision(in, e.gaps)
	if out.SkillFellBack && e.strict {
		return DecisionOutput{}, fmt.Errorf("%w: %q", ErrUnknownSkill, in.Skill)
	}
	return out, nil
}

// HiringCapacity validates and runs the recruiter capacity simulator.
func (e *Engine) HiringCapacity(ctx context.Context, in HiringCapacityInputs) (HiringCapacityResult, error) {
	if err := in.Validate(); err != nil {
		return HiringCapacityResult{}, err
	}
	if err := e.wait(ctx); err != nil {
		return HiringCapacityResult{}, err
	}
	return HiringCapacity(in), nil
}

// TimeToHire runs the time-to-hire simulator.
func (e *Engine) TimeToHire(ctx context.Context, in TimeToHireInputs) (TimeToHireResult, error) {
	if err := e.wait(ctx); err != nil {
		return TimeToHireResult{}, err
	}
	return TimeToHire(in), nil
}

// Scenario runs the five-year projection.
func (e *Engine) Scenario(ctx context.Context, p ScenarioParams) (ScenarioResult, error) {
	if err := e.wait(ctx); err != nil {
		return ScenarioResult{}, err
	}
	return RunScenario(p), nil
}

func (e *Engine) wait(ctx context.Context) error {
	if e.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(e.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
