package pipeline

import (
	"errors"
	"fmt"

	"entity-annotator/internal/annotation"
	"entity-annotator/internal/diagnostic"
	"entity-annotator/internal/model"
	"entity-annotator/internal/naming"
)

// Default stage names.
const (
	StageColumnNames       = "column-names"
	StageGeneratedValues   = "generated-values"
	StageEntityAnnotations = "entity-annotations"
)

// StageFunc transforms an entity in place. Diagnostics that do not stop the
// run go to diags; a returned error stops the run for this entity.
type StageFunc func(e *model.Entity, diags *diagnostic.Diagnostics) error

// Stage is a named step of the pipeline.
type Stage struct {
	Name string
	Run  StageFunc
}

// Config holds the collaborators of the default pipeline.
type Config struct {
	// Resolver answers reserved keyword queries. Nil means nothing is reserved.
	Resolver naming.Resolver
	// Registry holds entity annotation rules. Nil means the default rules.
	Registry *annotation.Registry
}

// Result is the outcome of running the pipeline over one entity.
type Result struct {
	Entity      *model.Entity
	Diagnostics diagnostic.Diagnostics
}

// Pipeline runs stages in order. Register hooks before calling Run; a
// configured Pipeline is safe to share between goroutines as long as its
// stages are.
type Pipeline struct {
	stages []Stage
	before map[string][]Stage
	after  map[string][]Stage
}

// New creates a pipeline from the given stages.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
		before: map[string][]Stage{},
		after:  map[string][]Stage{},
	}
}

// NewDefault creates the standard annotation pipeline.
func NewDefault(cfg Config) *Pipeline {
	fields := annotation.NewFieldProcessor(naming.NewDeriver(cfg.Resolver))
	entities := annotation.NewEntityProcessor(cfg.Registry)

	return New(
		Stage{Name: StageColumnNames, Run: func(e *model.Entity, diags *diagnostic.Diagnostics) error {
			fields.ApplyColumns(e, diags)
			fields.CheckOptions(e, diags)

			return nil
		}},
		Stage{Name: StageGeneratedValues, Run: func(e *model.Entity, _ *diagnostic.Diagnostics) error {
			fields.ApplyGeneratedValues(e)
			return nil
		}},
		Stage{Name: StageEntityAnnotations, Run: entities.Process},
	)
}

// Before registers a hook that runs right before the named stage.
func (p *Pipeline) Before(stage string, hook Stage) error {
	if err := p.checkHook(stage, hook); err != nil {
		return err
	}

	p.before[stage] = append(p.before[stage], hook)

	return nil
}

// After registers a hook that runs right after the named stage.
func (p *Pipeline) After(stage string, hook Stage) error {
	if err := p.checkHook(stage, hook); err != nil {
		return err
	}

	p.after[stage] = append(p.after[stage], hook)

	return nil
}

func (p *Pipeline) checkHook(stage string, hook Stage) error {
	if hook.Run == nil {
		return fmt.Errorf("hook %q has no Run function", hook.Name)
	}

	for _, s := range p.stages {
		if s.Name == stage {
			return nil
		}
	}

	return fmt.Errorf("unknown stage %q", stage)
}

// Steps returns the names of every step in execution order, hooks included.
func (p *Pipeline) Steps() []string {
	var out []string

	for _, s := range p.steps() {
		out = append(out, s.Name)
	}

	return out
}

func (p *Pipeline) steps() []Stage {
	var out []Stage

	for _, s := range p.stages {
		out = append(out, p.before[s.Name]...)
		out = append(out, s)
		out = append(out, p.after[s.Name]...)
	}

	return out
}

// Run executes every step over e in order and marks it processed.
// The first failing step stops the run; its error is returned wrapped with
// the step name. The Result is returned in both cases so warnings gathered
// before the failure are not lost. Running an already processed entity again
// leaves it unchanged.
func (p *Pipeline) Run(e *model.Entity) (*Result, error) {
	if e == nil {
		return nil, errors.New("entity is nil")
	}

	res := &Result{Entity: e}

	for _, s := range p.steps() {
		if err := s.Run(e, &res.Diagnostics); err != nil {
			return res, fmt.Errorf("stage %s: %w", s.Name, err)
		}
	}

	e.State = model.StateProcessed

	return res, nil
}
