package annotation

import (
	"errors"
	"fmt"
	"strings"

	"entity-annotator/internal/model"
)

// Rule describes one recognized entity annotation.
type Rule struct {
	Name       string
	Constraint Constraint
	// Example is shown in the error when a required value is missing.
	Example string
	// Apply fills the derived attributes of e. present reports whether the
	// annotation is on the entity and v is its value. Apply must only set
	// attributes that are still unset.
	Apply func(e *model.Entity, v model.Value, present bool)
}

// Validate checks the value shape against the rule's constraint.
// An absent annotation is always valid.
func (r Rule) Validate(entity string, v model.Value, present bool) error {
	if !present {
		return nil
	}

	text, hasText := v.Text()
	hasValue := hasText && strings.TrimSpace(text) != ""

	switch r.Constraint {
	case ConstraintNone:
		if hasValue {
			return r.violation(entity)
		}
	case ConstraintRequired:
		if !hasValue {
			return r.violation(entity)
		}
	}

	return nil
}

func (r Rule) violation(entity string) *ValidationError {
	return &ValidationError{
		Entity:     entity,
		Annotation: r.Name,
		Constraint: r.Constraint,
		Example:    r.Example,
	}
}

// FlagRule returns a rule for a value-forbidden annotation. The flag
// returned by target defaults to whether the annotation is present.
func FlagRule(name string, target func(e *model.Entity) **bool) Rule {
	return Rule{
		Name:       name,
		Constraint: ConstraintNone,
		Apply: func(e *model.Entity, _ model.Value, present bool) {
			if p := target(e); *p == nil {
				*p = model.Bool(present)
			}
		},
	}
}

// ValueRule returns a rule for a value-required annotation. The presence
// flag defaults to whether the annotation is present and, when it is, the
// value is copied into the attribute returned by value.
func ValueRule(name, example string, flag func(e *model.Entity) **bool, value func(e *model.Entity) **string) Rule {
	return Rule{
		Name:       name,
		Constraint: ConstraintRequired,
		Example:    example,
		Apply: func(e *model.Entity, v model.Value, present bool) {
			if p := flag(e); *p == nil {
				*p = model.Bool(present)
			}

			if !present {
				return
			}

			if p := value(e); *p == nil {
				text, _ := v.Text()
				*p = model.String(text)
			}
		},
	}
}

// Registry holds entity annotation rules in evaluation order.
// Register rules before handing the registry to a processor; it is not
// safe to modify concurrently with processing.
type Registry struct {
	rules []Rule
	index map[string]int
}

// NewRegistry creates a registry with the given rules, in order.
func NewRegistry(rules ...Rule) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(rules))}

	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// DefaultRegistry returns a new registry with the built-in entity rules:
// lombok, schema, noCodeComment, esjtPattern, apiVersion, apiUrl.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		FlagRule(Lombok, func(e *model.Entity) **bool { return &e.Lombok }),
		ValueRule(Schema, "sales",
			func(e *model.Entity) **bool { return &e.HasSchema },
			func(e *model.Entity) **string { return &e.EntitySchemaName }),
		FlagRule(NoCodeComment, func(e *model.Entity) **bool { return &e.NoCodeComment }),
		FlagRule(EsjtPattern, func(e *model.Entity) **bool { return &e.EsjtPattern }),
		ValueRule(APIVersion, "v1",
			func(e *model.Entity) **bool { return &e.HasAPIVersion },
			func(e *model.Entity) **string { return &e.APIVersion }),
		ValueRule(APIURL, "/api/v1",
			func(e *model.Entity) **bool { return &e.HasAPIURL },
			func(e *model.Entity) **string { return &e.APIURL }),
	)
	if err != nil {
		panic(err)
	}

	return r
}

// Register appends a rule. Names must be unique.
func (r *Registry) Register(rule Rule) error {
	if rule.Name == "" {
		return errors.New("annotation rule has no name")
	}

	if rule.Apply == nil {
		return fmt.Errorf("annotation rule %q has no Apply function", rule.Name)
	}

	if _, ok := r.index[rule.Name]; ok {
		return fmt.Errorf("duplicate annotation rule %q", rule.Name)
	}

	r.index[rule.Name] = len(r.rules)
	r.rules = append(r.rules, rule)

	return nil
}

// Lookup returns the rule registered under name.
func (r *Registry) Lookup(name string) (Rule, bool) {
	i, ok := r.index[name]
	if !ok {
		return Rule{}, false
	}

	return r.rules[i], true
}

// Rules returns a copy of the rules in evaluation order.
func (r *Registry) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

func (r *Registry) names() []string {
	out := make([]string, len(r.rules))
	for i, rule := range r.rules {
		out[i] = rule.Name
	}

	return out
}
