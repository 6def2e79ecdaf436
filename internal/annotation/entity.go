package annotation

import (
	"errors"
	"fmt"

	"entity-annotator/internal/diagnostic"
	"entity-annotator/internal/model"
)

// EntityProcessor applies the registry's rules to an entity.
type EntityProcessor struct {
	registry *Registry
}

// NewEntityProcessor creates a processor for the given registry.
// A nil registry uses DefaultRegistry.
func NewEntityProcessor(registry *Registry) *EntityProcessor {
	if registry == nil {
		registry = DefaultRegistry()
	}

	return &EntityProcessor{registry: registry}
}

// Process validates and defaults every registered annotation on e.
// All rules are evaluated even when one fails; the returned error joins
// every *ValidationError found. Defaulting is skipped for failing rules.
// Unregistered annotations close to a registered name produce a warning.
func (p *EntityProcessor) Process(e *model.Entity, diags *diagnostic.Diagnostics) error {
	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	var errs []error

	for _, rule := range p.registry.rules {
		v, present := e.Annotations.Lookup(rule.Name)

		if err := rule.Validate(e.Name, v, present); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				diags.AddError(diagnostic.CodeInvalidAnnotationValue,
					fmt.Sprintf("annotation @%s %s", verr.Annotation, verr.Expectation()), e.Name, "")
			}

			errs = append(errs, err)

			continue
		}

		rule.Apply(e, v, present)
	}

	reportMisspelled(e.Annotations, p.registry.names(), diags, e.Name, "")

	return errors.Join(errs...)
}
