package annotation

import "fmt"

// ValidationError reports an annotation whose value shape violates its rule.
// It is fatal for the entity being processed.
type ValidationError struct {
	Entity     string
	Annotation string
	Constraint Constraint
	// Example is a sample value shown for annotations that require one.
	Example string
}

// Expectation returns what the annotation should look like.
func (e *ValidationError) Expectation() string {
	if e.Constraint == ConstraintRequired {
		example := e.Example
		if example == "" {
			example = "value"
		}

		return fmt.Sprintf("must have a value, e.g. @%s(%s)", e.Annotation, example)
	}

	return "must not have a value"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entity %s: annotation @%s %s", e.Entity, e.Annotation, e.Expectation())
}
