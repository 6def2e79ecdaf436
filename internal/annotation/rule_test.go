package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entity-annotator/internal/model"
)

func TestDefaultRegistry_Order(t *testing.T) {
	var names []string
	for _, r := range DefaultRegistry().Rules() {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{Lombok, Schema, NoCodeComment, EsjtPattern, APIVersion, APIURL}, names)
}

func TestDefaultRegistry_Constraints(t *testing.T) {
	reg := DefaultRegistry()

	tests := map[string]Constraint{
		Lombok:        ConstraintNone,
		Schema:        ConstraintRequired,
		NoCodeComment: ConstraintNone,
		EsjtPattern:   ConstraintNone,
		APIVersion:    ConstraintRequired,
		APIURL:        ConstraintRequired,
	}

	for name, want := range tests {
		rule, ok := reg.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, rule.Constraint, name)
	}

	_, ok := reg.Lookup("column")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	noop := func(*model.Entity, model.Value, bool) {}

	reg, err := NewRegistry(Rule{Name: "a", Apply: noop})
	require.NoError(t, err)

	require.EqualError(t, reg.Register(Rule{Name: "a", Apply: noop}), `duplicate annotation rule "a"`)
	require.EqualError(t, reg.Register(Rule{Apply: noop}), "annotation rule has no name")
	require.EqualError(t, reg.Register(Rule{Name: "b"}), `annotation rule "b" has no Apply function`)

	_, err = NewRegistry(Rule{Name: "x", Apply: noop}, Rule{Name: "x", Apply: noop})
	require.Error(t, err)
}

func TestRegistry_RulesIsCopy(t *testing.T) {
	reg := DefaultRegistry()
	rules := reg.Rules()
	rules[0].Name = "mutated"

	_, ok := reg.Lookup(Lombok)
	assert.True(t, ok)
	assert.Equal(t, Lombok, reg.Rules()[0].Name)
}

func TestRule_Validate(t *testing.T) {
	flag := Rule{Name: "flag", Constraint: ConstraintNone}
	valued := Rule{Name: "valued", Constraint: ConstraintRequired, Example: "x"}

	tests := []struct {
		name    string
		rule    Rule
		value   model.Value
		present bool
		wantErr bool
	}{
		{"flag absent", flag, model.Value{}, false, false},
		{"flag present", flag, model.Present(), true, false},
		{"flag empty text", flag, model.WithText(""), true, false},
		{"flag with text", flag, model.WithText("x"), true, true},
		{"valued absent", valued, model.Value{}, false, false},
		{"valued with text", valued, model.WithText("x"), true, false},
		{"valued bare", valued, model.Present(), true, true},
		{"valued empty", valued, model.WithText(""), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate("E", tt.value, tt.present)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Entity: "Invoice", Annotation: "apiUrl", Constraint: ConstraintRequired}
	assert.Equal(t, "entity Invoice: annotation @apiUrl must have a value, e.g. @apiUrl(value)", err.Error())

	err = &ValidationError{Entity: "Invoice", Annotation: "lombok", Constraint: ConstraintNone}
	assert.Equal(t, "entity Invoice: annotation @lombok must not have a value", err.Error())
}

func TestConstraint_String(t *testing.T) {
	assert.Equal(t, "None", ConstraintNone.String())
	assert.Equal(t, "Required", ConstraintRequired.String())
	assert.Equal(t, "Constraint(7)", Constraint(7).String())
}
