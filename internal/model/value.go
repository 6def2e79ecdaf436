package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Value is the value of an annotation or field option.
// It is either bare presence (e.g. @lombok) or a string parameter
// (e.g. @schema(sales)). The string may be empty, which is a shape error for
// annotations that require a value.
type Value struct {
	text    string
	hasText bool
}

// Present returns a value that marks bare presence.
func Present() Value {
	return Value{}
}

// WithText returns a parameterized value.
func WithText(s string) Value {
	return Value{text: s, hasText: true}
}

// Text returns the string parameter and whether one was supplied.
func (v Value) Text() (string, bool) {
	return v.text, v.hasText
}

// IsFlag reports whether the value is bare presence.
func (v Value) IsFlag() bool {
	return !v.hasText
}

// String returns a human-readable representation.
func (v Value) String() string {
	if !v.hasText {
		return "true"
	}

	return fmt.Sprintf("%q", v.text)
}

// UnmarshalYAML accepts `true`, null (a bare key) or any scalar.
// Non-string scalars such as `2` are kept as their literal text.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: annotation value must be a scalar", node.Line)
	}

	switch node.ShortTag() {
	case "!!null":
		*v = Present()
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}

		if !b {
			return fmt.Errorf("line %d: annotation flag can only be true; remove the key instead", node.Line)
		}

		*v = Present()
	default:
		*v = WithText(node.Value)
	}

	return nil
}

// MarshalYAML writes presence as `true` and parameters as strings.
func (v Value) MarshalYAML() (interface{}, error) {
	if !v.hasText {
		return true, nil
	}

	return v.text, nil
}

// Annotations maps annotation (or option) names to their values.
// A missing key means the annotation is absent.
type Annotations map[string]Value

// Lookup returns the value for name. It is safe on a nil map.
func (a Annotations) Lookup(name string) (Value, bool) {
	if a == nil {
		return Value{}, false
	}

	v, ok := a[name]

	return v, ok
}
