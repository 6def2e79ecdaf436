package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValue(t *testing.T) {
	p := Present()
	assert.True(t, p.IsFlag())
	text, ok := p.Text()
	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Equal(t, "true", p.String())

	v := WithText("sales")
	assert.False(t, v.IsFlag())
	text, ok = v.Text()
	assert.True(t, ok)
	assert.Equal(t, "sales", text)
	assert.Equal(t, `"sales"`, v.String())

	// The zero value is bare presence.
	assert.Equal(t, Present(), Value{})
}

func TestValue_YAML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Annotations
	}{
		{"flag true", "a: true", Annotations{"a": Present()}},
		{"bare key", "a:", Annotations{"a": Present()}},
		{"string", "a: sales", Annotations{"a": WithText("sales")}},
		{"quoted empty", `a: ""`, Annotations{"a": WithText("")}},
		{"number", "a: 2", Annotations{"a": WithText("2")}},
		{"quoted true", `a: "true"`, Annotations{"a": WithText("true")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Annotations
			require.NoError(t, yaml.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValue_YAMLErrors(t *testing.T) {
	var got Annotations
	require.Error(t, yaml.Unmarshal([]byte("a: false"), &got))
	require.Error(t, yaml.Unmarshal([]byte("a: [1, 2]"), &got))
}

func TestValue_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(Annotations{"a": Present(), "b": WithText("v2")})
	require.NoError(t, err)
	assert.Equal(t, "a: true\nb: v2\n", string(out))
}

func TestAnnotations_LookupNil(t *testing.T) {
	var a Annotations
	_, ok := a.Lookup("x")
	assert.False(t, ok)
}
