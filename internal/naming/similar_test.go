package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"lombok", "lombock", 1},
		{"ABC", "abc", 3},
		{"größe", "gröse", 1},
		{"café", "cafe", 1},
		{"日本", "日", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestClosest(t *testing.T) {
	known := []string{"lombok", "schema", "noCodeComment", "apiVersion", "apiUrl"}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"lombock", "lombok", true},
		{"Schema", "schema", true},
		{"apiurl", "apiUrl", true},
		{"apiVerison", "apiVersion", true},
		{"lombok", "", false},
		{"dto", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.name, known, 2)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
