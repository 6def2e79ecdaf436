package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"order", "order"},
		{"Order", "order"},
		{"ORDER", "order"},
		{"exampleString", "example_string"},
		{"ExampleString", "example_string"},

		// Acronyms
		{"orderID", "order_id"},
		{"XMLParser", "xml_parser"},
		{"getHTTPResponse", "get_http_response"},

		// Separators
		{"order_id", "order_id"},
		{"order-id", "order_id"},
		{"order item", "order_item"},
		{"__order__", "order"},
		{"order.item/id", "order_item_id"},

		// Digits
		{"version2", "version_2"},
		{"v2Api", "v_2_api"},
		{"address_2", "address_2"},

		// Diacritics and apostrophes
		{"café", "cafe"},
		{"Größe", "grosse"},
		{"ÅrsBelopp", "ars_belopp"},
		{"naïveUser", "naive_user"},
		{"Ærø", "aero"},
		{"don't", "dont"},
		{"don\u2019t", "dont"},
		{"o'clock time", "oclock_time"},

		// Edge cases
		{"", ""},
		{"_", ""},
		{"a", "a"},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

func TestSnakeCase_Idempotent(t *testing.T) {
	inputs := []string{"exampleString", "XMLParser", "jhi_order", "version2", "Order Line Item", "Größe", "don't"}

	for _, in := range inputs {
		once := SnakeCase(in)
		assert.Equal(t, once, SnakeCase(once), "SnakeCase(%q) is not stable", in)
	}
}
