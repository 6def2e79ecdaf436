package diagnostic

import (
	"fmt"
	"strings"
)

// Well-known diagnostic codes.
const (
	CodeReservedKeywordNoPrefix = "reserved_keyword_no_prefix"
	CodeInvalidAnnotationValue  = "invalid_annotation_value"
	CodeColumnHintEmpty         = "column_hint_empty"
	CodeColumnNamePreset        = "column_name_preset"
	CodeUnknownAnnotation       = "unknown_annotation"
)

// Diagnostics holds all diagnostic information from one pipeline run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Entity names the entity this relates to (if any).
	Entity string
	// Field names the field this relates to (if any).
	Field string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, entity, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Entity:   entity,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, entity, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Entity:   entity,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, entity, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Entity:   entity,
		Field:    field,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)
	out = append(out, d.Infos...)

	return out
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Entity != "" {
		prefix = append(prefix, "["+d.Entity+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
