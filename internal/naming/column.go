package naming

import (
	"fmt"

	"entity-annotator/internal/model"
)

// Resolver reports whether a name is a reserved keyword of a dialect.
type Resolver interface {
	IsReserved(name string, dialect model.Dialect) bool
}

// Warning is an advisory raised when a reserved keyword cannot be
// disambiguated. Generation continues with the unprefixed name.
type Warning struct {
	Name    string
	Dialect model.Dialect
}

// String returns the human-readable warning.
func (w *Warning) String() string {
	return fmt.Sprintf(
		"the field name '%s' is regarded as a reserved keyword for %s, but you have defined an empty jhiPrefix. "+
			"This might lead to a non-working application.",
		w.Name, w.Dialect,
	)
}

// Deriver computes column names from annotation hints.
type Deriver struct {
	resolver Resolver
}

// NewDeriver creates a Deriver backed by the given resolver.
// A nil resolver treats every name as non-reserved.
func NewDeriver(resolver Resolver) *Deriver {
	return &Deriver{resolver: resolver}
}

// ColumnName snake-cases rawHint and, if the result collides with a reserved
// keyword of dialect, prefixes it with prefix. When there is a collision but no
// prefix, the unprefixed name is returned together with a Warning.
// The prefix is used as given.
func (d *Deriver) ColumnName(rawHint, prefix string, dialect model.Dialect) (string, *Warning) {
	name := SnakeCase(rawHint)
	if !d.isReserved(name, dialect) {
		return name, nil
	}

	if prefix == "" {
		return name, &Warning{Name: name, Dialect: dialect}
	}

	return prefix + "_" + name, nil
}

func (d *Deriver) isReserved(name string, dialect model.Dialect) bool {
	if d == nil || d.resolver == nil || name == "" {
		return false
	}

	return d.resolver.IsReserved(name, dialect)
}
