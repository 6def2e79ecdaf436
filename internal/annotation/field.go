package annotation

import (
	"fmt"

	"entity-annotator/internal/diagnostic"
	"entity-annotator/internal/model"
	"entity-annotator/internal/naming"
)

// FieldProcessor applies the column and generatedValue field options.
// It never fails; problems are reported as diagnostics.
type FieldProcessor struct {
	deriver *naming.Deriver
}

// NewFieldProcessor creates a processor that derives column names with d.
func NewFieldProcessor(d *naming.Deriver) *FieldProcessor {
	return &FieldProcessor{deriver: d}
}

// CheckOptions warns about field options that look like misspelled known ones.
func (p *FieldProcessor) CheckOptions(e *model.Entity, diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	for _, f := range e.Fields {
		if f != nil {
			reportMisspelled(f.Options, fieldOptions, diags, e.Name, f.Name)
		}
	}
}

// ApplyColumns applies the column option to every field.
func (p *FieldProcessor) ApplyColumns(e *model.Entity, diags *diagnostic.Diagnostics) {
	for _, f := range e.Fields {
		if f != nil {
			p.ApplyColumn(e, f, diags)
		}
	}
}

// ApplyGeneratedValues applies the generatedValue option to every field.
func (p *FieldProcessor) ApplyGeneratedValues(e *model.Entity) {
	for _, f := range e.Fields {
		if f != nil {
			ApplyGeneratedValue(f)
		}
	}
}

// ApplyColumn sets f.ColumnName from the column option. A column name that is
// already set is left alone. The entity's jhiPrefix is snake-cased and used to
// disambiguate reserved keywords of the entity's dialect.
func (p *FieldProcessor) ApplyColumn(e *model.Entity, f *model.Field, diags *diagnostic.Diagnostics) {
	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	v, ok := f.Options.Lookup(Column)
	if !ok || f.ColumnName != "" {
		return
	}

	if f.FieldNameAsDatabaseColumn != "" {
		f.ColumnName = f.FieldNameAsDatabaseColumn
		diags.AddInfo(diagnostic.CodeColumnNamePreset,
			fmt.Sprintf("keeping preset column name %q", f.ColumnName), e.Name, f.Name)

		return
	}

	hint, _ := v.Text()
	if naming.SnakeCase(hint) == "" {
		hint = f.Name
	}

	if naming.SnakeCase(hint) == "" {
		diags.AddWarning(diagnostic.CodeColumnHintEmpty,
			"@column has no usable value and the field has no name; column name left unset", e.Name, f.Name)

		return
	}

	prefix := naming.SnakeCase(e.Prefix())

	name, warn := p.deriver.ColumnName(hint, prefix, e.ProdDatabaseType)
	if warn != nil {
		diags.AddWarning(diagnostic.CodeReservedKeywordNoPrefix, warn.String(), e.Name, f.Name)
	}

	f.FieldNameAsDatabaseColumn = name
	f.ColumnName = name
}

// ApplyGeneratedValue sets the generation strategy of a primary key carrying
// the generatedValue option. "identity" selects identity; any other value,
// including none, selects sequence.
func ApplyGeneratedValue(f *model.Field) {
	if !f.IsPrimaryKey {
		return
	}

	v, ok := f.Options.Lookup(GeneratedValue)
	if !ok {
		return
	}

	if text, _ := v.Text(); text == string(model.GenerationIdentity) {
		f.JpaGeneratedValue = model.GenerationIdentity
	} else {
		f.JpaGeneratedValue = model.GenerationSequence
	}

	f.LiquibaseAutoIncrement = model.Bool(true)
}
