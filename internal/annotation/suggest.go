package annotation

import (
	"fmt"
	"maps"
	"slices"

	"entity-annotator/internal/diagnostic"
	"entity-annotator/internal/model"
	"entity-annotator/internal/naming"
)

// maxSuggestDistance bounds how far a name may be from a known annotation
// before it is treated as belonging to some other generator.
const maxSuggestDistance = 2

// fieldOptions are the field options this package understands.
var fieldOptions = []string{Column, GeneratedValue}

// reportMisspelled warns about names that are not known but close to one that
// is. Names far from every known annotation are left alone.
func reportMisspelled(names model.Annotations, known []string, diags *diagnostic.Diagnostics, entity, field string) {
	for _, name := range slices.Sorted(maps.Keys(names)) {
		if slices.Contains(known, name) {
			continue
		}

		if guess, ok := naming.Closest(name, known, maxSuggestDistance); ok {
			diags.AddWarning(diagnostic.CodeUnknownAnnotation,
				fmt.Sprintf("unknown annotation @%s, did you mean @%s?", name, guess), entity, field)
		}
	}
}
