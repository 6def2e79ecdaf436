// Package main provides the CLI entrypoint for entity-annotator.
//
// entity-annotator is the annotation stage of an entity code generator:
//   - Validates entity annotations (@lombok, @schema, @apiVersion, ...)
//   - Derives column names from @column, avoiding reserved keywords
//   - Derives primary key generation strategies from @generatedValue
//   - Writes the annotated descriptions back for template rendering
package main

import (
	"os"

	"entity-annotator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
