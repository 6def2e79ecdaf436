// Package pipeline runs the annotation stages over entity descriptions.
//
// A Pipeline is an ordered list of named stages. The default pipeline is:
//  1. column-names        derive columnName from @column field options
//  2. generated-values    derive the primary key generation strategy
//  3. entity-annotations  validate and default entity-level annotations
//
// Field stages run before the entity stage so failures surface at the
// narrowest scope first. Callers add behavior with Before and After hooks
// rather than by replacing stages.
package pipeline
