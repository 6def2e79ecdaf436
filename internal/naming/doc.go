// Package naming converts author-supplied hints into database column names.
//
// Key functions:
//   - SnakeCase: splits identifiers into words and joins them lower-cased with "_"
//   - Deriver.ColumnName: snake-cases a hint and prefixes it when it collides
//     with a reserved keyword of the target dialect
package naming
