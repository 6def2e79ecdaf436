// Package diagnostic provides structured warnings, errors, and informational
// notes produced while annotating entities.
//
// Key capabilities:
//   - Reserved keyword warnings for column names
//   - Annotation shape errors with the offending annotation name
//   - Entity and field context on every message
package diagnostic
