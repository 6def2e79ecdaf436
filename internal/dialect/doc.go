// Package dialect resolves reserved keywords per production database type.
//
// The built-in tables live in keywords.yaml and are embedded into the binary.
// Additional words can be merged in from configuration with Resolver.With.
// Unknown dialects have an empty keyword set.
package dialect
