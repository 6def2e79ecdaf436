// Package model defines the entity and field descriptions that flow through
// the annotation pipeline.
//
// An Entity is produced by an upstream domain-model parser, mutated additively
// by the pipeline stages and then handed to the template renderer. Derived
// attributes use nil pointers (or empty strings for names) to mean "not yet
// computed", which is what makes defaulting idempotent.
package model
