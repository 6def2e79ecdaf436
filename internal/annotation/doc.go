// Package annotation validates entity and field annotations and derives the
// attributes templates consume.
//
// # Field annotations
//
// Field options are applied permissively; malformed values never fail:
//
//	@column(order)          -> columnName, prefixed with jhiPrefix when reserved
//	@generatedValue(identity) on the primary key
//	                        -> jpaGeneratedValue=identity, liquibaseAutoIncrement=true
//	@generatedValue(<other>) -> jpaGeneratedValue=sequence
//
// # Entity annotations
//
// Entity annotations are described by a Registry of Rules, evaluated in
// registration order. Each rule validates the value shape and then fills its
// derived attributes if they are still unset:
//
//	@lombok @noCodeComment @esjtPattern    flags; must not have a value
//	@schema(x) @apiVersion(x) @apiUrl(x)   must have a value
//
// Adding an annotation means adding one Rule to the registry.
package annotation

// Field option names.
const (
	Column         = "column"
	GeneratedValue = "generatedValue"
)

// Entity annotation names.
const (
	Lombok        = "lombok"
	Schema        = "schema"
	NoCodeComment = "noCodeComment"
	EsjtPattern   = "esjtPattern"
	APIVersion    = "apiVersion"
	APIURL        = "apiUrl"
)
