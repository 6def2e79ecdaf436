package annotation

//go:generate go tool stringer -type=Constraint -trimprefix=Constraint -output=constraint_string.go

// Constraint describes the value shape an annotation accepts.
type Constraint int

const (
	// ConstraintNone forbids a value: the annotation is a bare flag.
	ConstraintNone Constraint = iota
	// ConstraintRequired requires a non-empty value.
	ConstraintRequired
)
