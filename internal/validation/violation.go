package validation

// Kind is the category of a failed constraint.
type Kind string

const (
	KindRequired Kind = "required"
	KindLength   Kind = "length"
	KindPattern  Kind = "pattern"
	KindEmail    Kind = "email"
	KindMatch    Kind = "match"
)

// Violation is one failed constraint. Field is empty for object-level
// constraints. Order is the declaration position of the constraint inside
// its schema and is what the mapper uses to break ties.
type Violation struct {
	Field string
	Kind  Kind
	Order int
}
