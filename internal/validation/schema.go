package validation

// Constraint binds a violation kind to a validator tag.
type Constraint struct {
	Kind Kind
	Tag  string
}

// Field is one named input value and its constraints in declaration order.
type Field struct {
	Name        string
	Value       string
	Constraints []Constraint
}

// Match is an object-level equality constraint between two values. It is
// only evaluated when both sides are non-empty; emptiness is reported by the
// fields' own required constraints.
type Match struct {
	Left  string
	Right string
}

// Schema is the explicit constraint list of one request.
type Schema struct {
	Fields  []Field
	Matches []Match
}

// Constraint constructors. Everything except Required skips the empty value.

func Required() Constraint { return Constraint{Kind: KindRequired, Tag: "notblank"} }

func MaxLen(n int) Constraint {
	return Constraint{Kind: KindLength, Tag: "omitempty,max=" + itoa(n)}
}

func LenBetween(min, max int) Constraint {
	return Constraint{Kind: KindLength, Tag: "omitempty,min=" + itoa(min) + ",max=" + itoa(max)}
}

func Email() Constraint { return Constraint{Kind: KindEmail, Tag: "omitempty,email"} }

func Pattern(tag string) Constraint {
	return Constraint{Kind: KindPattern, Tag: "omitempty," + tag}
}
