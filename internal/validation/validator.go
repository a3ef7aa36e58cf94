package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validator evaluates explicit schemas with go-playground/validator.
// It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation(TagDisplayName, isDisplayName)
	_ = v.RegisterValidation(TagLetterDigit, isLetterDigit)

	return &Validator{v: v}
}

// Validate collects every violation of the schema. Each constraint is
// evaluated on its own: a field can fail required and length together.
func (val *Validator) Validate(s Schema) []Violation {
	var out []Violation
	order := 0

	for _, f := range s.Fields {
		for _, c := range f.Constraints {
			if err := val.v.Var(f.Value, c.Tag); err != nil {
				out = append(out, Violation{Field: f.Name, Kind: c.Kind, Order: order})
			}
			order++
		}
	}

	for _, m := range s.Matches {
		if m.Left != "" && m.Right != "" {
			if err := val.v.VarWithValue(m.Right, m.Left, "eqfield"); err != nil {
				out = append(out, Violation{Kind: KindMatch, Order: order})
			}
		}
		order++
	}

	return out
}
