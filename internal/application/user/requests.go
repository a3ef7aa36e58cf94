package user

import "github.com/baechuer/board-service/internal/validation"

// RegisterInput is the registration payload after JSON decoding.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

type LoginInput struct {
	Email    string
	Password string
}

func (in RegisterInput) normalized() RegisterInput {
	in.Email = validation.NormalizeEmail(in.Email)
	in.Name = validation.NormalizeDisplayName(in.Name)
	return in
}

func (in RegisterInput) schema() validation.Schema {
	return validation.Schema{
		Fields: []validation.Field{
			{Name: "name", Value: in.Name, Constraints: []validation.Constraint{
				validation.Required(), validation.MaxLen(20), validation.Pattern(validation.TagDisplayName),
			}},
			{Name: "email", Value: in.Email, Constraints: []validation.Constraint{
				validation.Required(), validation.Email(), validation.MaxLen(100),
			}},
			{Name: "password", Value: in.Password, Constraints: []validation.Constraint{
				validation.Required(), validation.LenBetween(8, 12), validation.Pattern(validation.TagLetterDigit),
			}},
			{Name: "confirmPassword", Value: in.ConfirmPassword, Constraints: []validation.Constraint{
				validation.Required(), validation.LenBetween(8, 12),
			}},
		},
		Matches: []validation.Match{{Left: in.Password, Right: in.ConfirmPassword}},
	}
}

func (in LoginInput) normalized() LoginInput {
	in.Email = validation.NormalizeEmail(in.Email)
	return in
}

func (in LoginInput) schema() validation.Schema {
	return validation.Schema{
		Fields: []validation.Field{
			{Name: "email", Value: in.Email, Constraints: []validation.Constraint{
				validation.Required(), validation.Email(), validation.MaxLen(100),
			}},
			{Name: "password", Value: in.Password, Constraints: []validation.Constraint{
				validation.Required(),
			}},
		},
	}
}
