package validation

import (
	"regexp"
	"strings"
)

const (
	passwordField = "password"

	CodeValidationFailed       = "VALIDATION_FAILED"
	CodeInvalidEmail           = "INVALID_EMAIL"
	CodeInvalidConfirmPassword = "INVALID_CONFIRM_PASSWORD"
)

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z]+)`)

// Code reduces a violation set to the single error code returned to clients.
//
// Precedence: a violation on "password" wins, then the field-level violation
// declared first, then an object-level match failure. The result depends only
// on the set's contents, never on slice order.
func Code(violations []Violation) string {
	var pw, field, object *Violation

	for i := range violations {
		v := &violations[i]
		switch {
		case v.Field == passwordField:
			if pw == nil || v.Order < pw.Order {
				pw = v
			}
		case strings.TrimSpace(v.Field) != "":
			if field == nil || v.Order < field.Order {
				field = v
			}
		case v.Kind == KindMatch:
			if object == nil || v.Order < object.Order {
				object = v
			}
		}
	}

	switch {
	case pw != nil:
		return codeFor(*pw)
	case field != nil:
		return codeFor(*field)
	case object != nil:
		return CodeInvalidConfirmPassword
	default:
		return CodeValidationFailed
	}
}

func codeFor(v Violation) string {
	switch v.Kind {
	case KindRequired:
		return FieldSegment(v.Field) + "_REQUIRED"
	case KindEmail:
		return CodeInvalidEmail
	case KindMatch:
		return CodeInvalidConfirmPassword
	default:
		return "INVALID_" + FieldSegment(v.Field)
	}
}

// FieldSegment turns a lower-camel field name into UPPER_SNAKE.
// Blank names map to UNKNOWN.
func FieldSegment(field string) string {
	if strings.TrimSpace(field) == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(camelBoundary.ReplaceAllString(field, "${1}_${2}"))
}
