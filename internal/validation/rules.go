package validation

import (
	"strconv"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Custom validator tags.
const (
	TagDisplayName = "display_name"
	TagLetterDigit = "letter_digit"
)

// isDisplayName rejects blank values, values made only of ASCII digits and
// values made only of symbols. A symbol is anything that is not a word
// character (letter, digit, '_') or a space.
func isDisplayName(fl validator.FieldLevel) bool {
	s := fl.Field().String()

	allDigits, allSymbols, blank := true, true, true
	for _, r := range s {
		if !unicode.IsSpace(r) {
			blank = false
		}
		if r < '0' || r > '9' {
			allDigits = false
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			allSymbols = false
		}
	}
	return !blank && !allDigits && !allSymbols
}

// isLetterDigit requires at least one ASCII letter and one ASCII digit.
func isLetterDigit(fl validator.FieldLevel) bool {
	var letter, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return letter && digit
}

func itoa(n int) string { return strconv.Itoa(n) }
