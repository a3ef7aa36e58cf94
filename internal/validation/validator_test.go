package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(vs []Violation) []Kind {
	out := make([]Kind, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Kind)
	}
	return out
}

func TestValidate_RequiredOnly(t *testing.T) {
	v := New()

	vs := v.Validate(Schema{Fields: []Field{
		{Name: "password", Value: "", Constraints: []Constraint{Required(), LenBetween(8, 12), Pattern(TagLetterDigit)}},
	}})

	require.Len(t, vs, 1)
	assert.Equal(t, Violation{Field: "password", Kind: KindRequired, Order: 0}, vs[0])
}

func TestValidate_BlankFailsRequiredAndLength(t *testing.T) {
	v := New()

	vs := v.Validate(Schema{Fields: []Field{
		{Name: "password", Value: "   ", Constraints: []Constraint{Required(), LenBetween(8, 12), Pattern(TagLetterDigit)}},
	}})

	assert.Equal(t, []Kind{KindRequired, KindLength, KindPattern}, kinds(vs))
	assert.Equal(t, "PASSWORD_REQUIRED", Code(vs))
}

func TestValidate_NoShortCircuitAcrossFields(t *testing.T) {
	v := New()

	vs := v.Validate(Schema{Fields: []Field{
		{Name: "name", Value: "12345", Constraints: []Constraint{Required(), MaxLen(20), Pattern(TagDisplayName)}},
		{Name: "email", Value: "not-an-email", Constraints: []Constraint{Required(), Email(), MaxLen(100)}},
	}})

	require.Len(t, vs, 2)
	assert.Equal(t, Violation{Field: "name", Kind: KindPattern, Order: 2}, vs[0])
	assert.Equal(t, Violation{Field: "email", Kind: KindEmail, Order: 4}, vs[1])
}

func TestValidate_LengthCountsRunes(t *testing.T) {
	v := New()

	twenty := "가나다라마바사아자차카타파하가나다라마바"
	vs := v.Validate(Schema{Fields: []Field{
		{Name: "name", Value: twenty, Constraints: []Constraint{MaxLen(20)}},
	}})
	assert.Empty(t, vs)

	vs = v.Validate(Schema{Fields: []Field{
		{Name: "name", Value: twenty + "가", Constraints: []Constraint{MaxLen(20)}},
	}})
	assert.Equal(t, []Kind{KindLength}, kinds(vs))
}

func TestValidate_MatchOnlyWhenBothPresent(t *testing.T) {
	v := New()

	assert.Empty(t, v.Validate(Schema{Matches: []Match{{Left: "abc12345", Right: ""}}}))
	assert.Empty(t, v.Validate(Schema{Matches: []Match{{Left: "", Right: "abc12345"}}}))
	assert.Empty(t, v.Validate(Schema{Matches: []Match{{Left: "abc12345", Right: "abc12345"}}}))

	vs := v.Validate(Schema{Matches: []Match{{Left: "abc12345", Right: "abc12346"}}})
	require.Len(t, vs, 1)
	assert.Equal(t, Violation{Kind: KindMatch, Order: 0}, vs[0])
}

func TestValidate_MatchOrderFollowsFields(t *testing.T) {
	v := New()

	vs := v.Validate(Schema{
		Fields: []Field{
			{Name: "password", Value: "abc12345", Constraints: []Constraint{Required(), LenBetween(8, 12)}},
		},
		Matches: []Match{{Left: "abc12345", Right: "zzz99999"}},
	})
	require.Len(t, vs, 1)
	assert.Equal(t, 2, vs[0].Order)
}

func TestValidate_EmailFormat(t *testing.T) {
	v := New()
	schema := func(s string) Schema {
		return Schema{Fields: []Field{{Name: "email", Value: s, Constraints: []Constraint{Email()}}}}
	}

	assert.Empty(t, v.Validate(schema("leo@example.com")))
	assert.Empty(t, v.Validate(schema("")))
	assert.NotEmpty(t, v.Validate(schema("not-an-email")))
	assert.NotEmpty(t, v.Validate(schema("leo@")))
}

func TestDisplayNamePattern(t *testing.T) {
	v := New()
	ok := func(s string) bool {
		return len(v.Validate(Schema{Fields: []Field{
			{Name: "name", Value: s, Constraints: []Constraint{{Kind: KindPattern, Tag: TagDisplayName}}},
		}})) == 0
	}

	for _, s := range []string{"Leo", "leo99", "99leo", "Big Leo", "김철수", "Leo!", "a_b", "___", "_!_"} {
		assert.True(t, ok(s), "expected %q to be accepted", s)
	}
	for _, s := range []string{"12345", "!!!", "-.-", "#$%^", "   ", ""} {
		assert.False(t, ok(s), "expected %q to be rejected", s)
	}
}

func TestLetterDigitPattern(t *testing.T) {
	v := New()
	ok := func(s string) bool {
		return len(v.Validate(Schema{Fields: []Field{
			{Name: "password", Value: s, Constraints: []Constraint{{Kind: KindPattern, Tag: TagLetterDigit}}},
		}})) == 0
	}

	assert.True(t, ok("abc12345"))
	assert.True(t, ok("1a"))
	assert.False(t, ok("12345678"))
	assert.False(t, ok("abcdefgh"))
	assert.False(t, ok("!!!!!!!!"))
}
