package validator

import (
	"fmt"
	"strconv"

	"github.com/guardrail-dev/guardrail/pkg/conftree"
	"github.com/guardrail-dev/guardrail/pkg/ruleset"
)

// Evaluate checks a resolved value against a constraint and returns a
// violation on failure, nil on success. Path and RuleIndex are left for the
// caller to stamp in.
//
// Invariant: every constraint that implies a type (range implies number,
// length implies string) checks the type first, so a type-incompatible value
// always reports TypeMismatch and never a misleading OutOfRange.
func Evaluate(v conftree.Value, c ruleset.Constraint) *Violation {
	switch c := c.(type) {
	case ruleset.TypeOnly:
		if v.Kind() != c.Want {
			return typeMismatch(v, c.Want)
		}
		return nil

	case ruleset.NumberRange:
		if v.Kind() != conftree.KindNumber {
			return typeMismatch(v, conftree.KindNumber)
		}
		n := v.Number()
		if c.Min != nil && n < *c.Min {
			return &Violation{
				Kind:     ViolationOutOfRange,
				Expected: c.Describe(),
				Actual:   v.String(),
				Message:  fmt.Sprintf("value %s is below minimum %s by %s", fmtFloat(n), fmtFloat(*c.Min), fmtFloat(*c.Min-n)),
			}
		}
		if c.Max != nil && n > *c.Max {
			return &Violation{
				Kind:     ViolationOutOfRange,
				Expected: c.Describe(),
				Actual:   v.String(),
				Message:  fmt.Sprintf("value %s exceeds maximum %s by %s", fmtFloat(n), fmtFloat(*c.Max), fmtFloat(n-*c.Max)),
			}
		}
		return nil

	case ruleset.StringLength:
		if v.Kind() != conftree.KindString {
			return typeMismatch(v, conftree.KindString)
		}
		// Length is measured in code points, not bytes.
		n := v.Len()
		if c.Min != nil && n < *c.Min {
			return &Violation{
				Kind:     ViolationOutOfRange,
				Expected: c.Describe(),
				Actual:   v.String(),
				Message:  fmt.Sprintf("length %d is below minimum %d by %d", n, *c.Min, *c.Min-n),
			}
		}
		if c.Max != nil && n > *c.Max {
			return &Violation{
				Kind:     ViolationOutOfRange,
				Expected: c.Describe(),
				Actual:   v.String(),
				Message:  fmt.Sprintf("length %d exceeds maximum %d by %d", n, *c.Max, n-*c.Max),
			}
		}
		return nil

	case ruleset.Enum:
		for _, allowed := range c.Allowed {
			if v.Equal(allowed) {
				return nil
			}
		}
		return &Violation{
			Kind:     ViolationNotInEnum,
			Expected: c.Describe(),
			Actual:   v.String(),
			Message:  fmt.Sprintf("value %s is not in the allowed set", v),
		}

	default:
		// Unreachable for sets built through ruleset.New, which rejects
		// unknown constraint types at construction time.
		return &Violation{
			Kind:     ViolationTypeMismatch,
			Expected: "known constraint",
			Actual:   v.String(),
			Message:  fmt.Sprintf("unsupported constraint type %T", c),
		}
	}
}

func typeMismatch(v conftree.Value, want conftree.Kind) *Violation {
	return &Violation{
		Kind:     ViolationTypeMismatch,
		Expected: want.String(),
		Actual:   v.String(),
		Message:  fmt.Sprintf("expected %s, got %s", want, v.Kind()),
	}
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
