package ruleset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guardrail-dev/guardrail/pkg/conftree"
)

// Constraint is the closed set of checks a rule can apply to a resolved
// value. The validator dispatches on the concrete type in a single switch;
// adding a constraint kind means adding a type here and one case there.
type Constraint interface {
	// Describe renders the expectation for violation messages,
	// e.g. "number in [1, 65535]".
	Describe() string

	constraint()
}

// TypeOnly requires the value to hold a specific variant.
type TypeOnly struct {
	Want conftree.Kind
}

func (c TypeOnly) Describe() string { return c.Want.String() }
func (TypeOnly) constraint()        {}

// NumberRange requires a number within [Min, Max]. Either bound may be nil
// for an open end. Both bounds are inclusive.
type NumberRange struct {
	Min *float64
	Max *float64
}

func (c NumberRange) Describe() string {
	lo, hi := "-inf", "+inf"
	if c.Min != nil {
		lo = formatNumber(*c.Min)
	}
	if c.Max != nil {
		hi = formatNumber(*c.Max)
	}
	return fmt.Sprintf("number in [%s, %s]", lo, hi)
}
func (NumberRange) constraint() {}

// StringLength requires a string whose length in code points lies within
// [Min, Max]. Either bound may be nil for an open end.
type StringLength struct {
	Min *int
	Max *int
}

func (c StringLength) Describe() string {
	switch {
	case c.Min != nil && c.Max != nil:
		return fmt.Sprintf("string of %d to %d characters", *c.Min, *c.Max)
	case c.Min != nil:
		return fmt.Sprintf("string of at least %d characters", *c.Min)
	case c.Max != nil:
		return fmt.Sprintf("string of at most %d characters", *c.Max)
	default:
		return "string"
	}
}
func (StringLength) constraint() {}

// Enum requires the value to structurally equal one of the allowed values.
// Expected usage is scalar members, but composites work through deep
// equality.
type Enum struct {
	Allowed []conftree.Value
}

func (c Enum) Describe() string {
	parts := make([]string, len(c.Allowed))
	for i, v := range c.Allowed {
		parts[i] = v.String()
	}
	return "one of {" + strings.Join(parts, ", ") + "}"
}
func (Enum) constraint() {}

// validate checks the internal consistency of a constraint at Set
// construction time.
func validateConstraint(c Constraint) error {
	switch c := c.(type) {
	case TypeOnly:
		return nil
	case NumberRange:
		if c.Min == nil && c.Max == nil {
			return fmt.Errorf("number range needs at least one bound")
		}
		if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
			return fmt.Errorf("number range min %s exceeds max %s", formatNumber(*c.Min), formatNumber(*c.Max))
		}
		return nil
	case StringLength:
		if c.Min == nil && c.Max == nil {
			return fmt.Errorf("string length needs at least one bound")
		}
		if c.Min != nil && *c.Min < 0 {
			return fmt.Errorf("string length min cannot be negative")
		}
		if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
			return fmt.Errorf("string length min %d exceeds max %d", *c.Min, *c.Max)
		}
		return nil
	case Enum:
		if len(c.Allowed) == 0 {
			return fmt.Errorf("enum needs at least one allowed value")
		}
		return nil
	case nil:
		return fmt.Errorf("rule has no constraint")
	default:
		return fmt.Errorf("unsupported constraint type %T", c)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
