package validator

import (
	"strings"
	"testing"

	"github.com/guardrail-dev/guardrail/pkg/conftree"
	"github.com/guardrail-dev/guardrail/pkg/ruleset"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

func TestEvaluateTypeOnly(t *testing.T) {
	tests := []struct {
		name string
		v    conftree.Value
		want conftree.Kind
		pass bool
	}{
		{"number is number", conftree.Number(1), conftree.KindNumber, true},
		{"string is not number", conftree.String("1"), conftree.KindNumber, false},
		{"null is null", conftree.Null(), conftree.KindNull, true},
		{"null is not string", conftree.Null(), conftree.KindString, false},
		{"list is list", conftree.List(), conftree.KindList, true},
		{"map is not list", conftree.Map(), conftree.KindList, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viol := Evaluate(tt.v, ruleset.TypeOnly{Want: tt.want})
			if tt.pass {
				if viol != nil {
					t.Fatalf("expected pass, got %+v", viol)
				}
				return
			}
			if viol == nil {
				t.Fatal("expected violation, got nil")
			}
			if viol.Kind != ViolationTypeMismatch {
				t.Errorf("kind = %v, want TypeMismatch", viol.Kind)
			}
		})
	}
}

func TestEvaluateNumberRange(t *testing.T) {
	c := ruleset.NumberRange{Min: fptr(1), Max: fptr(65535)}

	if viol := Evaluate(conftree.Number(8080), c); viol != nil {
		t.Fatalf("8080 in [1, 65535] should pass, got %+v", viol)
	}

	// Bounds are inclusive.
	if viol := Evaluate(conftree.Number(1), c); viol != nil {
		t.Fatalf("min bound should pass, got %+v", viol)
	}
	if viol := Evaluate(conftree.Number(65535), c); viol != nil {
		t.Fatalf("max bound should pass, got %+v", viol)
	}

	viol := Evaluate(conftree.Number(99999), c)
	if viol == nil || viol.Kind != ViolationOutOfRange {
		t.Fatalf("99999 should be OutOfRange, got %+v", viol)
	}
	if !strings.Contains(viol.Message, "exceeds maximum 65535 by 34464") {
		t.Errorf("message should name the bound and the overshoot, got %q", viol.Message)
	}

	viol = Evaluate(conftree.Number(0), c)
	if viol == nil || viol.Kind != ViolationOutOfRange {
		t.Fatalf("0 should be OutOfRange, got %+v", viol)
	}
	if !strings.Contains(viol.Message, "below minimum 1 by 1") {
		t.Errorf("unexpected message %q", viol.Message)
	}
}

func TestEvaluateNumberRangeOpenBounds(t *testing.T) {
	minOnly := ruleset.NumberRange{Min: fptr(0)}
	if viol := Evaluate(conftree.Number(1e12), minOnly); viol != nil {
		t.Errorf("open max should accept any large value, got %+v", viol)
	}
	if viol := Evaluate(conftree.Number(-1), minOnly); viol == nil {
		t.Error("below open-max range should still fail on min")
	}

	maxOnly := ruleset.NumberRange{Max: fptr(10)}
	if viol := Evaluate(conftree.Number(-1e12), maxOnly); viol != nil {
		t.Errorf("open min should accept any small value, got %+v", viol)
	}
}

func TestEvaluateRangeTypeMismatchWins(t *testing.T) {
	// A string hitting a numeric range reports TypeMismatch, never OutOfRange.
	c := ruleset.NumberRange{Min: fptr(1), Max: fptr(10)}

	viol := Evaluate(conftree.String("5"), c)
	if viol == nil {
		t.Fatal("expected violation")
	}
	if viol.Kind != ViolationTypeMismatch {
		t.Fatalf("kind = %v, want TypeMismatch", viol.Kind)
	}
	if !strings.Contains(viol.Message, "expected number, got string") {
		t.Errorf("unexpected message %q", viol.Message)
	}
}

func TestEvaluateStringLength(t *testing.T) {
	c := ruleset.StringLength{Min: iptr(3), Max: iptr(5)}

	if viol := Evaluate(conftree.String("abc"), c); viol != nil {
		t.Fatalf("len 3 should pass, got %+v", viol)
	}
	if viol := Evaluate(conftree.String("abcde"), c); viol != nil {
		t.Fatalf("len 5 should pass, got %+v", viol)
	}

	viol := Evaluate(conftree.String("ab"), c)
	if viol == nil || viol.Kind != ViolationOutOfRange {
		t.Fatalf("len 2 should be OutOfRange, got %+v", viol)
	}
	if !strings.Contains(viol.Message, "below minimum 3 by 1") {
		t.Errorf("unexpected message %q", viol.Message)
	}

	viol = Evaluate(conftree.String("abcdef"), c)
	if viol == nil || !strings.Contains(viol.Message, "exceeds maximum 5 by 1") {
		t.Fatalf("len 6 should exceed max, got %+v", viol)
	}

	// Length counts code points, not bytes.
	if viol := Evaluate(conftree.String("héllo"), c); viol != nil {
		t.Errorf("héllo has 5 code points, should pass, got %+v", viol)
	}

	// Non-string reports TypeMismatch.
	viol = Evaluate(conftree.Number(123), c)
	if viol == nil || viol.Kind != ViolationTypeMismatch {
		t.Fatalf("number against length should be TypeMismatch, got %+v", viol)
	}
}

func TestEvaluateEnum(t *testing.T) {
	c := ruleset.Enum{Allowed: []conftree.Value{
		conftree.String("dev"),
		conftree.String("staging"),
		conftree.String("prod"),
	}}

	if viol := Evaluate(conftree.String("prod"), c); viol != nil {
		t.Fatalf("prod is allowed, got %+v", viol)
	}

	viol := Evaluate(conftree.String("production"), c)
	if viol == nil || viol.Kind != ViolationNotInEnum {
		t.Fatalf("production should be NotInEnum, got %+v", viol)
	}
	if viol.Expected != `one of {"dev", "staging", "prod"}` {
		t.Errorf("expected = %q", viol.Expected)
	}

	// Kind mismatch against every member is still NotInEnum, there is no
	// single expected type to mismatch against.
	viol = Evaluate(conftree.Number(1), c)
	if viol == nil || viol.Kind != ViolationNotInEnum {
		t.Fatalf("number against string enum should be NotInEnum, got %+v", viol)
	}
}

func TestEvaluateEnumDeepEquality(t *testing.T) {
	c := ruleset.Enum{Allowed: []conftree.Value{
		conftree.List(conftree.Number(1), conftree.Number(2)),
	}}

	if viol := Evaluate(conftree.List(conftree.Number(1), conftree.Number(2)), c); viol != nil {
		t.Fatalf("structurally equal list should pass, got %+v", viol)
	}
	if viol := Evaluate(conftree.List(conftree.Number(2), conftree.Number(1)), c); viol == nil {
		t.Fatal("reordered list should fail")
	}
}
