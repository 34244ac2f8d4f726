package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestStructuredErrorMessage(t *testing.T) {
	err := New(ErrCodeInvalidRule, "rule is broken")
	want := "INVALID_RULE: rule is broken"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestStructuredErrorWrap(t *testing.T) {
	cause := errors.New("file not found")
	err := Wrap(ErrCodeConfigLoad, "reading config.yaml", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should satisfy errors.Is")
	}

	var se *StructuredError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should find the StructuredError")
	}
	if se.Code != ErrCodeConfigLoad {
		t.Errorf("Code = %q, want %q", se.Code, ErrCodeConfigLoad)
	}

	want := "CONFIG_LOAD_FAILED: reading config.yaml: file not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestStructuredErrorThroughFmtWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidPattern, "bad pattern")
	outer := fmt.Errorf("loading rules: %w", inner)

	var se *StructuredError
	if !errors.As(outer, &se) {
		t.Fatal("errors.As should unwrap through fmt.Errorf")
	}
	if se.Code != ErrCodeInvalidPattern {
		t.Errorf("Code = %q, want %q", se.Code, ErrCodeInvalidPattern)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodeInvalidRule, "rule %d is broken", 3)
	if err.Message != "rule 3 is broken" {
		t.Errorf("Message = %q", err.Message)
	}
}
