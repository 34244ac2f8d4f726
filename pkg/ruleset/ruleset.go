package ruleset

import (
	"errors"
	"fmt"

	gerrors "github.com/guardrail-dev/guardrail/pkg/errors"
)

// Rule binds a path pattern to a constraint. Rules are immutable once the
// containing Set is built.
type Rule struct {
	// Path locates the values the constraint applies to.
	Path Path

	// Required makes a pattern that resolves to nothing a violation in its
	// own right. Required applies to the pattern as a whole: one concrete
	// match anywhere satisfies it.
	Required bool

	// Constraint is the check applied at every resolved location.
	Constraint Constraint
}

// Set is an ordered, validated collection of rules. Declaration order is
// evaluation order, which fixes the ordering of the violation report.
type Set struct {
	rules      []Rule
	exclusions []string
}

// New builds a Set, validating every rule. All invalid rules are reported in
// one aggregated error so rule-file authors see the full picture at once.
func New(rules []Rule) (*Set, error) {
	return NewWithExclusions(rules, nil)
}

// NewWithExclusions builds a Set that additionally carves the given path
// patterns out of validation (see Excluded).
func NewWithExclusions(rules []Rule, exclusions []string) (*Set, error) {
	var errs []error
	for i, r := range rules {
		if len(r.Path) == 0 {
			errs = append(errs, gerrors.Newf(gerrors.ErrCodeInvalidPattern, "rule %d: path pattern cannot be empty", i))
		}
		if err := validateConstraint(r.Constraint); err != nil {
			errs = append(errs, gerrors.Wrap(gerrors.ErrCodeInvalidRule, fmt.Sprintf("rule %d (%s)", i, r.Path), err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	out := make([]Rule, len(rules))
	copy(out, rules)
	excl := make([]string, len(exclusions))
	copy(excl, exclusions)
	return &Set{rules: out, exclusions: excl}, nil
}

// Rules returns the rules in declaration order. The returned slice must not
// be modified.
func (s *Set) Rules() []Rule { return s.rules }

// Exclusions returns the exclusion patterns. The returned slice must not be
// modified.
func (s *Set) Exclusions() []string { return s.exclusions }

// Len returns the number of rules.
func (s *Set) Len() int { return len(s.rules) }
