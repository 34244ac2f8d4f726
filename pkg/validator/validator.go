package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guardrail-dev/guardrail/pkg/conftree"
	"github.com/guardrail-dev/guardrail/pkg/ruleset"
)

const (
	// APIVersion is the API version for validation reports.
	APIVersion = "guardrail.dev/v1alpha1"

	// Kind is the kind for validation reports.
	Kind = "ValidationReport"
)

// Validator evaluates rule constraints against a configuration tree.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	// workers caps concurrent rule evaluation; <=1 means sequential.
	workers int
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithWorkers returns an Option enabling parallel rule evaluation with up to
// n goroutines. Results are merged back in rule declaration order, so the
// report is identical to a sequential run.
func WithWorkers(n int) Option {
	return func(v *Validator) {
		v.workers = n
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ruleOutcome is the result of evaluating a single rule.
type ruleOutcome struct {
	violations []Violation
	checked    int
}

// Validate evaluates every rule in the set against the tree and returns the
// full report. It is total over well-formed inputs: a failing value never
// aborts evaluation of the rest, and the only error paths are a nil rule set
// and context cancellation.
func (v *Validator) Validate(ctx context.Context, tree conftree.Value, set *ruleset.Set) (*Report, error) {
	start := time.Now()

	if set == nil {
		return nil, fmt.Errorf("rule set cannot be nil")
	}

	report := NewReport()
	report.Init(Kind, APIVersion, v.Version)

	rules := set.Rules()
	exclusions := set.Exclusions()
	outcomes := make([]ruleOutcome, len(rules))

	if v.workers > 1 && len(rules) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(v.workers)
		for i, rule := range rules {
			i, rule := i, rule
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				outcomes[i] = evaluateRule(tree, rule, i, exclusions)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, rule := range rules {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			outcomes[i] = evaluateRule(tree, rule, i, exclusions)
		}
	}

	// Merge in declaration order so the report is deterministic regardless
	// of evaluation strategy.
	for _, out := range outcomes {
		report.Violations = append(report.Violations, out.violations...)
		report.Summary.Checked += out.checked
		report.Summary.Failed += len(out.violations)
	}
	report.Summary.Rules = len(rules)
	report.Summary.Passed = report.Summary.Checked - report.Summary.Failed
	report.Summary.Duration = time.Since(start)
	if report.Clean() {
		report.Summary.Status = ReportStatusPass
	} else {
		report.Summary.Status = ReportStatusFail
	}

	observeRun(report)

	slog.Debug("validation completed",
		"rules", report.Summary.Rules,
		"checked", report.Summary.Checked,
		"violations", len(report.Violations),
		"status", report.Summary.Status,
		"duration", report.Summary.Duration)

	return report, nil
}

// evaluateRule resolves one rule's pattern and applies its constraint at
// every match. Matches under an exclusion pattern are skipped.
func evaluateRule(tree conftree.Value, rule ruleset.Rule, index int, exclusions []string) ruleOutcome {
	matches := Resolve(tree, rule.Path)

	if len(matches) == 0 {
		if !rule.Required || ruleset.Excluded(rule.Path.String(), exclusions) {
			// Absent and optional is valid.
			return ruleOutcome{}
		}
		viol := Violation{
			Path:      rule.Path.String(),
			RuleIndex: index,
			Kind:      ViolationMissingRequired,
			Expected:  rule.Constraint.Describe(),
			Actual:    "absent",
			Message:   "required path resolved to nothing",
		}
		if hint := suggestPath(tree, rule.Path); hint != "" {
			viol.Message += fmt.Sprintf(" (did you mean %q?)", hint)
		}
		return ruleOutcome{violations: []Violation{viol}, checked: 1}
	}

	var out ruleOutcome
	for _, m := range matches {
		if ruleset.Excluded(m.Path, exclusions) {
			continue
		}
		out.checked++
		if viol := Evaluate(m.Value, rule.Constraint); viol != nil {
			viol.Path = m.Path
			viol.RuleIndex = index
			out.violations = append(out.violations, *viol)
		}
	}
	return out
}
