// Package validator evaluates a rule set against a configuration tree and
// produces a deterministic report of violations.
//
// # Overview
//
// The validator is the one component with real logic in guardrail: it walks
// the immutable value tree, resolves each rule's path pattern to zero or more
// concrete locations, applies the rule's constraint at every location, and
// collects every violation found in a single pass. It never stops at the
// first problem and never fails on well-formed input.
//
// # Ordering
//
// Violations appear grouped by rule declaration order and, within a rule, in
// path resolution order (document order for map wildcards, index order for
// list wildcards). Given the same tree and rule set, the report is identical
// across runs, which makes it safe to diff in CI.
//
// # Violation Kinds
//
//   - MissingRequired: a required pattern resolved to nothing
//   - TypeMismatch: a value is present but holds the wrong variant
//   - OutOfRange: a numeric or length bound was violated
//   - NotInEnum: a value is not among the allowed set
//
// A type check always runs before any range, length, or enum comparison, so
// a string checked against a numeric range reports TypeMismatch, never a
// misleading OutOfRange.
//
// # Usage
//
//	v := validator.New(validator.WithVersion(version.Version))
//	report, err := v.Validate(ctx, tree, rules)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !report.Clean() {
//	    os.Exit(1)
//	}
//
// Validate is pure with respect to its inputs: many calls may share the same
// tree and rule set concurrently without coordination.
package validator
