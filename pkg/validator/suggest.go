package validator

import (
	"strconv"

	"github.com/agnivade/levenshtein"

	"github.com/guardrail-dev/guardrail/pkg/conftree"
	"github.com/guardrail-dev/guardrail/pkg/ruleset"
)

// maxSuggestCandidates bounds the tree walk so suggestion cost stays
// negligible on very large configurations.
const maxSuggestCandidates = 2048

// suggestPath returns the concrete path in the tree closest to a missing
// pattern, or "" when nothing is plausibly close. Patterns containing
// wildcards are skipped: a wildcard pattern has no single literal rendering
// to compare against.
func suggestPath(tree conftree.Value, pattern ruleset.Path) string {
	for _, seg := range pattern {
		if seg.Kind == ruleset.SegmentWildcard {
			return ""
		}
	}

	want := pattern.String()
	candidates := collectPaths(tree, "", nil)

	best := ""
	// Tolerate roughly a typo per few characters, never more than three.
	bestDist := len(want)/3 + 1
	if bestDist > 3 {
		bestDist = 3
	}
	for _, c := range candidates {
		if c == want {
			continue
		}
		if d := levenshtein.ComputeDistance(want, c); d <= bestDist {
			best, bestDist = c, d-1
		}
	}
	return best
}

// collectPaths walks the tree and renders every concrete path.
func collectPaths(v conftree.Value, prefix string, acc []string) []string {
	if len(acc) >= maxSuggestCandidates {
		return acc
	}
	if prefix != "" {
		acc = append(acc, prefix)
	}
	switch v.Kind() {
	case conftree.KindMap:
		for _, e := range v.Entries() {
			acc = collectPaths(e.Value, joinKey(prefix, e.Key), acc)
		}
	case conftree.KindList:
		for i, item := range v.Items() {
			acc = collectPaths(item, prefix+"["+strconv.Itoa(i)+"]", acc)
		}
	}
	return acc
}
