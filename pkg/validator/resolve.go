package validator

import (
	"strconv"

	"github.com/guardrail-dev/guardrail/pkg/conftree"
	"github.com/guardrail-dev/guardrail/pkg/ruleset"
)

// Match is one concrete location a path pattern resolved to.
type Match struct {
	// Path is the concrete rendering, wildcards replaced by the key or
	// index actually found, e.g. "servers[2].port".
	Path string

	Value conftree.Value
}

// Resolve resolves a path pattern against a value tree, yielding every
// matching (concrete path, value) pair in deterministic order: map wildcards
// fan out in document order, list wildcards in index order.
//
// Resolution is total and silent: a segment that does not fit the node it
// meets (a key segment on a list, an index past the end, any access into a
// scalar) simply contributes no matches. Whether "no matches" is itself a
// problem is the rule engine's call, via the rule's required flag.
func Resolve(tree conftree.Value, pattern ruleset.Path) []Match {
	var out []Match
	descend(tree, pattern, "", &out)
	return out
}

func descend(v conftree.Value, rest ruleset.Path, prefix string, out *[]Match) {
	if len(rest) == 0 {
		*out = append(*out, Match{Path: prefix, Value: v})
		return
	}

	seg, tail := rest[0], rest[1:]
	switch seg.Kind {
	case ruleset.SegmentKey:
		child, ok := v.Get(seg.Key)
		if !ok {
			return
		}
		descend(child, tail, joinKey(prefix, seg.Key), out)

	case ruleset.SegmentIndex:
		child, ok := v.Index(seg.Index)
		if !ok {
			return
		}
		descend(child, tail, prefix+"["+strconv.Itoa(seg.Index)+"]", out)

	case ruleset.SegmentWildcard:
		switch v.Kind() {
		case conftree.KindMap:
			for _, e := range v.Entries() {
				descend(e.Value, tail, joinKey(prefix, e.Key), out)
			}
		case conftree.KindList:
			for i, item := range v.Items() {
				descend(item, tail, prefix+"["+strconv.Itoa(i)+"]", out)
			}
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
