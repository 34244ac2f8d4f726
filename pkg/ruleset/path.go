package ruleset

import (
	"fmt"
	"strconv"
	"strings"
)

// SegmentKind discriminates path segment variants.
type SegmentKind int

const (
	// SegmentKey matches a single map key.
	SegmentKey SegmentKind = iota
	// SegmentIndex matches a single list position.
	SegmentIndex
	// SegmentWildcard matches every element of a list or every value of a map.
	SegmentWildcard
)

// Segment is one step of a path pattern.
type Segment struct {
	Kind  SegmentKind
	Key   string // set for SegmentKey
	Index int    // set for SegmentIndex

	// bracketed records whether a wildcard was written [*] rather than a
	// bare *, so patterns render back exactly as authored.
	bracketed bool
}

// KeySegment returns a literal map-key segment.
func KeySegment(key string) Segment { return Segment{Kind: SegmentKey, Key: key} }

// IndexSegment returns a literal list-index segment.
func IndexSegment(i int) Segment { return Segment{Kind: SegmentIndex, Index: i} }

// WildcardSegment returns a segment matching every element at its position.
func WildcardSegment() Segment { return Segment{Kind: SegmentWildcard} }

// Path is an ordered sequence of segments identifying locations in a tree.
type Path []Segment

// String renders the pattern in its source form, e.g. "servers[*].port".
func (p Path) String() string {
	var sb strings.Builder
	for _, seg := range p {
		switch seg.Kind {
		case SegmentKey:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(seg.Key)
		case SegmentIndex:
			sb.WriteString("[" + strconv.Itoa(seg.Index) + "]")
		case SegmentWildcard:
			if seg.bracketed {
				sb.WriteString("[*]")
			} else {
				if sb.Len() > 0 {
					sb.WriteByte('.')
				}
				sb.WriteByte('*')
			}
		}
	}
	return sb.String()
}

// ParsePath parses a dotted/bracketed path pattern.
//
// Grammar, informally: dot-separated parts, where each part is a key or a
// bare * wildcard, optionally followed by one or more bracket accesses [N]
// or [*]. Examples:
//
//	port
//	servers[2].port
//	servers[*].port
//	*.timeout
//	matrix[0][*]
func ParsePath(pattern string) (Path, error) {
	if pattern == "" {
		return nil, fmt.Errorf("path pattern cannot be empty")
	}

	var path Path
	for _, part := range strings.Split(pattern, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid path pattern %q: empty segment", pattern)
		}

		head := part
		var brackets string
		if i := strings.IndexByte(part, '['); i >= 0 {
			head, brackets = part[:i], part[i:]
		}

		switch head {
		case "":
			// Bare bracket access like "[0]" is only valid as the first part,
			// addressing a list at the document root.
			if len(path) != 0 {
				return nil, fmt.Errorf("invalid path pattern %q: bracket access needs a preceding key", pattern)
			}
		case "*":
			path = append(path, WildcardSegment())
		default:
			if strings.ContainsAny(head, "[]* ") {
				return nil, fmt.Errorf("invalid path pattern %q: malformed segment %q", pattern, part)
			}
			path = append(path, KeySegment(head))
		}

		for brackets != "" {
			if brackets[0] != '[' {
				return nil, fmt.Errorf("invalid path pattern %q: malformed segment %q", pattern, part)
			}
			end := strings.IndexByte(brackets, ']')
			if end < 0 {
				return nil, fmt.Errorf("invalid path pattern %q: unterminated bracket in %q", pattern, part)
			}
			inner := brackets[1:end]
			brackets = brackets[end+1:]

			if inner == "*" {
				path = append(path, Segment{Kind: SegmentWildcard, bracketed: true})
				continue
			}
			idx, err := strconv.Atoi(inner)
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("invalid path pattern %q: bad index %q", pattern, inner)
			}
			path = append(path, IndexSegment(idx))
		}
	}

	if len(path) == 0 {
		return nil, fmt.Errorf("path pattern cannot be empty")
	}
	return path, nil
}
