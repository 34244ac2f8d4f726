package conftree

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	gerrors "github.com/guardrail-dev/guardrail/pkg/errors"
)

// Load reads a configuration file and builds its value tree. JSON and YAML
// are both accepted; the extension is not consulted since YAML is a strict
// superset of JSON.
func Load(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, gerrors.Wrap(gerrors.ErrCodeConfigLoad, fmt.Sprintf("reading %s", path), err)
	}
	v, err := Parse(data)
	if err != nil {
		return Value{}, gerrors.Wrap(gerrors.ErrCodeConfigLoad, fmt.Sprintf("parsing %s", path), err)
	}
	return v, nil
}

// Parse builds a value tree from raw JSON or YAML bytes.
//
// The document is decoded through the yaml.v3 node API rather than into
// map[string]any: the node API preserves mapping key order, which the
// validation report's determinism depends on. An empty document parses to
// null.
func Parse(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null(), nil
	}
	return fromNode(root.Content[0], make(map[*yaml.Node]bool))
}

// FromNode converts an already-decoded yaml node into a Value. The rules
// loader uses this for enum literals embedded in rule files.
func FromNode(n *yaml.Node) (Value, error) {
	return fromNode(n, make(map[*yaml.Node]bool))
}

// fromNode converts a decoded yaml node into a Value. The active set guards
// against anchor/alias loops, which would otherwise recurse forever; the
// value tree invariant is that configuration is a tree, not a graph.
func fromNode(n *yaml.Node, active map[*yaml.Node]bool) (Value, error) {
	if active[n] {
		return Value{}, fmt.Errorf("line %d: cyclic alias reference", n.Line)
	}

	switch n.Kind {
	case yaml.AliasNode:
		active[n] = true
		defer delete(active, n)
		return fromNode(n.Alias, active)

	case yaml.ScalarNode:
		return fromScalar(n)

	case yaml.SequenceNode:
		active[n] = true
		defer delete(active, n)
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c, active)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return List(items...), nil

	case yaml.MappingNode:
		active[n] = true
		defer delete(active, n)
		entries := make([]Entry, 0, len(n.Content)/2)
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: non-scalar mapping key", keyNode.Line)
			}
			if seen[keyNode.Value] {
				return Value{}, fmt.Errorf("line %d: duplicate key %q", keyNode.Line, keyNode.Value)
			}
			seen[keyNode.Value] = true
			v, err := fromNode(valNode, active)
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, Entry{Key: keyNode.Value, Value: v})
		}
		return Map(entries...), nil

	default:
		return Value{}, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch n.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			// yaml also accepts yes/no/on/off spellings
			var v bool
			if err := n.Decode(&v); err != nil {
				return Value{}, fmt.Errorf("line %d: invalid bool %q", n.Line, n.Value)
			}
			return Bool(v), nil
		}
		return Bool(b), nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			// hex/octal ints and special floats need the yaml decoder
			var v float64
			if err := n.Decode(&v); err != nil {
				return Value{}, fmt.Errorf("line %d: invalid number %q", n.Line, n.Value)
			}
			return Number(v), nil
		}
		return Number(f), nil
	default:
		return String(n.Value), nil
	}
}
