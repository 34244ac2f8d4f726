package ruleset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/guardrail-dev/guardrail/pkg/conftree"
	gerrors "github.com/guardrail-dev/guardrail/pkg/errors"
)

// ruleSpec is the on-disk shape of a single rule entry.
type ruleSpec struct {
	Path     string      `yaml:"path" json:"path"`
	Type     string      `yaml:"type,omitempty" json:"type,omitempty"`
	Required bool        `yaml:"required,omitempty" json:"required,omitempty"`
	Min      *float64    `yaml:"min,omitempty" json:"min,omitempty"`
	Max      *float64    `yaml:"max,omitempty" json:"max,omitempty"`
	MinLen   *int        `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLen   *int        `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Enum     []yaml.Node `yaml:"enum,omitempty" json:"enum,omitempty"`
}

// rulesFile is the on-disk shape of a rules document. A bare top-level list
// is also accepted, matching the original flat rules format.
type rulesFile struct {
	Rules      []ruleSpec `yaml:"rules" json:"rules"`
	Exclusions []string   `yaml:"exclusions,omitempty" json:"exclusions,omitempty"`
}

// Load reads and parses a rules file (YAML or JSON).
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeRuleLoad, fmt.Sprintf("reading %s", path), err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeRuleLoad, fmt.Sprintf("parsing %s", path), err)
	}
	return s, nil
}

// FromNode builds a Set from an already-decoded yaml node holding a rule
// list, as submitted to the validation API.
func FromNode(n *yaml.Node) (*Set, error) {
	var specs []ruleSpec
	if err := n.Decode(&specs); err == nil {
		return fromSpecs(specs, nil)
	}
	var file rulesFile
	if err := n.Decode(&file); err != nil || len(file.Rules) == 0 {
		return nil, gerrors.Wrap(gerrors.ErrCodeRuleLoad, "decoding rules", err)
	}
	return fromSpecs(file.Rules, file.Exclusions)
}

// Parse parses rules from raw YAML or JSON bytes and validates them.
// Entry errors are aggregated: a file with three bad rules reports all three.
func Parse(data []byte) (*Set, error) {
	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		// Retry as a bare list of rules.
		var specs []ruleSpec
		if listErr := yaml.Unmarshal(data, &specs); listErr != nil {
			return nil, err
		}
		file.Rules = specs
	}
	if file.Rules == nil {
		var specs []ruleSpec
		if err := yaml.Unmarshal(data, &specs); err == nil {
			file.Rules = specs
		}
	}
	return fromSpecs(file.Rules, file.Exclusions)
}

// fromSpecs validates and converts decoded rule entries into a Set.
func fromSpecs(specs []ruleSpec, exclusions []string) (*Set, error) {
	if len(specs) == 0 {
		return nil, gerrors.New(gerrors.ErrCodeRuleLoad, "no rules found")
	}

	rules := make([]Rule, 0, len(specs))
	var errs []error
	for i, spec := range specs {
		rule, err := spec.toRule()
		if err != nil {
			errs = append(errs, gerrors.Wrap(gerrors.ErrCodeInvalidRule, fmt.Sprintf("rule %d (%s)", i, spec.Path), err))
			continue
		}
		rules = append(rules, rule)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return NewWithExclusions(rules, exclusions)
}

// toRule maps a file entry to the rule model. Exactly one constraint kind is
// derived per entry: enum wins, then length bounds, then numeric bounds,
// then a plain type requirement.
func (spec ruleSpec) toRule() (Rule, error) {
	path, err := ParsePath(spec.Path)
	if err != nil {
		return Rule{}, err
	}

	var want conftree.Kind
	hasType := spec.Type != ""
	if hasType {
		k, ok := conftree.ParseKind(spec.Type)
		if !ok {
			return Rule{}, fmt.Errorf("unknown type %q, valid types are %v", spec.Type, conftree.Kinds())
		}
		want = k
	}

	hasRange := spec.Min != nil || spec.Max != nil
	hasLength := spec.MinLen != nil || spec.MaxLen != nil
	hasEnum := len(spec.Enum) > 0

	switch {
	case hasEnum && (hasRange || hasLength):
		return Rule{}, fmt.Errorf("enum cannot be combined with bounds")
	case hasRange && hasLength:
		return Rule{}, fmt.Errorf("min/max and minLength/maxLength cannot be combined")
	}

	var constraint Constraint
	switch {
	case hasEnum:
		allowed := make([]conftree.Value, 0, len(spec.Enum))
		for _, n := range spec.Enum {
			v, err := conftree.FromNode(&n)
			if err != nil {
				return Rule{}, fmt.Errorf("bad enum value: %w", err)
			}
			allowed = append(allowed, v)
		}
		constraint = Enum{Allowed: allowed}

	case hasLength:
		if hasType && want != conftree.KindString {
			return Rule{}, fmt.Errorf("length bounds require type string, got %s", want)
		}
		constraint = StringLength{Min: spec.MinLen, Max: spec.MaxLen}

	case hasRange:
		if hasType && want != conftree.KindNumber {
			return Rule{}, fmt.Errorf("min/max bounds require type number, got %s", want)
		}
		constraint = NumberRange{Min: spec.Min, Max: spec.Max}

	case hasType:
		constraint = TypeOnly{Want: want}

	default:
		return Rule{}, fmt.Errorf("rule needs a type, bounds, or an enum")
	}

	return Rule{Path: path, Required: spec.Required, Constraint: constraint}, nil
}
