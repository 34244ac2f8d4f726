package ruleset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardrail-dev/guardrail/pkg/conftree"
)

func TestParseRulesFile(t *testing.T) {
	doc := `
rules:
  - path: port
    type: number
    min: 1
    max: 65535
    required: true
  - path: name
    type: string
    minLength: 1
    maxLength: 63
  - path: mode
    enum: [dev, staging, prod]
  - path: servers[*].host
    type: string
`
	set, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())

	rules := set.Rules()

	assert.Equal(t, "port", rules[0].Path.String())
	assert.True(t, rules[0].Required)
	nr, ok := rules[0].Constraint.(NumberRange)
	require.True(t, ok, "expected NumberRange, got %T", rules[0].Constraint)
	assert.Equal(t, 1.0, *nr.Min)
	assert.Equal(t, 65535.0, *nr.Max)

	sl, ok := rules[1].Constraint.(StringLength)
	require.True(t, ok, "expected StringLength, got %T", rules[1].Constraint)
	assert.Equal(t, 1, *sl.Min)
	assert.Equal(t, 63, *sl.Max)
	assert.False(t, rules[1].Required)

	en, ok := rules[2].Constraint.(Enum)
	require.True(t, ok, "expected Enum, got %T", rules[2].Constraint)
	require.Len(t, en.Allowed, 3)
	assert.True(t, en.Allowed[2].Equal(conftree.String("prod")))

	to, ok := rules[3].Constraint.(TypeOnly)
	require.True(t, ok, "expected TypeOnly, got %T", rules[3].Constraint)
	assert.Equal(t, conftree.KindString, to.Want)
}

func TestParseBareRuleList(t *testing.T) {
	doc := `
- path: port
  type: number
- path: mode
  enum: [a, b]
`
	set, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestParseRulesJSON(t *testing.T) {
	doc := `{"rules": [{"path": "port", "type": "number", "min": 1}]}`

	set, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	_, ok := set.Rules()[0].Constraint.(NumberRange)
	assert.True(t, ok)
}

func TestParseExclusions(t *testing.T) {
	doc := `
exclusions:
  - legacy.*
  - "*.deprecated"
rules:
  - path: port
    type: number
`
	set, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy.*", "*.deprecated"}, set.Exclusions())
}

func TestParseAggregatesRuleErrors(t *testing.T) {
	doc := `
rules:
  - path: ""
    type: number
  - path: ok
    type: nosuchtype
  - path: also.ok
    type: string
    min: 3
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)

	// All three bad rules show up in one pass.
	msg := err.Error()
	assert.Contains(t, msg, "rule 0")
	assert.Contains(t, msg, "nosuchtype")
	assert.Contains(t, msg, "min/max bounds require type number")
}

func TestParseRuleConstraintConflicts(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"enum with bounds",
			`rules: [{path: p, enum: [1, 2], min: 0}]`,
		},
		{
			"range with length",
			`rules: [{path: p, min: 1, minLength: 1}]`,
		},
		{
			"length on number type",
			`rules: [{path: p, type: number, maxLength: 3}]`,
		},
		{
			"range on string type",
			`rules: [{path: p, type: string, max: 10}]`,
		},
		{
			"no constraint at all",
			`rules: [{path: p, required: true}]`,
		},
		{
			"min above max",
			`rules: [{path: p, min: 10, max: 1}]`,
		},
		{
			"negative minLength",
			`rules: [{path: p, minLength: -1}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseEmptyRules(t *testing.T) {
	_, err := Parse([]byte("rules: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rules")
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	doc := "rules:\n  - path: port\n    type: number\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RULES_LOAD_FAILED")
}

func TestEnumWithMixedScalars(t *testing.T) {
	doc := `
rules:
  - path: replicas
    enum: [1, 2, "auto", null]
`
	set, err := Parse([]byte(doc))
	require.NoError(t, err)

	en := set.Rules()[0].Constraint.(Enum)
	require.Len(t, en.Allowed, 4)
	assert.True(t, en.Allowed[0].Equal(conftree.Number(1)))
	assert.True(t, en.Allowed[2].Equal(conftree.String("auto")))
	assert.True(t, en.Allowed[3].IsNull())
}
