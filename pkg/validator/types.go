package validator

import (
	"time"
)

// ViolationKind classifies a detected misconfiguration.
type ViolationKind string

const (
	ViolationMissingRequired ViolationKind = "MissingRequired"
	ViolationTypeMismatch    ViolationKind = "TypeMismatch"
	ViolationOutOfRange      ViolationKind = "OutOfRange"
	ViolationNotInEnum       ViolationKind = "NotInEnum"
)

// Violation is a single detected misconfiguration, tied to a concrete
// resolved path and the rule that flagged it. Never mutated after creation.
type Violation struct {
	// Path is the concrete resolved path, e.g. "servers[2].port". For
	// MissingRequired it is the pattern itself, wildcards left literal,
	// since no concrete instance exists.
	Path string `json:"path" yaml:"path"`

	// RuleIndex is the position of the flagging rule in its set.
	RuleIndex int `json:"ruleIndex" yaml:"ruleIndex"`

	Kind ViolationKind `json:"kind" yaml:"kind"`

	// Expected describes the constraint, e.g. "number in [1, 65535]".
	Expected string `json:"expected" yaml:"expected"`

	// Actual renders the offending value, or "absent" for MissingRequired.
	Actual string `json:"actual" yaml:"actual"`

	// Message carries detail such as which bound was violated and by how
	// much, or a did-you-mean suggestion for missing paths.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ReportStatus is the overall outcome of a validation run.
type ReportStatus string

const (
	ReportStatusPass ReportStatus = "pass"
	ReportStatusFail ReportStatus = "fail"
)

// Summary aggregates a validation run.
type Summary struct {
	// Rules is the number of rules evaluated.
	Rules int `json:"rules" yaml:"rules"`

	// Checked is the number of (path, rule) pairs a constraint ran against.
	Checked int `json:"checked" yaml:"checked"`

	// Passed and Failed count checked pairs; Failed includes missing
	// required paths.
	Passed int `json:"passed" yaml:"passed"`
	Failed int `json:"failed" yaml:"failed"`

	Status   ReportStatus  `json:"status" yaml:"status"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report is the ordered collection of violations found in one run.
// An empty violation list means the configuration passes.
type Report struct {
	APIVersion  string `json:"apiVersion" yaml:"apiVersion"`
	Kind        string `json:"kind" yaml:"kind"`
	GeneratedBy string `json:"generatedBy,omitempty" yaml:"generatedBy,omitempty"`

	Violations []Violation `json:"violations" yaml:"violations"`
	Summary    Summary     `json:"summary" yaml:"summary"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{Violations: []Violation{}}
}

// Init stamps the report identity fields.
func (r *Report) Init(kind, apiVersion, generatedBy string) {
	r.Kind = kind
	r.APIVersion = apiVersion
	r.GeneratedBy = generatedBy
}

// Clean reports whether no violations were found.
func (r *Report) Clean() bool { return len(r.Violations) == 0 }
