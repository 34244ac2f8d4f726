// Package cli implements the command-line interface for the guardrail tool.
//
// # Overview
//
// guardrail validates structured configuration files (JSON, YAML) against a
// declarative rule set describing expected types and permissible value
// ranges, flagging misconfigurations before they reach production. It is
// built for operators and CI pipelines.
//
// # Commands
//
// check - Validate a configuration against rules:
//
//	guardrail check --config config.yaml --rules rules.yaml
//	guardrail check -c config.json -r rules.yaml --format json --output report.json
//
// Exits 0 when the configuration passes and 1 when violations are found, so
// the command slots directly into CI.
//
// lint - Verify a rules file without validating anything:
//
//	guardrail lint --rules rules.yaml
//
// Reports every malformed rule in the file in one pass.
//
// serve - Run the validation API server:
//
//	guardrail serve --port 8080
//
// Exposes POST /v1/validate plus /health, /ready, and /metrics.
//
// # Global Flags
//
//	--debug      Enable debug logging
//	--log-json   Output logs in JSON format
//
// # Output Formats
//
// Reports can be rendered as YAML, JSON, or a flattened table via --format.
// Logs go to stderr; the report goes to stdout or the --output file, so the
// two streams never mix.
//
// # Exit Codes
//
//	0  Configuration valid
//	1  Violations found, or invalid arguments / malformed input files
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/guardrail-dev/guardrail/pkg/version.Version=1.0.0'"
package cli
