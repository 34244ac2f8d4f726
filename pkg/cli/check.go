package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/guardrail-dev/guardrail/pkg/conftree"
	"github.com/guardrail-dev/guardrail/pkg/ruleset"
	"github.com/guardrail-dev/guardrail/pkg/serializer"
	"github.com/guardrail-dev/guardrail/pkg/validator"
	"github.com/guardrail-dev/guardrail/pkg/version"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate a configuration file against a rule set",
		Description: `Validates every rule in the rule set against the configuration and reports
all violations found, one pass, in rule order. The configuration may be JSON
or YAML; the rules file holds path patterns with type, range, length, and
enum constraints.

# Examples

Validate a YAML configuration:
  guardrail check --config config.yaml --rules rules.yaml

Emit a machine-readable report for CI:
  guardrail check -c config.json -r rules.yaml --format json -o report.json

Exit code is 0 when the configuration passes and 1 when violations are
found.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "Path to the configuration file (JSON or YAML)",
			},
			&cli.StringFlag{
				Name:     "rules",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Path to the rules file (JSON or YAML)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 1,
				Usage: "Evaluate rules with up to N goroutines (report order is unaffected)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q, valid formats are: yaml, json, table", outFormat)
			}

			configPath := cmd.String("config")
			tree, err := conftree.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			rulesPath := cmd.String("rules")
			set, err := ruleset.Load(rulesPath)
			if err != nil {
				return fmt.Errorf("failed to load rules: %w", err)
			}

			slog.Debug("validating configuration",
				"config", configPath,
				"rules", set.Len(),
			)

			v := validator.New(
				validator.WithVersion(version.Version),
				validator.WithWorkers(int(cmd.Int("workers"))),
			)
			report, err := v.Validate(ctx, tree, set)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err := ser.Serialize(ctx, report); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			if !report.Clean() {
				slog.Error("configuration is invalid",
					"violations", len(report.Violations),
					"checked", report.Summary.Checked,
				)
				return cli.Exit("", 1)
			}

			slog.Info("configuration is valid",
				"rules", report.Summary.Rules,
				"checked", report.Summary.Checked,
			)
			return nil
		},
	}
}
