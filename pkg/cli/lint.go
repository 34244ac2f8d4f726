package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/guardrail-dev/guardrail/pkg/ruleset"
)

func lintCmd() *cli.Command {
	return &cli.Command{
		Name:                  "lint",
		EnableShellCompletion: true,
		Usage:                 "Check a rules file for errors without validating anything",
		Description: `Parses and validates the rules file itself: path pattern syntax, constraint
shapes, and bounds. Every malformed rule in the file is reported, not just
the first.

# Examples

  guardrail lint --rules rules.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rules",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "Path to the rules file (JSON or YAML)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rulesPath := cmd.String("rules")
			set, err := ruleset.Load(rulesPath)
			if err != nil {
				return fmt.Errorf("rules file is invalid: %w", err)
			}

			slog.Info("rules file is valid", "path", rulesPath, "rules", set.Len())
			return nil
		},
	}
}
