package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/guardrail-dev/guardrail/pkg/logging"
	"github.com/guardrail-dev/guardrail/pkg/version"
)

// Shared flags across commands
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   "",
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "yaml",
		Usage:   "output format (yaml, json, table)",
	}
)

// Run executes the guardrail CLI with the given arguments.
func Run(ctx context.Context, args []string) error {
	return rootCmd().Run(ctx, args)
}

// Main is the process entry point: it runs the CLI and exits nonzero on
// error. ExitCoder errors (violation failures) are handled inside Run by
// the cli library.
func Main() {
	if err := Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    "guardrail",
		Usage:   "Validate configuration values against a declarative rule set",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := "info"
			if cmd.Bool("debug") {
				level = "debug"
			}
			logging.Setup(level, cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkCmd(),
			lintCmd(),
			serveCmd(),
		},
	}
}
