// Package checkcmd implements the "check" command: the reconcile pipeline
// without the in-place rewrite.
package checkcmd

import (
	"context"
	"fmt"

	"github.com/nucent/nucent/internal/config"
	"github.com/nucent/nucent/internal/core"
	"github.com/nucent/nucent/internal/pipeline"
	"github.com/nucent/nucent/internal/report"
	"github.com/urfave/cli/v3"
)

// Run returns the "check" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report the version diff without modifying any file",
		ArgsUsage: "<root-dir> <props-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only show summary",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCheckCmd(ctx, cmd, cfg)
		},
	}
}

// runCheckCmd executes the check command.
func runCheckCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	args := cmd.Args()
	if args.Len() != 2 {
		return cli.Exit("expected exactly two arguments: <root-dir> <props-file>", pipeline.ExitUsage)
	}
	root, propsPath := args.Get(0), args.Get(1)

	fs := core.NewOSFileSystem()
	if err := pipeline.Validate(ctx, fs, root, propsPath); err != nil {
		return cli.Exit(err.Error(), pipeline.ExitCodeFor(err))
	}

	analysis, err := pipeline.Analyze(ctx, fs, cfg, root, propsPath)
	if err != nil {
		return err
	}

	rep := &report.Report{
		Root:       root,
		PropsFile:  propsPath,
		Projects:   analysis.Scan.Projects,
		Warnings:   analysis.Scan.Warnings,
		Collisions: analysis.Collisions,
		Plan:       analysis.Plan,
	}

	format := report.ParseOutputFormat(cmd.String("format"))
	formatter := report.NewFormatter(format)
	if cmd.Bool("quiet") && format == report.FormatText {
		fmt.Println(formatter.Summary(rep))
	} else {
		formatter.PrintReport(rep)
	}

	return nil
}
