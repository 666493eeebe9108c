// Package reconcilecmd implements the "reconcile" command: the full
// collect, diff, rewrite, report pipeline.
package reconcilecmd

import (
	"context"
	"fmt"

	"github.com/nucent/nucent/internal/config"
	"github.com/nucent/nucent/internal/core"
	"github.com/nucent/nucent/internal/msbuild"
	"github.com/nucent/nucent/internal/pipeline"
	"github.com/nucent/nucent/internal/printer"
	"github.com/nucent/nucent/internal/report"
	"github.com/nucent/nucent/internal/rewrite"
	"github.com/nucent/nucent/internal/tui"
	"github.com/urfave/cli/v3"
)

// Run returns the "reconcile" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "reconcile",
		Aliases:   []string{"run"},
		Usage:     "Centralize package versions and report the diff against " + msbuild.PropsFileName,
		ArgsUsage: "<root-dir> <props-file>",
		UsageText: `nucent reconcile [options] <root-dir> <props-file>

Scans <root-dir> recursively for project files, collects every package and
tool reference, and rewrites each version attribute in place to reference a
centralized property ($(PackageVersion_...)). The diff against <props-file>
is reported: properties to add and properties no longer referenced.

The rewrite mutates project files with no backup. A confirmation is asked on
interactive terminals; pass --yes to skip it.`,
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
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
			&cli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Never prompt; proceed as if confirmed",
			},
			&cli.BoolFlag{
				Name:  "sort-props",
				Usage: "Rewrite the properties file with each group sorted by property name",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runReconcileCmd(ctx, cmd, cfg)
		},
	}
}

// runReconcileCmd executes the reconcile command.
func runReconcileCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
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

	doRewrite, err := confirmRewrite(cmd, len(analysis.Scan.Projects))
	if err != nil {
		return err
	}

	var rewriteResult *rewrite.Result
	propsSorted := false
	if doRewrite {
		rewriteResult, err = rewrite.NewRewriter(fs).Rewrite(ctx, analysis.Scan.Projects)
		if err != nil {
			return fmt.Errorf("rewrite failed: %w", err)
		}

		if cmd.Bool("sort-props") || cfg.SortProps {
			analysis.Props.SortGroups()
			if err := analysis.Props.Save(ctx); err != nil {
				return err
			}
			propsSorted = true
		}
	}

	rep := &report.Report{
		Root:        root,
		PropsFile:   propsPath,
		Projects:    analysis.Scan.Projects,
		Warnings:    analysis.Scan.Warnings,
		Collisions:  analysis.Collisions,
		Plan:        analysis.Plan,
		Rewrite:     rewriteResult,
		PropsSorted: propsSorted,
	}

	format := report.ParseOutputFormat(cmd.String("format"))
	formatter := report.NewFormatter(format)
	if cmd.Bool("quiet") && format == report.FormatText {
		fmt.Println(formatter.Summary(rep))
	} else {
		formatter.PrintReport(rep)
	}

	if !doRewrite {
		printer.PrintFaint("Rewrite declined; no files were modified.")
	}

	return nil
}

// confirmRewrite asks before mutating files when running interactively.
// --yes skips the prompt; non-interactive environments proceed without one
// since invoking reconcile already requests the mutation.
func confirmRewrite(cmd *cli.Command, projectCount int) (bool, error) {
	if cmd.Bool("yes") || cmd.Bool("no-interactive") || !tui.IsInteractive() {
		return true, nil
	}
	return tui.Confirm(
		fmt.Sprintf("Rewrite %d project file(s) in place?", projectCount),
		"Version attributes will be replaced with property references. There is no backup.",
	)
}
