package cli

import (
	"context"
	"fmt"

	"github.com/nucent/nucent/internal/commands/checkcmd"
	"github.com/nucent/nucent/internal/commands/reconcilecmd"
	"github.com/nucent/nucent/internal/config"
	"github.com/nucent/nucent/internal/printer"
	"github.com/nucent/nucent/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the nucent cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "nucent",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Centralize NuGet package versions into Packages.props",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			reconcilecmd.Run(cfg),
			checkcmd.Run(cfg),
		},
	}
}
