package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nucent/nucent/internal/cli"
	"github.com/nucent/nucent/internal/config"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runCLI loads configuration and dispatches to the root command. Errors
// carrying an exit code (validation failures) are handled by urfave/cli;
// anything returned here exits with code 1.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}

	return cli.New(cfg).Run(context.Background(), args)
}
