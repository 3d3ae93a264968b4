// Command retailbank is a command-line front end for the bank. Each
// invocation loads the store, runs one command and saves any change.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/amirasaad/retailbank/infra/initializer"
	"github.com/amirasaad/retailbank/pkg/app"
	"github.com/amirasaad/retailbank/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("retailbank"),
		kong.Description("Manage bank customers, accounts and the monthly interest run."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if cli.NoColor {
		color.NoColor = true
	}

	cfg, err := config.Load(cli.EnvFile)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(cfg, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps, cfg)
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("failed to load bank state: %w", err)
	}

	return kctx.Run(&runContext{
		ctx: ctx,
		svc: a.BankService,
		out: newPrinter(stdout, cli.JSON),
	})
}
