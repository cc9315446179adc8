package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

// CatalogCommand shows the success factor catalog.
type CatalogCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewCatalogCommand returns the catalog command.
func NewCatalogCommand(rootCmd *RootCommand, app *kingpin.Application) *CatalogCommand {
	c := &CatalogCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("catalog", "Show the success factor catalog.")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c CatalogCommand) Name() string { return c.Cmd.FullCommand() }

func (c CatalogCommand) Run(ctx context.Context) error {
	src, err := newCatalogSource(c.rootCmd)
	if err != nil {
		return err
	}

	factors, err := src.Factors(ctx)
	if err != nil {
		return fmt.Errorf("could not load catalog: %w", err)
	}

	p := newPrinter(c.rootCmd, c.format)
	if err := p.PrintFactorList(factors); err != nil {
		return fmt.Errorf("could not print catalog: %w", err)
	}

	return nil
}
