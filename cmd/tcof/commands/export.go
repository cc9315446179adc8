package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/Greg-CLD/tcof/internal/export"
)

// ExportCommand writes the checklist of a project as CSV.
type ExportCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	projectID string
	out       string
}

// NewExportCommand returns the export command.
func NewExportCommand(rootCmd *RootCommand, app *kingpin.Application) *ExportCommand {
	c := &ExportCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("export", "Export the checklist of a project as CSV.")
	c.Cmd.Flag("project", "ID of the project.").Short('p').Required().StringVar(&c.projectID)
	c.Cmd.Flag("out", "File to write to instead of stdout.").Short('o').StringVar(&c.out)

	return c
}

func (c ExportCommand) Name() string { return c.Cmd.FullCommand() }

func (c ExportCommand) Run(ctx context.Context) error {
	var w io.Writer = c.rootCmd.Stdout
	if c.out != "" {
		f, err := os.Create(c.out)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", c.out, err)
		}
		defer f.Close()
		w = f
	}

	if err := c.export(ctx, w); err != nil {
		return err
	}

	if c.out != "" {
		fmt.Fprintf(c.rootCmd.Stdout, "Checklist exported to %s\n", c.out)
	}

	return nil
}

func (c ExportCommand) export(ctx context.Context, w io.Writer) error {
	// Against an API server the export endpoint does the work, so its plan
	// gate applies.
	if c.rootCmd.remote() {
		client, err := newAPIClient(c.rootCmd)
		if err != nil {
			return err
		}
		if err := client.ExportCSV(ctx, c.projectID, w); err != nil {
			return fmt.Errorf("could not export checklist: %w", err)
		}
		return nil
	}

	eng, err := newEngine(ctx, c.rootCmd, c.projectID)
	if err != nil {
		return err
	}

	cl, err := eng.Reconcile(ctx)
	if err != nil {
		return fmt.Errorf("could not load checklist: %w", err)
	}

	if err := export.CSV(w, cl); err != nil {
		return fmt.Errorf("could not export checklist: %w", err)
	}

	return nil
}
