package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/Greg-CLD/tcof/internal/app/summary"
	"github.com/Greg-CLD/tcof/internal/model"
)

// ChecklistCommand shows the reconciled checklist of a project.
type ChecklistCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	projectID string
	format    string
	summary   bool
}

// NewChecklistCommand returns the checklist command.
func NewChecklistCommand(rootCmd *RootCommand, app *kingpin.Application) *ChecklistCommand {
	c := &ChecklistCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("checklist", "Show the checklist of a project, catalog recommendations merged with stored tasks.")
	c.Cmd.Flag("project", "ID of the project.").Short('p').Required().StringVar(&c.projectID)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")
	c.Cmd.Flag("summary", "Show the progress summary instead of the task list.").BoolVar(&c.summary)

	return c
}

func (c ChecklistCommand) Name() string { return c.Cmd.FullCommand() }

func (c ChecklistCommand) Run(ctx context.Context) error {
	p := newPrinter(c.rootCmd, c.format)

	if c.summary {
		sum, err := c.loadSummary(ctx)
		if err != nil {
			return fmt.Errorf("could not summarize project: %w", err)
		}
		if err := p.PrintSummary(*sum); err != nil {
			return fmt.Errorf("could not print summary: %w", err)
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

	if err := p.PrintChecklist(cl); err != nil {
		return fmt.Errorf("could not print checklist: %w", err)
	}

	return nil
}

func (c ChecklistCommand) loadSummary(ctx context.Context) (*model.ProjectSummary, error) {
	if c.rootCmd.remote() {
		client, err := newAPIClient(c.rootCmd)
		if err != nil {
			return nil, err
		}
		return client.Summary(ctx, c.projectID)
	}

	repo, err := openRepository(ctx, c.rootCmd)
	if err != nil {
		return nil, err
	}

	catalogSrc, err := newCatalogSource(c.rootCmd)
	if err != nil {
		return nil, err
	}

	svc, err := summary.NewService(summary.ServiceConfig{
		Repository: repo,
		Catalog:    catalogSrc,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create summary service: %w", err)
	}

	return svc.Run(ctx, summary.Request{ProjectID: c.projectID})
}
