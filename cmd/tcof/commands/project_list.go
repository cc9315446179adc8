package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/Greg-CLD/tcof/internal/model"
)

// ProjectListCommand lists projects.
type ProjectListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewProjectListCommand returns the project list command.
func NewProjectListCommand(rootCmd *RootCommand, projectCmd *kingpin.CmdClause) *ProjectListCommand {
	c := &ProjectListCommand{rootCmd: rootCmd}

	c.Cmd = projectCmd.Command("list", "List projects.")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c ProjectListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ProjectListCommand) Run(ctx context.Context) error {
	var (
		projects []model.Project
		err      error
	)

	if c.rootCmd.remote() {
		client, cerr := newAPIClient(c.rootCmd)
		if cerr != nil {
			return cerr
		}
		projects, err = client.ListProjects(ctx)
	} else {
		projects, err = c.listLocal(ctx)
	}
	if err != nil {
		return fmt.Errorf("could not list projects: %w", err)
	}

	p := newPrinter(c.rootCmd, c.format)
	if err := p.PrintProjectList(projects); err != nil {
		return fmt.Errorf("could not print projects: %w", err)
	}

	return nil
}

func (c ProjectListCommand) listLocal(ctx context.Context) ([]model.Project, error) {
	repo, err := openRepository(ctx, c.rootCmd)
	if err != nil {
		return nil, err
	}

	org, err := ensureLocalOrg(ctx, repo)
	if err != nil {
		return nil, err
	}

	return repo.ListProjects(ctx, org.ID)
}
