package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/Greg-CLD/tcof/internal/model"
)

// ProjectCreateCommand creates a new project.
type ProjectCreateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	name        string
	description string
}

// NewProjectCreateCommand returns the project create command.
func NewProjectCreateCommand(rootCmd *RootCommand, projectCmd *kingpin.CmdClause) *ProjectCreateCommand {
	c := &ProjectCreateCommand{rootCmd: rootCmd}

	c.Cmd = projectCmd.Command("create", "Create a new project.")
	c.Cmd.Flag("name", "Name for the project.").Short('n').Required().StringVar(&c.name)
	c.Cmd.Flag("description", "Description of the project.").StringVar(&c.description)

	return c
}

func (c ProjectCreateCommand) Name() string { return c.Cmd.FullCommand() }

func (c ProjectCreateCommand) Run(ctx context.Context) error {
	var (
		project *model.Project
		err     error
	)

	if c.rootCmd.remote() {
		client, cerr := newAPIClient(c.rootCmd)
		if cerr != nil {
			return cerr
		}
		project, err = client.CreateProject(ctx, c.name, c.description)
	} else {
		project, err = c.createLocal(ctx)
	}
	if err != nil {
		return fmt.Errorf("could not create project: %w", err)
	}

	fmt.Fprintf(c.rootCmd.Stdout, "Project created!\n")
	fmt.Fprintf(c.rootCmd.Stdout, "  ID:   %s\n", project.ID)
	fmt.Fprintf(c.rootCmd.Stdout, "  Name: %s\n", project.Name)

	return nil
}

func (c ProjectCreateCommand) createLocal(ctx context.Context) (*model.Project, error) {
	repo, err := openRepository(ctx, c.rootCmd)
	if err != nil {
		return nil, err
	}

	org, err := ensureLocalOrg(ctx, repo)
	if err != nil {
		return nil, err
	}

	project := model.Project{
		OrgID:       org.ID,
		Name:        c.name,
		Description: c.description,
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}

	return repo.CreateProject(ctx, project)
}
