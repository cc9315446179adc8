package commands

import (
	"github.com/alecthomas/kingpin/v2"
)

// TaskCommand is the parent command for task subcommands.
type TaskCommand struct {
	Cmd *kingpin.CmdClause

	projectID string
}

// NewTaskCommand returns the task parent command.
func NewTaskCommand(app *kingpin.Application) *TaskCommand {
	c := &TaskCommand{}

	c.Cmd = app.Command("task", "Manage project tasks.")
	c.Cmd.Flag("project", "ID of the project the task belongs to.").Short('p').Required().StringVar(&c.projectID)

	return c
}
