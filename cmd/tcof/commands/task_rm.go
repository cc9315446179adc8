package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

// TaskRmCommand deletes a stored task from a project.
type TaskRmCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
	taskCmd *TaskCommand

	taskID string
}

// NewTaskRmCommand returns the task rm command.
func NewTaskRmCommand(rootCmd *RootCommand, taskCmd *TaskCommand) *TaskRmCommand {
	c := &TaskRmCommand{rootCmd: rootCmd, taskCmd: taskCmd}

	c.Cmd = taskCmd.Cmd.Command("rm", "Delete a stored task. Catalog recommendations that were never edited cannot be deleted.")
	c.Cmd.Arg("task-id", "ID of the task, as shown by the checklist command.").Required().StringVar(&c.taskID)

	return c
}

func (c TaskRmCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskRmCommand) Run(ctx context.Context) error {
	eng, err := newEngine(ctx, c.rootCmd, c.taskCmd.projectID)
	if err != nil {
		return err
	}

	if _, err := eng.Reconcile(ctx); err != nil {
		return fmt.Errorf("could not load checklist: %w", err)
	}

	if err := eng.DeleteTask(ctx, c.taskID); err != nil {
		return fmt.Errorf("could not delete task: %w", err)
	}

	fmt.Fprintf(c.rootCmd.Stdout, "Task %s deleted.\n", c.taskID)

	return nil
}
