package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/printer"
)

// TaskDoneCommand marks a checklist task as done. Completing a catalog
// recommendation materializes it into a stored task.
type TaskDoneCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
	taskCmd *TaskCommand

	taskID string
}

// NewTaskDoneCommand returns the task done command.
func NewTaskDoneCommand(rootCmd *RootCommand, taskCmd *TaskCommand) *TaskDoneCommand {
	c := &TaskDoneCommand{rootCmd: rootCmd, taskCmd: taskCmd}

	c.Cmd = taskCmd.Cmd.Command("done", "Mark a checklist task as done.")
	c.Cmd.Arg("task-id", "ID of the task, as shown by the checklist command.").Required().StringVar(&c.taskID)

	return c
}

func (c TaskDoneCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskDoneCommand) Run(ctx context.Context) error {
	eng, err := newEngine(ctx, c.rootCmd, c.taskCmd.projectID)
	if err != nil {
		return err
	}

	cl, err := eng.Reconcile(ctx)
	if err != nil {
		return fmt.Errorf("could not load checklist: %w", err)
	}

	var target *model.UnifiedTask
	for i := range cl.All {
		if cl.All[i].ID == c.taskID {
			target = &cl.All[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("task %s is not on the checklist", c.taskID)
	}

	done := model.TaskStatusDone
	updated, err := eng.UpdateTask(ctx, c.taskID, model.TaskUpdate{Status: &done}, target.Stage, target.Origin)
	if err != nil {
		return fmt.Errorf("could not complete task: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintTask(updated); err != nil {
		return fmt.Errorf("could not print task: %w", err)
	}

	return nil
}
