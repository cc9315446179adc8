package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/printer"
)

// TaskAddCommand adds a custom task to a project.
type TaskAddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
	taskCmd *TaskCommand

	text     string
	stage    string
	priority string
	notes    string
	owner    string
	due      string
}

// NewTaskAddCommand returns the task add command.
func NewTaskAddCommand(rootCmd *RootCommand, taskCmd *TaskCommand) *TaskAddCommand {
	c := &TaskAddCommand{rootCmd: rootCmd, taskCmd: taskCmd}

	c.Cmd = taskCmd.Cmd.Command("add", "Add a custom task to a project.")
	c.Cmd.Arg("text", "Text of the task.").Required().StringVar(&c.text)
	c.Cmd.Flag("stage", "Stage the task belongs to.").Default(string(model.StageIdentification)).EnumVar(&c.stage, stageNames()...)
	c.Cmd.Flag("priority", "Priority of the task.").Default(string(model.PriorityMedium)).EnumVar(&c.priority, string(model.PriorityLow), string(model.PriorityMedium), string(model.PriorityHigh))
	c.Cmd.Flag("notes", "Free form notes.").StringVar(&c.notes)
	c.Cmd.Flag("owner", "Who the task is assigned to.").StringVar(&c.owner)
	c.Cmd.Flag("due", "Due date (YYYY-MM-DD).").StringVar(&c.due)

	return c
}

func (c TaskAddCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskAddCommand) Run(ctx context.Context) error {
	task := model.ProjectTask{
		ProjectID: c.taskCmd.projectID,
		Text:      c.text,
		Stage:     model.Stage(c.stage),
		Priority:  model.Priority(c.priority),
		Origin:    model.OriginCustom,
		Notes:     c.notes,
		Owner:     c.owner,
	}

	if c.due != "" {
		due, err := time.Parse("2006-01-02", c.due)
		if err != nil {
			return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD: %w", c.due, err)
		}
		task.DueDate = &due
	}

	src, err := newTaskSource(ctx, c.rootCmd)
	if err != nil {
		return err
	}

	created, err := src.CreateTask(ctx, task)
	if err != nil {
		return fmt.Errorf("could not create task: %w", err)
	}

	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintTask(model.UnifiedFromProject(*created, true)); err != nil {
		return fmt.Errorf("could not print task: %w", err)
	}

	return nil
}

// stageNames returns the stage names in checklist order for flag enums.
func stageNames() []string {
	stages := model.Stages()
	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, string(s))
	}
	return names
}
