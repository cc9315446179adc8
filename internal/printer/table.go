package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Greg-CLD/tcof/internal/model"
)

// TablePrinter prints checklist information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// PrintChecklist prints the reconciled checklist grouped by stage.
func (t *TablePrinter) PrintChecklist(cl model.Checklist) error {
	if cl.Len() == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header
	fmt.Fprintln(tw, "STAGE\tDONE\tTASK\tSTATUS\tPRIORITY\tORIGIN")

	// Print rows in stage order
	for _, stage := range model.Stages() {
		for _, task := range cl.Stages[stage] {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				stage.Title(),
				checkbox(task.Completed),
				task.Text,
				task.Status,
				task.Priority,
				task.Origin,
			)
		}
	}

	return nil
}

// PrintTask prints detailed task information.
func (t *TablePrinter) PrintTask(task model.UnifiedTask) error {
	fmt.Fprintf(t.writer, "Task:       %s\n", task.Text)
	fmt.Fprintf(t.writer, "ID:         %s\n", task.ID)
	fmt.Fprintf(t.writer, "Stage:      %s\n", task.Stage)
	fmt.Fprintf(t.writer, "Status:     %s\n", task.Status)
	fmt.Fprintf(t.writer, "Priority:   %s\n", task.Priority)
	fmt.Fprintf(t.writer, "Origin:     %s\n", task.Origin)

	if !task.Persisted {
		fmt.Fprintf(t.writer, "Source:     catalog recommendation (not yet stored)\n")
	} else if task.SourceID != "" {
		fmt.Fprintf(t.writer, "Source:     %s\n", task.SourceID)
	}

	if task.Notes != "" {
		fmt.Fprintf(t.writer, "Notes:      %s\n", task.Notes)
	}

	if task.DueDate != nil {
		fmt.Fprintf(t.writer, "Due:        %s\n", task.DueDate.UTC().Format("2006-01-02"))
	}

	if task.Owner != "" {
		fmt.Fprintf(t.writer, "Owner:      %s\n", task.Owner)
	}

	return nil
}

// PrintTaskList prints persisted tasks in a table format.
func (t *TablePrinter) PrintTaskList(tasks []model.ProjectTask) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tDONE\tTASK\tSTAGE\tSTATUS\tCREATED")

	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			checkbox(task.Completed),
			task.Text,
			task.Stage,
			task.Status,
			TimeAgo(task.CreatedAt),
		)
	}

	return nil
}

// PrintProjectList prints projects in a table format.
func (t *TablePrinter) PrintProjectList(projects []model.Project) error {
	if len(projects) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION\tCREATED")

	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Description, TimeAgo(p.CreatedAt))
	}

	return nil
}

// PrintFactorList prints the catalog factors in a table format.
func (t *TablePrinter) PrintFactorList(factors []model.SuccessFactor) error {
	if len(factors) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tTITLE\tTASKS")

	for _, f := range factors {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", f.ID, f.Title, f.TaskCount())
	}

	return nil
}

// PrintSummary prints the project dashboard summary.
func (t *TablePrinter) PrintSummary(sum model.ProjectSummary) error {
	fmt.Fprintf(t.writer, "Project:    %s\n", sum.ProjectID)
	fmt.Fprintf(t.writer, "Tasks:      %d total, %d done (%.1f%%)\n", sum.TotalTasks, sum.DoneTasks, sum.Completion)

	for _, stage := range sum.Stages {
		fmt.Fprintf(t.writer, "  %-16s %d/%d\n", stage.Stage.Title()+":", stage.Completed, stage.Total)
	}

	if sum.RatingCount > 0 {
		fmt.Fprintf(t.writer, "Ratings:    %d rated, avg %.1f\n", sum.RatingCount, sum.RatingAvg)
	}

	fmt.Fprintf(t.writer, "Generated:  %s\n", FormatTimestamp(sum.GeneratedAt))

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
