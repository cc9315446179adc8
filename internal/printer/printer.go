package printer

import "github.com/Greg-CLD/tcof/internal/model"

// Printer knows how to print checklist and project information in different
// formats.
type Printer interface {
	PrintChecklist(cl model.Checklist) error
	PrintTask(task model.UnifiedTask) error
	PrintTaskList(tasks []model.ProjectTask) error
	PrintProjectList(projects []model.Project) error
	PrintFactorList(factors []model.SuccessFactor) error
	PrintSummary(sum model.ProjectSummary) error
	PrintMessage(msg string) error
}
