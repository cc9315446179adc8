package printer

import (
	"encoding/json"
	"io"

	"github.com/Greg-CLD/tcof/internal/model"
)

// JSONPrinter prints checklist information in JSON format using the same
// shapes the API serves.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

func (j *JSONPrinter) encode(v interface{}) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintChecklist prints the reconciled checklist in JSON format.
func (j *JSONPrinter) PrintChecklist(cl model.Checklist) error {
	return j.encode(cl)
}

// PrintTask prints a task in JSON format.
func (j *JSONPrinter) PrintTask(task model.UnifiedTask) error {
	return j.encode(task)
}

// PrintTaskList prints persisted tasks in JSON format.
func (j *JSONPrinter) PrintTaskList(tasks []model.ProjectTask) error {
	return j.encode(tasks)
}

// PrintProjectList prints projects in JSON format.
func (j *JSONPrinter) PrintProjectList(projects []model.Project) error {
	return j.encode(projects)
}

// PrintFactorList prints the catalog factors in JSON format.
func (j *JSONPrinter) PrintFactorList(factors []model.SuccessFactor) error {
	return j.encode(factors)
}

// PrintSummary prints the project dashboard summary in JSON format.
func (j *JSONPrinter) PrintSummary(sum model.ProjectSummary) error {
	return j.encode(sum)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}
