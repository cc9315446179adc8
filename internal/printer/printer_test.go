package printer_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/printer"
)

func checklistFixture() model.Checklist {
	cl := model.EmptyChecklist()
	charter := model.UnifiedTask{
		ID:        "F1-0000aaaa-1a2b3c4d",
		Text:      "Write a project charter",
		Stage:     model.StageIdentification,
		Origin:    model.OriginFactor,
		Priority:  model.PriorityMedium,
		Status:    model.TaskStatusToDo,
		Persisted: false,
	}
	review := model.UnifiedTask{
		ID:        "01HZXYTASK0000000000000001",
		Text:      "Hold the gate review",
		Completed: true,
		Stage:     model.StageDefinition,
		Origin:    model.OriginCustom,
		Priority:  model.PriorityHigh,
		Status:    model.TaskStatusDone,
		Persisted: true,
	}
	cl.Stages[model.StageIdentification] = []model.UnifiedTask{charter}
	cl.Stages[model.StageDefinition] = []model.UnifiedTask{review}
	cl.All = []model.UnifiedTask{charter, review}
	return cl
}

func TestTablePrinterPrintChecklist(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintChecklist(checklistFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "STAGE")
	assert.Contains(t, out, "Identification")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "Write a project charter")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Hold the gate review")

	// Identification rows come before definition rows.
	assert.Less(t, strings.Index(out, "Write a project charter"), strings.Index(out, "Hold the gate review"))
}

func TestTablePrinterPrintChecklistEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintChecklist(model.EmptyChecklist())
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestTablePrinterPrintTask(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintTask(checklistFixture().Stages[model.StageIdentification][0])
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Task:       Write a project charter")
	assert.Contains(t, out, "Stage:      identification")
	assert.Contains(t, out, "catalog recommendation")
}

func TestTablePrinterPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintSummary(model.ProjectSummary{
		ProjectID: "prj1",
		Stages: []model.StageSummary{
			{Stage: model.StageIdentification, Total: 3, Completed: 1},
			{Stage: model.StageDefinition, Total: 2, Completed: 2},
			{Stage: model.StageDelivery, Total: 0, Completed: 0},
			{Stage: model.StageClosure, Total: 0, Completed: 0},
		},
		TotalTasks:  5,
		DoneTasks:   3,
		Completion:  60,
		RatingCount: 2,
		RatingAvg:   7.5,
		GeneratedAt: time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "5 total, 3 done (60.0%)")
	assert.Contains(t, out, "Identification:  1/3")
	assert.Contains(t, out, "2 rated, avg 7.5")
	assert.Contains(t, out, "2026-05-12 09:30:00 UTC")
}

func TestJSONPrinterPrintChecklist(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	err := p.PrintChecklist(checklistFixture())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"text": "Write a project charter"`)
	assert.Contains(t, out, `"persisted": false`)
	assert.Contains(t, out, `"status": "Done"`)
}

func TestTablePrinterPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintMessage("ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", strings.TrimSpace(buf.String()))
}
