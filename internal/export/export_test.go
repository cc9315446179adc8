package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/checklist"
	"github.com/Greg-CLD/tcof/internal/export"
	"github.com/Greg-CLD/tcof/internal/model"
)

func TestCSV(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		tasks []model.UnifiedTask
		exp   string
	}{
		"An empty checklist should export the header only.": {
			tasks: []model.UnifiedTask{},
			exp:   "Stage,Task,Status,Completed,Priority,Due,Owner,Origin,Notes\n",
		},

		"Tasks should export in stage order with their fields quoted as needed.": {
			tasks: []model.UnifiedTask{
				{ID: "t3", Text: "Hold gate review", Stage: model.StageClosure, Origin: model.OriginFactor, Priority: model.PriorityMedium, Status: model.TaskStatusToDo},
				{ID: "t1", Text: "Write charter", Completed: true, Stage: model.StageIdentification, Origin: model.OriginFactor, Priority: model.PriorityHigh, Status: model.TaskStatusDone, Owner: "grace", DueDate: &due},
				{ID: "t2", Text: "Agree scope", Stage: model.StageDefinition, Origin: model.OriginCustom, Priority: model.PriorityMedium, Status: model.TaskStatusWorking, Notes: "Needs sponsor, then PMO"},
			},
			exp: "Stage,Task,Status,Completed,Priority,Due,Owner,Origin,Notes\n" +
				"identification,Write charter,Done,true,high,2026-09-01,grace,factor,\n" +
				"definition,Agree scope,Working On It,false,medium,,,custom,\"Needs sponsor, then PMO\"\n" +
				"closure,Hold gate review,To Do,false,medium,,,factor,\n",
		},

		"A task with an unknown stage should export under identification.": {
			tasks: []model.UnifiedTask{
				{ID: "t1", Text: "Kickoff meeting", Stage: "kickoff", Origin: model.OriginCustom, Priority: model.PriorityLow, Status: model.TaskStatusToDo},
			},
			exp: "Stage,Task,Status,Completed,Priority,Due,Owner,Origin,Notes\n" +
				"identification,Kickoff meeting,To Do,false,low,,,custom,\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			var buf bytes.Buffer
			err := export.CSV(&buf, checklist.Partition(test.tasks))

			require.NoError(t, err)
			assert.Equal(test.exp, buf.String())
		})
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 23, 11, 30, 0, 0, time.UTC)

	tests := map[string]struct {
		project string
		exp     string
	}{
		"A plain name should slug into the file name.": {
			project: "Website",
			exp:     "tcof-website-checklist-2026-08-23.csv",
		},

		"Spaces and punctuation should collapse into single dashes.": {
			project: "Website Relaunch (Q3)!",
			exp:     "tcof-website-relaunch-q3-checklist-2026-08-23.csv",
		},

		"An empty name should fall back to a generic slug.": {
			project: "   ",
			exp:     "tcof-project-checklist-2026-08-23.csv",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, export.Filename(test.project, now))
		})
	}
}
