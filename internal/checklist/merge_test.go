package checklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Greg-CLD/tcof/internal/checklist"
	"github.com/Greg-CLD/tcof/internal/model"
)

func canonicalFixture() []model.CanonicalTask {
	return []model.CanonicalTask{
		{ID: "F1-0000aaaa", FactorID: "F1", Stage: model.StageIdentification, Text: "Write charter"},
		{ID: "F1-0000bbbb", FactorID: "F1", Stage: model.StageDefinition, Text: "Agree scope"},
		{ID: "F2-0000cccc", FactorID: "F2", Stage: model.StageDelivery, Text: "Track benefits"},
	}
}

func TestMerge(t *testing.T) {
	tests := map[string]struct {
		canonical []model.CanonicalTask
		persisted []model.ProjectTask
		expIDs    []string
		check     func(t *testing.T, merged []model.UnifiedTask)
	}{
		"Empty canonical and persisted lists should merge into an empty list.": {
			canonical: []model.CanonicalTask{},
			persisted: []model.ProjectTask{},
			expIDs:    []string{},
		},

		"A catalog with no persisted records should surface every canonical task as not persisted.": {
			canonical: canonicalFixture(),
			persisted: []model.ProjectTask{},
			expIDs:    []string{"F1-0000aaaa", "F1-0000bbbb", "F2-0000cccc"},
			check: func(t *testing.T, merged []model.UnifiedTask) {
				assert := assert.New(t)
				for _, task := range merged {
					assert.False(task.Persisted)
					assert.False(task.Completed)
					assert.Equal(model.OriginFactor, task.Origin)
					assert.Equal(model.PriorityMedium, task.Priority)
					assert.Equal(model.TaskStatusToDo, task.Status)
				}
			},
		},

		"A persisted record referencing a canonical task should replace it rather than duplicate it.": {
			canonical: canonicalFixture(),
			persisted: []model.ProjectTask{
				{
					ID:        "p1",
					ProjectID: "prj1",
					Text:      "Write charter (with sponsor sign-off)",
					Completed: true,
					Stage:     model.StageIdentification,
					Origin:    model.OriginFactor,
					SourceID:  "F1-0000aaaa",
					Status:    model.TaskStatusDone,
				},
			},
			expIDs: []string{"F1-0000bbbb", "F2-0000cccc", "p1"},
			check: func(t *testing.T, merged []model.UnifiedTask) {
				assert := assert.New(t)
				task := merged[2]
				assert.True(task.Persisted)
				assert.True(task.Completed)
				assert.Equal("Write charter (with sponsor sign-off)", task.Text)
				assert.Equal("F1-0000aaaa", task.SourceID)
			},
		},

		"Custom tasks should appear after the canonical block in listing order.": {
			canonical: canonicalFixture(),
			persisted: []model.ProjectTask{
				{ID: "p1", Text: "Book workshop room", Stage: model.StageDefinition, Origin: model.OriginCustom, Status: model.TaskStatusToDo},
				{ID: "p2", Text: "Send weekly update", Stage: model.StageDelivery, Origin: model.OriginCustom, Status: model.TaskStatusWorking},
			},
			expIDs: []string{"F1-0000aaaa", "F1-0000bbbb", "F2-0000cccc", "p1", "p2"},
		},

		"A record referencing a catalog task that no longer exists should still appear.": {
			canonical: canonicalFixture()[:1],
			persisted: []model.ProjectTask{
				{ID: "p1", Text: "Old recommendation", SourceID: "F9-deadbeef", Stage: model.StageClosure, Origin: model.OriginFactor, Status: model.TaskStatusToDo},
			},
			expIDs: []string{"F1-0000aaaa", "p1"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			merged := checklist.Merge(test.canonical, test.persisted)

			gotIDs := make([]string, 0, len(merged))
			for _, task := range merged {
				gotIDs = append(gotIDs, task.ID)
			}
			assert.Equal(test.expIDs, gotIDs)

			if test.check != nil {
				test.check(t, merged)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	tests := map[string]struct {
		tasks     []model.UnifiedTask
		expStages map[model.Stage][]string
	}{
		"An empty task list should produce a checklist with all four buckets initialized.": {
			tasks:     []model.UnifiedTask{},
			expStages: map[model.Stage][]string{},
		},

		"Tasks should land in their stage buckets preserving relative order.": {
			tasks: []model.UnifiedTask{
				{ID: "t1", Stage: model.StageIdentification},
				{ID: "t2", Stage: model.StageDelivery},
				{ID: "t3", Stage: model.StageIdentification},
				{ID: "t4", Stage: model.StageClosure},
				{ID: "t5", Stage: model.StageDefinition},
			},
			expStages: map[model.Stage][]string{
				model.StageIdentification: {"t1", "t3"},
				model.StageDefinition:     {"t5"},
				model.StageDelivery:       {"t2"},
				model.StageClosure:        {"t4"},
			},
		},

		"A task carrying an unknown stage should fall into the identification bucket but keep its stage.": {
			tasks: []model.UnifiedTask{
				{ID: "t1", Stage: "kickoff"},
				{ID: "t2", Stage: model.StageDefinition},
			},
			expStages: map[model.Stage][]string{
				model.StageIdentification: {"t1"},
				model.StageDefinition:     {"t2"},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			cl := checklist.Partition(test.tasks)

			assert.Len(cl.Stages, 4)
			assert.Len(cl.All, len(test.tasks))

			total := 0
			for _, stage := range model.Stages() {
				bucket := cl.Stages[stage]
				total += len(bucket)

				expIDs := test.expStages[stage]
				gotIDs := make([]string, 0, len(bucket))
				for _, task := range bucket {
					gotIDs = append(gotIDs, task.ID)
				}
				if len(expIDs) == 0 {
					assert.Empty(gotIDs)
				} else {
					assert.Equal(expIDs, gotIDs)
				}
			}

			// Every task lands in exactly one bucket.
			assert.Equal(len(cl.All), total)

			for i, task := range test.tasks {
				assert.Equal(task, cl.All[i])
			}
		})
	}
}

func TestPartitionKeepsUnknownStageOnTask(t *testing.T) {
	assert := assert.New(t)

	cl := checklist.Partition([]model.UnifiedTask{{ID: "t1", Stage: "kickoff"}})

	task, ok := cl.Task("t1")
	assert.True(ok)
	assert.Equal(model.Stage("kickoff"), task.Stage)
	assert.Equal("t1", cl.Stages[model.StageIdentification][0].ID)
}
