package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/model"
)

func TestTaskID(t *testing.T) {
	assert := assert.New(t)

	id := catalog.TaskID("F1", model.StageIdentification, "Write charter")

	assert.Regexp(`^F1-[0-9a-f]{8}$`, id)
	assert.Equal(id, catalog.TaskID("F1", model.StageIdentification, "Write charter"))
	assert.NotEqual(id, catalog.TaskID("F1", model.StageDefinition, "Write charter"))
	assert.NotEqual(id, catalog.TaskID("F1", model.StageIdentification, "Write plan"))
	assert.NotEqual(id, catalog.TaskID("F2", model.StageIdentification, "Write charter"))
}

func TestFlatten(t *testing.T) {
	tests := map[string]struct {
		factors  []model.SuccessFactor
		expTasks func() []model.CanonicalTask
	}{
		"An empty catalog should flatten to no tasks.": {
			factors: []model.SuccessFactor{},
			expTasks: func() []model.CanonicalTask {
				return []model.CanonicalTask{}
			},
		},

		"A factor should expand per stage per task text, in stage order.": {
			factors: []model.SuccessFactor{
				{
					ID:    "F1",
					Title: "Secure a project champion",
					Tasks: map[model.Stage][]string{
						model.StageDelivery:       {"Hold a monthly review"},
						model.StageIdentification: {"Write charter", "Name the champion"},
					},
				},
			},
			expTasks: func() []model.CanonicalTask {
				return []model.CanonicalTask{
					{ID: catalog.TaskID("F1", model.StageIdentification, "Write charter"), FactorID: "F1", Stage: model.StageIdentification, Text: "Write charter"},
					{ID: catalog.TaskID("F1", model.StageIdentification, "Name the champion"), FactorID: "F1", Stage: model.StageIdentification, Text: "Name the champion"},
					{ID: catalog.TaskID("F1", model.StageDelivery, "Hold a monthly review"), FactorID: "F1", Stage: model.StageDelivery, Text: "Hold a monthly review"},
				}
			},
		},

		"Multiple factors should keep catalog order.": {
			factors: []model.SuccessFactor{
				{
					ID:    "F2",
					Title: "Plan for benefits",
					Tasks: map[model.Stage][]string{
						model.StageClosure: {"Record lessons learned"},
					},
				},
				{
					ID:    "F1",
					Title: "Secure a project champion",
					Tasks: map[model.Stage][]string{
						model.StageIdentification: {"Write charter"},
					},
				},
			},
			expTasks: func() []model.CanonicalTask {
				return []model.CanonicalTask{
					{ID: catalog.TaskID("F2", model.StageClosure, "Record lessons learned"), FactorID: "F2", Stage: model.StageClosure, Text: "Record lessons learned"},
					{ID: catalog.TaskID("F1", model.StageIdentification, "Write charter"), FactorID: "F1", Stage: model.StageIdentification, Text: "Write charter"},
				}
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			got := catalog.Flatten(test.factors)

			assert.Equal(test.expTasks(), got)
		})
	}
}

func TestFlattenIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	factors := []model.SuccessFactor{
		{
			ID:    "F1",
			Title: "Secure a project champion",
			Tasks: map[model.Stage][]string{
				model.StageIdentification: {"Write charter"},
				model.StageDefinition:     {"Agree the scope"},
				model.StageDelivery:       {"Hold a monthly review"},
				model.StageClosure:        {"Record lessons learned"},
			},
		},
	}

	first := catalog.Flatten(factors)
	second := catalog.Flatten(factors)

	assert.Equal(first, second)
}
