package summary_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/app/summary"
	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/catalog/catalogmock"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/storage/storagemock"
)

func summaryFactors() []model.SuccessFactor {
	return []model.SuccessFactor{
		{
			ID:    "F1",
			Title: "Secure a project champion",
			Tasks: map[model.Stage][]string{
				model.StageIdentification: {"Write charter"},
				model.StageDefinition:     {"Agree scope"},
			},
		},
	}
}

func TestServiceRun(t *testing.T) {
	charterID := catalog.TaskID("F1", model.StageIdentification, "Write charter")

	tests := map[string]struct {
		req    summary.Request
		mock   func(mr *storagemock.MockRepository, mc *catalogmock.MockSource)
		expErr bool
		expIs  error
		check  func(t *testing.T, got *model.ProjectSummary)
	}{
		"A missing project id should be rejected.": {
			req:    summary.Request{},
			mock:   func(mr *storagemock.MockRepository, mc *catalogmock.MockSource) {},
			expErr: true,
			expIs:  model.ErrNotValid,
		},

		"An unknown project should fail with not found.": {
			req: summary.Request{ProjectID: "missing"},
			mock: func(mr *storagemock.MockRepository, mc *catalogmock.MockSource) {
				mr.On("GetProject", mock.Anything, "missing").Once().Return(nil, fmt.Errorf("no project: %w", model.ErrNotFound))
			},
			expErr: true,
			expIs:  model.ErrNotFound,
		},

		"A fresh project should summarize the catalog recommendations as pending.": {
			req: summary.Request{ProjectID: "prj1"},
			mock: func(mr *storagemock.MockRepository, mc *catalogmock.MockSource) {
				mr.On("GetProject", mock.Anything, "prj1").Once().Return(&model.Project{ID: "prj1", OrgID: "org1", Name: "Website"}, nil)
				mc.On("Factors", mock.Anything).Once().Return(summaryFactors(), nil)
				mr.On("ListProjectTasks", mock.Anything, "prj1").Once().Return([]model.ProjectTask{}, nil)
				mr.On("ListProjectRatings", mock.Anything, "prj1").Once().Return([]model.FactorRating{}, nil)
			},
			check: func(t *testing.T, got *model.ProjectSummary) {
				assert := assert.New(t)
				assert.Equal(2, got.TotalTasks)
				assert.Equal(0, got.DoneTasks)
				assert.Equal(float64(0), got.Completion)
				assert.Equal([]model.StageSummary{
					{Stage: model.StageIdentification, Total: 1, Completed: 0},
					{Stage: model.StageDefinition, Total: 1, Completed: 0},
					{Stage: model.StageDelivery, Total: 0, Completed: 0},
					{Stage: model.StageClosure, Total: 0, Completed: 0},
				}, got.Stages)
			},
		},

		"Materialized and custom tasks should aggregate per stage without duplicates.": {
			req: summary.Request{ProjectID: "prj1"},
			mock: func(mr *storagemock.MockRepository, mc *catalogmock.MockSource) {
				mr.On("GetProject", mock.Anything, "prj1").Once().Return(&model.Project{ID: "prj1", OrgID: "org1", Name: "Website"}, nil)
				mc.On("Factors", mock.Anything).Once().Return(summaryFactors(), nil)
				mr.On("ListProjectTasks", mock.Anything, "prj1").Once().Return([]model.ProjectTask{
					{ID: "p1", ProjectID: "prj1", Text: "Write charter", Completed: true, Stage: model.StageIdentification, Origin: model.OriginFactor, SourceID: charterID, Status: model.TaskStatusDone},
					{ID: "p2", ProjectID: "prj1", Text: "Demo to stakeholders", Completed: true, Stage: model.StageDelivery, Origin: model.OriginCustom, Status: model.TaskStatusDone},
				}, nil)
				mr.On("ListProjectRatings", mock.Anything, "prj1").Once().Return([]model.FactorRating{
					{ProjectID: "prj1", FactorID: "F1", Score: 6},
					{ProjectID: "prj1", FactorID: "F2", Score: 9},
				}, nil)
			},
			check: func(t *testing.T, got *model.ProjectSummary) {
				assert := assert.New(t)
				assert.Equal(3, got.TotalTasks)
				assert.Equal(2, got.DoneTasks)
				assert.InDelta(66.67, got.Completion, 0.01)
				assert.Equal([]model.StageSummary{
					{Stage: model.StageIdentification, Total: 1, Completed: 1},
					{Stage: model.StageDefinition, Total: 1, Completed: 0},
					{Stage: model.StageDelivery, Total: 1, Completed: 1},
					{Stage: model.StageClosure, Total: 0, Completed: 0},
				}, got.Stages)
				assert.Equal(2, got.RatingCount)
				assert.InDelta(7.5, got.RatingAvg, 0.001)
			},
		},

		"An empty catalog should zero the task aggregates but still count ratings.": {
			req: summary.Request{ProjectID: "prj1"},
			mock: func(mr *storagemock.MockRepository, mc *catalogmock.MockSource) {
				mr.On("GetProject", mock.Anything, "prj1").Once().Return(&model.Project{ID: "prj1", OrgID: "org1", Name: "Website"}, nil)
				mc.On("Factors", mock.Anything).Once().Return([]model.SuccessFactor{}, nil)
				mr.On("ListProjectRatings", mock.Anything, "prj1").Once().Return([]model.FactorRating{
					{ProjectID: "prj1", FactorID: "F1", Score: 4},
				}, nil)
			},
			check: func(t *testing.T, got *model.ProjectSummary) {
				assert := assert.New(t)
				assert.Equal(0, got.TotalTasks)
				assert.Equal(float64(0), got.Completion)
				assert.Equal(1, got.RatingCount)
				assert.InDelta(4.0, got.RatingAvg, 0.001)
			},
		},

		"A catalog failure should fail the summary.": {
			req: summary.Request{ProjectID: "prj1"},
			mock: func(mr *storagemock.MockRepository, mc *catalogmock.MockSource) {
				mr.On("GetProject", mock.Anything, "prj1").Once().Return(&model.Project{ID: "prj1", OrgID: "org1", Name: "Website"}, nil)
				mc.On("Factors", mock.Anything).Once().Return(nil, fmt.Errorf("wanted error"))
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			// Mocks.
			mr := &storagemock.MockRepository{}
			mc := &catalogmock.MockSource{}
			test.mock(mr, mc)

			svc, err := summary.NewService(summary.ServiceConfig{
				Repository: mr,
				Catalog:    mc,
			})
			require.NoError(err)

			got, err := svc.Run(context.TODO(), test.req)

			if test.expErr {
				assert.Error(err)
				if test.expIs != nil {
					assert.True(errors.Is(err, test.expIs))
				}
			} else {
				assert.NoError(err)
			}

			if test.check != nil {
				test.check(t, got)
			}

			mr.AssertExpectations(t)
			mc.AssertExpectations(t)
		})
	}
}

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config summary.ServiceConfig
		expErr bool
	}{
		"A config without a repository should fail.": {
			config: summary.ServiceConfig{Catalog: &catalogmock.MockSource{}},
			expErr: true,
		},

		"A config without a catalog should fail.": {
			config: summary.ServiceConfig{Repository: &storagemock.MockRepository{}},
			expErr: true,
		},

		"A complete config should create the service.": {
			config: summary.ServiceConfig{
				Repository: &storagemock.MockRepository{},
				Catalog:    &catalogmock.MockSource{},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			svc, err := summary.NewService(test.config)

			if test.expErr {
				assert.Error(err)
			} else if assert.NoError(err) {
				assert.NotNil(svc)
			}
		})
	}
}
