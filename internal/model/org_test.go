package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Greg-CLD/tcof/internal/model"
)

func TestOrganisationCanAddProject(t *testing.T) {
	tests := map[string]struct {
		org      model.Organisation
		current  int
		expected bool
	}{
		"Free plan below the limit should allow.": {
			org:      model.Organisation{Plan: model.PlanFree},
			current:  model.FreePlanMaxProjects - 1,
			expected: true,
		},
		"Free plan at the limit should deny.": {
			org:      model.Organisation{Plan: model.PlanFree},
			current:  model.FreePlanMaxProjects,
			expected: false,
		},
		"Pro plan should always allow.": {
			org:      model.Organisation{Plan: model.PlanPro},
			current:  1000,
			expected: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.org.CanAddProject(test.current))
		})
	}
}

func TestOrganisationCanExport(t *testing.T) {
	assert := assert.New(t)

	assert.False(model.Organisation{Plan: model.PlanFree}.CanExport())
	assert.True(model.Organisation{Plan: model.PlanPro}.CanExport())
}

func TestParsePlan(t *testing.T) {
	assert := assert.New(t)

	plan, err := model.ParsePlan(" Pro ")
	assert.NoError(err)
	assert.Equal(model.PlanPro, plan)

	_, err = model.ParsePlan("enterprise")
	assert.Error(err)
	assert.True(errors.Is(err, model.ErrNotValid))
}

func TestSessionExpired(t *testing.T) {
	assert := assert.New(t)

	now := time.Now()
	s := model.Session{ExpiresAt: now.Add(time.Hour)}

	assert.False(s.Expired(now))
	assert.True(s.Expired(now.Add(time.Hour)))
	assert.True(s.Expired(now.Add(2 * time.Hour)))
}

func TestFactorRatingValidate(t *testing.T) {
	tests := map[string]struct {
		rating model.FactorRating
		expErr bool
	}{
		"A valid rating should not fail.": {
			rating: model.FactorRating{ProjectID: "p1", FactorID: "F1", Score: 7},
		},
		"Score below one should fail.": {
			rating: model.FactorRating{ProjectID: "p1", FactorID: "F1", Score: 0},
			expErr: true,
		},
		"Score above ten should fail.": {
			rating: model.FactorRating{ProjectID: "p1", FactorID: "F1", Score: 11},
			expErr: true,
		},
		"Missing factor should fail.": {
			rating: model.FactorRating{ProjectID: "p1", Score: 5},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			err := test.rating.Validate()

			if test.expErr {
				assert.Error(err)
				assert.True(errors.Is(err, model.ErrNotValid))
			} else {
				assert.NoError(err)
			}
		})
	}
}
