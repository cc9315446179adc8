package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Greg-CLD/tcof/internal/model"
)

func TestParseStage(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected model.Stage
		expErr   bool
	}{
		"Lowercase stage should parse.": {
			input:    "delivery",
			expected: model.StageDelivery,
		},
		"Catalog wire casing should parse.": {
			input:    "Identification",
			expected: model.StageIdentification,
		},
		"Uppercase should parse.": {
			input:    "CLOSURE",
			expected: model.StageClosure,
		},
		"Whitespace should be trimmed.": {
			input:    "  definition  ",
			expected: model.StageDefinition,
		},
		"Empty string should fail.": {
			input:  "",
			expErr: true,
		},
		"Unknown stage should fail.": {
			input:  "discovery",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := model.ParseStage(test.input)

			if test.expErr {
				assert.Error(err)
				assert.True(errors.Is(err, model.ErrNotValid))
			} else {
				assert.NoError(err)
				assert.Equal(test.expected, got)
			}
		})
	}
}

func TestNormalizeStage(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected model.Stage
	}{
		"Valid stage should be kept.":          {input: "closure", expected: model.StageClosure},
		"Wire casing should be normalized.":    {input: "Delivery", expected: model.StageDelivery},
		"Unknown stage should fall back.":      {input: "garbage", expected: model.StageIdentification},
		"Empty stage should fall back.":        {input: "", expected: model.StageIdentification},
		"Whitespace only should fall back.":    {input: "   ", expected: model.StageIdentification},
		"Identification should map to itself.": {input: "identification", expected: model.StageIdentification},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, model.NormalizeStage(test.input))
		})
	}
}

func TestStageTitle(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Identification", model.StageIdentification.Title())
	assert.Equal("Definition", model.StageDefinition.Title())
	assert.Equal("Delivery", model.StageDelivery.Title())
	assert.Equal("Closure", model.StageClosure.Title())
}

func TestStagesOrder(t *testing.T) {
	assert := assert.New(t)

	expected := []model.Stage{
		model.StageIdentification,
		model.StageDefinition,
		model.StageDelivery,
		model.StageClosure,
	}
	assert.Equal(expected, model.Stages())
}
