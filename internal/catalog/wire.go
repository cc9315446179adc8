package catalog

import (
	"fmt"

	"github.com/Greg-CLD/tcof/internal/model"
)

// FactorDTO is the wire representation of a success factor. Stage keys use
// the display names (Identification, Definition, Delivery, Closure).
type FactorDTO struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Tasks       map[string][]string `json:"tasks"`
}

// EncodeFactors maps success factors to their wire representation. Every
// stage key is present, empty stages as empty arrays.
func EncodeFactors(factors []model.SuccessFactor) []FactorDTO {
	dtos := make([]FactorDTO, 0, len(factors))
	for _, factor := range factors {
		tasks := map[string][]string{}
		for _, stage := range model.Stages() {
			texts := factor.Tasks[stage]
			if texts == nil {
				texts = []string{}
			}
			tasks[stage.Title()] = texts
		}

		dtos = append(dtos, FactorDTO{
			ID:          factor.ID,
			Title:       factor.Title,
			Description: factor.Description,
			Tasks:       tasks,
		})
	}

	return dtos
}

// Decode maps the wire representation back to the model, accepting stage
// keys in either casing.
func (d FactorDTO) Decode() (model.SuccessFactor, error) {
	factor := model.SuccessFactor{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Tasks:       map[model.Stage][]string{},
	}

	for key, texts := range d.Tasks {
		stage, err := model.ParseStage(key)
		if err != nil {
			return model.SuccessFactor{}, fmt.Errorf("factor %s: %w", d.ID, err)
		}
		factor.Tasks[stage] = texts
	}

	if err := factor.Validate(); err != nil {
		return model.SuccessFactor{}, err
	}

	return factor, nil
}

func decodeFactors(dtos []FactorDTO) ([]model.SuccessFactor, error) {
	factors := make([]model.SuccessFactor, 0, len(dtos))
	for _, dto := range dtos {
		factor, err := dto.Decode()
		if err != nil {
			return nil, err
		}
		factors = append(factors, factor)
	}

	return factors, nil
}
