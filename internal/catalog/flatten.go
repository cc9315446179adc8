package catalog

import (
	"fmt"
	"hash/fnv"

	"github.com/Greg-CLD/tcof/internal/model"
)

// TaskID derives the canonical task id for a factor task. The id is stable
// across catalog reloads so completions recorded against it keep matching.
func TaskID(factorID string, stage model.Stage, text string) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s", stage, text)

	return fmt.Sprintf("%s-%08x", factorID, h.Sum32())
}

// Flatten expands the factor catalog into the canonical task set: one task
// per factor, per stage, per task text, in catalog and stage order.
func Flatten(factors []model.SuccessFactor) []model.CanonicalTask {
	tasks := []model.CanonicalTask{}
	for _, factor := range factors {
		for _, stage := range model.Stages() {
			for _, text := range factor.Tasks[stage] {
				tasks = append(tasks, model.CanonicalTask{
					ID:       TaskID(factor.ID, stage, text),
					FactorID: factor.ID,
					Stage:    stage,
					Text:     text,
				})
			}
		}
	}

	return tasks
}
