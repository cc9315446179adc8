// Package checklist implements the task reconciliation engine: it merges
// the canonical success factor catalog with a project's persisted task
// records into one de-duplicated, stage partitioned checklist, and routes
// edits back to storage with optimistic local updates.
package checklist

import (
	"github.com/Greg-CLD/tcof/internal/model"
)

// Merge combines canonical catalog tasks with persisted project records
// into the unified task list. Persisted records always appear. A canonical
// task is dropped once a persisted record references it as sourceId, the
// materialized copy supersedes the recommendation. The surviving canonical
// tasks come first, persisted records after them.
//
// Merge is a pure function over already fetched inputs.
func Merge(canonical []model.CanonicalTask, persisted []model.ProjectTask) []model.UnifiedTask {
	completedBySource := map[string]bool{}
	materialized := map[string]bool{}
	for _, p := range persisted {
		if p.SourceID == "" {
			continue
		}
		completedBySource[p.SourceID] = p.Completed
		materialized[p.SourceID] = true
	}

	merged := make([]model.UnifiedTask, 0, len(canonical)+len(persisted))
	for _, c := range canonical {
		if materialized[c.ID] {
			continue
		}
		merged = append(merged, unifiedFromCanonical(c, completedBySource[c.ID]))
	}

	for _, p := range persisted {
		merged = append(merged, model.UnifiedFromProject(p, true))
	}

	return merged
}

// Partition groups tasks into the four stage buckets. A task with an
// unrecognized stage value lands in the identification bucket instead of
// being dropped; the task itself keeps its raw stage value.
func Partition(tasks []model.UnifiedTask) model.Checklist {
	cl := model.EmptyChecklist()
	for _, t := range tasks {
		bucket := model.NormalizeStage(string(t.Stage))
		cl.Stages[bucket] = append(cl.Stages[bucket], t)
		cl.All = append(cl.All, t)
	}

	return cl
}

func unifiedFromCanonical(c model.CanonicalTask, completed bool) model.UnifiedTask {
	status := model.TaskStatusToDo
	if completed {
		status = model.TaskStatusDone
	}

	return model.UnifiedTask{
		ID:        c.ID,
		Text:      c.Text,
		Completed: completed,
		Stage:     c.Stage,
		Origin:    model.OriginFactor,
		Priority:  model.PriorityMedium,
		Status:    status,
		Persisted: false,
	}
}
