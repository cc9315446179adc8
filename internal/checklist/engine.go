package checklist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/tasksource"
)

// EngineConfig is the configuration for the reconciliation engine.
type EngineConfig struct {
	Tasks   tasksource.Source
	Catalog catalog.Source
	// Project is the context the engine reconciles for. An empty context
	// makes every reconciliation yield an empty checklist.
	Project model.ProjectContext
	Logger  log.Logger
}

func (c *EngineConfig) defaults() error {
	if c.Tasks == nil {
		return fmt.Errorf("task source is required")
	}

	if c.Catalog == nil {
		return fmt.Errorf("catalog source is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Engine holds the in-memory working copy of one project's checklist and
// keeps it consistent with the task source across edits.
type Engine struct {
	tasks   tasksource.Source
	catalog catalog.Source
	project model.ProjectContext
	logger  log.Logger

	queue *writeQueue

	mu        sync.Mutex
	checklist model.Checklist
}

// NewEngine creates a reconciliation engine for one project context.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		tasks:     cfg.Tasks,
		catalog:   cfg.Catalog,
		project:   cfg.Project,
		logger:    cfg.Logger,
		checklist: model.EmptyChecklist(),
	}
	e.queue = newWriteQueue(e.dispatchQueued, cfg.Logger)

	return e, nil
}

// Reconcile loads the catalog and the persisted tasks, then rebuilds the
// stage partitioned checklist. An empty project context or an empty catalog
// yields an empty checklist without touching the task source. When either
// fetch fails the checklist is emptied rather than left half merged and the
// failure is returned; an unauthenticated task source surfaces
// ErrUnauthenticated so callers can establish a session first.
func (e *Engine) Reconcile(ctx context.Context) (model.Checklist, error) {
	if e.project.Empty() {
		return e.replace(model.EmptyChecklist()), nil
	}

	factors, err := e.catalog.Factors(ctx)
	if err != nil {
		return e.replace(model.EmptyChecklist()), fmt.Errorf("could not load catalog: %w", err)
	}

	canonical := catalog.Flatten(factors)
	if len(canonical) == 0 {
		e.logger.Debugf("Catalog is empty, skipping reconciliation")
		return e.replace(model.EmptyChecklist()), nil
	}

	persisted, err := e.tasks.ListTasks(ctx, e.project.ProjectID)
	if err != nil {
		cl := e.replace(model.EmptyChecklist())
		if errors.Is(err, model.ErrUnauthenticated) {
			return cl, fmt.Errorf("reconciliation needs an authenticated session: %w", err)
		}
		return cl, fmt.Errorf("could not load persisted tasks: %w", err)
	}

	cl := e.replace(Partition(Merge(canonical, persisted)))
	e.logger.Debugf("Reconciled %d tasks for project %s", cl.Len(), e.project.ProjectID)

	return cl, nil
}

// Resync forces a full re-fetch and merge, discarding local state. It is
// also the recovery path after a failed write.
func (e *Engine) Resync(ctx context.Context) (model.Checklist, error) {
	return e.Reconcile(ctx)
}

// Checklist returns a copy of the current working checklist.
func (e *Engine) Checklist() model.Checklist {
	e.mu.Lock()
	defer e.mu.Unlock()

	return copyChecklist(e.checklist)
}

// UpdateTask applies the update to the working copy immediately, then
// persists it. The first edit of a catalog recommendation materializes it
// into a stored record referencing the recommendation through sourceId, and
// the server assigned id replaces the client side id everywhere it appears.
// Stage and origin only route the materializing create; they never re-derive
// the task's identity. When persistence fails the optimistic change is
// discarded by a full resync and the failure is returned.
func (e *Engine) UpdateTask(ctx context.Context, taskID string, u model.TaskUpdate, stage model.Stage, origin model.Origin) (model.UnifiedTask, error) {
	if u.IsZero() {
		return model.UnifiedTask{}, fmt.Errorf("update changes nothing: %w", model.ErrNotValid)
	}
	if err := u.Validate(); err != nil {
		return model.UnifiedTask{}, err
	}

	optimistic, err := e.applyOptimistic(taskID, u)
	if err != nil {
		return model.UnifiedTask{}, err
	}

	persisted, err := e.persist(ctx, optimistic, u, stage, origin)
	if err != nil {
		e.resyncAfterFailure(ctx)
		return model.UnifiedTask{}, err
	}

	return e.commit(taskID, *persisted), nil
}

// QueueUpdate applies the update optimistically like UpdateTask but hands
// the write to the background queue, which keeps at most one write in
// flight per task and coalesces newer edits into the pending one. Failures
// surface through Flush after the usual resync.
func (e *Engine) QueueUpdate(ctx context.Context, taskID string, u model.TaskUpdate, stage model.Stage, origin model.Origin) error {
	if u.IsZero() {
		return fmt.Errorf("update changes nothing: %w", model.ErrNotValid)
	}
	if err := u.Validate(); err != nil {
		return err
	}

	if _, err := e.applyOptimistic(taskID, u); err != nil {
		return err
	}

	e.queue.enqueue(ctx, queuedWrite{taskID: taskID, update: u, stage: stage, origin: origin})

	return nil
}

// Flush waits for every queued write to settle and reports the last
// failure. Callers must stop queueing before flushing.
func (e *Engine) Flush() error {
	return e.queue.flush()
}

// DeleteTask removes the task from every stage bucket immediately, then
// deletes the stored record. A catalog recommendation that was never
// materialized has no record to delete and is rejected. When the delete
// call fails a full resync restores the server state.
func (e *Engine) DeleteTask(ctx context.Context, taskID string) error {
	e.mu.Lock()
	i := indexOf(e.checklist.All, taskID)
	if i < 0 {
		e.mu.Unlock()
		return fmt.Errorf("task %s is not on the checklist: %w", taskID, model.ErrNotFound)
	}

	task := e.checklist.All[i]
	if !task.Persisted {
		e.mu.Unlock()
		return fmt.Errorf("task %s has no persisted record: %w", taskID, model.ErrNotValid)
	}

	e.checklist.All = append(e.checklist.All[:i], e.checklist.All[i+1:]...)
	e.checklist = Partition(e.checklist.All)
	e.mu.Unlock()

	if err := e.tasks.DeleteTask(ctx, e.project.ProjectID, taskID); err != nil {
		e.resyncAfterFailure(ctx)
		return fmt.Errorf("could not delete task: %w", err)
	}

	return nil
}

// applyOptimistic mutates the in-memory copy of the task and rebuilds the
// stage partition.
func (e *Engine) applyOptimistic(taskID string, u model.TaskUpdate) (model.UnifiedTask, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := indexOf(e.checklist.All, taskID)
	if i < 0 {
		return model.UnifiedTask{}, fmt.Errorf("task %s is not on the checklist: %w", taskID, model.ErrNotFound)
	}

	task := e.checklist.All[i]
	record := task.Project()
	u.ApplyTo(&record)
	updated := model.UnifiedFromProject(record, task.Persisted)

	e.checklist.All[i] = updated
	e.checklist = Partition(e.checklist.All)

	return updated, nil
}

// persist writes the update through the task source, materializing catalog
// recommendations on their first edit.
func (e *Engine) persist(ctx context.Context, task model.UnifiedTask, u model.TaskUpdate, stage model.Stage, origin model.Origin) (*model.ProjectTask, error) {
	if task.Persisted {
		updated, err := e.tasks.UpdateTask(ctx, e.project.ProjectID, task.ID, u)
		if err != nil {
			return nil, fmt.Errorf("could not persist update: %w", err)
		}
		return updated, nil
	}

	if stage == "" {
		stage = task.Stage
	}
	if origin == "" {
		origin = task.Origin
	}

	record := task.Project()
	record.ID = ""
	record.ProjectID = e.project.ProjectID
	record.SourceID = task.ID
	record.Stage = stage
	record.Origin = origin
	record.Normalize()

	created, err := e.tasks.CreateTask(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("could not materialize task: %w", err)
	}

	return created, nil
}

// commit replaces the in-memory copy with the stored record, renaming the
// task when the store assigned a different id.
func (e *Engine) commit(oldID string, record model.ProjectTask) model.UnifiedTask {
	e.mu.Lock()
	defer e.mu.Unlock()

	final := model.UnifiedFromProject(record, true)

	i := indexOf(e.checklist.All, oldID)
	if i < 0 {
		// The task vanished while the write was in flight, e.g. a resync
		// landed in between. The next reconcile carries the server truth.
		return final
	}

	e.checklist.All[i] = final
	e.checklist = Partition(e.checklist.All)

	if record.ID != oldID {
		e.logger.Debugf("Materialized task %s as %s", oldID, record.ID)
	}

	return final
}

func (e *Engine) resyncAfterFailure(ctx context.Context) {
	if _, err := e.Resync(ctx); err != nil {
		e.logger.Errorf("Resync after a failed write failed as well: %s", err)
	}
}

// dispatchQueued persists one queued write. It returns the task's id after
// the write so the queue can follow materialization renames.
func (e *Engine) dispatchQueued(ctx context.Context, w queuedWrite) (string, error) {
	e.mu.Lock()
	i := indexOf(e.checklist.All, w.taskID)
	if i < 0 {
		e.mu.Unlock()
		return w.taskID, fmt.Errorf("task %s is not on the checklist: %w", w.taskID, model.ErrNotFound)
	}
	task := e.checklist.All[i]
	e.mu.Unlock()

	persisted, err := e.persist(ctx, task, w.update, w.stage, w.origin)
	if err != nil {
		e.resyncAfterFailure(ctx)
		return w.taskID, err
	}

	return e.commit(w.taskID, *persisted).ID, nil
}

func (e *Engine) replace(cl model.Checklist) model.Checklist {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.checklist = cl

	return copyChecklist(cl)
}

func indexOf(tasks []model.UnifiedTask, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func copyChecklist(cl model.Checklist) model.Checklist {
	out := model.Checklist{
		Stages: make(map[model.Stage][]model.UnifiedTask, len(cl.Stages)),
		All:    append([]model.UnifiedTask{}, cl.All...),
	}
	for stage, tasks := range cl.Stages {
		out.Stages[stage] = append([]model.UnifiedTask{}, tasks...)
	}

	return out
}
