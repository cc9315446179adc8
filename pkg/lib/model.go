package lib

import (
	"errors"
	"time"

	"github.com/Greg-CLD/tcof/internal/model"
)

// Sentinel errors returned by the SDK. Check them with [errors.Is]; every
// returned error keeps its original message for context.
var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a resource with the same identity
	// already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when the input is not valid.
	ErrNotValid = errors.New("not valid")
)

// Stage identifies the delivery stage a task belongs to.
//
// Every checklist is partitioned into the four stages, in the order
// returned by [StageOrder].
type Stage string

const (
	// StageIdentification is the first stage, where the work is identified.
	StageIdentification Stage = "identification"
	// StageDefinition is the stage where the work is shaped and planned.
	StageDefinition Stage = "definition"
	// StageDelivery is the stage where the work is executed.
	StageDelivery Stage = "delivery"
	// StageClosure is the final stage, where the work is wrapped up.
	StageClosure Stage = "closure"
)

// StageOrder returns the delivery stages in their canonical order.
func StageOrder() []Stage {
	return []Stage{StageIdentification, StageDefinition, StageDelivery, StageClosure}
}

// TaskStatus represents the working state of a task.
//
// The typical lifecycle is:
//
//	To Do -> Working On It -> Done
//
// Completing a task sets it straight to Done regardless of its current status.
type TaskStatus string

const (
	// TaskStatusToDo indicates the task has not been started.
	TaskStatusToDo TaskStatus = "To Do"
	// TaskStatusWorking indicates the task is in progress.
	TaskStatusWorking TaskStatus = "Working On It"
	// TaskStatusDone indicates the task is complete.
	TaskStatusDone TaskStatus = "Done"
)

// Priority represents the task priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Origin identifies where a task came from.
type Origin string

const (
	// OriginCustom marks a task added by the user.
	OriginCustom Origin = "custom"
	// OriginFactor marks a task recommended by a success factor.
	OriginFactor Origin = "factor"
	// OriginHeuristic marks a task mapped from a preset heuristic.
	OriginHeuristic Origin = "heuristic"
	// OriginPolicy marks a task imported from a policy spreadsheet.
	OriginPolicy Origin = "policy"
	// OriginFramework marks a task imported from a framework spreadsheet.
	OriginFramework Origin = "framework"
)

// Task represents one checklist entry returned by the SDK.
//
// This is a read-only snapshot taken at reconciliation time. Use
// [Client.Checklist] to get the latest state.
type Task struct {
	// ID is the unique identifier. For catalog recommendations that were
	// never edited this is the catalog task id, after the first edit it is
	// the identifier the store assigned.
	ID string
	// Text is the task description.
	Text string
	// Stage is the delivery stage the task belongs to.
	Stage Stage
	// Status is the working state. Done tasks also have Completed set.
	Status TaskStatus
	// Completed mirrors Status == TaskStatusDone.
	Completed bool
	// Origin indicates where the task came from.
	Origin Origin
	// SourceID is the catalog task a materialized recommendation came from.
	// Empty for custom tasks.
	SourceID string
	// Notes holds free-form notes.
	Notes string
	// Priority is the task priority.
	Priority Priority
	// DueDate is when the task is due. Nil if no due date is set.
	DueDate *time.Time
	// Owner is who the task is assigned to.
	Owner string
	// Persisted is false for catalog recommendations that were never edited:
	// they have no stored record yet and cannot be deleted.
	Persisted bool
}

// Checklist is the merged view of the catalog recommendations and the stored
// tasks of one project.
type Checklist struct {
	// Stages holds the tasks partitioned per delivery stage.
	Stages map[Stage][]Task
	// All holds every task in merge order.
	All []Task
}

// Len returns the total number of tasks on the checklist.
func (c Checklist) Len() int {
	return len(c.All)
}

// CompletedCount returns the number of completed tasks on the checklist.
func (c Checklist) CompletedCount() int {
	n := 0
	for _, t := range c.All {
		if t.Completed {
			n++
		}
	}
	return n
}

// Task returns the checklist task with the given id.
func (c Checklist) Task(id string) (Task, bool) {
	for _, t := range c.All {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Project represents a delivery project returned by the SDK.
type Project struct {
	// ID is the unique identifier (ULID) assigned at creation.
	ID string
	// Name is the human-friendly name.
	Name string
	// Description is an optional free-form description.
	Description string
	// CreatedAt is when the project was created.
	CreatedAt time.Time
	// UpdatedAt is when the project was last changed.
	UpdatedAt time.Time
}

// AddTaskOpts configures a new custom task.
//
// Text is required, everything else defaults (identification stage, medium
// priority, To Do status).
type AddTaskOpts struct {
	// Text is the task description (required).
	Text string
	// Stage places the task on a delivery stage. Default: [StageIdentification].
	Stage Stage
	// Priority sets the task priority. Default: [PriorityMedium].
	Priority Priority
	// Notes holds free-form notes.
	Notes string
	// Owner is who the task is assigned to.
	Owner string
	// DueDate is when the task is due. Nil means no due date.
	DueDate *time.Time
}

// TaskUpdate is a partial update of a task. Nil fields are left untouched.
//
// Status is authoritative: setting it derives the completed flag, while
// setting only Completed derives the status.
type TaskUpdate struct {
	Text      *string
	Status    *TaskStatus
	Completed *bool
	Notes     *string
	Priority  *Priority
	DueDate   *time.Time
	Owner     *string
}

// --- Internal conversion helpers ---

func toInternalNewTask(projectID string, opts AddTaskOpts) model.ProjectTask {
	return model.ProjectTask{
		ProjectID: projectID,
		Text:      opts.Text,
		Stage:     model.Stage(opts.Stage),
		Priority:  model.Priority(opts.Priority),
		Origin:    model.OriginCustom,
		Notes:     opts.Notes,
		Owner:     opts.Owner,
		DueDate:   opts.DueDate,
	}
}

func toInternalUpdate(u TaskUpdate) model.TaskUpdate {
	out := model.TaskUpdate{
		Text:      u.Text,
		Completed: u.Completed,
		Notes:     u.Notes,
		DueDate:   u.DueDate,
		Owner:     u.Owner,
	}

	if u.Status != nil {
		s := model.TaskStatus(*u.Status)
		out.Status = &s
	}
	if u.Priority != nil {
		p := model.Priority(*u.Priority)
		out.Priority = &p
	}

	return out
}

func fromInternalTask(t model.UnifiedTask) Task {
	return Task{
		ID:        t.ID,
		Text:      t.Text,
		Stage:     Stage(t.Stage),
		Status:    TaskStatus(t.Status),
		Completed: t.Completed,
		Origin:    Origin(t.Origin),
		SourceID:  t.SourceID,
		Notes:     t.Notes,
		Priority:  Priority(t.Priority),
		DueDate:   t.DueDate,
		Owner:     t.Owner,
		Persisted: t.Persisted,
	}
}

func fromInternalTaskList(ts []model.UnifiedTask) []Task {
	result := make([]Task, len(ts))
	for i, t := range ts {
		result[i] = fromInternalTask(t)
	}
	return result
}

func fromInternalChecklist(cl model.Checklist) Checklist {
	stages := make(map[Stage][]Task, len(cl.Stages))
	for stage, tasks := range cl.Stages {
		stages[Stage(stage)] = fromInternalTaskList(tasks)
	}

	return Checklist{
		Stages: stages,
		All:    fromInternalTaskList(cl.All),
	}
}

func fromInternalProject(p model.Project) Project {
	return Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func fromInternalProjectList(ps []model.Project) []Project {
	result := make([]Project, len(ps))
	for i, p := range ps {
		result[i] = fromInternalProject(p)
	}
	return result
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case isInternalError(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case isInternalError(err, model.ErrAlreadyExists):
		return joinErrors(err, ErrAlreadyExists)
	case isInternalError(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	default:
		return err
	}
}

func isInternalError(err, target error) bool {
	for {
		if err == target {
			return true
		}
		unwrapped := unwrapSingle(err)
		if unwrapped == nil {
			return false
		}
		err = unwrapped
	}
}

func unwrapSingle(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }
