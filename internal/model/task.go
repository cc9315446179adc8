package model

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus represents the working state of a task. The values are the
// display strings the API exchanges verbatim.
type TaskStatus string

const (
	TaskStatusToDo    TaskStatus = "To Do"
	TaskStatusWorking TaskStatus = "Working On It"
	TaskStatusDone    TaskStatus = "Done"
)

// ParseTaskStatus parses a task status, accepting any casing.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "to do", "todo":
		return TaskStatusToDo, nil
	case "working on it", "working":
		return TaskStatusWorking, nil
	case "done":
		return TaskStatusDone, nil
	default:
		return "", fmt.Errorf("unknown task status %q: %w", s, ErrNotValid)
	}
}

// Origin identifies where a task came from.
type Origin string

const (
	// OriginCustom marks a task typed in by the user.
	OriginCustom Origin = "custom"
	// OriginFactor marks a task materialized from a success factor.
	OriginFactor Origin = "factor"
	// OriginHeuristic marks a task mapped from a preset heuristic.
	OriginHeuristic Origin = "heuristic"
	// OriginPolicy marks a task imported from a policy spreadsheet.
	OriginPolicy Origin = "policy"
	// OriginFramework marks a task imported from a framework spreadsheet.
	OriginFramework Origin = "framework"
)

// ParseOrigin parses a task origin.
func ParseOrigin(s string) (Origin, error) {
	switch Origin(strings.ToLower(strings.TrimSpace(s))) {
	case OriginCustom:
		return OriginCustom, nil
	case OriginFactor:
		return OriginFactor, nil
	case OriginHeuristic:
		return OriginHeuristic, nil
	case OriginPolicy:
		return OriginPolicy, nil
	case OriginFramework:
		return OriginFramework, nil
	default:
		return "", fmt.Errorf("unknown origin %q: %w", s, ErrNotValid)
	}
}

// Priority represents the task priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority parses a task priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("unknown priority %q: %w", s, ErrNotValid)
	}
}

// CanonicalTask is a read-only recommended task flattened from the success
// factor catalog. It has no persisted record until a user edits it.
type CanonicalTask struct {
	ID       string `json:"id"`
	FactorID string `json:"factorId"`
	Stage    Stage  `json:"stage"`
	Text     string `json:"text"`
}

// ProjectTask is a task record persisted for a project.
type ProjectTask struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId,omitempty"`
	Text      string     `json:"text" validate:"required"`
	Completed bool       `json:"completed"`
	Stage     Stage      `json:"stage" validate:"omitempty,oneof=identification definition delivery closure"`
	Origin    Origin     `json:"origin" validate:"omitempty,oneof=custom factor heuristic policy framework"`
	SourceID  string     `json:"sourceId,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Priority  Priority   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Owner     string     `json:"owner,omitempty"`
	Status    TaskStatus `json:"status,omitempty" validate:"omitempty,oneof='To Do' 'Working On It' Done"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Normalize fills defaulted fields and derives the completed flag from the
// status, which is the authoritative field.
func (t *ProjectTask) Normalize() {
	if t.Stage == "" {
		t.Stage = StageIdentification
	}
	if t.Origin == "" {
		t.Origin = OriginCustom
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Status == "" {
		if t.Completed {
			t.Status = TaskStatusDone
		} else {
			t.Status = TaskStatusToDo
		}
	}
	t.Completed = t.Status == TaskStatusDone
}

// Validate validates a normalized project task.
func (t *ProjectTask) Validate() error {
	if err := ValidateStruct(t); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if t.Completed != (t.Status == TaskStatusDone) {
		return fmt.Errorf("completed flag disagrees with status %q: %w", t.Status, ErrNotValid)
	}

	return nil
}

// TaskUpdate is a partial update of a task. Nil fields are left untouched.
type TaskUpdate struct {
	Text      *string     `json:"text,omitempty"`
	Completed *bool       `json:"completed,omitempty"`
	Notes     *string     `json:"notes,omitempty"`
	Priority  *Priority   `json:"priority,omitempty"`
	DueDate   *time.Time  `json:"dueDate,omitempty"`
	Owner     *string     `json:"owner,omitempty"`
	Status    *TaskStatus `json:"status,omitempty"`
}

// IsZero returns true when the update touches nothing.
func (u TaskUpdate) IsZero() bool {
	return u.Text == nil && u.Completed == nil && u.Notes == nil &&
		u.Priority == nil && u.DueDate == nil && u.Owner == nil && u.Status == nil
}

// Validate validates the fields the update sets.
func (u TaskUpdate) Validate() error {
	if u.Text != nil && strings.TrimSpace(*u.Text) == "" {
		return fmt.Errorf("task text cannot be emptied: %w", ErrNotValid)
	}
	if u.Priority != nil {
		if _, err := ParsePriority(string(*u.Priority)); err != nil {
			return err
		}
	}
	if u.Status != nil {
		if _, err := ParseTaskStatus(string(*u.Status)); err != nil {
			return err
		}
	}
	return nil
}

// Merge overlays the set fields of next onto a copy of the update. Used to
// coalesce rapid edits to the same task: the latest value of each field wins.
func (u TaskUpdate) Merge(next TaskUpdate) TaskUpdate {
	if next.Text != nil {
		u.Text = next.Text
	}
	if next.Completed != nil {
		u.Completed = next.Completed
	}
	if next.Notes != nil {
		u.Notes = next.Notes
	}
	if next.Priority != nil {
		u.Priority = next.Priority
	}
	if next.DueDate != nil {
		u.DueDate = next.DueDate
	}
	if next.Owner != nil {
		u.Owner = next.Owner
	}
	if next.Status != nil {
		u.Status = next.Status
	}
	return u
}

// ApplyTo applies the update on a task. Status is authoritative: setting it
// derives the completed flag, while setting only completed derives the
// status (completing moves to Done, un-completing a Done task moves it back
// to To Do and leaves any other status alone).
func (u TaskUpdate) ApplyTo(t *ProjectTask) {
	if u.Text != nil {
		t.Text = *u.Text
	}
	if u.Notes != nil {
		t.Notes = *u.Notes
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.DueDate != nil {
		d := *u.DueDate
		t.DueDate = &d
	}
	if u.Owner != nil {
		t.Owner = *u.Owner
	}

	switch {
	case u.Status != nil:
		t.Status = *u.Status
		t.Completed = t.Status == TaskStatusDone
	case u.Completed != nil:
		t.Completed = *u.Completed
		if t.Completed {
			t.Status = TaskStatusDone
		} else if t.Status == TaskStatusDone {
			t.Status = TaskStatusToDo
		}
	}
}

// UnifiedTask is the merged projection of a canonical or persisted task. It
// is rebuilt on every reconciliation and never stored.
type UnifiedTask struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Stage     Stage      `json:"stage"`
	Origin    Origin     `json:"origin"`
	SourceID  string     `json:"sourceId,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	Priority  Priority   `json:"priority,omitempty"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	Owner     string     `json:"owner,omitempty"`
	Status    TaskStatus `json:"status,omitempty"`
	// Persisted is true when the task is backed by a stored record, false
	// for catalog recommendations that were never edited.
	Persisted bool `json:"persisted"`
}

// UnifiedFromProject projects a persisted task record into the unified view.
func UnifiedFromProject(t ProjectTask, persisted bool) UnifiedTask {
	return UnifiedTask{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Stage:     t.Stage,
		Origin:    t.Origin,
		SourceID:  t.SourceID,
		Notes:     t.Notes,
		Priority:  t.Priority,
		DueDate:   t.DueDate,
		Owner:     t.Owner,
		Status:    t.Status,
		Persisted: persisted,
	}
}

// Project returns the task as a persisted task record, without the fields
// only the store assigns (project id and timestamps).
func (t UnifiedTask) Project() ProjectTask {
	return ProjectTask{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Stage:     t.Stage,
		Origin:    t.Origin,
		SourceID:  t.SourceID,
		Notes:     t.Notes,
		Priority:  t.Priority,
		DueDate:   t.DueDate,
		Owner:     t.Owner,
		Status:    t.Status,
	}
}

// Checklist is the stage partitioned reconciliation result.
type Checklist struct {
	Stages map[Stage][]UnifiedTask `json:"stages"`
	All    []UnifiedTask           `json:"all"`
}

// EmptyChecklist returns a checklist with every stage bucket initialized.
func EmptyChecklist() Checklist {
	stages := map[Stage][]UnifiedTask{}
	for _, s := range Stages() {
		stages[s] = []UnifiedTask{}
	}
	return Checklist{Stages: stages, All: []UnifiedTask{}}
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
func (c Checklist) Task(id string) (UnifiedTask, bool) {
	for _, t := range c.All {
		if t.ID == id {
			return t, true
		}
	}
	return UnifiedTask{}, false
}
