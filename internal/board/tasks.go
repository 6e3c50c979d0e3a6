// Package board holds the Kanban board state: the column registry and the
// task store.
package board

import (
	"fmt"
	"sync"
	"time"

	"github.com/nhle/architect-board/internal/ident"
	"github.com/nhle/architect-board/internal/model"
)

// DeleteHook is called after a task has been removed from the store.
type DeleteHook func(taskID string)

// TaskStore owns the set of tasks in insertion order.
type TaskStore struct {
	mu      sync.RWMutex
	tasks   []model.Task
	columns *Registry
	ids     ident.Generator
	now     func() time.Time
	onDel   []DeleteHook
}

// NewTaskStore creates an empty store validating statuses against columns.
func NewTaskStore(columns *Registry, ids ident.Generator) *TaskStore {
	return &TaskStore{
		columns: columns,
		ids:     ids,
		now:     time.Now,
	}
}

// SetClock replaces the time source used for CreatedAt.
func (s *TaskStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// OnDelete registers a hook run after every successful Delete.
func (s *TaskStore) OnDelete(hook DeleteHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDel = append(s.onDel, hook)
}

// Create validates in, assigns a fresh id and creation time, and appends
// the new task.
func (s *TaskStore) Create(in model.TaskInput) (model.Task, error) {
	task := model.Task{
		Title:          in.Title,
		Description:    in.Description,
		Status:         in.Status,
		Priority:       in.Priority,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		EstimatedHours: in.EstimatedHours,
		Tags:           in.Tags,
	}
	if task.Status == "" {
		task.Status = s.columns.First().ID
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	task = task.Clone()

	if err := validateTask(task, s.columns, true); err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	task.ID = s.ids.NewID()
	task.CreatedAt = s.now().UTC()
	s.tasks = append(s.tasks, task)
	return task.Clone(), nil
}

// Update merges patch into the task with the given id. ID and CreatedAt
// are never changed.
func (s *TaskStore) Update(id string, patch model.TaskPatch) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %s: %w", id, model.ErrNotFound)
	}

	current := s.tasks[i]
	merged := applyPatch(current.Clone(), patch)
	statusChanged := merged.Status != current.Status
	if err := validateTask(merged, s.columns, statusChanged); err != nil {
		return model.Task{}, err
	}
	s.tasks[i] = merged
	return merged.Clone(), nil
}

// Move changes only the status of a task.
func (s *TaskStore) Move(id, status string) (model.Task, error) {
	return s.Update(id, model.TaskPatch{Status: &status})
}

// Delete removes the task and runs the delete hooks, which cascade to the
// task's time entries and any timer running on it.
func (s *TaskStore) Delete(id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("task %s: %w", id, model.ErrNotFound)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	hooks := append([]DeleteHook(nil), s.onDel...)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook(id)
	}
	return nil
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %s: %w", id, model.ErrNotFound)
	}
	return s.tasks[i].Clone(), nil
}

// Exists reports whether a task with the given id is in the store.
func (s *TaskStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0
}

// List returns every task in insertion order.
func (s *TaskStore) List() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// ListByStatus returns the tasks in the given column, in insertion order.
func (s *TaskStore) ListByStatus(status string) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Task{}
	for _, t := range s.tasks {
		if t.Status == status {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Restore replaces the store contents with previously persisted tasks.
// Later duplicates of an id are dropped so ids stay unique. Tasks are kept
// even when their status is not a registered column; the board shows them
// nowhere until the column is added again.
func (s *TaskStore) Restore(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(tasks))
	s.tasks = make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup || t.ID == "" {
			continue
		}
		seen[t.ID] = struct{}{}
		s.tasks = append(s.tasks, t.Clone())
	}
}

func (s *TaskStore) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func applyPatch(t model.Task, p model.TaskPatch) model.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.StartDate != nil {
		t.StartDate = optionalDate(*p.StartDate)
	}
	if p.EndDate != nil {
		t.EndDate = optionalDate(*p.EndDate)
	}
	if p.EstimatedHours != nil {
		t.EstimatedHours = *p.EstimatedHours
	}
	if p.Tags != nil {
		t.Tags = append([]string{}, (*p.Tags)...)
	}
	return t
}

func optionalDate(d model.Date) *model.Date {
	if d.IsZero() {
		return nil
	}
	return &d
}
