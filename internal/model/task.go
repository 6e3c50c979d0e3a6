package model

import "time"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists every priority from least to most urgent.
var Priorities = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityCritical,
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Task is a single unit of work on the board.
type Task struct {
	// ID is the opaque unique identifier, assigned once at creation.
	ID string `json:"id"`

	// Title is the human-readable summary of the task.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description"`

	// Status is the identifier of the column the task sits in.
	Status string `json:"status"`

	// Priority is one of the Priority* constants.
	Priority Priority `json:"priority"`

	// StartDate and EndDate bound the task on the Gantt timeline.
	// A task missing either one is not scheduled.
	StartDate *Date `json:"startDate,omitempty"`
	EndDate   *Date `json:"endDate,omitempty"`

	// EstimatedHours is the planned effort, never negative.
	EstimatedHours float64 `json:"estimatedHours"`

	// Tags are free-form labels in insertion order. Duplicates are kept.
	Tags []string `json:"tags"`

	// CreatedAt is set when the task is created and never changes.
	CreatedAt time.Time `json:"createdAt"`
}

// Scheduled reports whether the task has both a start and an end date.
func (t Task) Scheduled() bool {
	return t.StartDate != nil && !t.StartDate.IsZero() &&
		t.EndDate != nil && !t.EndDate.IsZero()
}

// Clone returns a copy of t that shares no mutable state with it.
func (t Task) Clone() Task {
	c := t
	if t.StartDate != nil {
		d := *t.StartDate
		c.StartDate = &d
	}
	if t.EndDate != nil {
		d := *t.EndDate
		c.EndDate = &d
	}
	c.Tags = append([]string{}, t.Tags...)
	return c
}

// TaskInput carries the fields for a new task. Zero values take defaults:
// the first registered column for Status and PriorityMedium for Priority.
type TaskInput struct {
	Title          string
	Description    string
	Status         string
	Priority       Priority
	StartDate      *Date
	EndDate        *Date
	EstimatedHours float64
	Tags           []string
}

// TaskPatch describes a partial update. Nil fields are left untouched.
// A non-nil pointer to a zero Date clears that date.
type TaskPatch struct {
	Title          *string
	Description    *string
	Status         *string
	Priority       *Priority
	StartDate      *Date
	EndDate        *Date
	EstimatedHours *float64
	Tags           *[]string
}

// PatchFromInput builds a patch that overwrites every editable field
// with the values from in, which is what submitting the edit form does.
// An empty Status or Priority leaves the current value in place.
func PatchFromInput(in TaskInput) TaskPatch {
	start := Date{}
	if in.StartDate != nil {
		start = *in.StartDate
	}
	end := Date{}
	if in.EndDate != nil {
		end = *in.EndDate
	}
	tags := append([]string{}, in.Tags...)
	p := TaskPatch{
		Title:          &in.Title,
		Description:    &in.Description,
		StartDate:      &start,
		EndDate:        &end,
		EstimatedHours: &in.EstimatedHours,
		Tags:           &tags,
	}
	if in.Status != "" {
		p.Status = &in.Status
	}
	if in.Priority != "" {
		p.Priority = &in.Priority
	}
	return p
}
