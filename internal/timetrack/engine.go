// Package timetrack records work time against tasks. At most one timer runs
// at any moment across the whole board.
package timetrack

import (
	"fmt"
	"sync"
	"time"

	"github.com/nhle/architect-board/internal/ident"
	"github.com/nhle/architect-board/internal/model"
)

// TaskLookup reports whether a task exists.
type TaskLookup interface {
	Exists(taskID string) bool
}

// Elapsed is a running timer's age split for display.
type Elapsed struct {
	Total   time.Duration
	Hours   int
	Minutes int
	Seconds int
}

// String formats the elapsed time as HH:MM:SS.
func (e Elapsed) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", e.Hours, e.Minutes, e.Seconds)
}

// NewElapsed truncates d to whole seconds and splits it. Negative
// durations count as zero.
func NewElapsed(d time.Duration) Elapsed {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return Elapsed{
		Total:   time.Duration(secs) * time.Second,
		Hours:   int(secs / 3600),
		Minutes: int(secs % 3600 / 60),
		Seconds: int(secs % 60),
	}
}

// Engine owns the time entries and the active timer.
type Engine struct {
	mu      sync.RWMutex
	tasks   TaskLookup
	ids     ident.Generator
	now     func() time.Time
	entries []model.TimeEntry
	active  *model.ActiveTimer
}

// NewEngine creates an engine that only times tasks known to tasks.
func NewEngine(tasks TaskLookup, ids ident.Generator) *Engine {
	return &Engine{
		tasks: tasks,
		ids:   ids,
		now:   time.Now,
	}
}

// SetClock replaces the time source used by StartTimer and StopTimer.
func (e *Engine) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = now
}

// StartTimer begins timing taskID. A timer already running, for this task
// or another, is stopped first and recorded as an entry. Unknown tasks are
// ignored and StartTimer reports false.
func (e *Engine) StartTimer(taskID string) bool {
	if !e.tasks.Exists(taskID) {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now().UTC()
	e.stopLocked(now)
	e.active = &model.ActiveTimer{TaskID: taskID, StartTime: now}
	return true
}

// StopTimer closes the running timer into a new time entry. With no timer
// running it does nothing and reports false.
func (e *Engine) StopTimer() (model.TimeEntry, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopLocked(e.now().UTC())
}

func (e *Engine) stopLocked(now time.Time) (model.TimeEntry, bool) {
	if e.active == nil {
		return model.TimeEntry{}, false
	}
	end := now
	entry := model.TimeEntry{
		ID:        e.ids.NewID(),
		TaskID:    e.active.TaskID,
		StartTime: e.active.StartTime,
		EndTime:   &end,
	}
	e.entries = append(e.entries, entry)
	e.active = nil
	return entry, true
}

// Tick returns how long the active timer has been running at now. It is
// recomputed from the start time on every call and never changes state.
func (e *Engine) Tick(now time.Time) (Elapsed, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.active == nil {
		return Elapsed{}, false
	}
	return NewElapsed(now.Sub(e.active.StartTime)), true
}

// ActiveTimer returns the running timer, if any.
func (e *Engine) ActiveTimer() (model.ActiveTimer, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.active == nil {
		return model.ActiveTimer{}, false
	}
	return *e.active, true
}

// Entries returns a copy of every recorded entry in creation order.
func (e *Engine) Entries() []model.TimeEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]model.TimeEntry, len(e.entries))
	copy(out, e.entries)
	return out
}

// EntriesForTask returns the entries recorded against taskID.
func (e *Engine) EntriesForTask(taskID string) []model.TimeEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []model.TimeEntry
	for _, entry := range e.entries {
		if entry.TaskID == taskID {
			out = append(out, entry)
		}
	}
	return out
}

// TotalHoursForTask sums the closed entries of taskID in hours. Open
// entries contribute nothing. The result is not rounded.
func (e *Engine) TotalHoursForTask(taskID string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var total float64
	for _, entry := range e.entries {
		if entry.TaskID == taskID {
			total += entry.Hours()
		}
	}
	return total
}

// TotalHoursAll sums every closed entry in hours.
func (e *Engine) TotalHoursAll() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var total float64
	for _, entry := range e.entries {
		total += entry.Hours()
	}
	return total
}

// ForgetTask removes every entry of a deleted task and discards its
// running timer without recording it.
func (e *Engine) ForgetTask(taskID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.entries[:0]
	for _, entry := range e.entries {
		if entry.TaskID != taskID {
			kept = append(kept, entry)
		}
	}
	e.entries = kept

	if e.active != nil && e.active.TaskID == taskID {
		e.active = nil
	}
}

// Restore replaces the engine state with persisted entries and timer. A
// timer for a task that no longer exists is dropped, and Restore reports
// whether that happened.
func (e *Engine) Restore(entries []model.TimeEntry, active *model.ActiveTimer) (droppedTimer bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.entries = append([]model.TimeEntry(nil), entries...)
	e.active = nil
	if active == nil {
		return false
	}
	if !e.tasks.Exists(active.TaskID) {
		return true
	}
	a := *active
	e.active = &a
	return false
}

// ActiveTaskCount counts the tasks that are not in the completed column.
func ActiveTaskCount(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status != model.StatusCompleted {
			n++
		}
	}
	return n
}
