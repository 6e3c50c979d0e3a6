package model

import "time"

// TimeEntry is a closed span of work recorded against a task.
type TimeEntry struct {
	ID     string `json:"id"`
	TaskID string `json:"taskId"`

	StartTime time.Time `json:"startTime"`

	// EndTime is nil only for an entry that was never closed. Such entries
	// count as zero duration.
	EndTime *time.Time `json:"endTime,omitempty"`
}

// Closed reports whether the entry has an end time.
func (e TimeEntry) Closed() bool {
	return e.EndTime != nil
}

// Duration returns the length of a closed entry, or zero for an open one.
func (e TimeEntry) Duration() time.Duration {
	if e.EndTime == nil {
		return 0
	}
	return e.EndTime.Sub(e.StartTime)
}

// Hours returns Duration expressed in fractional hours.
func (e TimeEntry) Hours() float64 {
	return e.Duration().Hours()
}

// ActiveTimer is the single running time-tracking session.
type ActiveTimer struct {
	TaskID    string    `json:"taskId"`
	StartTime time.Time `json:"startTime"`
}
