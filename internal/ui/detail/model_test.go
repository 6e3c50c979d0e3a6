package detail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/architect-board/internal/model"
)

func date(y int, m time.Month, d int) *model.Date {
	v := model.NewDate(y, m, d)
	return &v
}

func TestSchedule(t *testing.T) {
	tests := []struct {
		name string
		task model.Task
		want string
	}{
		{"unscheduled", model.Task{}, "not scheduled"},
		{"single day", model.Task{StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 1)}, "2025-03-01 → 2025-03-01 (1 day)"},
		{"two weeks", model.Task{StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 14)}, "2025-03-01 → 2025-03-14 (14 days)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Schedule(tt.task))
		})
	}
}

func TestViewShowsTaskAndEntries(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	start := now.Add(-3 * time.Hour)
	end := start.Add(90 * time.Minute)

	m := New(100, 40)
	assert.Contains(t, m.View(), "No task selected")

	m.SetTask(Task{
		Task: model.Task{
			ID:             "t1",
			Title:          "Permit set",
			Description:    "Drawings for submission",
			Priority:       model.PriorityHigh,
			EstimatedHours: 12,
			Tags:           []string{"Permits"},
		},
		Column:  model.Column{ID: "review", Label: "Review", Color: "hsl(38, 92%, 50%)"},
		Entries: []model.TimeEntry{{ID: "e1", TaskID: "t1", StartTime: start, EndTime: &end}},
		Timing:  true,
	}, now)

	out := m.View()
	assert.Contains(t, out, "Permit set")
	assert.Contains(t, out, "Review")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "1.5h spent of 12h estimated")
	assert.Contains(t, out, "#Permits")
	assert.Contains(t, out, "Drawings for submission")
	assert.Contains(t, out, "Time entries (1)")
	assert.Contains(t, out, "3 hours ago")
	assert.Contains(t, out, "1.50h")
	assert.Contains(t, out, "timing")

	id, ok := m.TaskID()
	assert.True(t, ok)
	assert.Equal(t, "t1", id)

	m.Clear()
	_, ok = m.TaskID()
	assert.False(t, ok)
}
