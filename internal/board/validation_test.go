package board_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/architect-board/internal/board"
	"github.com/nhle/architect-board/internal/model"
)

func TestParseTaskForm(t *testing.T) {
	in, err := board.ParseTaskForm(board.TaskForm{
		Title:          "  Permit package ",
		Description:    "Prepare documents",
		Status:         "review",
		Priority:       "High",
		StartDate:      "2025-12-01",
		EndDate:        "2025-12-20",
		EstimatedHours: "70.5",
		Tags:           "Documentation, , Permits,Documentation",
	})
	require.NoError(t, err)

	start := model.NewDate(2025, 12, 1)
	end := model.NewDate(2025, 12, 20)
	assert.Equal(t, model.TaskInput{
		Title:          "Permit package",
		Description:    "Prepare documents",
		Status:         "review",
		Priority:       model.PriorityHigh,
		StartDate:      &start,
		EndDate:        &end,
		EstimatedHours: 70.5,
		Tags:           []string{"Documentation", "Permits", "Documentation"},
	}, in)
}

func TestParseTaskFormBlankOptionalFields(t *testing.T) {
	in, err := board.ParseTaskForm(board.TaskForm{Title: "x"})
	require.NoError(t, err)

	assert.Nil(t, in.StartDate)
	assert.Nil(t, in.EndDate)
	assert.Zero(t, in.EstimatedHours)
	assert.Equal(t, []string{}, in.Tags)
	assert.Equal(t, model.Priority(""), in.Priority)
}

func TestParseTaskFormCollectsEveryError(t *testing.T) {
	_, err := board.ParseTaskForm(board.TaskForm{
		Title:          "",
		Priority:       "someday",
		StartDate:      "01/02/2025",
		EndDate:        "tomorrow",
		EstimatedHours: "lots",
	})

	var verr *board.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"endDate", "estimatedHours", "priority", "startDate", "title"}, keys(verr.Fields))
	assert.Contains(t, verr.Error(), "title: title is required")
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{" 12 ", 12, false},
		{"1.25", 1.25, false},
		{"-3", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := board.ParseHours(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormFromTaskRoundTrips(t *testing.T) {
	start := model.NewDate(2025, 11, 16)
	end := model.NewDate(2025, 12, 5)
	task := model.Task{
		Title:          "Concept",
		Description:    "sketches",
		Status:         model.StatusDesign,
		Priority:       model.PriorityCritical,
		StartDate:      &start,
		EndDate:        &end,
		EstimatedHours: 80,
		Tags:           []string{"Design", "Concept"},
	}

	in, err := board.ParseTaskForm(board.FormFromTask(task))
	require.NoError(t, err)

	assert.Equal(t, task.Title, in.Title)
	assert.Equal(t, task.Status, in.Status)
	assert.Equal(t, task.Priority, in.Priority)
	assert.Equal(t, task.StartDate, in.StartDate)
	assert.Equal(t, task.EndDate, in.EndDate)
	assert.Equal(t, task.EstimatedHours, in.EstimatedHours)
	assert.Equal(t, task.Tags, in.Tags)
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
