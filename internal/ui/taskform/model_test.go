package taskform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/ui/taskform"
)

func TestStartCreateDefaults(t *testing.T) {
	m := taskform.New(80, 24)

	m.StartCreate(model.DefaultColumns(), model.StatusDesign, model.NewDate(2025, 12, 28))

	v := m.Values()
	assert.False(t, m.Editing())
	assert.Equal(t, model.StatusDesign, v.Status)
	assert.Equal(t, "medium", v.Priority)
	assert.Equal(t, "2025-12-28", v.StartDate)
	assert.Equal(t, "2026-01-04", v.EndDate)
	assert.Empty(t, v.Title)
}

func TestStartEditFillsFromTask(t *testing.T) {
	start := model.NewDate(2025, 11, 1)
	task := model.Task{
		ID:             "t1",
		Title:          "Concept",
		Status:         model.StatusReview,
		Priority:       model.PriorityCritical,
		StartDate:      &start,
		EstimatedHours: 12.5,
		Tags:           []string{"Design", "Client"},
	}
	m := taskform.New(80, 24)

	m.StartEdit(task, model.DefaultColumns())

	v := m.Values()
	assert.True(t, m.Editing())
	assert.Equal(t, "Concept", v.Title)
	assert.Equal(t, "critical", v.Priority)
	assert.Equal(t, "2025-11-01", v.StartDate)
	assert.Empty(t, v.EndDate)
	assert.Equal(t, "12.5", v.EstimatedHours)
	assert.Equal(t, "Design, Client", v.Tags)
}

func TestCreateAfterEditResetsFields(t *testing.T) {
	m := taskform.New(80, 24)
	m.StartEdit(model.Task{ID: "x", Title: "Old", Tags: []string{"a"}}, model.DefaultColumns())

	m.StartCreate(model.DefaultColumns(), model.StatusBacklog, model.NewDate(2025, 1, 1))

	assert.False(t, m.Editing())
	assert.Empty(t, m.Values().Title)
	assert.Empty(t, m.Values().Tags)
}
