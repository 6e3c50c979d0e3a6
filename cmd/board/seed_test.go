package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/architect-board/internal/board"
	"github.com/nhle/architect-board/internal/ident"
	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/timeline"
)

func TestSeedSampleData(t *testing.T) {
	tasks := board.NewTaskStore(board.NewRegistry(), ident.UUID{})
	today := model.NewDate(2026, 3, 10)

	require.NoError(t, seedSampleData(tasks, today))

	all := tasks.List()
	require.Len(t, all, len(sampleTasks))
	for _, task := range all {
		assert.True(t, task.Scheduled(), task.Title)
		assert.False(t, task.EndDate.Before(task.StartDate.Time), task.Title)
	}

	first := all[0]
	assert.Equal(t, "Initial Site Analysis", first.Title)
	assert.Equal(t, "2026-02-08", first.StartDate.String())
	assert.Equal(t, "2026-02-22", first.EndDate.String())
	assert.Equal(t, []string{"Research", "Site Analysis"}, first.Tags)

	assert.Len(t, tasks.ListByStatus(model.StatusBacklog), 2)
	assert.Len(t, tasks.ListByStatus(model.StatusDevelopment), 2)
}

func TestSeedSampleDataVisibleOnTimeline(t *testing.T) {
	tasks := board.NewTaskStore(board.NewRegistry(), ident.UUID{})
	today := model.NewDate(2026, 3, 10)
	require.NoError(t, seedSampleData(tasks, today))

	rows := timeline.Rows(tasks.List(), timeline.Project(timeline.ZoomWeek, today.Time))

	assert.Len(t, rows, len(sampleTasks))
}
