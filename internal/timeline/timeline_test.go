package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/timeline"
)

var newYear = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func scheduled(start, end model.Date) model.Task {
	return model.Task{Title: "t", StartDate: &start, EndDate: &end}
}

func TestProjectWeek(t *testing.T) {
	b := timeline.Project(timeline.ZoomWeek, newYear)

	require.Len(t, b, 12)
	for i := 1; i < len(b); i++ {
		assert.Equal(t, 7*24*time.Hour, b[i].Start.Sub(b[i-1].Start))
	}
	assert.Equal(t, "Week 1", b[0].Label)
	assert.Equal(t, "Week 2", b[1].Label)
}

func TestProjectDayAndMonth(t *testing.T) {
	days := timeline.Project(timeline.ZoomDay, newYear)
	require.Len(t, days, 14)
	assert.Equal(t, "Jan 1", days[0].Label)
	assert.Equal(t, "Jan 14", days[13].Label)

	months := timeline.Project(timeline.ZoomMonth, newYear)
	require.Len(t, months, 6)
	assert.Equal(t, "Jan 2025", months[0].Label)
	assert.Equal(t, "Jun 2025", months[5].Label)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), months[5].Start)
}

func TestProjectMonthCrossesYear(t *testing.T) {
	months := timeline.Project(timeline.ZoomMonth, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "Jan 2026", months[3].Label)
}

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{newYear, 1},
		{time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 53},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, timeline.WeekNumber(tt.day), tt.day.Format(model.DateLayout))
	}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	now := time.Date(2025, 3, 4, 23, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), timeline.Today(now))
}

func TestGeometryFullWindow(t *testing.T) {
	b := timeline.Project(timeline.ZoomWeek, newYear)
	task := scheduled(model.NewDate(2025, 1, 1), model.NewDate(2025, 3, 19))

	bar, ok := timeline.Geometry(task, b)

	require.True(t, ok)
	assert.InDelta(t, 0, bar.OffsetPercent, 1e-9)
	assert.InDelta(t, 100, bar.WidthPercent, 1e-9)
}

func TestGeometryClampsLeft(t *testing.T) {
	b := timeline.Project(timeline.ZoomWeek, newYear)
	task := scheduled(model.NewDate(2024, 12, 25), model.NewDate(2025, 1, 15))

	bar, ok := timeline.Geometry(task, b)

	require.True(t, ok)
	assert.Zero(t, bar.OffsetPercent)
	assert.InDelta(t, 21.0/77*100, bar.WidthPercent, 1e-9)
}

func TestGeometryClampsRight(t *testing.T) {
	b := timeline.Project(timeline.ZoomWeek, newYear)
	task := scheduled(model.NewDate(2025, 3, 5), model.NewDate(2025, 4, 30))

	bar, ok := timeline.Geometry(task, b)

	require.True(t, ok)
	assert.InDelta(t, 63.0/77*100, bar.OffsetPercent, 1e-9)
	assert.InDelta(t, 100, bar.OffsetPercent+bar.WidthPercent, 1e-9)
}

func TestGeometryUnscheduled(t *testing.T) {
	b := timeline.Project(timeline.ZoomWeek, newYear)
	start := model.NewDate(2025, 1, 2)

	_, ok := timeline.Geometry(model.Task{StartDate: &start}, b)
	assert.False(t, ok)

	_, ok = timeline.Geometry(scheduled(start, start.AddDays(1)), b[:1])
	assert.False(t, ok)
}

func TestRowsKeepsScheduledInOrder(t *testing.T) {
	b := timeline.Project(timeline.ZoomDay, newYear)
	start := model.NewDate(2025, 1, 3)
	tasks := []model.Task{
		{ID: "a"},
		{ID: "b", StartDate: &start, EndDate: ptr(start.AddDays(2))},
		{ID: "c", StartDate: &start},
		{ID: "d", StartDate: ptr(start.AddDays(1)), EndDate: ptr(start.AddDays(4))},
	}

	rows := timeline.Rows(tasks, b)

	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].Task.ID)
	assert.Equal(t, "d", rows[1].Task.ID)
}

func TestZoom(t *testing.T) {
	z, err := timeline.ParseZoom(" Month ")
	require.NoError(t, err)
	assert.Equal(t, timeline.ZoomMonth, z)

	_, err = timeline.ParseZoom("year")
	assert.Error(t, err)

	assert.Equal(t, timeline.ZoomWeek, timeline.ZoomDay.Next())
	assert.Equal(t, timeline.ZoomDay, timeline.ZoomMonth.Next())
}

func ptr[T any](v T) *T { return &v }
