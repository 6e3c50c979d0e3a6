// Package timeline projects tasks onto the Gantt chart axis.
package timeline

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/nhle/architect-board/internal/model"
)

// Zoom is the granularity of the Gantt axis.
type Zoom string

const (
	ZoomDay   Zoom = "day"
	ZoomWeek  Zoom = "week"
	ZoomMonth Zoom = "month"
)

// Zooms lists the zoom levels from finest to coarsest.
var Zooms = []Zoom{ZoomDay, ZoomWeek, ZoomMonth}

// ParseZoom accepts "day", "week" or "month", case-insensitively.
func ParseZoom(s string) (Zoom, error) {
	z := Zoom(strings.ToLower(strings.TrimSpace(s)))
	switch z {
	case ZoomDay, ZoomWeek, ZoomMonth:
		return z, nil
	}
	return "", fmt.Errorf("unknown zoom %q, want day, week or month", s)
}

// Next returns the following zoom level, wrapping from month back to day.
func (z Zoom) Next() Zoom {
	for i, candidate := range Zooms {
		if candidate == z {
			return Zooms[(i+1)%len(Zooms)]
		}
	}
	return ZoomWeek
}

// Periods is the number of boundaries generated at this zoom.
func (z Zoom) Periods() int {
	switch z {
	case ZoomDay:
		return 14
	case ZoomMonth:
		return 6
	default:
		return 12
	}
}

// step returns ref advanced by i periods.
func (z Zoom) step(ref time.Time, i int) time.Time {
	switch z {
	case ZoomDay:
		return ref.AddDate(0, 0, i)
	case ZoomMonth:
		return ref.AddDate(0, i, 0)
	default:
		return ref.AddDate(0, 0, 7*i)
	}
}

// Label formats a boundary instant for this zoom.
func (z Zoom) Label(t time.Time) string {
	switch z {
	case ZoomDay:
		return t.Format("Jan 2")
	case ZoomMonth:
		return t.Format("Jan 2006")
	default:
		return fmt.Sprintf("Week %d", WeekNumber(t))
	}
}

// Boundary is one tick mark on the Gantt axis.
type Boundary struct {
	Start time.Time
	Label string
}

// Project returns the axis boundaries for zoom starting at ref. Boundary i
// is ref advanced by i periods.
func Project(zoom Zoom, ref time.Time) []Boundary {
	n := zoom.Periods()
	out := make([]Boundary, n)
	for i := 0; i < n; i++ {
		t := zoom.step(ref, i)
		out[i] = Boundary{Start: t, Label: zoom.Label(t)}
	}
	return out
}

// Today returns the calendar day of now as midnight UTC, which is the clock
// task dates live on. Use it as the reference instant for Project.
func Today(now time.Time) time.Time {
	return model.DateOf(now).Time
}

// WeekNumber numbers weeks from the week containing January 1, counting
// Sunday as the first day of the week.
func WeekNumber(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := t.Sub(jan1).Hours() / 24
	return int(math.Ceil((days + float64(jan1.Weekday()) + 1) / 7))
}

// Bar is the horizontal placement of a task on the axis, in percent of the
// full track width.
type Bar struct {
	OffsetPercent float64
	WidthPercent  float64
}

// Geometry places task on the axis described by boundaries. Bars starting
// before the window are clipped to its left edge and bars running past it
// are clipped on the right. It reports false for unscheduled tasks and for
// axes with fewer than two distinct boundaries.
func Geometry(task model.Task, boundaries []Boundary) (Bar, bool) {
	if !task.Scheduled() || len(boundaries) < 2 {
		return Bar{}, false
	}
	rangeStart := boundaries[0].Start
	span := boundaries[len(boundaries)-1].Start.Sub(rangeStart)
	if span <= 0 {
		return Bar{}, false
	}

	start := task.StartDate.Time
	end := task.EndDate.Time

	offset := float64(start.Sub(rangeStart)) / float64(span) * 100
	width := float64(end.Sub(start)) / float64(span) * 100
	offset = math.Max(0, offset)
	width = math.Min(100-offset, width)

	return Bar{OffsetPercent: offset, WidthPercent: width}, true
}

// Row is a scheduled task with its bar.
type Row struct {
	Task model.Task
	Bar  Bar
}

// Scheduled keeps the tasks that have both dates, in order.
func Scheduled(tasks []model.Task) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.Scheduled() {
			out = append(out, t)
		}
	}
	return out
}

// Rows projects every scheduled task onto boundaries.
func Rows(tasks []model.Task, boundaries []Boundary) []Row {
	var rows []Row
	for _, t := range Scheduled(tasks) {
		bar, ok := Geometry(t, boundaries)
		if !ok {
			continue
		}
		rows = append(rows, Row{Task: t, Bar: bar})
	}
	return rows
}
