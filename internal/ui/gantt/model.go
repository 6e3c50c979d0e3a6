// Package gantt renders scheduled tasks as bars on a time axis.
package gantt

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/theme"
	"github.com/nhle/architect-board/internal/timeline"
)

// EmptyMessage is shown when no task has both dates.
const EmptyMessage = "No tasks with dates assigned"

const labelWidth = 24

// Model is the Gantt chart view.
type Model struct {
	zoom     timeline.Zoom
	ref      time.Time
	tasks    []model.Task
	colors   map[string]string
	viewport viewport.Model
	width    int
	height   int
}

// New creates a Gantt view at the given zoom.
func New(zoom timeline.Zoom, width, height int) Model {
	return Model{
		zoom:     zoom,
		viewport: viewport.New(width, max(1, height-2)),
		width:    width,
		height:   height,
	}
}

// Zoom returns the current zoom level.
func (m Model) Zoom() timeline.Zoom {
	return m.zoom
}

// Ref returns the reference day the timeline is projected from.
func (m Model) Ref() time.Time {
	return m.ref
}

// SetZoom changes the zoom level.
func (m *Model) SetZoom(z timeline.Zoom) {
	m.zoom = z
	m.refresh()
}

// SetData replaces the tasks and the reference instant the axis starts at.
// Bars are colored by the column each task sits in.
func (m *Model) SetData(tasks []model.Task, columns []model.Column, ref time.Time) {
	m.tasks = tasks
	m.ref = ref
	m.colors = make(map[string]string, len(columns))
	for _, c := range columns {
		m.colors[c.ID] = c.Color
	}
	m.refresh()
}

// Update scrolls the chart.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the axis header and the scrollable rows.
func (m Model) View() string {
	boundaries := timeline.Project(m.zoom, m.ref)
	title := theme.HeaderStyle.Render(fmt.Sprintf("Timeline · %s view", m.zoom))
	if len(timeline.Scheduled(m.tasks)) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, theme.HelpStyle.Render(EmptyMessage))
	}
	header := strings.Repeat(" ", labelWidth) + AxisHeader(boundaries, m.trackWidth())
	return lipgloss.JoinVertical(lipgloss.Left, title, header, m.viewport.View())
}

func (m *Model) refresh() {
	boundaries := timeline.Project(m.zoom, m.ref)
	track := m.trackWidth()

	var lines []string
	for _, row := range timeline.Rows(m.tasks, boundaries) {
		label := lipgloss.NewStyle().Width(labelWidth).MaxWidth(labelWidth).
			Render(row.Task.Title)
		bar := theme.BarStyle(m.colors[row.Task.Status]).Render(RenderBar(row.Bar, track))
		lines = append(lines, label+bar)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m Model) trackWidth() int {
	return max(10, m.width-labelWidth-1)
}

// SetSize updates the chart dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-2)
	m.refresh()
}

// RenderBar draws bar on a track of width cells. A bar inside the window
// always occupies at least one cell.
func RenderBar(bar timeline.Bar, width int) string {
	start := int(math.Round(bar.OffsetPercent / 100 * float64(width)))
	end := int(math.Round((bar.OffsetPercent + bar.WidthPercent) / 100 * float64(width)))
	start = max(0, min(start, width))
	end = max(0, min(end, width))
	if end <= start {
		if start >= width || bar.WidthPercent < 0 {
			return strings.Repeat("·", width)
		}
		end = start + 1
	}
	return strings.Repeat("·", start) + strings.Repeat("█", end-start) + strings.Repeat("·", width-end)
}

// AxisHeader places each boundary label at its offset on the track. Labels
// that would overlap the previous one are skipped.
func AxisHeader(boundaries []timeline.Boundary, width int) string {
	if len(boundaries) < 2 {
		return ""
	}
	first := boundaries[0].Start
	span := boundaries[len(boundaries)-1].Start.Sub(first)
	line := []rune(strings.Repeat(" ", width))
	next := 0
	for _, b := range boundaries {
		pos := int(math.Round(float64(b.Start.Sub(first)) / float64(span) * float64(width)))
		label := []rune(b.Label)
		if pos < next || pos+len(label) > width {
			continue
		}
		copy(line[pos:], label)
		next = pos + len(label) + 1
	}
	return string(line)
}
