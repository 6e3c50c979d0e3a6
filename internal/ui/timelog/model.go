// Package timelog lists recorded time entries.
package timelog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/theme"
)

const (
	// EmptyMessage is shown before any time has been recorded.
	EmptyMessage = "No time entries yet. Start a timer from a task!"

	// UnknownTask labels entries whose task no longer exists.
	UnknownTask = "Unknown Task"
)

// Row is one rendered entry.
type Row struct {
	Task     string
	Started  string
	Relative string
	Duration string
}

// Rows orders entries newest first and resolves task titles. Open entries
// count as zero hours.
func Rows(entries []model.TimeEntry, titles map[string]string, now time.Time) []Row {
	sorted := append([]model.TimeEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})

	rows := make([]Row, len(sorted))
	for i, e := range sorted {
		title, ok := titles[e.TaskID]
		if !ok {
			title = UnknownTask
		}
		rows[i] = Row{
			Task:     title,
			Started:  e.StartTime.Local().Format("Jan 2, 2006 15:04"),
			Relative: humanize.RelTime(e.StartTime, now, "ago", "from now"),
			Duration: fmt.Sprintf("%.2fh", e.Hours()),
		}
	}
	return rows
}

// Model is the time log view.
type Model struct {
	viewport viewport.Model
	rows     []Row
	total    float64
	width    int
	height   int
}

// New creates an empty time log.
func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, max(1, height-2)),
		width:    width,
		height:   height,
	}
}

// SetEntries replaces the listed entries.
func (m *Model) SetEntries(entries []model.TimeEntry, titles map[string]string, now time.Time) {
	m.rows = Rows(entries, titles, now)
	m.total = 0
	for _, e := range entries {
		m.total += e.Hours()
	}
	m.refresh()
}

// Update scrolls the log.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the log.
func (m Model) View() string {
	title := theme.HeaderStyle.Render(fmt.Sprintf("Time Log · %.1fh total", m.total))
	if len(m.rows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, theme.HelpStyle.Render(EmptyMessage))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View())
}

func (m *Model) refresh() {
	taskWidth := max(12, m.width-40)
	lines := make([]string, len(m.rows))
	for i, r := range m.rows {
		task := lipgloss.NewStyle().Bold(true).Width(taskWidth).MaxWidth(taskWidth).Render(r.Task)
		dur := theme.TimerStyle.Width(9).Align(lipgloss.Right).Render(r.Duration)
		when := theme.MutedStyle.Render(fmt.Sprintf("  %s (%s)", r.Started, r.Relative))
		lines[i] = task + dur + when
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// SetSize updates the log dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-2)
	m.refresh()
}
