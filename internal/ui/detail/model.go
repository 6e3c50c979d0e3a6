package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/theme"
)

// Task is everything the detail view shows about one card.
type Task struct {
	Task    model.Task
	Column  model.Column
	Entries []model.TimeEntry
	Timing  bool
}

// Model is the task detail view component.
type Model struct {
	task     *Task
	now      time.Time
	viewport viewport.Model
	width    int
	height   int
}

// New creates a new detail view model.
func New(width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the detail view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update scrolls the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.task == nil {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render("No task selected")
	}

	return m.viewport.View()
}

// renderContent builds the full detail content string for the viewport.
func (m Model) renderContent() string {
	if m.task == nil {
		return ""
	}

	task := m.task.Task
	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	title := titleStyle.Render(task.Title)
	if m.task.Timing {
		title += " " + theme.TimerStyle.Render("● timing")
	}
	sections = append(sections, title)

	// Badges line: column + priority
	columnBadge := theme.ColumnStyle(m.task.Column.Color).Render(m.task.Column.Label)
	priBadge := theme.PriorityStyle(string(task.Priority)).Render(strings.ToUpper(string(task.Priority)))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, columnBadge, "  ", priBadge))
	sections = append(sections, "")

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", metaStyle.Render(fmt.Sprintf("%-10s", label+":")), valStyle.Render(value))
	}

	sections = append(sections, row("Schedule", Schedule(task)))
	sections = append(sections, row("Hours", fmt.Sprintf("%.1fh spent of %sh estimated",
		spent(m.task.Entries), humanize.Ftoa(task.EstimatedHours))))
	if len(task.Tags) > 0 {
		tags := make([]string, len(task.Tags))
		for i, t := range task.Tags {
			tags[i] = theme.TagStyle.Render("#" + t)
		}
		sections = append(sections, row("Tags", strings.Join(tags, " ")))
	}
	if !task.CreatedAt.IsZero() {
		sections = append(sections, row("Created", task.CreatedAt.Local().Format("2006-01-02 15:04")))
	}

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", max(0, min(m.width-4, 80))))
	sections = append(sections, "", separator, "")

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite)

	sections = append(sections, headerStyle.Render("Description"))
	body := task.Description
	if body == "" {
		body = lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Italic(true).
			Render("No description")
	}
	sections = append(sections, body)

	if len(m.task.Entries) > 0 {
		sections = append(sections, "", separator, "")
		sections = append(sections, headerStyle.Render(
			fmt.Sprintf("Time entries (%d)", len(m.task.Entries)),
		))

		timeStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
		for i := len(m.task.Entries) - 1; i >= 0; i-- {
			e := m.task.Entries[i]
			sections = append(sections, fmt.Sprintf("%s  %s",
				timeStyle.Render(fmt.Sprintf("%-16s", humanize.RelTime(e.StartTime, m.now, "ago", "from now"))),
				fmt.Sprintf("%.2fh", e.Hours()),
			))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetTask updates the task being displayed and re-renders the content.
func (m *Model) SetTask(t Task, now time.Time) {
	m.task = &t
	m.now = now
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Clear drops the displayed task.
func (m *Model) Clear() {
	m.task = nil
	m.viewport.SetContent("")
}

// TaskID returns the id of the displayed task, if any.
func (m Model) TaskID() (string, bool) {
	if m.task == nil {
		return "", false
	}
	return m.task.Task.ID, true
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	if m.task != nil {
		m.viewport.SetContent(m.renderContent())
	}
}

// Schedule describes the task's date range and its length in days.
func Schedule(t model.Task) string {
	if !t.Scheduled() {
		return "not scheduled"
	}
	days := int(t.EndDate.Sub(t.StartDate.Time).Hours()/24) + 1
	return fmt.Sprintf("%s → %s (%s)", t.StartDate, t.EndDate, plural(days, "day"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func spent(entries []model.TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours()
	}
	return total
}
