// Package kanban renders the board as columns of task cards.
package kanban

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/architect-board/internal/keys"
	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/theme"
)

const (
	minColumnWidth = 22
	cardHeight     = 5
	maxTagsShown   = 3
)

// Board is the data the view renders.
type Board struct {
	Columns []model.Column

	// Tasks holds each column's tasks keyed by column id.
	Tasks map[string][]model.Task

	// Spent is the tracked hours per task id.
	Spent map[string]float64

	// Timing is the id of the task whose timer is running, if any.
	Timing string
}

// Model is the Kanban board view.
type Model struct {
	board  Board
	keys   *keys.KeyMap
	col    int
	row    int
	width  int
	height int
}

// New creates an empty board view.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// SetBoard replaces the rendered data and keeps the cursor in range.
func (m *Model) SetBoard(b Board) {
	m.board = b
	m.clamp()
}

// Update moves the cursor between columns and cards.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Left):
		m.col--
	case key.Matches(km, m.keys.Right):
		m.col++
	case key.Matches(km, m.keys.Up):
		m.row--
	case key.Matches(km, m.keys.Down):
		m.row++
	default:
		return m, nil
	}
	m.clamp()
	return m, nil
}

func (m *Model) clamp() {
	n := len(m.board.Columns)
	if n == 0 {
		m.col, m.row = 0, 0
		return
	}
	m.col = max(0, min(m.col, n-1))
	cards := len(m.columnTasks(m.col))
	if cards == 0 {
		m.row = 0
		return
	}
	m.row = max(0, min(m.row, cards-1))
}

func (m Model) columnTasks(i int) []model.Task {
	if i < 0 || i >= len(m.board.Columns) {
		return nil
	}
	return m.board.Tasks[m.board.Columns[i].ID]
}

// Column returns the column under the cursor.
func (m Model) Column() (model.Column, bool) {
	if m.col >= len(m.board.Columns) {
		return model.Column{}, false
	}
	return m.board.Columns[m.col], true
}

// Selected returns the task under the cursor.
func (m Model) Selected() (model.Task, bool) {
	tasks := m.columnTasks(m.col)
	if m.row >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.row], true
}

// SelectTask moves the cursor onto the task with the given id, for example
// after it changed columns. Unknown ids leave the cursor where it is.
func (m *Model) SelectTask(id string) {
	for c := range m.board.Columns {
		for r, t := range m.columnTasks(c) {
			if t.ID == id {
				m.col, m.row = c, r
				return
			}
		}
	}
}

// View renders the columns side by side.
func (m Model) View() string {
	if len(m.board.Columns) == 0 {
		return theme.HelpStyle.Render("No columns")
	}

	colWidth := max(minColumnWidth, m.width/len(m.board.Columns))
	rendered := make([]string, len(m.board.Columns))
	for i, c := range m.board.Columns {
		rendered[i] = m.renderColumn(i, c, colWidth)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderColumn(i int, c model.Column, width int) string {
	tasks := m.columnTasks(i)
	heading := theme.ColumnStyle(c.Color).
		Width(width).
		Render(fmt.Sprintf("%s (%d)", c.Label, len(tasks)))

	visible := max(1, (m.height-2)/cardHeight)
	start := 0
	if i == m.col && m.row >= visible {
		start = m.row - visible + 1
	}
	end := min(len(tasks), start+visible)

	lines := []string{heading}
	if start > 0 {
		lines = append(lines, theme.MutedStyle.Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	for r := start; r < end; r++ {
		selected := i == m.col && r == m.row
		lines = append(lines, m.renderCard(tasks[r], width-2, selected))
	}
	if end < len(tasks) {
		lines = append(lines, theme.MutedStyle.Render(fmt.Sprintf("  ↓ %d more", len(tasks)-end)))
	}
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderCard(t model.Task, width int, selected bool) string {
	style := theme.CardStyle
	switch {
	case selected:
		style = theme.SelectedCardStyle
	case t.ID == m.board.Timing:
		style = theme.TimingCardStyle
	}

	inner := max(8, width-4)
	title := truncate(t.Title, inner)
	if t.ID == m.board.Timing {
		title = truncate("● "+t.Title, inner)
	}

	meta := theme.PriorityStyle(string(t.Priority)).Render(string(t.Priority))
	if tags := tagSummary(t.Tags); tags != "" {
		meta += " " + theme.TagStyle.Render(truncate(tags, max(0, inner-len(t.Priority)-1)))
	}

	footer := theme.MutedStyle.Render(CardFooter(m.board.Spent[t.ID], t.EstimatedHours))

	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title), meta, footer))
}

// CardFooter formats tracked against estimated hours, e.g. "1.5h / 40h".
func CardFooter(spent, estimated float64) string {
	return fmt.Sprintf("%.1fh / %sh", spent, strconv.FormatFloat(estimated, 'f', -1, 64))
}

func tagSummary(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	shown := tags
	suffix := ""
	if len(shown) > maxTagsShown {
		shown = shown[:maxTagsShown]
		suffix = " …"
	}
	return "#" + strings.Join(shown, " #") + suffix
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// SetSize updates the board dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
