package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/architect-board/internal/keys"
	"github.com/nhle/architect-board/internal/theme"
)

// paletteCommands lists the ":" commands with a short description.
var paletteCommands = [][2]string{
	{"column <label>", "add a board column"},
	{"zoom <day|week|month>", "set the timeline zoom"},
	{"save", "save the board now"},
	{"kanban | gantt | time", "switch view"},
	{"quit", "save and exit"},
}

// Model is the help overlay view.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Keyboard Shortcuts")

	m.help.Width = m.width - 4
	m.help.ShowAll = true
	helpText := m.help.View(m.keys)

	commands := make([]string, len(paletteCommands))
	for i, c := range paletteCommands {
		commands[i] = fmt.Sprintf("  :%-22s %s", c[0], c[1])
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		helpText,
		"",
		titleStyle.Render("Commands"),
		theme.HelpStyle.Render(strings.Join(commands, "\n")),
	)

	return theme.PanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(content)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
