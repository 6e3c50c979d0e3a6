// Package taskform is the huh form used to create and edit tasks.
package taskform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/architect-board/internal/board"
	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/theme"
)

// DefaultSpanDays is how far after the start date a new task ends by default.
const DefaultSpanDays = 7

// SubmittedMsg is dispatched when the form is completed. TaskID is empty
// when a new task is being created.
type SubmittedMsg struct {
	TaskID string
	Input  model.TaskInput
}

// InvalidMsg is dispatched when completed form content does not parse.
type InvalidMsg struct {
	Err error
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// Model is the Bubble Tea model for the task create/edit form.
type Model struct {
	form    *huh.Form
	fb      *board.TaskForm
	editID  string
	columns []model.Column
	width   int
	height  int
}

// New creates a new task form model.
func New(width, height int) Model {
	return Model{
		fb:     &board.TaskForm{},
		width:  width,
		height: height,
	}
}

// StartCreate opens an empty form. The task lands in status and is
// scheduled from today for DefaultSpanDays.
func (m *Model) StartCreate(columns []model.Column, status string, today model.Date) tea.Cmd {
	m.editID = ""
	m.columns = columns
	*m.fb = board.TaskForm{
		Status:    status,
		Priority:  string(model.PriorityMedium),
		StartDate: today.String(),
		EndDate:   today.AddDays(DefaultSpanDays).String(),
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit opens the form filled with task.
func (m *Model) StartEdit(task model.Task, columns []model.Column) tea.Cmd {
	m.editID = task.ID
	m.columns = columns
	*m.fb = board.FormFromTask(task)
	m.form = m.buildForm()
	return m.form.Init()
}

// Editing reports whether the form edits an existing task.
func (m Model) Editing() bool {
	return m.editID != ""
}

// Values returns the current raw field values.
func (m Model) Values() board.TaskForm {
	return *m.fb
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.handleSubmit()
	case huh.StateAborted:
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Task"
	if m.Editing() {
		titleText = "Edit Task"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	statusOpts := make([]huh.Option[string], len(m.columns))
	for i, c := range m.columns {
		statusOpts[i] = huh.NewOption(c.Label, c.ID)
	}

	priorityOpts := make([]huh.Option[string], len(model.Priorities))
	for i, p := range model.Priorities {
		priorityOpts[i] = huh.NewOption(strings.ToUpper(string(p[:1]))+string(p[1:]), string(p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Site analysis, permit package...").
				Value(&m.fb.Title).
				Validate(board.ValidateTitle),
			huh.NewText().
				Title("Description").
				Placeholder("Optional details...").
				Value(&m.fb.Description),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOpts...).
				Value(&m.fb.Status),
			huh.NewSelect[string]().
				Title("Priority").
				Options(priorityOpts...).
				Value(&m.fb.Priority),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start Date").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&m.fb.StartDate).
				Validate(validateDate),
			huh.NewInput().
				Title("End Date").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&m.fb.EndDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Estimated Hours").
				Placeholder("0").
				Value(&m.fb.EstimatedHours).
				Validate(validateHours),
			huh.NewInput().
				Title("Tags").
				Placeholder("Design, Research").
				Value(&m.fb.Tags),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	in, err := board.ParseTaskForm(*m.fb)
	if err != nil {
		return func() tea.Msg { return InvalidMsg{Err: err} }
	}
	id := m.editID
	return func() tea.Msg { return SubmittedMsg{TaskID: id, Input: in} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateDate(s string) error {
	_, err := board.ParseOptionalDate(s)
	return err
}

func validateHours(s string) error {
	_, err := board.ParseHours(s)
	return err
}
