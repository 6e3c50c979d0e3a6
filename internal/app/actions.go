package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/store"
	"github.com/nhle/architect-board/internal/timeline"
	"github.com/nhle/architect-board/internal/ui/command"
	"github.com/nhle/architect-board/internal/ui/taskform"
)

// saveTimeout bounds a single snapshot write.
const saveTimeout = 5 * time.Second

// savedMsg reports the outcome of a save. manual is set for saves the user
// asked for explicitly.
type savedMsg struct {
	err    error
	manual bool
}

// Snapshot captures the current board state for persistence.
func (m Model) Snapshot() store.Snapshot {
	snap := store.Snapshot{
		Tasks:       m.deps.Tasks.List(),
		TimeEntries: m.deps.Engine.Entries(),
	}
	if active, ok := m.deps.Engine.ActiveTimer(); ok {
		snap.ActiveTimer = &active
	}
	return snap
}

// save returns a command writing the current state. The snapshot is taken
// now, not when the command runs.
func (m Model) save(manual bool) tea.Cmd {
	gw := m.deps.Gateway
	snap := m.Snapshot()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return savedMsg{err: gw.Save(ctx, snap), manual: manual}
	}
}

// autosave is save for writes the user did not ask for. It does nothing
// while autosave is held after a failed load.
func (m Model) autosave() tea.Cmd {
	if m.holdAutosave {
		return nil
	}
	return m.save(false)
}

// changed refreshes the views after a mutation and persists the result.
func (m *Model) changed() tea.Cmd {
	if !m.holdAutosave {
		m.lastErr = ""
	}
	m.syncViews()
	return m.autosave()
}

func (m Model) quit() tea.Cmd {
	m.deps.Ticker.Stop()
	if m.holdAutosave {
		return tea.Quit
	}
	return tea.Sequence(m.save(false), tea.Quit)
}

func (m Model) openCreateForm() (tea.Model, tea.Cmd) {
	status := m.deps.Columns.First().ID
	if col, ok := m.kanban.Column(); ok {
		status = col.ID
	}
	today := model.DateOf(m.deps.Now())

	m.currentView = ViewForm
	return m, m.formView.StartCreate(m.deps.Columns.Columns(), status, today)
}

func (m Model) openEditForm() (tea.Model, tea.Cmd) {
	task, ok := m.kanban.Selected()
	if !ok {
		return m, nil
	}
	m.currentView = ViewForm
	return m, m.formView.StartEdit(task, m.deps.Columns.Columns())
}

func (m Model) openDetail() (tea.Model, tea.Cmd) {
	task, ok := m.kanban.Selected()
	if !ok {
		return m, nil
	}
	d, ok := m.detailFor(task.ID)
	if !ok {
		return m, nil
	}
	m.detailView.SetTask(d, m.deps.Now())
	m.currentView = ViewDetail
	return m, nil
}

func (m Model) submitTask(msg taskform.SubmittedMsg) (tea.Model, tea.Cmd) {
	var (
		task model.Task
		err  error
	)
	if msg.TaskID == "" {
		task, err = m.deps.Tasks.Create(msg.Input)
	} else {
		task, err = m.deps.Tasks.Update(msg.TaskID, model.PatchFromInput(msg.Input))
	}
	if err != nil {
		m.fail(err)
		return m, nil
	}
	cmd := m.changed()
	m.kanban.SelectTask(task.ID)
	return m, cmd
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	task, ok := m.kanban.Selected()
	if !ok {
		return m, nil
	}
	if err := m.deps.Tasks.Delete(task.ID); err != nil {
		m.fail(err)
		return m, nil
	}
	return m, m.changed()
}

// moveSelected shifts the selected card dir columns to the right, or to
// the left for a negative dir.
func (m Model) moveSelected(dir int) (tea.Model, tea.Cmd) {
	task, ok := m.kanban.Selected()
	if !ok {
		return m, nil
	}
	columns := m.deps.Columns.Columns()
	target := m.deps.Columns.Index(task.Status) + dir
	if target < 0 || target >= len(columns) {
		return m, nil
	}
	if _, err := m.deps.Tasks.Move(task.ID, columns[target].ID); err != nil {
		m.fail(err)
		return m, nil
	}
	cmd := m.changed()
	m.kanban.SelectTask(task.ID)
	return m, cmd
}

func (m Model) startTimer() (tea.Model, tea.Cmd) {
	task, ok := m.kanban.Selected()
	if !ok {
		return m, nil
	}
	if !m.deps.Engine.StartTimer(task.ID) {
		return m, nil
	}
	m.lastTick = m.deps.Now()
	m.deps.Ticker.Trigger()
	return m, m.changed()
}

func (m Model) stopTimer() (tea.Model, tea.Cmd) {
	if _, ok := m.deps.Engine.StopTimer(); !ok {
		return m, nil
	}
	return m, m.changed()
}

// execute runs a command palette command.
func (m Model) execute(c command.Command) (tea.Model, tea.Cmd) {
	switch c.Kind {
	case command.AddColumn:
		col, err := m.deps.Columns.Add(c.Arg, "")
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.syncViews()
		m.notice = fmt.Sprintf("Added column %q", col.Label)
		return m, nil

	case command.SetZoom:
		z, err := timeline.ParseZoom(c.Arg)
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.gantt.SetZoom(z)
		m.showView(ViewGantt)
		return m, nil

	case command.Save:
		return m, m.save(true)

	case command.ShowKanban:
		m.showView(ViewKanban)
	case command.ShowGantt:
		m.showView(ViewGantt)
	case command.ShowTimeLog:
		m.showView(ViewTimeLog)

	case command.Quit:
		return m, m.quit()
	}
	return m, nil
}
