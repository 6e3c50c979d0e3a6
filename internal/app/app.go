package app

import (
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/architect-board/internal/board"
	"github.com/nhle/architect-board/internal/keys"
	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/refresh"
	"github.com/nhle/architect-board/internal/store"
	"github.com/nhle/architect-board/internal/timeline"
	"github.com/nhle/architect-board/internal/timetrack"
	"github.com/nhle/architect-board/internal/ui"
	"github.com/nhle/architect-board/internal/ui/command"
	"github.com/nhle/architect-board/internal/ui/detail"
	"github.com/nhle/architect-board/internal/ui/gantt"
	helpview "github.com/nhle/architect-board/internal/ui/help"
	"github.com/nhle/architect-board/internal/ui/kanban"
	"github.com/nhle/architect-board/internal/ui/taskform"
	"github.com/nhle/architect-board/internal/ui/timelog"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewKanban ViewState = iota
	ViewGantt
	ViewTimeLog
	ViewDetail
	ViewForm
	ViewCommand
	ViewHelp
)

// mainViews is the order the switch-view key cycles through.
var mainViews = []ViewState{ViewKanban, ViewGantt, ViewTimeLog}

// Deps are the long-lived objects the UI operates on. They are built once
// by the caller and shared by reference.
type Deps struct {
	Columns *board.Registry
	Tasks   *board.TaskStore
	Engine  *timetrack.Engine
	Gateway *store.Gateway
	Ticker  *refresh.Ticker
	Zoom    timeline.Zoom

	// LoadErr is what Gateway.Load reported at startup, if anything. A read
	// failure pauses autosave until the user saves explicitly.
	LoadErr error

	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the root Bubble Tea model that manages view routing,
// layout, and access to the board state.
type Model struct {
	currentView  ViewState
	previousView ViewState
	mainView     ViewState
	layout       ui.Layout
	keys         *keys.KeyMap
	deps         Deps
	kanban       kanban.Model
	gantt        gantt.Model
	timeLog      timelog.Model
	detailView   detail.Model
	formView     taskform.Model
	commandView  command.Model
	helpView     helpview.Model
	lastTick     time.Time
	today        time.Time
	notice       string
	lastErr      string
	holdAutosave bool
	ready        bool
}

// New creates a new root application model.
func New(deps Deps) Model {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Zoom == "" {
		deps.Zoom = timeline.ZoomWeek
	}
	k := keys.DefaultKeyMap()

	m := Model{
		currentView: ViewKanban,
		mainView:    ViewKanban,
		keys:        k,
		deps:        deps,
		kanban:      kanban.New(k, 80, 24),
		gantt:       gantt.New(deps.Zoom, 80, 24),
		timeLog:     timelog.New(80, 24),
		detailView:  detail.New(80, 24),
		formView:    taskform.New(80, 24),
		commandView: command.New(80, 24),
		helpView:    helpview.New(k, 80, 24),
		lastTick:    deps.Now(),
	}
	m.syncViews()

	if deps.LoadErr != nil {
		m.lastErr = deps.LoadErr.Error()
		if errors.Is(deps.LoadErr, store.ErrStorageRead) {
			m.holdAutosave = true
			m.lastErr = "autosave paused, press w to overwrite: " + m.lastErr
		}
	}
	return m
}

// Init starts the timer refresh ticker.
func (m Model) Init() tea.Cmd {
	return m.deps.Ticker.Start()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.kanban.SetSize(w, h)
		m.gantt.SetSize(w, h)
		m.timeLog.SetSize(w, h)
		m.detailView.SetSize(w, h)
		m.formView.SetSize(w, h)
		m.commandView.SetSize(w, h)
		m.helpView.SetSize(w, h)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case refresh.TickMsg:
		m.lastTick = msg.Now
		if !timeline.Today(m.deps.Now()).Equal(m.today) {
			m.syncViews()
		}
		return m, m.deps.Ticker.WaitForNext()

	case savedMsg:
		if msg.err != nil {
			log.Printf("saving board: %v", msg.err)
			m.lastErr = msg.err.Error()
			return m, nil
		}
		if msg.manual {
			m.notice = "Saved"
			m.lastErr = ""
			m.holdAutosave = false
		}
		return m, nil

	case taskform.SubmittedMsg:
		m.currentView = m.mainView
		return m.submitTask(msg)

	case taskform.InvalidMsg:
		m.currentView = m.mainView
		m.fail(msg.Err)
		return m, nil

	case taskform.CancelMsg:
		m.currentView = m.mainView
		return m, nil

	case command.ExecMsg:
		m.currentView = m.previousView
		return m.execute(msg.Command)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveView(msg)
}

// handleKey routes key presses. Overlays that take text input get every
// key except the ones that close them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}

	switch m.currentView {
	case ViewForm:
		return m.updateActiveView(msg)
	case ViewCommand:
		if key.Matches(msg, m.keys.Back) {
			m.commandView.Reset()
			m.currentView = m.previousView
			return m, nil
		}
		return m.updateActiveView(msg)
	case ViewHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Back) {
			m.currentView = m.previousView
		}
		return m, nil
	case ViewDetail:
		switch {
		case key.Matches(msg, m.keys.Detail, m.keys.Back):
			m.detailView.Clear()
			m.currentView = m.mainView
			return m, nil
		case key.Matches(msg, m.keys.Edit):
			return m.openEditForm()
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()
		}
		return m.updateActiveView(msg)
	}

	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Help):
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil

	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		return m, m.commandView.Focus()

	case key.Matches(msg, m.keys.SwitchView):
		m.showView(nextMainView(m.mainView))
		return m, nil

	case key.Matches(msg, m.keys.Zoom):
		m.gantt.SetZoom(m.gantt.Zoom().Next())
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m, m.save(true)

	case key.Matches(msg, m.keys.StopTimer):
		return m.stopTimer()

	case key.Matches(msg, m.keys.Back):
		m.lastErr = ""
		return m, nil
	}

	if m.currentView == ViewKanban {
		return m.handleBoardKey(msg)
	}
	return m.updateActiveView(msg)
}

// handleBoardKey handles the card actions available on the Kanban board.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.New):
		return m.openCreateForm()
	case key.Matches(msg, m.keys.Edit):
		return m.openEditForm()
	case key.Matches(msg, m.keys.Detail):
		return m.openDetail()
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.MoveLeft):
		return m.moveSelected(-1)
	case key.Matches(msg, m.keys.MoveRight):
		return m.moveSelected(1)
	case key.Matches(msg, m.keys.StartTimer):
		return m.startTimer()
	}
	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewKanban:
		m.kanban, cmd = m.kanban.Update(msg)
	case ViewGantt:
		m.gantt, cmd = m.gantt.Update(msg)
	case ViewTimeLog:
		m.timeLog, cmd = m.timeLog.Update(msg)
	case ViewDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	case ViewForm:
		m.formView, cmd = m.formView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Architect Board", m.stats())
	statusBar := m.layout.RenderStatusBar(m.keyHints(), m.lastErr)

	return m.layout.RenderWithFrame(header, m.renderContent(), statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewKanban:
		return m.kanban.View()
	case ViewGantt:
		return m.gantt.View()
	case ViewTimeLog:
		return m.timeLog.View()
	case ViewDetail:
		return m.detailView.View()
	case ViewForm:
		return m.formView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// stats summarizes the board for the header.
func (m Model) stats() ui.Stats {
	s := ui.Stats{
		ActiveTasks: timetrack.ActiveTaskCount(m.deps.Tasks.List()),
		TotalHours:  m.deps.Engine.TotalHoursAll(),
	}
	if active, ok := m.deps.Engine.ActiveTimer(); ok {
		elapsed, _ := m.deps.Engine.Tick(m.lastTick)
		s.Timer = elapsed.String()
		if t, err := m.deps.Tasks.Get(active.TaskID); err == nil {
			s.TimerTask = t.Title
		}
	}
	return s
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.notice != "" {
		return m.notice
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewForm:
		return "enter next | shift+tab back | esc cancel"
	case ViewDetail:
		return "j/k scroll | e edit | esc back"
	case ViewGantt:
		return "z zoom (" + string(m.gantt.Zoom()) + ") | j/k scroll | v switch view | ? help | q quit"
	case ViewTimeLog:
		return "j/k scroll | S stop timer | v switch view | ? help | q quit"
	default:
		return "n new | e edit | i details | H/L move | s start | S stop | d delete | v view | : cmd | ? help | q quit"
	}
}

// showView makes v the active main view.
func (m *Model) showView(v ViewState) {
	m.mainView = v
	m.currentView = v
}

func nextMainView(v ViewState) ViewState {
	for i, candidate := range mainViews {
		if candidate == v {
			return mainViews[(i+1)%len(mainViews)]
		}
	}
	return ViewKanban
}

// syncViews pushes the current board state into every view.
func (m *Model) syncViews() {
	now := m.deps.Now()
	columns := m.deps.Columns.Columns()
	tasks := m.deps.Tasks.List()

	b := kanban.Board{
		Columns: columns,
		Tasks:   make(map[string][]model.Task, len(columns)),
		Spent:   make(map[string]float64, len(tasks)),
	}
	titles := make(map[string]string, len(tasks))
	for _, c := range columns {
		b.Tasks[c.ID] = m.deps.Tasks.ListByStatus(c.ID)
	}
	for _, t := range tasks {
		b.Spent[t.ID] = m.deps.Engine.TotalHoursForTask(t.ID)
		titles[t.ID] = t.Title
	}
	if active, ok := m.deps.Engine.ActiveTimer(); ok {
		b.Timing = active.TaskID
	}

	m.today = timeline.Today(now)
	m.kanban.SetBoard(b)
	m.gantt.SetData(tasks, columns, m.today)
	m.timeLog.SetEntries(m.deps.Engine.Entries(), titles, now)

	if id, ok := m.detailView.TaskID(); ok {
		if t, found := m.detailFor(id); found {
			m.detailView.SetTask(t, now)
		} else {
			m.detailView.Clear()
		}
	}
}

// detailFor gathers what the detail view shows for the task with id.
func (m Model) detailFor(id string) (detail.Task, bool) {
	t, err := m.deps.Tasks.Get(id)
	if err != nil {
		return detail.Task{}, false
	}
	col, ok := m.deps.Columns.Get(t.Status)
	if !ok {
		col = model.Column{ID: t.Status, Label: t.Status}
	}
	active, running := m.deps.Engine.ActiveTimer()
	return detail.Task{
		Task:    t,
		Column:  col,
		Entries: m.deps.Engine.EntriesForTask(id),
		Timing:  running && active.TaskID == id,
	}, true
}

// fail records err for the status bar.
func (m *Model) fail(err error) {
	log.Printf("%v", err)
	m.lastErr = err.Error()
}
