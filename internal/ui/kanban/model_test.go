package kanban_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/architect-board/internal/keys"
	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/ui/kanban"
)

func press(m kanban.Model, s string) kanban.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func sampleBoard() kanban.Board {
	return kanban.Board{
		Columns: model.DefaultColumns(),
		Tasks: map[string][]model.Task{
			model.StatusBacklog: {
				{ID: "a", Title: "A", Priority: model.PriorityLow},
				{ID: "b", Title: "B", Priority: model.PriorityHigh},
			},
			model.StatusDesign: {
				{ID: "c", Title: "C", Priority: model.PriorityMedium, Tags: []string{"x"}},
			},
		},
		Spent:  map[string]float64{"c": 1.25},
		Timing: "c",
	}
}

func TestNavigation(t *testing.T) {
	m := kanban.New(keys.DefaultKeyMap(), 120, 40)
	m.SetBoard(sampleBoard())

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.ID)

	m = press(m, "j")
	m = press(m, "j")
	sel, _ = m.Selected()
	assert.Equal(t, "b", sel.ID, "cursor stops at the last card")

	m = press(m, "l")
	sel, _ = m.Selected()
	assert.Equal(t, "c", sel.ID, "row clamps to the shorter column")

	m = press(m, "l")
	col, ok := m.Column()
	require.True(t, ok)
	assert.Equal(t, model.StatusDevelopment, col.ID)
	_, ok = m.Selected()
	assert.False(t, ok, "empty column has no selection")

	for range 10 {
		m = press(m, "h")
	}
	col, _ = m.Column()
	assert.Equal(t, model.StatusBacklog, col.ID)
}

func TestSetBoardClampsAfterDelete(t *testing.T) {
	m := kanban.New(keys.DefaultKeyMap(), 120, 40)
	b := sampleBoard()
	m.SetBoard(b)
	m = press(m, "j")

	b.Tasks[model.StatusBacklog] = b.Tasks[model.StatusBacklog][:1]
	m.SetBoard(b)

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.ID)
}

func TestSelectTask(t *testing.T) {
	m := kanban.New(keys.DefaultKeyMap(), 120, 40)
	m.SetBoard(sampleBoard())

	m.SelectTask("c")
	sel, _ := m.Selected()
	assert.Equal(t, "c", sel.ID)

	m.SelectTask("missing")
	sel, _ = m.Selected()
	assert.Equal(t, "c", sel.ID)
}

func TestViewShowsCardsAndFooter(t *testing.T) {
	m := kanban.New(keys.DefaultKeyMap(), 150, 40)
	m.SetBoard(sampleBoard())

	out := m.View()

	assert.Contains(t, out, "Backlog (2)")
	assert.Contains(t, out, "Design Phase (1)")
	assert.Contains(t, out, "1.2h / 0h")
}

func TestCardFooter(t *testing.T) {
	assert.Equal(t, "0.0h / 40h", kanban.CardFooter(0, 40))
	assert.Equal(t, "2.5h / 12.5h", kanban.CardFooter(2.5, 12.5))
	assert.Equal(t, "3.8h / 0h", kanban.CardFooter(3.75, 0))
}
