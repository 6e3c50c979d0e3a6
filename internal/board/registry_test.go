package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/architect-board/internal/board"
	"github.com/nhle/architect-board/internal/model"
)

func TestNewRegistryStartsWithDefaults(t *testing.T) {
	r := board.NewRegistry()

	var ids []string
	for _, c := range r.Columns() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"backlog", "design", "development", "review", "completed"}, ids)
	assert.Equal(t, "backlog", r.First().ID)
}

func TestRegistryAdd(t *testing.T) {
	r := board.NewRegistry()

	col, err := r.Add("  Client   Sign Off ", "#ff0000")
	require.NoError(t, err)

	assert.Equal(t, model.Column{ID: "client-sign-off", Label: "Client   Sign Off", Color: "#ff0000"}, col)
	assert.True(t, r.Has("client-sign-off"))
	assert.Equal(t, 5, r.Index("client-sign-off"))

	got, ok := r.Get("client-sign-off")
	require.True(t, ok)
	assert.Equal(t, col, got)
}

func TestRegistryAddPicksColor(t *testing.T) {
	r := board.NewRegistry()

	col, err := r.Add("QA", "")
	require.NoError(t, err)

	assert.Regexp(t, `^hsl\(\d+, 70%, 60%\)$`, col.Color)
}

func TestRegistryAddRejectsDuplicatesAndBlank(t *testing.T) {
	r := board.NewRegistry()

	_, err := r.Add("Review", "")
	assert.Error(t, err)

	_, err = r.Add("   ", "")
	var verr *board.ValidationError
	assert.ErrorAs(t, err, &verr)

	assert.Len(t, r.Columns(), 5)
}

func TestAddedColumnAcceptsTasks(t *testing.T) {
	r := board.NewRegistry()
	s := board.NewTaskStore(r, sequentialIDs())

	_, err := s.Create(model.TaskInput{Title: "x", Status: "qa"})
	require.Error(t, err)

	_, err = r.Add("QA", "")
	require.NoError(t, err)

	task, err := s.Create(model.TaskInput{Title: "x", Status: "qa"})
	require.NoError(t, err)
	assert.Equal(t, "qa", task.Status)
}

func TestColumnsReturnsCopy(t *testing.T) {
	r := board.NewRegistry()

	cols := r.Columns()
	cols[0].Label = "changed"

	assert.Equal(t, "Backlog", r.Columns()[0].Label)
}

func TestAdoptRegistersRestoredStatuses(t *testing.T) {
	r := board.NewRegistry()
	tasks := []model.Task{
		{ID: "1", Status: model.StatusBacklog},
		{ID: "2", Status: "qa"},
		{ID: "3", Status: "qa"},
		{ID: "4", Status: "client-sign-off"},
		{ID: "5", Status: "Bad Id"},
	}

	added := r.Adopt(tasks)

	require.Len(t, added, 2)
	assert.Equal(t, "qa", added[0].ID)
	assert.Equal(t, "client-sign-off", added[1].ID)
	assert.True(t, r.Has("qa"))
	assert.False(t, r.Has("bad-id"))
	assert.Len(t, r.Columns(), 7)
}
