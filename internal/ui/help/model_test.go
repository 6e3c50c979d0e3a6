package help

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/architect-board/internal/keys"
)

func TestViewListsKeysAndCommands(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 120, 50)

	out := m.View()

	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "Commands")
	assert.Contains(t, out, ":column <label>")
	assert.Contains(t, out, "add a board column")
}
