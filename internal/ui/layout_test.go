package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/architect-board/internal/ui"
)

func TestStatsString(t *testing.T) {
	idle := ui.Stats{ActiveTasks: 5, TotalHours: 12.25}
	assert.Equal(t, "5 active · 12.2h logged", idle.String())

	running := ui.Stats{ActiveTasks: 1, TotalHours: 0, Timer: "00:12:09", TimerTask: "Concept"}
	assert.Equal(t, "1 active · 0.0h logged · ⏱ 00:12:09 Concept", running.String())
}

func TestContentHeight(t *testing.T) {
	l := ui.NewLayout(100, 30)

	assert.Equal(t, 28, l.ContentHeight())
	assert.Equal(t, 100, l.ContentWidth())
}

func TestRenderStatusBarShowsError(t *testing.T) {
	l := ui.NewLayout(80, 24)

	assert.Contains(t, l.RenderStatusBar("q quit", ""), "q quit")
	out := l.RenderStatusBar("q quit", "save failed")
	assert.Contains(t, out, "save failed")
	assert.NotContains(t, out, "q quit")
}
