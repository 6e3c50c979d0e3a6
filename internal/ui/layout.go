package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/architect-board/internal/theme"
)

// Layout manages the multi-panel terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// Stats is the board summary shown in the header.
type Stats struct {
	ActiveTasks int
	TotalHours  float64

	// Timer is the running timer as HH:MM:SS, empty when idle.
	Timer     string
	TimerTask string
}

// String formats the stats, e.g. "5 active · 12.5h logged · ⏱ 00:12:09 Concept".
func (s Stats) String() string {
	out := fmt.Sprintf("%d active · %.1fh logged", s.ActiveTasks, s.TotalHours)
	if s.Timer != "" {
		out += fmt.Sprintf(" · ⏱ %s %s", s.Timer, s.TimerTask)
	}
	return out
}

// RenderHeader renders the top header bar with a title and board stats.
func (l Layout) RenderHeader(title string, stats Stats) string {
	titleRendered := theme.HeaderStyle.Render(title)

	statusRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(stats.String())

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(statusRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		statusRendered,
	)
}

// RenderStatusBar renders the bottom status bar with keyboard hints, or
// with errMsg in place of the hints when it is set.
func (l Layout) RenderStatusBar(hints, errMsg string) string {
	rendered := theme.StatusBarStyle.Render(hints)
	if errMsg != "" {
		rendered = theme.StatusBarStyle.Inherit(theme.ErrorStyle).Render("✗ " + errMsg)
	}

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
