package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/architect-board/internal/ui/command"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want command.Command
	}{
		{"column Client Sign Off", command.Command{Kind: command.AddColumn, Arg: "Client Sign Off"}},
		{"  ZOOM month ", command.Command{Kind: command.SetZoom, Arg: "month"}},
		{"save", command.Command{Kind: command.Save}},
		{"kanban", command.Command{Kind: command.ShowKanban}},
		{"gantt", command.Command{Kind: command.ShowGantt}},
		{"time", command.Command{Kind: command.ShowTimeLog}},
		{"quit", command.Command{Kind: command.Quit}},
	}
	for _, tt := range tests {
		got, err := command.Parse(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{"", "column", "zoom  ", "dance"} {
		_, err := command.Parse(line)
		assert.Error(t, err, line)
	}
}
