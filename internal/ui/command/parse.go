package command

import (
	"fmt"
	"strings"
)

// Kind identifies a palette command.
type Kind int

const (
	AddColumn Kind = iota + 1
	SetZoom
	Save
	ShowKanban
	ShowGantt
	ShowTimeLog
	Quit
)

// Command is a parsed palette line.
type Command struct {
	Kind Kind
	Arg  string
}

// Parse turns a palette line into a Command. The verb is case-insensitive;
// the argument keeps its case.
func Parse(line string) (Command, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "column", "col":
		if arg == "" {
			return Command{}, fmt.Errorf("usage: column <label>")
		}
		return Command{Kind: AddColumn, Arg: arg}, nil
	case "zoom":
		if arg == "" {
			return Command{}, fmt.Errorf("usage: zoom <day|week|month>")
		}
		return Command{Kind: SetZoom, Arg: arg}, nil
	case "save", "w":
		return Command{Kind: Save}, nil
	case "kanban", "board":
		return Command{Kind: ShowKanban}, nil
	case "gantt", "timeline":
		return Command{Kind: ShowGantt}, nil
	case "time", "log":
		return Command{Kind: ShowTimeLog}, nil
	case "quit", "q":
		return Command{Kind: Quit}, nil
	case "":
		return Command{}, fmt.Errorf("empty command")
	}
	return Command{}, fmt.Errorf("unknown command %q", verb)
}
