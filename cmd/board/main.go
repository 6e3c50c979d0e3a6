package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/nhle/architect-board/internal/app"
	"github.com/nhle/architect-board/internal/board"
	"github.com/nhle/architect-board/internal/ident"
	"github.com/nhle/architect-board/internal/model"
	"github.com/nhle/architect-board/internal/refresh"
	"github.com/nhle/architect-board/internal/store"
	"github.com/nhle/architect-board/internal/theme"
	"github.com/nhle/architect-board/internal/timeline"
	"github.com/nhle/architect-board/internal/timetrack"
)

const debugLogFile = "board-debug.log"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	flags := pflag.NewFlagSet("board", pflag.ContinueOnError)
	configPath := flags.String("config", model.DefaultConfigPath(), "path to config file")
	flags.String("db-path", "", "path to SQLite database (overrides storage.path)")
	flags.String("zoom", "", "initial timeline zoom: day, week or month")
	seed := flags.Bool("seed", false, "load sample tasks into an empty board")
	reset := flags.Bool("reset", false, "clear the saved board before starting")
	debug := flags.Bool("debug", false, "write a debug log to "+debugLogFile)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := writeDefaultConfig(*configPath); err != nil {
		return err
	}

	v := model.NewViper()
	if err := v.BindPFlag("storage.path", flags.Lookup("db-path")); err != nil {
		return fmt.Errorf("binding db-path flag: %w", err)
	}
	if err := v.BindPFlag("display.gantt_zoom", flags.Lookup("zoom")); err != nil {
		return fmt.Errorf("binding zoom flag: %w", err)
	}
	cfg, err := model.LoadConfigWith(v, *configPath)
	if err != nil {
		return err
	}

	logFile := cfg.Log.File
	if *debug && logFile == "" {
		logFile = debugLogFile
	}
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "board")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		// Anything written to stderr would corrupt the terminal UI.
		log.SetOutput(io.Discard)
	}

	if err := theme.Apply(cfg.Display.Theme); err != nil {
		return err
	}
	zoom, err := timeline.ParseZoom(cfg.Display.GanttZoom)
	if err != nil {
		log.Printf("config: %v; using week", err)
		zoom = timeline.ZoomWeek
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	kv, err := store.NewSQLiteStore(cfg.Storage.Path, store.WithMaxValueBytes(cfg.Storage.MaxValueBytes))
	if err != nil {
		return err
	}
	defer kv.Close()
	gateway := store.NewGateway(kv, cfg.Storage.Namespace)

	ctx := context.Background()
	if *reset {
		if err := gateway.Clear(ctx); err != nil {
			return fmt.Errorf("resetting board: %w", err)
		}
	}

	snap, loadErr := gateway.Load(ctx)
	if loadErr != nil {
		// Load still returns every slot it could read.
		log.Printf("loading board: %v", loadErr)
	}
	// An unreadable store must not be overwritten by the empty board.
	readFailed := errors.Is(loadErr, store.ErrStorageRead)

	ids := ident.UUID{}
	columns := board.NewRegistry()
	tasks := board.NewTaskStore(columns, ids)
	tasks.Restore(snap.Tasks)
	for _, col := range columns.Adopt(snap.Tasks) {
		log.Printf("restored column %q for saved tasks", col.ID)
	}
	engine := timetrack.NewEngine(tasks, ids)
	if engine.Restore(snap.TimeEntries, snap.ActiveTimer) {
		log.Printf("dropped timer for missing task %s", snap.ActiveTimer.TaskID)
	}
	tasks.OnDelete(engine.ForgetTask)

	if *seed && tasks.Len() == 0 && !readFailed {
		if err := seedSampleData(tasks, model.DateOf(time.Now())); err != nil {
			return fmt.Errorf("seeding board: %w", err)
		}
		err := gateway.Save(ctx, store.Snapshot{Tasks: tasks.List(), TimeEntries: engine.Entries()})
		if err != nil {
			return err
		}
	}

	ticker := refresh.New(time.Duration(cfg.Timer.RefreshIntervalMS) * time.Millisecond)
	defer ticker.Stop()

	program := tea.NewProgram(app.New(app.Deps{
		Columns: columns,
		Tasks:   tasks,
		Engine:  engine,
		Gateway: gateway,
		Ticker:  ticker,
		Zoom:    zoom,
		LoadErr: loadErr,
	}), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// writeDefaultConfig creates the config file with default values on first
// run so users have something to edit.
func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return model.SaveConfig(path, model.DefaultAppConfig())
}
