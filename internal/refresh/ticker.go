// Package refresh drives the once-per-second redraw of the running timer.
package refresh

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is used when a non-positive interval is configured.
const DefaultInterval = time.Second

// TickMsg is a tea.Msg carrying the wall-clock time of a tick.
type TickMsg struct {
	Now time.Time
}

// Ticker emits TickMsg values from a background goroutine.
type Ticker struct {
	interval  time.Duration
	now       func() time.Time
	tickCh    chan TickMsg
	triggerCh chan struct{}
	stopCh    chan struct{}
	mu        sync.Mutex
	running   bool
}

// New creates a stopped ticker.
func New(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{
		interval:  interval,
		now:       time.Now,
		tickCh:    make(chan TickMsg, 1),
		triggerCh: make(chan struct{}, 1),
	}
}

// Interval returns the tick period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Start launches the tick goroutine and returns a command waiting for the
// first tick. Calling Start on a running ticker returns nil.
func (t *Ticker) Start() tea.Cmd {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return nil
	}
	t.running = true
	t.stopCh = make(chan struct{})
	stop := t.stopCh
	t.mu.Unlock()

	go t.run(stop)

	return t.WaitForNext()
}

// Stop halts the tick goroutine. It is safe to call more than once.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	close(t.stopCh)
	t.running = false
}

// Running reports whether the tick goroutine is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Trigger requests an immediate tick, for instance right after a timer
// starts so the display does not lag by up to one interval.
func (t *Ticker) Trigger() {
	select {
	case t.triggerCh <- struct{}{}:
	default:
	}
}

func (t *Ticker) run(stop <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.send()
		case <-t.triggerCh:
			t.send()
		}
	}
}

// send delivers a tick without blocking. A tick still unread by the UI is
// replaced rather than queued behind.
func (t *Ticker) send() {
	msg := TickMsg{Now: t.now()}
	select {
	case t.tickCh <- msg:
		return
	default:
	}
	select {
	case <-t.tickCh:
	default:
	}
	select {
	case t.tickCh <- msg:
	default:
	}
}

// WaitForNext returns a tea.Cmd that blocks until the next tick. Call it
// again after handling each TickMsg to keep listening. The command returns
// nil once the ticker is stopped, and WaitForNext on a stopped ticker
// returns a nil command.
func (t *Ticker) WaitForNext() tea.Cmd {
	t.mu.Lock()
	stop, running := t.stopCh, t.running
	t.mu.Unlock()
	if !running {
		return nil
	}

	return func() tea.Msg {
		select {
		case msg := <-t.tickCh:
			return msg
		case <-stop:
			return nil
		}
	}
}
