package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nhle/architect-board/internal/model"
)

// Slot names under the namespace prefix.
const (
	slotTasks       = "tasks"
	slotTimeEntries = "timeEntries"
	slotActiveTimer = "activeTimer"
)

// Snapshot is the persisted board state.
type Snapshot struct {
	Tasks       []model.Task
	TimeEntries []model.TimeEntry
	ActiveTimer *model.ActiveTimer
}

// Gateway saves and restores board snapshots as JSON slots in a Substrate.
type Gateway struct {
	kv        Substrate
	namespace string
}

// NewGateway stores slots in kv under keys of the form "<namespace>_<slot>".
func NewGateway(kv Substrate, namespace string) *Gateway {
	return &Gateway{kv: kv, namespace: namespace}
}

// Key returns the substrate key of a slot.
func (g *Gateway) Key(slot string) string {
	return g.namespace + "_" + slot
}

// Save writes all three slots in one batch, overwriting previous values.
func (g *Gateway) Save(ctx context.Context, snap Snapshot) error {
	tasks := snap.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	entries := snap.TimeEntries
	if entries == nil {
		entries = []model.TimeEntry{}
	}

	batch := make([]Entry, 0, 3)
	for _, slot := range []struct {
		name  string
		value any
	}{
		{slotTasks, tasks},
		{slotTimeEntries, entries},
		{slotActiveTimer, snap.ActiveTimer},
	} {
		data, err := json.Marshal(slot.value)
		if err != nil {
			return fmt.Errorf("%w: encoding %s: %w", ErrStorageWrite, slot.name, err)
		}
		batch = append(batch, Entry{Key: g.Key(slot.name), Value: data})
	}

	if err := g.kv.Put(ctx, batch...); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	return nil
}

// Load reads the three slots. Missing slots yield empty collections and no
// timer. A slot that cannot be read or decoded is treated as missing and
// reported in the returned error, so the snapshot is always usable. Read
// failures wrap ErrStorageRead and decode failures ErrMalformedState.
func (g *Gateway) Load(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{
		Tasks:       []model.Task{},
		TimeEntries: []model.TimeEntry{},
	}
	var errs []error

	if err := g.loadSlot(ctx, slotTasks, &snap.Tasks); err != nil {
		snap.Tasks = []model.Task{}
		errs = append(errs, err)
	}
	if err := g.loadSlot(ctx, slotTimeEntries, &snap.TimeEntries); err != nil {
		snap.TimeEntries = []model.TimeEntry{}
		errs = append(errs, err)
	}
	if err := g.loadSlot(ctx, slotActiveTimer, &snap.ActiveTimer); err != nil {
		snap.ActiveTimer = nil
		errs = append(errs, err)
	}

	// A stored "null" decodes to a nil slice.
	if snap.Tasks == nil {
		snap.Tasks = []model.Task{}
	}
	if snap.TimeEntries == nil {
		snap.TimeEntries = []model.TimeEntry{}
	}
	for i := range snap.Tasks {
		if snap.Tasks[i].Tags == nil {
			snap.Tasks[i].Tags = []string{}
		}
	}

	return snap, errors.Join(errs...)
}

func (g *Gateway) loadSlot(ctx context.Context, slot string, dst any) error {
	data, ok, err := g.kv.Get(ctx, g.Key(slot))
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrStorageRead, slot, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: decoding %s: %w", ErrMalformedState, slot, err)
	}
	return nil
}

// Clear removes every slot of the namespace.
func (g *Gateway) Clear(ctx context.Context) error {
	for _, slot := range []string{slotTasks, slotTimeEntries, slotActiveTimer} {
		if err := g.kv.Delete(ctx, g.Key(slot)); err != nil {
			return fmt.Errorf("clearing %s: %w", slot, err)
		}
	}
	return nil
}
