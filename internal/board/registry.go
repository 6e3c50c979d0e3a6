package board

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"

	"github.com/nhle/architect-board/internal/model"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Registry is the ordered, append-only set of Kanban columns. It lives for
// the lifetime of the process and is not persisted.
type Registry struct {
	mu      sync.RWMutex
	columns []model.Column
}

// NewRegistry creates a registry holding the given columns, in order.
// With no columns it starts from model.DefaultColumns.
func NewRegistry(columns ...model.Column) *Registry {
	if len(columns) == 0 {
		columns = model.DefaultColumns()
	}
	r := &Registry{}
	for _, c := range columns {
		if r.indexOf(c.ID) >= 0 {
			continue
		}
		r.columns = append(r.columns, c)
	}
	return r
}

// Columns returns a copy of the registered columns in board order.
func (r *Registry) Columns() []model.Column {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Column(nil), r.columns...)
}

// Has reports whether id names a registered column.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id) >= 0
}

// Get returns the column with the given id.
func (r *Registry) Get(id string) (model.Column, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.columns[i], true
	}
	return model.Column{}, false
}

// Index returns the board position of the column, or -1.
func (r *Registry) Index(id string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id)
}

// First returns the left-most column.
func (r *Registry) First() model.Column {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.columns) == 0 {
		return model.Column{}
	}
	return r.columns[0]
}

// Add appends a column built from label. The id is the lower-cased label
// with whitespace runs replaced by "-". An empty color picks a random hue.
func (r *Registry) Add(label, color string) (model.Column, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return model.Column{}, &ValidationError{Fields: map[string]string{"label": "column title is required"}}
	}
	id := ColumnID(label)
	if color == "" {
		color = fmt.Sprintf("hsl(%d, 70%%, 60%%)", rand.IntN(360))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(id) >= 0 {
		return model.Column{}, fmt.Errorf("column %q already exists", id)
	}
	col := model.Column{ID: id, Label: label, Color: color}
	r.columns = append(r.columns, col)
	return col, nil
}

// Adopt registers a column for every task status the registry does not
// know, labelled with the status itself, and returns the added columns.
// Added columns are not persisted, so this brings them back after a restart.
func (r *Registry) Adopt(tasks []model.Task) []model.Column {
	var added []model.Column
	for _, t := range tasks {
		if t.Status == "" || r.Has(t.Status) || ColumnID(t.Status) != t.Status {
			continue
		}
		col, err := r.Add(t.Status, "")
		if err != nil {
			continue
		}
		added = append(added, col)
	}
	return added
}

// ColumnID derives a column identifier from its display label.
func ColumnID(label string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(label)), "-")
}

func (r *Registry) indexOf(id string) int {
	for i, c := range r.columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}
