package board

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nhle/architect-board/internal/model"
)

// ValidationError lists the fields of a task input that were rejected,
// keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return "invalid task: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// TaskForm is the raw, string-typed content of the task form.
type TaskForm struct {
	Title          string
	Description    string
	Status         string
	Priority       string
	StartDate      string
	EndDate        string
	EstimatedHours string

	// Tags is a comma-separated list.
	Tags string
}

// FormFromTask fills a form with the current values of t.
func FormFromTask(t model.Task) TaskForm {
	f := TaskForm{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    string(t.Priority),
		Tags:        strings.Join(t.Tags, ", "),
	}
	if t.StartDate != nil {
		f.StartDate = t.StartDate.String()
	}
	if t.EndDate != nil {
		f.EndDate = t.EndDate.String()
	}
	if t.EstimatedHours != 0 {
		f.EstimatedHours = strconv.FormatFloat(t.EstimatedHours, 'f', -1, 64)
	}
	return f
}

// ParseTaskForm converts form strings into a typed TaskInput. Every field
// problem is collected into a single *ValidationError.
func ParseTaskForm(f TaskForm) (model.TaskInput, error) {
	verr := &ValidationError{}
	in := model.TaskInput{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		Status:      strings.TrimSpace(f.Status),
		Tags:        ParseTags(f.Tags),
	}

	if err := ValidateTitle(f.Title); err != nil {
		verr.add("title", err.Error())
	}

	if p := strings.TrimSpace(f.Priority); p != "" {
		in.Priority = model.Priority(strings.ToLower(p))
		if !in.Priority.Valid() {
			verr.add("priority", fmt.Sprintf("unknown priority %q", p))
		}
	}

	start, err := ParseOptionalDate(f.StartDate)
	if err != nil {
		verr.add("startDate", err.Error())
	}
	in.StartDate = start

	end, err := ParseOptionalDate(f.EndDate)
	if err != nil {
		verr.add("endDate", err.Error())
	}
	in.EndDate = end

	hours, err := ParseHours(f.EstimatedHours)
	if err != nil {
		verr.add("estimatedHours", err.Error())
	}
	in.EstimatedHours = hours

	return in, verr.orNil()
}

// ValidateTitle rejects blank titles.
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// ParseOptionalDate parses YYYY-MM-DD, returning nil for a blank string.
func ParseOptionalDate(s string) (*model.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("invalid date, use YYYY-MM-DD")
	}
	return &d, nil
}

// ParseHours parses a non-negative number of hours. Blank means zero.
func ParseHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if h < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return h, nil
}

// ParseTags splits a comma-separated list, trimming entries and dropping
// empty ones. Order and duplicates are preserved.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// validateTask checks a fully merged task against the column registry. The
// status is only checked when checkStatus is set, so a task restored into a
// column that no longer exists stays editable.
func validateTask(t model.Task, columns *Registry, checkStatus bool) error {
	verr := &ValidationError{}
	if err := ValidateTitle(t.Title); err != nil {
		verr.add("title", err.Error())
	}
	if checkStatus && !columns.Has(t.Status) {
		verr.add("status", fmt.Sprintf("unknown column %q", t.Status))
	}
	if !t.Priority.Valid() {
		verr.add("priority", fmt.Sprintf("unknown priority %q", t.Priority))
	}
	if t.EstimatedHours < 0 {
		verr.add("estimatedHours", "must not be negative")
	}
	if t.Scheduled() && t.EndDate.Before(t.StartDate.Time) {
		verr.add("endDate", "must not be before the start date")
	}
	for _, tag := range t.Tags {
		if strings.TrimSpace(tag) == "" {
			verr.add("tags", "tags must not be empty")
			break
		}
	}
	return verr.orNil()
}
