package model

// Default column identifiers.
const (
	StatusBacklog     = "backlog"
	StatusDesign      = "design"
	StatusDevelopment = "development"
	StatusReview      = "review"
	StatusCompleted   = "completed"
)

// Column is a status bucket on the Kanban board.
type Column struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	// Color is a CSS-style color, either "#rrggbb" or "hsl(h, s%, l%)".
	Color string `json:"color"`
}

// DefaultColumns returns the columns every board starts with.
func DefaultColumns() []Column {
	return []Column{
		{ID: StatusBacklog, Label: "Backlog", Color: "hsl(0, 0%, 55%)"},
		{ID: StatusDesign, Label: "Design Phase", Color: "hsl(280, 70%, 60%)"},
		{ID: StatusDevelopment, Label: "Development", Color: "hsl(220, 90%, 56%)"},
		{ID: StatusReview, Label: "Review", Color: "hsl(38, 92%, 50%)"},
		{ID: StatusCompleted, Label: "Completed", Color: "hsl(142, 71%, 45%)"},
	}
}
