package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// Theme names accepted by Apply.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Apply forces the dark or light half of the adaptive colors. "auto" and
// the empty string leave terminal detection in charge.
func Apply(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ThemeAuto:
	case ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	default:
		return fmt.Errorf("unknown theme %q, want auto, dark or light", name)
	}
	return nil
}

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// ErrorStyle renders the last failure in the status bar.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// TimerStyle highlights the running timer in the header.
var TimerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorGreen)

// CardStyle wraps a task card on the board.
var CardStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// SelectedCardStyle highlights the card under the cursor.
var SelectedCardStyle = CardStyle.
	BorderForeground(ColorBlue)

// TimingCardStyle marks the card whose timer is running.
var TimingCardStyle = CardStyle.
	BorderForeground(ColorGreen)

// TagStyle renders a single tag chip.
var TagStyle = lipgloss.NewStyle().
	Foreground(ColorMagenta)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// MutedStyle is used for secondary text such as card footers.
var MutedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// PanelStyle wraps overlay panels such as the help view and command palette.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// BorderStyle provides a standard rounded border for panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// PriorityStyle returns a color-coded style for the given priority.
func PriorityStyle(priority string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch priority {
	case "critical":
		return base.Foreground(ColorRed)
	case "high":
		return base.Foreground(ColorOrange)
	case "medium":
		return base.Foreground(ColorYellow)
	case "low":
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}

var hslPattern = regexp.MustCompile(`^hsl\(\s*([\d.]+)\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%\s*\)$`)

// ParseColor converts a CSS-style column color, either "hsl(h, s%, l%)" or
// a hex string, to a hex string lipgloss can render.
func ParseColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if m := hslPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		sat, _ := strconv.ParseFloat(m[2], 64)
		light, _ := strconv.ParseFloat(m[3], 64)
		return colorful.Hsl(h, sat/100, light/100).Clamped().Hex(), nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("parsing color %q: %w", s, err)
	}
	return c.Hex(), nil
}

// ColumnStyle returns the heading style for a column. Unparseable colors
// fall back to gray.
func ColumnStyle(color string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	hex, err := ParseColor(color)
	if err != nil {
		return base.Foreground(ColorGray)
	}
	return base.Foreground(lipgloss.Color(hex))
}

// BarStyle returns the fill style of a Gantt bar in the task's column color.
func BarStyle(color string) lipgloss.Style {
	hex, err := ParseColor(color)
	if err != nil {
		return lipgloss.NewStyle().Foreground(ColorBlue)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
