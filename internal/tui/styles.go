package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/martalocci/taskdeck/internal/config"
	"github.com/martalocci/taskdeck/internal/model"
)

// Category colors, shared by both themes.
var (
	ColorWork     = lipgloss.Color("#4ECDC4") // teal
	ColorPersonal = lipgloss.Color("#95E1A3") // green
	ColorUrgent   = lipgloss.Color("#FF6B6B") // red
)

// Theme is the palette-dependent style set.
type Theme struct {
	Name string

	Primary   lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	Surface   lipgloss.Color
	Border    lipgloss.Color
	Error     lipgloss.Color

	Header       lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	TaskItem     lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDone     lipgloss.Style
	Modal        lipgloss.Style
	StatusBar    lipgloss.Style
	Help         lipgloss.Style
	ErrorText    lipgloss.Style
	DayCell      lipgloss.Style
	DayToday     lipgloss.Style
}

// NewTheme builds the style set for the given theme name.
func NewTheme(name string) Theme {
	t := Theme{Name: name}

	switch name {
	case config.ThemeLight:
		t.Primary = lipgloss.Color("#0B7285")
		t.Text = lipgloss.Color("#212529")
		t.TextMuted = lipgloss.Color("#868E96")
		t.Surface = lipgloss.Color("#E9ECEF")
		t.Border = lipgloss.Color("#CED4DA")
		t.Error = lipgloss.Color("#C92A2A")
	default:
		t.Name = config.ThemeDark
		t.Primary = lipgloss.Color("#4ECDC4")
		t.Text = lipgloss.Color("#FFFFFF")
		t.TextMuted = lipgloss.Color("#888888")
		t.Surface = lipgloss.Color("#16213e")
		t.Border = lipgloss.Color("#333333")
		t.Error = lipgloss.Color("#FF6B6B")
	}

	t.Header = lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1)
	t.TabActive = lipgloss.NewStyle().Bold(true).Foreground(t.Primary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.Primary).Padding(0, 2)
	t.TabInactive = lipgloss.NewStyle().Foreground(t.TextMuted).Padding(0, 2)
	t.TaskItem = lipgloss.NewStyle().Padding(0, 1)
	t.TaskSelected = lipgloss.NewStyle().Padding(0, 1).Background(t.Surface).Bold(true)
	t.TaskDone = lipgloss.NewStyle().Foreground(t.TextMuted).Strikethrough(true).Padding(0, 1)
	t.Modal = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).Padding(1, 2)
	t.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Padding(0, 1).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(t.Border)
	t.Help = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.ErrorText = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	t.DayCell = lipgloss.NewStyle().Padding(0, 1)
	t.DayToday = lipgloss.NewStyle().Padding(0, 1).Bold(true).
		Foreground(t.Primary).Background(t.Surface)

	return t
}

// CategoryStyle returns the color style for a task category badge.
func (t Theme) CategoryStyle(c model.Category) lipgloss.Style {
	switch c {
	case model.CategoryPersonal:
		return lipgloss.NewStyle().Foreground(ColorPersonal)
	case model.CategoryUrgent:
		return lipgloss.NewStyle().Foreground(ColorUrgent).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorWork)
	}
}
