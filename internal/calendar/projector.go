// Package calendar projects a task list onto a month grid for display.
package calendar

import (
	"fmt"
	"time"

	"github.com/martalocci/taskdeck/internal/model"
)

// MaxLabels is the number of task labels shown per day cell; the rest are
// collapsed into an overflow count.
const MaxLabels = 3

// Italian month and weekday names, matching the display locale.
var (
	monthNames = [...]string{
		"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
		"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
	}
	// WeekdayNames are the Monday-first column headers.
	WeekdayNames = [...]string{"Lun", "Mar", "Mer", "Gio", "Ven", "Sab", "Dom"}
)

// Cell is one grid position: either a leading placeholder before day 1, or
// a calendar day with the tasks dated on it.
type Cell struct {
	Day   int    // 1..31, or 0 for a placeholder
	Date  string // YYYY-MM-DD, empty for placeholders
	Tasks []model.Task
	Today bool
}

// Empty reports whether the cell is a leading placeholder.
func (c Cell) Empty() bool { return c.Day == 0 }

// VisibleTasks returns at most MaxLabels tasks for display.
func (c Cell) VisibleTasks() []model.Task {
	if len(c.Tasks) <= MaxLabels {
		return c.Tasks
	}
	return c.Tasks[:MaxLabels]
}

// MoreCount returns how many tasks are hidden behind the overflow label.
func (c Cell) MoreCount() int {
	if len(c.Tasks) <= MaxLabels {
		return 0
	}
	return len(c.Tasks) - MaxLabels
}

// MoreLabel returns the localized overflow label, e.g. "+2 altro", or ""
// when nothing is hidden.
func (c Cell) MoreLabel() string {
	if n := c.MoreCount(); n > 0 {
		return fmt.Sprintf("+%d altro", n)
	}
	return ""
}

// Grid is the month projection: leading placeholders followed by one cell
// per calendar day, in a Monday-first week.
type Grid struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// Title returns the localized month heading, e.g. "marzo 2024".
func (g Grid) Title() string {
	return fmt.Sprintf("%s %d", monthNames[g.Month-1], g.Year)
}

// Project builds the month grid for the given task list. today controls the
// today marker and is injected so the projection stays a pure function.
func Project(tasks []model.Task, year int, month time.Month, today time.Time) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// Monday-first: Sunday (0) moves to the last column.
	lead := int(first.Weekday())
	if lead == 0 {
		lead = 6
	} else {
		lead--
	}

	todayStr := today.Format(model.DateFormat)

	cells := make([]Cell, 0, lead+daysInMonth)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), d)
		cell := Cell{Day: d, Date: date, Today: date == todayStr}
		for _, t := range tasks {
			if t.Date == date {
				cell.Tasks = append(cell.Tasks, t)
			}
		}
		cells = append(cells, cell)
	}

	return Grid{Year: year, Month: month, Cells: cells}
}

// Prev returns the month before (year, month), wrapping year boundaries.
func Prev(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// Next returns the month after (year, month), wrapping year boundaries.
func Next(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}
