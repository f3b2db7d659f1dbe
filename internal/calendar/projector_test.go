package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martalocci/taskdeck/internal/model"
)

func TestProjectMarch2024Layout(t *testing.T) {
	// March 2024 has 31 days and starts on a Friday: four leading
	// placeholders under a Monday-first week.
	grid := Project(nil, 2024, time.March, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))

	require.Len(t, grid.Cells, 4+31)
	for i := 0; i < 4; i++ {
		assert.True(t, grid.Cells[i].Empty(), "cell %d should be a placeholder", i)
	}
	assert.Equal(t, 1, grid.Cells[4].Day)
	assert.Equal(t, "2024-03-01", grid.Cells[4].Date)
	assert.Equal(t, 31, grid.Cells[len(grid.Cells)-1].Day)
	assert.Equal(t, "marzo 2024", grid.Title())
}

func TestProjectLeadingCells(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		lead  int
		days  int
	}{
		{"starts Monday", 2024, time.January, 0, 31},             // Jan 1 2024 is a Monday
		{"starts Sunday", 2024, time.September, 6, 30},           // Sep 1 2024 is a Sunday
		{"february leap", 2024, time.February, 3, 29},            // Feb 1 2024 is a Thursday
		{"february non-leap", 2026, time.February, 6, 28},        // Feb 1 2026 is a Sunday
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := Project(nil, tt.year, tt.month, time.Time{})
			require.Len(t, grid.Cells, tt.lead+tt.days)
			for i := 0; i < tt.lead; i++ {
				assert.True(t, grid.Cells[i].Empty())
			}
			assert.Equal(t, 1, grid.Cells[tt.lead].Day)
		})
	}
}

func TestProjectBucketsTasksByExactDay(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Title: "uno", Date: "2024-03-05", Owner: "alice"},
		{ID: "2", Title: "due", Date: "2024-03-05", Owner: "alice"},
		{ID: "3", Title: "tre", Date: "2024-03-06", Owner: "alice"},
		{ID: "4", Title: "altro mese", Date: "2024-04-05", Owner: "alice"},
	}

	grid := Project(tasks, 2024, time.March, time.Time{})

	day5 := grid.Cells[4+4] // 4 leading + days 1..4
	require.Equal(t, 5, day5.Day)
	assert.Len(t, day5.Tasks, 2)

	day6 := grid.Cells[4+5]
	require.Equal(t, 6, day6.Day)
	assert.Len(t, day6.Tasks, 1)

	for _, c := range grid.Cells {
		for _, task := range c.Tasks {
			assert.NotEqual(t, "4", task.ID, "tasks from another month never appear")
		}
	}
}

func TestProjectOverflowLabel(t *testing.T) {
	tasks := make([]model.Task, 5)
	for i := range tasks {
		tasks[i] = model.Task{ID: string(rune('a' + i)), Title: "t", Date: "2024-03-10"}
	}

	grid := Project(tasks, 2024, time.March, time.Time{})

	day10 := grid.Cells[4+9]
	require.Equal(t, 10, day10.Day)
	assert.Len(t, day10.Tasks, 5)
	assert.Len(t, day10.VisibleTasks(), 3)
	assert.Equal(t, 2, day10.MoreCount())
	assert.Equal(t, "+2 altro", day10.MoreLabel())

	day11 := grid.Cells[4+10]
	assert.Empty(t, day11.MoreLabel())
}

func TestProjectTodayMarker(t *testing.T) {
	today := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)

	grid := Project(nil, 2024, time.March, today)
	for _, c := range grid.Cells {
		assert.Equal(t, c.Day == 15, c.Today)
	}

	// Today outside the displayed month: no marker anywhere.
	grid = Project(nil, 2024, time.April, today)
	for _, c := range grid.Cells {
		assert.False(t, c.Today)
	}
}

func TestMonthNavigationWrapsYears(t *testing.T) {
	y, mo := Prev(2024, time.January)
	assert.Equal(t, 2023, y)
	assert.Equal(t, time.December, mo)

	y, mo = Next(2024, time.December)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.January, mo)

	y, mo = Next(2024, time.March)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.April, mo)

	// A full round trip is the identity.
	y, mo = Prev(Next(2026, time.August))
	assert.Equal(t, 2026, y)
	assert.Equal(t, time.August, mo)
}
