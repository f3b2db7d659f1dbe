package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/martalocci/taskdeck/internal/calendar"
	"github.com/martalocci/taskdeck/internal/task"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show the monthly calendar",
	Long: `Print the month grid with your tasks bucketed by day.

Examples:
  taskdeck calendar
  taskdeck calendar --month 2026-03`,
	RunE: runCalendar,
}

var calendarMonth string

func init() {
	calendarCmd.Flags().StringVarP(&calendarMonth, "month", "m", "", "Month to show (YYYY-MM, default current)")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	session, err := requireSession()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	now := time.Now()
	year, month := now.Year(), now.Month()
	if calendarMonth != "" {
		ref, err := time.Parse("2006-01", calendarMonth)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", calendarMonth)
		}
		year, month = ref.Year(), ref.Month()
	}

	tasks := task.NewRepository(st).LoadForOwner(session.Username)
	grid := calendar.Project(tasks, year, month, now)

	fmt.Println(grid.Title())
	for _, name := range calendar.WeekdayNames {
		fmt.Printf("%-5s", name)
	}
	fmt.Println()

	col := 0
	for _, cell := range grid.Cells {
		if cell.Empty() {
			fmt.Printf("%-5s", "")
		} else {
			day := fmt.Sprintf("%d", cell.Day)
			if len(cell.Tasks) > 0 {
				day += "*"
			}
			if cell.Today {
				day = "[" + day + "]"
			}
			fmt.Printf("%-5s", day)
		}
		col++
		if col == 7 {
			fmt.Println()
			col = 0
		}
	}
	if col != 0 {
		fmt.Println()
	}

	// Day detail below the grid
	for _, cell := range grid.Cells {
		if cell.Empty() || len(cell.Tasks) == 0 {
			continue
		}
		labels := make([]string, 0, calendar.MaxLabels+1)
		for _, t := range cell.VisibleTasks() {
			labels = append(labels, t.Title)
		}
		if more := cell.MoreLabel(); more != "" {
			labels = append(labels, more)
		}
		fmt.Printf("%s: %s\n", cell.Date, strings.Join(labels, ", "))
	}

	return nil
}
