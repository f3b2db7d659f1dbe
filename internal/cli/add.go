package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/martalocci/taskdeck/internal/model"
	"github.com/martalocci/taskdeck/internal/task"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task for the logged-in user.

Examples:
  taskdeck add "Comprare il latte"
  taskdeck add "Riunione di team" --date 2026-09-15 --category Urgent`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDate     string
	addCategory string
)

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Task date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "Work", "Category (Work, Personal, Urgent)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	session, err := requireSession()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	title := strings.Join(args, " ")

	date := addDate
	if date == "" {
		date = time.Now().Format(model.DateFormat)
	}
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	category := model.ParseCategory(addCategory)

	editor := task.NewEditor(task.NewRepository(st), session.Username)
	editor.Form.Title = title
	editor.Form.Date = date
	editor.Form.Category = category

	if !editor.Submit() {
		fmt.Println("Nothing to add: title is blank.")
		return nil
	}

	fmt.Printf("✓ Added \"%s\" (%s, %s)\n", strings.TrimSpace(title), date, category.Label())
	return nil
}
