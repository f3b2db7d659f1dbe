package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/martalocci/taskdeck/internal/model"
	"github.com/martalocci/taskdeck/internal/task"
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a task's title, date or category",
	Long: `Edit a task by id or unique id prefix. Only the provided flags
change; completion state is never touched by an edit.

Examples:
  taskdeck edit 3f2a --title "Nuovo titolo"
  taskdeck edit 3f2a --date 2026-10-01 --category Personal`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle    string
	editDate     string
	editCategory string
)

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editDate, "date", "d", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category (Work, Personal, Urgent)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	session, err := requireSession()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	editor := task.NewEditor(task.NewRepository(st), session.Username)

	t, err := task.ResolvePrefix(editor.Tasks(), args[0])
	if err != nil {
		return err
	}

	if editDate != "" {
		if _, err := time.Parse(model.DateFormat, editDate); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", editDate)
		}
	}

	editor.BeginEdit(t.ID)
	if cmd.Flags().Changed("title") {
		editor.Form.Title = editTitle
	}
	if editDate != "" {
		editor.Form.Date = editDate
	}
	if editCategory != "" {
		editor.Form.Category = model.ParseCategory(editCategory)
	}

	if !editor.Submit() {
		fmt.Println("Nothing changed: title is blank.")
		return nil
	}

	fmt.Printf("✓ Task %s updated\n", shortID(t.ID))
	return nil
}
