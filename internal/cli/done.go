package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martalocci/taskdeck/internal/task"
)

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Toggle a task's completed flag",
	Long: `Toggle completion of a task by id or unique id prefix.

Toggling twice restores the original state.`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
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

	editor.Toggle(t.ID)

	state := "riaperto"
	if !t.Completed {
		state = "completato"
	}
	fmt.Printf("✓ Task \"%s\" %s\n", t.Title, state)
	return nil
}
