package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martalocci/taskdeck/internal/task"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your tasks",
	RunE:    runList,
}

var listPending bool

func init() {
	listCmd.Flags().BoolVarP(&listPending, "pending", "p", false, "Hide completed tasks")
}

func runList(cmd *cobra.Command, args []string) error {
	session, err := requireSession()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	tasks := task.SortByDate(task.NewRepository(st).LoadForOwner(session.Username))

	shown := 0
	for _, t := range tasks {
		if listPending && t.Completed {
			continue
		}
		fmt.Printf("%s %s  %s  %-9s  %s\n",
			checkbox(t.Completed), shortID(t.ID), t.Date, t.Category.Label(), t.Title)
		shown++
	}

	if shown == 0 {
		fmt.Println("Nessun task per ora. Add one with: taskdeck add \"Your task\"")
	}
	return nil
}
