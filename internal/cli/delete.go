package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/martalocci/taskdeck/internal/config"
	"github.com/martalocci/taskdeck/internal/task"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	if cfg.ConfirmDelete && !deleteForce {
		fmt.Printf("Delete \"%s\"? [y/N]: ", t.Title)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	editor.Delete(t.ID)
	fmt.Printf("✓ Task \"%s\" deleted\n", t.Title)
	return nil
}
