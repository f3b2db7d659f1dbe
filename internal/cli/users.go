package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martalocci/taskdeck/internal/auth"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List locally registered accounts",
	RunE:  runUsers,
}

func runUsers(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	users := auth.NewService(st).Users()
	if len(users) == 0 {
		fmt.Println("No registered accounts. The demo accounts are always available.")
		return nil
	}

	for _, u := range users {
		fmt.Printf("%-16s %-14s %s\n", u.Username, u.Role, u.CreatedAt.Local().Format("2006-01-02"))
	}
	return nil
}
