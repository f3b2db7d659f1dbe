package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/martalocci/taskdeck/internal/auth"
	"github.com/martalocci/taskdeck/internal/model"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with a demo or registered account",
	Long: `Log in with one of the built-in demo accounts or a locally
registered account.

Demo credentials:
  admin / admin123   (Administrator)
  user  / user123    (User)
  demo  / demo       (Guest)`,
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new local account",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the current session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	RunE:  runWhoami,
}

var registerRole string

func init() {
	registerCmd.Flags().StringVar(&registerRole, "role", model.RoleUser, "Account role (User, Editor, Guest)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	fmt.Print("Password: ")
	passwordBytes, _ := term.ReadPassword(int(syscall.Stdin))
	password := string(passwordBytes)
	fmt.Println()

	user, err := auth.NewService(st).Login(username, password)
	if err != nil {
		return err
	}

	if err := auth.SaveSession(user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("✅ Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	fmt.Print("Password: ")
	passwordBytes, _ := term.ReadPassword(int(syscall.Stdin))
	password := string(passwordBytes)
	fmt.Println()

	fmt.Print("Confirm Password: ")
	confirmBytes, _ := term.ReadPassword(int(syscall.Stdin))
	confirm := string(confirmBytes)
	fmt.Println()

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	user, err := auth.NewService(st).Register(username, password, registerRole)
	if err != nil {
		return err
	}

	if err := auth.SaveSession(user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("✅ Account created, logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	s := auth.LoadSession()
	if !s.Active() {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := auth.ClearSession(); err != nil {
		return err
	}

	fmt.Println("✅ Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	s := auth.LoadSession()
	if !s.Active() {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("%s (%s), logged in %s\n",
		s.Username, s.Role, s.LoggedInAt.Local().Format("2006-01-02 15:04"))
	return nil
}
