package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Flags for login.
var (
	loginEmail    string
	loginPassword string
	loginCode     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the admin console",
	Long: `Sign in with your admin email and password.

The password is prompted interactively unless --password is given.
If your account requires two-factor authentication, run login again
with --code once you receive the verification code.

Examples:
  lawadmin login --email admin@lawafrica.com
  lawadmin login --email admin@lawafrica.com --code 123456`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE:  runLogout,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session state",
	RunE:  runStatus,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Admin account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (prompted if omitted)")
	loginCmd.Flags().StringVar(&loginCode, "code", "", "Two-factor verification code")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	email := loginEmail
	if email == "" {
		cmd.Print("Email: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading email: %w", err)
		}
		email = strings.TrimSpace(line)
	}

	// A code means the password step already succeeded.
	if loginCode != "" {
		if err := sessionService.ConfirmTwoFactor(cmd.Context(), email, loginCode); err != nil {
			return err
		}
		cmd.Println("Two-factor login complete.")
		return nil
	}

	password := loginPassword
	if password == "" {
		cmd.Print("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = string(raw)
	}

	if err := sessionService.Login(cmd.Context(), email, password); err != nil {
		return err
	}
	cmd.Printf("Signed in as %s\n", email)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	if err := sessionService.Logout(); err != nil {
		return err
	}
	cmd.Println("Signed out.")
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	token := sessionService.Status()
	switch {
	case token == nil:
		cmd.Println("Not signed in.")
	case token.IsExpired():
		cmd.Printf("Session expired at %s. Run 'lawadmin login' to sign in again.\n",
			token.Expiry.Local().Format(time.RFC1123))
	case token.Expiry.IsZero():
		cmd.Println("Signed in (session does not expire).")
	default:
		cmd.Printf("Signed in, session valid until %s.\n",
			token.Expiry.Local().Format(time.RFC1123))
	}
	return nil
}
