package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var idTokenFlag string

// loginCmd exchanges an external identity token for a backend session.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in by exchanging an identity token for a session",
	Long: `Exchange a Google/Firebase identity token for a Wall Is Well session.

The identity token comes from your identity provider (for example the
Firebase CLI or your browser's dev tools during a web sign-in). Pass it
with --id-token or pipe it on stdin:

  wall login --id-token eyJhbGciOi...
  firebase-token-helper | wall login`,
	RunE: runLogin,
}

// logoutCmd discards the stored session credential.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and delete the stored session credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.client.Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&idTokenFlag, "id-token", "", "identity provider token to exchange")
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	idToken := strings.TrimSpace(idTokenFlag)
	if idToken == "" {
		// Fall back to stdin so tokens never end up in shell history.
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)
		if scanner.Scan() {
			idToken = strings.TrimSpace(scanner.Text())
		}
	}
	if idToken == "" {
		return fmt.Errorf("no identity token provided; use --id-token or pipe it on stdin")
	}

	if _, err := a.client.ExchangeIdentityToken(cmd.Context(), idToken); err != nil {
		logger.Warn("login failed", zap.Error(err))
		return err
	}

	fmt.Println("✓ Signed in. Run 'wall onboard' if you haven't completed onboarding yet.")
	return nil
}
