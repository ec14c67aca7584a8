package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wallpartners/internal/session"
)

// statusCmd shows the session state and where the client points.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and backend status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	fmt.Println("Wall Is Well — Partners")
	fmt.Printf("Backend:  %s\n", a.cfg.BaseURL)

	token, ok := a.creds.Token()
	if !ok {
		fmt.Println("Session:  signed out — run 'wall login'")
		return nil
	}

	fmt.Println("Session:  signed in")
	if claims, err := session.InspectToken(token); err == nil {
		if claims.Email != "" {
			fmt.Printf("Account:  %s\n", claims.Email)
		} else if claims.Subject != "" {
			fmt.Printf("Account:  %s\n", claims.Subject)
		}
		if !claims.ExpiresAt.IsZero() {
			if time.Now().After(claims.ExpiresAt) {
				fmt.Printf("Expires:  %s (expired — the next request will sign you out)\n",
					claims.ExpiresAt.Format(time.RFC822))
			} else {
				fmt.Printf("Expires:  %s\n", claims.ExpiresAt.Format(time.RFC822))
			}
		}
	}
	return nil
}
