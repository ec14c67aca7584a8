// Package main is the Wall Is Well partners terminal client.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wallpartners/cmd/wall/config"
	"wallpartners/internal/api"
	"wallpartners/internal/logging"
	"wallpartners/internal/session"
)

var (
	// Global flags
	verbose bool
	baseURL string

	logger *zap.Logger
)

// app bundles everything a command needs: configuration, the credential
// store, and the backend gateway.
type app struct {
	cfg    config.Config
	dir    string
	creds  *session.Store
	client *api.Client
}

// newApp loads config and wires the gateway. Called by commands, not by
// the root PersistentPreRunE, so `wall config` works even before a home
// directory exists.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	creds, err := session.NewStore(dir)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(api.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout(),
	}, creds, logger)

	return &app{cfg: cfg, dir: dir, creds: creds, client: client}, nil
}

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "wall",
	Short: "Wall Is Well — partners terminal client",
	Long: `Terminal client for Wall Is Well photographer/creator partners.

Sign in with your identity token, complete the onboarding wizard, submit
images into collections, and keep an eye on your reach, earnings, and
notifications — all without leaving the terminal.

Run 'wall login' first, then 'wall onboard'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		logger, err = logging.New(dir, verbose || cfg.Debug)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the backend base URL")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(earningsCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(collectionsCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
