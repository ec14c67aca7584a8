package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wallpartners/cmd/wall/config"
)

// configCmd shows the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change client configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, _ := config.File()
		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("base_url:        %s\n", cfg.BaseURL)
		fmt.Printf("environment:     %s\n", cfg.Environment)
		fmt.Printf("theme:           %s\n", cfg.Theme)
		fmt.Printf("timeout_seconds: %d\n", cfg.TimeoutSeconds)
		fmt.Printf("debug:           %t\n", cfg.Debug)
		return nil
	},
}

// configSetCmd writes one setting.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Keys: base_url, environment, theme,
timeout_seconds, debug.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "base_url":
			cfg.BaseURL = value
		case "environment":
			cfg.Environment = value
		case "theme":
			if value != "light" && value != "dark" {
				return fmt.Errorf("theme must be light or dark")
			}
			cfg.Theme = value
		case "timeout_seconds":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("timeout_seconds must be a positive integer")
			}
			cfg.TimeoutSeconds = n
		case "debug":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("debug must be true or false")
			}
			cfg.Debug = b
		default:
			return fmt.Errorf("unknown key %q", key)
		}

		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("✓ %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}
