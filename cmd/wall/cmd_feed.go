package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wallpartners/cmd/wall/ui"
	"wallpartners/internal/store"
)

// feedCmd shows the notification feed.
var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show your notification feed",
	Long: `Show notifications from the platform: review decisions, tips, and
announcements. The last fetched feed is cached locally and shown when
the backend is unreachable.`,
	RunE: runFeed,
}

func runFeed(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if _, ok := a.creds.Token(); !ok {
		return fmt.Errorf("not signed in; run 'wall login' first")
	}

	cache, err := store.Open(filepath.Join(a.dir, "cache.db"))
	if err != nil {
		cache = nil // network-only mode
	} else {
		defer cache.Close()
	}

	styles := ui.NewStyles(ui.ThemeByName(a.cfg.Theme))
	page := ui.NewFeedPage(a.client, cache, styles)

	p := tea.NewProgram(feedProgram{page: page}, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type feedProgram struct {
	page ui.FeedPage
}

func (f feedProgram) Init() tea.Cmd {
	return f.page.Init()
}

func (f feedProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, cmd := f.page.Update(msg)
	f.page = page
	return f, cmd
}

func (f feedProgram) View() string {
	return f.page.View()
}
