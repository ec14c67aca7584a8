package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wallpartners/cmd/wall/ui"
)

// collectionsCmd lists collections and hosts the upload wizard.
var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Browse your collections and submit images",
	Long: `Browse your collections by review status (created, pending,
discarded) and submit new images. Press 'u' in the list to start the
upload wizard: pick an image, choose or create a collection, add
details, submit.`,
	RunE: runCollections,
}

func runCollections(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if _, ok := a.creds.Token(); !ok {
		return fmt.Errorf("not signed in; run 'wall login' first")
	}

	styles := ui.NewStyles(ui.ThemeByName(a.cfg.Theme))
	page := ui.NewCollectionsPage(a.client, styles)

	p := tea.NewProgram(collectionsProgram{page: page}, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type collectionsProgram struct {
	page ui.CollectionsPage
}

func (c collectionsProgram) Init() tea.Cmd {
	return c.page.Init()
}

func (c collectionsProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, cmd := c.page.Update(msg)
	c.page = page
	return c, cmd
}

func (c collectionsProgram) View() string {
	return c.page.View()
}
