package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wallpartners/cmd/wall/ui"
)

// profileCmd shows and edits the partner profile.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your partner profile",
	Long: `View your partner profile. Press 'e' to edit; filling the avatar
field with a local image path uploads a new avatar on save.`,
	RunE: runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if _, ok := a.creds.Token(); !ok {
		return fmt.Errorf("not signed in; run 'wall login' first")
	}

	styles := ui.NewStyles(ui.ThemeByName(a.cfg.Theme))
	page := ui.NewProfilePage(a.client, styles)

	p := tea.NewProgram(profileProgram{page: page}, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type profileProgram struct {
	page ui.ProfilePage
}

func (p profileProgram) Init() tea.Cmd {
	return p.page.Init()
}

func (p profileProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, cmd := p.page.Update(msg)
	p.page = page
	return p, cmd
}

func (p profileProgram) View() string {
	return p.page.View()
}
