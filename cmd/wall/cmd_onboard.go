package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wallpartners/cmd/wall/ui"
	"wallpartners/internal/onboarding"
	"wallpartners/internal/store"
)

// onboardCmd runs the onboarding wizard.
var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Complete the partner onboarding and KYC wizard",
	Long: `Walk through the four onboarding steps: who you are, your work,
how you found us, and your payout (KYC) details. Your answers are saved
locally as a draft between sessions until the profile is submitted.

Requires a session; run 'wall login' first.`,
	RunE: runOnboard,
}

func runOnboard(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if _, ok := a.creds.Token(); !ok {
		return fmt.Errorf("not signed in; run 'wall login' first")
	}

	machine := onboarding.NewMachine(a.client, logger)

	cache, err := store.Open(filepath.Join(a.dir, "cache.db"))
	if err != nil {
		// Drafts are a convenience; the wizard works without them.
		logger.Warn("draft store unavailable", zap.Error(err))
	} else {
		defer cache.Close()
		machine.AttachDrafts(cache)
	}

	navigated := false
	machine.SetNavigator(func() { navigated = true })

	styles := ui.NewStyles(ui.ThemeByName(a.cfg.Theme))
	page := ui.NewWizardPage(machine, styles)

	p := tea.NewProgram(wizardProgram{page: page}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if navigated {
		// The approved screen's exit action leads into the dashboard.
		return runDashboard(cmd, args)
	}
	return nil
}

// wizardProgram adapts the wizard page to the tea.Model interface.
type wizardProgram struct {
	page ui.WizardPage
}

func (w wizardProgram) Init() tea.Cmd {
	return w.page.Init()
}

func (w wizardProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, cmd := w.page.Update(msg)
	w.page = page
	return w, cmd
}

func (w wizardProgram) View() string {
	return w.page.View()
}
