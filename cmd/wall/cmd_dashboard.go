package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wallpartners/cmd/wall/ui"
)

// dashboardCmd shows the reach and earnings dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your reach metrics and earnings",
	RunE:  runDashboard,
}

// earningsCmd prints the earnings summary without the TUI, for scripts.
var earningsCmd = &cobra.Command{
	Use:   "earnings",
	Short: "Print your balance and payout history",
	RunE:  runEarnings,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if _, ok := a.creds.Token(); !ok {
		return fmt.Errorf("not signed in; run 'wall login' first")
	}

	styles := ui.NewStyles(ui.ThemeByName(a.cfg.Theme))
	page := ui.NewDashboardPage(a.client, styles)

	p := tea.NewProgram(dashboardProgram{page: page}, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runEarnings(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	earnings, err := a.client.GetEarnings(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Balance:     %.2f %s\n", earnings.Balance, earnings.Currency)
	if !earnings.NextPayout.IsZero() {
		fmt.Printf("Next payout: %s\n", earnings.NextPayout.Format("Jan 02, 2006"))
	}
	if len(earnings.Payouts) > 0 {
		fmt.Println("\nPayouts:")
		for _, p := range earnings.Payouts {
			fmt.Printf("  %s  %10.2f %s  %s\n",
				p.Date.Format("2006-01-02"), p.Amount, p.Currency, p.Status)
		}
	}
	return nil
}

type dashboardProgram struct {
	page ui.DashboardPage
}

func (d dashboardProgram) Init() tea.Cmd {
	return d.page.Init()
}

func (d dashboardProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, cmd := d.page.Update(msg)
	d.page = page
	return d, cmd
}

func (d dashboardProgram) View() string {
	return d.page.View()
}
