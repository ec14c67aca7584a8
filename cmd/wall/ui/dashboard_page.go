package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"wallpartners/internal/api"
)

// dashboardDataMsg carries the result of the parallel dashboard fetch.
type dashboardDataMsg struct {
	dashboard *api.Dashboard
	earnings  *api.Earnings
	err       error
}

// DashboardPage shows the partner's reach breakdown and earnings summary.
// Both documents are fetched concurrently; the first failure wins.
type DashboardPage struct {
	client   *api.Client
	viewport viewport.Model
	styles   Styles

	dashboard *api.Dashboard
	earnings  *api.Earnings
	loading   bool
	errMsg    string
	width     int
	height    int
}

// NewDashboardPage creates the dashboard page.
func NewDashboardPage(client *api.Client, styles Styles) DashboardPage {
	vp := viewport.New(80, 20)
	return DashboardPage{
		client:   client,
		viewport: vp,
		styles:   styles,
		loading:  true,
	}
}

// Init kicks off the data fetch.
func (m DashboardPage) Init() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		var (
			dash *api.Dashboard
			earn *api.Earnings
		)
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			var err error
			dash, err = client.GetDashboard(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			earn, err = client.GetEarnings(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return dashboardDataMsg{err: err}
		}
		return dashboardDataMsg{dashboard: dash, earnings: earn}
	}
}

// SetSize updates the viewport dimensions.
func (m *DashboardPage) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 4
	m.refresh()
}

// Update handles fetch results, scrolling, and quit keys.
func (m DashboardPage) Update(msg tea.Msg) (DashboardPage, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case dashboardDataMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = api.UserMessage(msg.err)
		} else {
			m.dashboard = msg.dashboard
			m.earnings = msg.earnings
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the viewport content from the fetched data.
func (m *DashboardPage) refresh() {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Dashboard"))
	sb.WriteString("\n")

	switch {
	case m.loading:
		sb.WriteString(m.styles.Muted.Render("Loading..."))
	case m.errMsg != "":
		sb.WriteString(m.styles.Error.Render(m.errMsg))
	default:
		if m.dashboard != nil {
			sb.WriteString(m.styles.Label.Render(fmt.Sprintf("Total reach: %d", m.dashboard.TotalReach)))
			sb.WriteString("\n\n")
			for _, metric := range m.dashboard.Metrics {
				sb.WriteString(fmt.Sprintf("%-14s %s %5.1f%%\n",
					metric.Label, Bar(m.styles, metric.Percentage, 24), metric.Percentage))
			}
			sb.WriteString("\n")
		}
		if m.earnings != nil {
			card := fmt.Sprintf("Balance: %.2f %s\nNext payout: %s",
				m.earnings.Balance, m.earnings.Currency,
				m.earnings.NextPayout.Format("Jan 02"))
			sb.WriteString(m.styles.Card.Render(card))
			sb.WriteString("\n")
		}
	}

	m.viewport.SetContent(sb.String())
}

// View renders the page.
func (m DashboardPage) View() string {
	return m.viewport.View() + "\n" + m.styles.Footer.Render("q quit · ↑/↓ scroll")
}
