package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"wallpartners/internal/api"
	"wallpartners/internal/store"
)

// feedDataMsg carries a fetched (or cached) feed. cached marks data served
// from the local store while the network fetch failed.
type feedDataMsg struct {
	items  []api.Notification
	cached bool
	err    error
}

// FeedPage renders the notification feed. It shows the cached feed
// immediately when the backend is unreachable, and refreshes the cache on
// every successful fetch. Bodies are markdown, rendered with glamour.
type FeedPage struct {
	client   *api.Client
	cache    *store.Store
	viewport viewport.Model
	renderer *glamour.TermRenderer
	styles   Styles

	items   []api.Notification
	cached  bool
	loading bool
	errMsg  string
}

// NewFeedPage creates the feed page. cache may be nil; the page then works
// network-only.
func NewFeedPage(client *api.Client, cache *store.Store, styles Styles) FeedPage {
	vp := viewport.New(80, 20)
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	return FeedPage{
		client:   client,
		cache:    cache,
		viewport: vp,
		renderer: renderer,
		styles:   styles,
		loading:  true,
	}
}

// Init fetches the feed, falling back to the cache on failure.
func (m FeedPage) Init() tea.Cmd {
	client := m.client
	cache := m.cache
	return func() tea.Msg {
		items, err := client.ListNotifications(context.Background())
		if err == nil {
			if cache != nil {
				_ = cache.CacheNotifications(items)
			}
			return feedDataMsg{items: items}
		}
		if cache != nil {
			if cachedItems, cacheErr := cache.CachedNotifications(); cacheErr == nil && len(cachedItems) > 0 {
				return feedDataMsg{items: cachedItems, cached: true, err: err}
			}
		}
		return feedDataMsg{err: err}
	}
}

// SetSize updates the viewport dimensions.
func (m *FeedPage) SetSize(w, h int) {
	m.viewport.Width = w
	m.viewport.Height = h - 3
	m.refresh()
}

// Update handles the fetch result and scrolling.
func (m FeedPage) Update(msg tea.Msg) (FeedPage, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case feedDataMsg:
		m.loading = false
		m.items = msg.items
		m.cached = msg.cached
		if msg.err != nil && len(msg.items) == 0 {
			m.errMsg = api.UserMessage(msg.err)
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

func (m *FeedPage) refresh() {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Notifications"))
	sb.WriteString("\n")

	switch {
	case m.loading:
		sb.WriteString(m.styles.Muted.Render("Loading..."))
	case m.errMsg != "":
		sb.WriteString(m.styles.Error.Render(m.errMsg))
	case len(m.items) == 0:
		sb.WriteString(m.styles.Muted.Render("Nothing here yet."))
	default:
		if m.cached {
			sb.WriteString(m.styles.Warning.Render("Offline — showing cached feed"))
			sb.WriteString("\n\n")
		}
		for _, n := range m.items {
			marker := "●"
			if n.Read {
				marker = "○"
			}
			sb.WriteString(fmt.Sprintf("%s %s  %s\n",
				marker,
				m.styles.Label.Render(n.Title),
				m.styles.Muted.Render(n.CreatedAt.Format("Jan 02 15:04"))))
			sb.WriteString(m.renderBody(n.Body))
			sb.WriteString("\n")
		}
	}

	m.viewport.SetContent(sb.String())
}

func (m *FeedPage) renderBody(body string) string {
	if m.renderer == nil || body == "" {
		return body + "\n"
	}
	rendered, err := m.renderer.Render(body)
	if err != nil {
		return body + "\n"
	}
	return rendered
}

// View renders the page.
func (m FeedPage) View() string {
	return m.viewport.View() + "\n" + m.styles.Footer.Render("q quit · ↑/↓ scroll")
}
