package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wallpartners/internal/api"
)

type (
	profileLoadedMsg struct {
		profile *api.Profile
		err     error
	}
	profileSavedMsg struct {
		profile *api.Profile
		err     error
	}
)

// ProfilePage shows the partner profile and supports in-place editing.
// Saving with a local avatar path switches the request to multipart with
// the image attached.
type ProfilePage struct {
	client  *api.Client
	styles  Styles
	spinner spinner.Model

	profile *api.Profile
	editing bool
	saving  bool
	loading bool
	errMsg  string
	saved   bool

	inputs []textinput.Model // name, bio, location, portfolio, avatar path
	focus  int
}

var profileLabels = []string{"Full name", "Bio", "Location", "Portfolio", "Avatar (local path to replace)"}

// NewProfilePage creates the profile page.
func NewProfilePage(client *api.Client, styles Styles) ProfilePage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	inputs := make([]textinput.Model, len(profileLabels))
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 48
		inputs[i] = ti
	}

	return ProfilePage{
		client:  client,
		styles:  styles,
		spinner: sp,
		loading: true,
		inputs:  inputs,
	}
}

// Init fetches the profile.
func (m ProfilePage) Init() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		p, err := client.GetProfile(context.Background())
		return profileLoadedMsg{profile: p, err: err}
	}
}

// SetSize is a no-op; the page renders within whatever space it gets.
func (m *ProfilePage) SetSize(w, h int) {}

// Update handles load/save results and edit-mode keys.
func (m ProfilePage) Update(msg tea.Msg) (ProfilePage, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = api.UserMessage(msg.err)
			return m, nil
		}
		m.profile = msg.profile
		m.fillInputs()
		return m, nil

	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = api.UserMessage(msg.err)
			return m, nil
		}
		m.profile = msg.profile
		m.editing = false
		m.saved = true
		m.errMsg = ""
		m.fillInputs()
		return m, nil

	case spinner.TickMsg:
		if !m.saving && !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *ProfilePage) fillInputs() {
	if m.profile == nil {
		return
	}
	m.inputs[0].SetValue(m.profile.FullName)
	m.inputs[1].SetValue(m.profile.Bio)
	m.inputs[2].SetValue(m.profile.Location)
	m.inputs[3].SetValue(m.profile.Portfolio)
	m.inputs[4].SetValue("")
}

func (m ProfilePage) updateKey(key tea.KeyMsg) (ProfilePage, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.editing {
		switch key.String() {
		case "q", "esc":
			return m, tea.Quit
		case "e":
			if m.profile != nil {
				m.editing = true
				m.saved = false
				m.focus = 0
				m.focusInputs()
			}
		}
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.editing = false
		m.fillInputs()
		return m, nil
	case "tab", "down":
		if m.focus < len(m.inputs)-1 {
			m.focus++
			m.focusInputs()
		}
		return m, nil
	case "shift+tab", "up":
		if m.focus > 0 {
			m.focus--
			m.focusInputs()
		}
		return m, nil
	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.focus++
			m.focusInputs()
			return m, nil
		}
		if m.saving {
			return m, nil
		}
		m.saving = true
		m.errMsg = ""
		client := m.client
		profile := api.Profile{
			FullName:  strings.TrimSpace(m.inputs[0].Value()),
			Bio:       strings.TrimSpace(m.inputs[1].Value()),
			Location:  strings.TrimSpace(m.inputs[2].Value()),
			Portfolio: strings.TrimSpace(m.inputs[3].Value()),
		}
		avatarPath := strings.TrimSpace(m.inputs[4].Value())
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			p, err := client.UpdateProfile(context.Background(), profile, avatarPath)
			return profileSavedMsg{profile: p, err: err}
		})
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(key)
	return m, cmd
}

func (m *ProfilePage) focusInputs() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// View renders view or edit mode.
func (m ProfilePage) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Profile"))
	sb.WriteString("\n")

	switch {
	case m.loading:
		sb.WriteString(m.spinner.View() + " Loading...")
	case m.profile == nil:
		sb.WriteString(m.styles.Error.Render(m.errMsg))
	case m.editing:
		for i, label := range profileLabels {
			sb.WriteString(m.styles.Label.Render(label))
			sb.WriteString("\n")
			sb.WriteString(m.inputs[i].View())
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		if m.saving {
			sb.WriteString(m.spinner.View() + " Saving...")
			sb.WriteString("\n")
		}
		sb.WriteString(m.styles.Footer.Render("enter save · tab fields · esc cancel"))
	default:
		card := strings.Join([]string{
			m.styles.Label.Render(m.profile.FullName),
			m.profile.Bio,
			m.styles.Muted.Render(m.profile.Location),
			m.styles.Muted.Render(m.profile.Portfolio),
		}, "\n")
		sb.WriteString(m.styles.Card.Render(card))
		sb.WriteString("\n")
		if m.saved {
			sb.WriteString(m.styles.Success.Render("✓ Profile saved"))
			sb.WriteString("\n")
		}
		sb.WriteString(m.styles.Footer.Render("e edit · q quit"))
	}

	if m.errMsg != "" && m.profile != nil {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render(m.errMsg))
	}
	return m.styles.Content.Render(sb.String())
}
