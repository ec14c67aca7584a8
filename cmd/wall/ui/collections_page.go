package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wallpartners/internal/api"
)

// uploadView is the collections screen's view state. Like the onboarding
// wizard it is a small linear machine: list -> image -> collection
// [-> newName] -> details -> success, with esc stepping back.
type uploadView int

const (
	viewList uploadView = iota
	viewImage
	viewCollection
	viewNewName
	viewDetails
	viewSuccess
)

type (
	collectionsLoadedMsg struct {
		items []api.Collection
		err   error
	}
	uploadDoneMsg struct{ err error }
)

// CollectionsPage lists the partner's collections by review status and
// hosts the image upload wizard. At most one upload is in flight; the
// confirm action is ignored while one is outstanding.
type CollectionsPage struct {
	client  *api.Client
	styles  Styles
	spinner spinner.Model

	view    uploadView
	tab     api.CollectionStatus
	items   []api.Collection
	cursor  int
	loading bool
	errMsg  string

	// upload wizard state
	imageInput   textinput.Model
	nameInput    textinput.Model
	titleInput   textinput.Model
	descInput    textinput.Model
	tagsInput    textinput.Model
	detailsFocus int
	request      api.UploadRequest
	uploading    bool
}

// NewCollectionsPage creates the collections page on the CREATED tab.
func NewCollectionsPage(client *api.Client, styles Styles) CollectionsPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 256
		ti.Width = 48
		return ti
	}

	return CollectionsPage{
		client:     client,
		styles:     styles,
		spinner:    sp,
		tab:        api.CollectionCreated,
		loading:    true,
		imageInput: newInput("Path to image file..."),
		nameInput:  newInput("New collection name..."),
		titleInput: newInput("Title..."),
		descInput:  newInput("Description..."),
		tagsInput:  newInput("Tags, comma separated..."),
	}
}

// Init loads the current tab.
func (m CollectionsPage) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CollectionsPage) loadCmd() tea.Cmd {
	client := m.client
	tab := m.tab
	return func() tea.Msg {
		items, err := client.ListCollections(context.Background(), tab)
		return collectionsLoadedMsg{items: items, err: err}
	}
}

// SetSize is a no-op; the page renders within whatever space it gets.
func (m *CollectionsPage) SetSize(w, h int) {}

// Update drives the view-state machine.
func (m CollectionsPage) Update(msg tea.Msg) (CollectionsPage, tea.Cmd) {
	switch msg := msg.(type) {
	case collectionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = api.UserMessage(msg.err)
		} else {
			m.errMsg = ""
			m.items = msg.items
			if m.cursor >= len(m.items) {
				m.cursor = 0
			}
		}
		return m, nil

	case uploadDoneMsg:
		m.uploading = false
		if msg.err != nil {
			m.errMsg = api.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.view = viewSuccess
		return m, nil

	case spinner.TickMsg:
		if !m.uploading && !m.loading {
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

func (m CollectionsPage) updateKey(key tea.KeyMsg) (CollectionsPage, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case viewList:
		return m.updateList(key)
	case viewImage:
		cmd := m.handleTextState(key, &m.imageInput, func(value string) (uploadView, bool) {
			m.request.ImagePath = value
			return viewCollection, value != ""
		})
		return m, cmd
	case viewCollection:
		return m.updateCollectionSelect(key)
	case viewNewName:
		cmd := m.handleTextState(key, &m.nameInput, func(value string) (uploadView, bool) {
			m.request.CollectionName = value
			m.request.NewCollection = true
			return viewDetails, value != ""
		})
		return m, cmd
	case viewDetails:
		return m.updateDetails(key)
	case viewSuccess:
		switch key.String() {
		case "enter", "esc", "q":
			m.view = viewList
			m.loading = true
			return m, m.loadCmd()
		}
	}
	return m, nil
}

func (m CollectionsPage) updateList(key tea.KeyMsg) (CollectionsPage, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		m.tab = prevTab(m.tab)
		m.loading = true
		return m, m.loadCmd()
	case "right", "l":
		m.tab = nextTab(m.tab)
		m.loading = true
		return m, m.loadCmd()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "u":
		m.request = api.UploadRequest{}
		m.imageInput.SetValue("")
		m.imageInput.Focus()
		m.view = viewImage
		m.errMsg = ""
	}
	return m, nil
}

// handleTextState handles a single-input view: enter confirms and apply
// decides the next view, esc steps back to the list.
func (m *CollectionsPage) handleTextState(key tea.KeyMsg, input *textinput.Model, apply func(string) (uploadView, bool)) tea.Cmd {
	switch key.String() {
	case "esc":
		m.view = viewList
		return nil
	case "enter":
		next, ok := apply(strings.TrimSpace(input.Value()))
		if !ok {
			m.errMsg = "This field is required."
			return nil
		}
		m.errMsg = ""
		m.view = next
		switch next {
		case viewCollection:
			m.cursor = 0
		case viewDetails:
			m.detailsFocus = 0
			m.titleInput.Focus()
			m.descInput.Blur()
			m.tagsInput.Blur()
		}
		return nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(key)
	return cmd
}

func (m CollectionsPage) updateCollectionSelect(key tea.KeyMsg) (CollectionsPage, tea.Cmd) {
	// Options are the existing collections plus a trailing "new" entry.
	total := len(m.items) + 1
	switch key.String() {
	case "esc":
		m.view = viewImage
		m.imageInput.Focus()
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < total-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor == len(m.items) {
			m.nameInput.SetValue("")
			m.nameInput.Focus()
			m.view = viewNewName
			return m, nil
		}
		m.request.CollectionName = m.items[m.cursor].Name
		m.request.NewCollection = false
		m.detailsFocus = 0
		m.titleInput.Focus()
		m.descInput.Blur()
		m.tagsInput.Blur()
		m.view = viewDetails
		return m, nil
	}
	return m, nil
}

func (m CollectionsPage) updateDetails(key tea.KeyMsg) (CollectionsPage, tea.Cmd) {
	inputs := []*textinput.Model{&m.titleInput, &m.descInput, &m.tagsInput}

	switch key.String() {
	case "esc":
		m.view = viewCollection
		return m, nil
	case "tab", "down":
		if m.detailsFocus < len(inputs)-1 {
			m.detailsFocus++
		}
	case "shift+tab", "up":
		if m.detailsFocus > 0 {
			m.detailsFocus--
		}
	case "enter":
		if m.detailsFocus < len(inputs)-1 {
			m.detailsFocus++
			break
		}
		if m.uploading {
			return m, nil
		}
		if strings.TrimSpace(m.titleInput.Value()) == "" {
			m.errMsg = "Title is required."
			return m, nil
		}
		m.request.Title = strings.TrimSpace(m.titleInput.Value())
		m.request.Description = strings.TrimSpace(m.descInput.Value())
		if tags := strings.TrimSpace(m.tagsInput.Value()); tags != "" {
			m.request.Tags = strings.Split(tags, ",")
			for i := range m.request.Tags {
				m.request.Tags[i] = strings.TrimSpace(m.request.Tags[i])
			}
		}
		m.uploading = true
		m.errMsg = ""
		client := m.client
		req := m.request
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			return uploadDoneMsg{err: client.UploadImage(context.Background(), req)}
		})
	default:
		var cmd tea.Cmd
		*inputs[m.detailsFocus], cmd = inputs[m.detailsFocus].Update(key)
		return m, cmd
	}

	for i, input := range inputs {
		if i == m.detailsFocus {
			input.Focus()
		} else {
			input.Blur()
		}
	}
	return m, nil
}

func nextTab(t api.CollectionStatus) api.CollectionStatus {
	switch t {
	case api.CollectionCreated:
		return api.CollectionPending
	case api.CollectionPending:
		return api.CollectionDiscarded
	}
	return api.CollectionCreated
}

func prevTab(t api.CollectionStatus) api.CollectionStatus {
	switch t {
	case api.CollectionDiscarded:
		return api.CollectionPending
	case api.CollectionPending:
		return api.CollectionCreated
	}
	return api.CollectionDiscarded
}

// View renders the current view state.
func (m CollectionsPage) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Collections"))
	sb.WriteString("\n")

	switch m.view {
	case viewList:
		sb.WriteString(m.renderTabs())
		sb.WriteString("\n\n")
		switch {
		case m.loading:
			sb.WriteString(m.spinner.View() + " Loading...")
		case len(m.items) == 0:
			sb.WriteString(m.styles.Muted.Render("No collections here."))
		default:
			for i, c := range m.items {
				line := fmt.Sprintf("%-24s %3d images  %s", c.Name, c.ImageCount, c.UpdatedAt.Format("Jan 02"))
				if i == m.cursor {
					sb.WriteString(m.styles.Selected.Render("> " + line))
				} else {
					sb.WriteString(m.styles.Body.Render("  " + line))
				}
				sb.WriteString("\n")
			}
		}
		sb.WriteString("\n")
		sb.WriteString(m.styles.Footer.Render("u upload · ←/→ tabs · q quit"))

	case viewImage:
		sb.WriteString(m.styles.Label.Render("Which image are you submitting?"))
		sb.WriteString("\n")
		sb.WriteString(m.imageInput.View())
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Footer.Render("enter next · esc cancel"))

	case viewCollection:
		sb.WriteString(m.styles.Label.Render("Add to which collection?"))
		sb.WriteString("\n\n")
		for i, c := range m.items {
			if i == m.cursor {
				sb.WriteString(m.styles.Selected.Render("> " + c.Name))
			} else {
				sb.WriteString(m.styles.Body.Render("  " + c.Name))
			}
			sb.WriteString("\n")
		}
		newLabel := "+ New collection"
		if m.cursor == len(m.items) {
			sb.WriteString(m.styles.Selected.Render("> " + newLabel))
		} else {
			sb.WriteString(m.styles.Body.Render("  " + newLabel))
		}
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Footer.Render("enter select · esc back"))

	case viewNewName:
		sb.WriteString(m.styles.Label.Render("Name the new collection"))
		sb.WriteString("\n")
		sb.WriteString(m.nameInput.View())
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Footer.Render("enter next · esc back"))

	case viewDetails:
		sb.WriteString(m.styles.Label.Render("Tell us about this image"))
		sb.WriteString("\n")
		sb.WriteString(m.titleInput.View())
		sb.WriteString("\n")
		sb.WriteString(m.descInput.View())
		sb.WriteString("\n")
		sb.WriteString(m.tagsInput.View())
		sb.WriteString("\n\n")
		if m.uploading {
			sb.WriteString(m.spinner.View() + " Uploading...")
			sb.WriteString("\n")
		}
		sb.WriteString(m.styles.Footer.Render("enter submit · tab fields · esc back"))

	case viewSuccess:
		sb.WriteString(m.styles.Success.Render("✓ Image submitted for review"))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Footer.Render("enter back to list"))
	}

	if m.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render(m.errMsg))
	}
	return m.styles.Content.Render(sb.String())
}

func (m CollectionsPage) renderTabs() string {
	tabs := []api.CollectionStatus{api.CollectionCreated, api.CollectionPending, api.CollectionDiscarded}
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := strings.ToUpper(string(t))
		if t == m.tab {
			parts = append(parts, m.styles.TabActive.Render(label))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
