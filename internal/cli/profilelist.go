package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/store"
)

type profileItem struct {
	profile model.Profile
}

func (i profileItem) Title() string {
	return i.profile.Name
}

func (i profileItem) Description() string {
	desc := fmt.Sprintf("%s | format: %s | out: %s", i.profile.Domain, i.profile.Format, i.profile.OutputDir)

	if !i.profile.LastUsedAt.IsZero() {
		desc = fmt.Sprintf("%s | used: %s", desc, i.profile.LastUsedAt.Format("2006-01-02 15:04"))
	}

	return desc
}

func (i profileItem) FilterValue() string {
	return i.profile.Name
}

// ProfileListModel lets the user pick one profile.
type ProfileListModel struct {
	list     list.Model
	selected *model.Profile
	quitting bool
}

// NewProfileList builds a selector over all stored profiles.
func NewProfileList(st store.Store) (ProfileListModel, error) {
	profiles, err := st.ListProfiles()
	if err != nil {
		return ProfileListModel{}, err
	}

	items := make([]list.Item, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, profileItem{profile: p})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select a profile"

	return ProfileListModel{list: l}, nil
}

func (m ProfileListModel) Init() tea.Cmd {
	return nil
}

func (m ProfileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(profileItem); ok {
				m.selected = &i.profile
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ProfileListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// GetSelectedProfile returns the chosen profile, or nil on cancel.
func (m ProfileListModel) GetSelectedProfile() *model.Profile {
	return m.selected
}
