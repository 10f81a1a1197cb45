package cli

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type branchItem struct {
	name    string
	current bool
}

func (i branchItem) Title() string {
	if i.current {
		return i.name + " (default)"
	}

	return i.name
}

func (i branchItem) Description() string {
	return ""
}

func (i branchItem) FilterValue() string {
	return i.name
}

// BranchListModel lets the user pick a branch from the remote listing.
// Cancelling keeps the default branch.
type BranchListModel struct {
	list     list.Model
	selected string
	quitting bool
}

// NewBranchList builds a selector over branch names; def marks the
// branch used when the user cancels.
func NewBranchList(branches []string, def string) BranchListModel {
	items := make([]list.Item, 0, len(branches))
	for _, b := range branches {
		items = append(items, branchItem{name: b, current: b == def})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select a branch (esc keeps the default)"

	return BranchListModel{list: l}
}

func (m BranchListModel) Init() tea.Cmd {
	return nil
}

func (m BranchListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if i, ok := m.list.SelectedItem().(branchItem); ok {
				m.selected = i.name
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m BranchListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// GetSelectedBranch returns the chosen branch name, or "" on cancel.
func (m BranchListModel) GetSelectedBranch() string {
	return m.selected
}
