package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/store"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type repoItem struct {
	repo model.Repository
}

func (i repoItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.repo.ID, i.repo.Slug())
}

func (i repoItem) Description() string {
	desc := i.repo.Domain

	if i.repo.DefaultBranch != "" {
		desc = fmt.Sprintf("%s | branch: %s", desc, i.repo.DefaultBranch)
	}

	if !i.repo.CreatedAt.IsZero() {
		desc = fmt.Sprintf("%s | added: %s", desc, i.repo.CreatedAt.Format("2006-01-02 15:04"))
	}

	return desc
}

func (i repoItem) FilterValue() string {
	return i.repo.ID + " " + i.repo.Slug()
}

// RepoListModel lets the user pick one repository record.
type RepoListModel struct {
	list     list.Model
	selected *model.Repository
	quitting bool
}

// NewRepoList builds a selector over all stored repository records.
func NewRepoList(st store.Store) (RepoListModel, error) {
	repos, err := st.ListRepos()
	if err != nil {
		return RepoListModel{}, err
	}

	items := make([]list.Item, 0, len(repos))
	for _, r := range repos {
		items = append(items, repoItem{repo: r})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select a repository"

	return RepoListModel{list: l}, nil
}

func (m RepoListModel) Init() tea.Cmd {
	return nil
}

func (m RepoListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if i, ok := m.list.SelectedItem().(repoItem); ok {
				m.selected = &i.repo
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m RepoListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// GetSelectedRepo returns the chosen record, or nil on cancel.
func (m RepoListModel) GetSelectedRepo() *model.Repository {
	return m.selected
}
