package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var questionStyle = lipgloss.NewStyle().Bold(true).Margin(1, 2)

// ConfirmModel asks a single yes-no question.
type ConfirmModel struct {
	question string
	answer   bool
	answered bool
}

// NewConfirm builds a yes-no prompt for question.
func NewConfirm(question string) ConfirmModel {
	return ConfirmModel{question: question}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y", "enter":
			m.answer = true
			m.answered = true

			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.answer = false
			m.answered = true

			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ConfirmModel) View() string {
	if m.answered {
		return ""
	}

	return questionStyle.Render(m.question + " [y/N]")
}

// Answer reports the user's choice.
func (m ConfirmModel) Answer() bool {
	return m.answer
}

// Prompter satisfies core.Confirmer by running a ConfirmModel per question.
type Prompter struct{}

func (Prompter) Confirm(question string) bool {
	p := tea.NewProgram(NewConfirm(question))

	finalModel, err := p.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return false
	}

	return finalModel.(ConfirmModel).Answer()
}
