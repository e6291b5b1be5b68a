package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/XAN44/create-next-elysia/core"
)

// remotesModel asks whether the user wants the clone pointed at their own
// repositories and, if so, collects the three URLs. URLs are taken verbatim.
type remotesModel struct {
	textInput textinput.Model
	questions []question
	current   int
	answers   []string
	optedIn   bool
	done      bool
	aborted   bool
}

func newRemotesModel() remotesModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 80

	questions := []question{
		{prompt: "Set up your own repositories now? (yes/no)", placeholder: "no"},
		{prompt: "Root repository URL:"},
		{prompt: "Back-end repository URL:"},
		{prompt: "Front-end repository URL:"},
	}

	return remotesModel{
		textInput: ti,
		questions: questions,
	}
}

func (m remotesModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m remotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			answer := m.textInput.Value()
			m.answers = append(m.answers, answer)
			m.textInput.SetValue("")

			if m.current == 0 {
				m.optedIn = core.ResolveRewriteOptIn(answer)
				if !m.optedIn {
					m.done = true
					return m, tea.Quit
				}
			}

			m.current++
			if m.current >= len(m.questions) {
				m.done = true
				return m, tea.Quit
			}
			return m, textinput.Blink
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m remotesModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var output strings.Builder
	for i, q := range m.questions {
		if i < m.current {
			output.WriteString(answeredStyle.Render(fmt.Sprintf("%s %s", q.prompt, m.answers[i])))
			output.WriteString("\n")
		} else if i == m.current {
			output.WriteString(promptStyle.Render(q.prompt))
			output.WriteString("\n")
			ti := m.textInput
			ti.Placeholder = q.placeholder
			output.WriteString(ti.View())
		}
	}
	output.WriteString("\n")
	output.WriteString(hintStyle.Render("(enter to confirm, esc to quit)"))
	return output.String()
}

// remoteConfig returns the collected URLs. Only valid once optedIn is true.
func (m remotesModel) remoteConfig() *core.RemoteConfig {
	return &core.RemoteConfig{
		RootURL:     strings.TrimSpace(m.answers[1]),
		BackendURL:  strings.TrimSpace(m.answers[2]),
		FrontendURL: strings.TrimSpace(m.answers[3]),
	}
}
