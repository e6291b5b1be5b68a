package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/XAN44/create-next-elysia/core"
	"github.com/XAN44/create-next-elysia/utils"
)

var (
	answeredStyle = lipgloss.NewStyle().Faint(true)
	promptStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

type question struct {
	prompt      string
	placeholder string
	menu        []string
}

// wizardModel walks the user through the provisioning answers, one question
// at a time. Empty answers fall through to each question's default.
type wizardModel struct {
	textInput      textinput.Model
	questions      []question
	current        int
	answers        []string
	positionalName string
	done           bool
	aborted        bool
}

func newWizardModel(positionalName string) wizardModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 80

	var questions []question
	if positionalName == "" {
		questions = append(questions, question{
			prompt:      "What is your project named?",
			placeholder: utils.DefaultProjectName,
		})
	}
	questions = append(questions,
		question{
			prompt: "Which package manager do you want to use?",
			menu: []string{
				"1) bun (default)",
				"2) npm",
				"3) yarn",
			},
		},
		question{
			prompt:      "Install dependencies now? (yes/no)",
			placeholder: "yes",
		},
	)

	return wizardModel{
		textInput:      ti,
		questions:      questions,
		positionalName: positionalName,
	}
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.answers = append(m.answers, m.textInput.Value())
			m.textInput.SetValue("")
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

func (m wizardModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var output strings.Builder
	for i, q := range m.questions {
		if i < m.current {
			answer := m.answers[i]
			if answer == "" {
				answer = "(default)"
			}
			output.WriteString(answeredStyle.Render(fmt.Sprintf("%s %s", q.prompt, answer)))
			output.WriteString("\n")
		} else if i == m.current {
			output.WriteString(promptStyle.Render(q.prompt))
			output.WriteString("\n")
			for _, item := range q.menu {
				output.WriteString("  " + item + "\n")
			}
			ti := m.textInput
			ti.Placeholder = q.placeholder
			output.WriteString(ti.View())
		}
	}
	output.WriteString("\n")
	output.WriteString(hintStyle.Render("(enter to confirm, esc to quit)"))
	return output.String()
}

// request turns the collected answers into a core.Request.
func (m wizardModel) request() *core.Request {
	i := 0
	nameAnswer := ""
	if m.positionalName == "" {
		nameAnswer = m.answers[i]
		i++
	}

	return &core.Request{
		ProjectName:    core.ResolveProjectName(m.positionalName, nameAnswer),
		PackageManager: core.ResolvePackageManager(m.answers[i]),
		InstallNow:     core.ResolveInstallNow(m.answers[i+1]),
	}
}
