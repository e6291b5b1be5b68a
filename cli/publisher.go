package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/XAN44/create-next-elysia/core"
	"github.com/XAN44/create-next-elysia/logger"
)

var (
	checkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFBA08"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// stepMessages maps each step to its running and completed narration.
var stepMessages = map[core.StepType]struct {
	present string
	past    string
}{
	core.ResolveTarget:         {"Resolving project directory.", "Resolved project directory."},
	core.CreateDirectory:       {"Creating project directory.", "Created project directory."},
	core.CloneTemplate:         {"Cloning template (this may take a moment).", "Cloned template."},
	core.InstallDependencies:   {"Installing dependencies.", "Installed dependencies."},
	core.SetRootRemote:         {"Pointing the root repository at your remote.", "Updated root remote."},
	core.WriteSubmoduleConfig:  {"Writing submodule configuration.", "Wrote submodule configuration."},
	core.SyncSubmodules:        {"Syncing submodule remotes.", "Synced submodule remotes."},
	core.CommitSubmoduleConfig: {"Committing submodule configuration.", "Committed submodule configuration."},
	core.PushRepositories:      {"Pushing repositories.", "Pushed repositories."},
}

// ConsolePublisher narrates pipeline progress straight to the terminal.
// Narration interleaves with inherited subprocess output, so each event is a
// plain line rather than a live-updating view.
type ConsolePublisher struct {
	logger logger.Logger
}

func NewConsolePublisher(l logger.Logger) *ConsolePublisher {
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &ConsolePublisher{logger: l}
}

func (p *ConsolePublisher) StepStarted(step core.StepType) {
	msg, ok := stepMessages[step]
	if !ok {
		return
	}
	fmt.Println(msg.present)
}

func (p *ConsolePublisher) PublishStep(step core.StepType) {
	p.logger.Debug(fmt.Sprintf("Step completed: %v", step))
	msg, ok := stepMessages[step]
	if !ok {
		return
	}
	fmt.Printf("%s %s\n", checkStyle.Render("✓"), msg.past)
}

func (p *ConsolePublisher) Warn(step core.StepType, err error) {
	p.logger.Warn(fmt.Sprintf("Step %v warning: %v", step, err))
	fmt.Printf("%s %v\n", warnStyle.Render("warning:"), err)
}

func (p *ConsolePublisher) Error(step core.StepType, err error) {
	p.logger.Error(fmt.Sprintf("Step %v failed: %v", step, err))
	fmt.Printf("%s %v\n", errorStyle.Render("error:"), err)
}
