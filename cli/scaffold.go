package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/XAN44/create-next-elysia/config"
	"github.com/XAN44/create-next-elysia/core"
	"github.com/XAN44/create-next-elysia/exec"
	"github.com/XAN44/create-next-elysia/fs"
	"github.com/XAN44/create-next-elysia/logger"
)

var (
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	headingStyle = lipgloss.NewStyle().Bold(true)
)

// runScaffold drives the whole provisioning run: wizard, provision pipeline,
// summary, optional remote rewrite, closing message.
func runScaffold(ctx context.Context, positionalName string) error {
	lg := logger.Get()
	lg.Debug("Starting create-next-elysia")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	wizard := newWizardModel(strings.TrimSpace(positionalName))
	out, err := tea.NewProgram(wizard).Run()
	if err != nil {
		return fmt.Errorf("error running prompt: %w", err)
	}
	answers := out.(wizardModel)
	if answers.aborted {
		fmt.Println(hintStyle.Render("Interrupted. Exiting..."))
		return nil
	}
	req := answers.request()
	lg.Debug(fmt.Sprintf("Answers: name=%s pm=%s install=%t", req.ProjectName, req.PackageManager, req.InstallNow))

	state := core.NewState(req, cfg, fs.NewOsFileSystem(), exec.NewRealRunner(), lg)
	pub := NewConsolePublisher(lg)

	if err := core.NewProvisionPipeline(state, pub).Execute(ctx); err != nil {
		renderFatal(err)
		os.Exit(1)
	}

	printSummary(state.TargetPath, req)

	if err := runRemotesWizard(ctx, state, pub); err != nil {
		return err
	}

	fmt.Println(headingStyle.Render("Happy hacking!"))
	return nil
}

func runRemotesWizard(ctx context.Context, state *core.State, pub *ConsolePublisher) error {
	out, err := tea.NewProgram(newRemotesModel()).Run()
	if err != nil {
		return fmt.Errorf("error running prompt: %w", err)
	}
	m := out.(remotesModel)
	if m.aborted || !m.optedIn {
		return nil
	}

	state.Remotes = m.remoteConfig()
	// Every step in the rewrite pipeline is advisory; Execute only fails if
	// a step is missing outright.
	return core.NewRewritePipeline(state, pub).Execute(ctx)
}

// renderFatal prints the diagnostic checklist for clone failures. The
// pipeline publisher has already printed the error line itself.
func renderFatal(err error) {
	var cloneErr *core.CloneFailedError
	if errors.As(err, &cloneErr) {
		fmt.Println("Check that:")
		for _, hint := range cloneErr.Hints() {
			fmt.Printf("  - %s\n", hint)
		}
	}
}

func printSummary(targetPath string, req *core.Request) {
	fmt.Println(summaryText(targetPath, req))
}

func summaryText(targetPath string, req *core.Request) string {
	dir := filepath.Base(targetPath)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", headingStyle.Render("Project created at"), nameStyle.Render(targetPath)))
	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Next steps:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  cd %s\n", dir))
	if !req.InstallNow {
		pm := req.PackageManager
		b.WriteString(fmt.Sprintf("  %s\n", pm.InstallCommand()))
		b.WriteString(fmt.Sprintf("  cd %s && %s\n", core.BackendDir, pm.InstallCommand()))
		b.WriteString(fmt.Sprintf("  cd %s && %s\n", core.FrontendDir, pm.InstallCommand()))
	}
	b.WriteString("  See the README in each package for how to run the apps.")
	return b.String()
}
