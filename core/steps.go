package core

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/XAN44/create-next-elysia/exec"
	"github.com/XAN44/create-next-elysia/utils"
)

// Submodule locations inside the cloned template, relative to the project root.
const (
	BackendDir  = "back-end/app"
	FrontendDir = "front-end/my-app"
)

// CloneFailedError carries a checklist of likely causes so the CLI can show
// the user something actionable when the template clone fails.
type CloneFailedError struct {
	URL      string
	ExitCode int
	Err      error
}

func (e *CloneFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to clone template %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to clone template %s: git exited with code %d", e.URL, e.ExitCode)
}

func (e *CloneFailedError) Unwrap() error {
	return e.Err
}

// Hints lists the likely causes worth checking by hand.
func (e *CloneFailedError) Hints() []string {
	return []string{
		"git is installed and on your PATH",
		"you have a working network connection",
		fmt.Sprintf("the template repository is reachable: %s", e.URL),
	}
}

type ResolveTargetStep struct{}

// Execute computes the absolute target path from the project name and fails
// the whole run if anything already exists there. Nothing has been spawned
// yet, so aborting here has no side effects.
func (s *ResolveTargetStep) Execute(ctx context.Context, state *State) error {
	name := utils.FormatProjectName(state.Request.ProjectName)
	abs, err := filepath.Abs(name)
	if err != nil {
		return fmt.Errorf("failed to resolve target path for %s: %w", name, err)
	}

	exists, err := state.FS.Exists(abs)
	if err != nil {
		return fmt.Errorf("failed to check target path %s: %w", abs, err)
	}
	if exists {
		return fmt.Errorf("directory %s already exists, pick another project name or remove it", abs)
	}

	state.TargetPath = abs
	state.Logger.Debug(fmt.Sprintf("Resolved target path: %s", abs))
	return nil
}

type CreateDirectoryStep struct{}

func (s *CreateDirectoryStep) Execute(ctx context.Context, state *State) error {
	if err := state.FS.MkdirAll(state.TargetPath); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	state.Logger.Debug(fmt.Sprintf("Created project directory: %s", state.TargetPath))
	return nil
}

type CloneTemplateStep struct{}

// Execute clones the template with submodules. Everything downstream assumes
// a valid working tree, so a failed clone is fatal.
func (s *CloneTemplateStep) Execute(ctx context.Context, state *State) error {
	url := state.Settings.TemplateURL
	state.Logger.Debug(fmt.Sprintf("Cloning template %s into %s", url, state.TargetPath))

	code, err := state.Git.CloneRecursive(ctx, url, state.TargetPath)
	if err != nil {
		return &CloneFailedError{URL: url, ExitCode: -1, Err: err}
	}
	if code != 0 {
		state.Logger.Error(fmt.Sprintf("git clone exited with code %d", code))
		return &CloneFailedError{URL: url, ExitCode: code}
	}
	state.Logger.Debug("Template cloned successfully")
	return nil
}

type InstallDependenciesStep struct{}

// Execute runs `<pm> install` in the project root, then the backend, then the
// frontend. The three installs operate on independent subtrees, so a failure
// in one is reported with the manual command and the loop moves on.
func (s *InstallDependenciesStep) Execute(ctx context.Context, state *State) error {
	if !state.Request.InstallNow {
		state.Logger.Debug("Dependency install skipped by user")
		return nil
	}

	pm := state.Request.PackageManager
	dirs := []string{"", BackendDir, FrontendDir}

	for _, dir := range dirs {
		workDir := filepath.Join(state.TargetPath, dir)
		state.Logger.Debug(fmt.Sprintf("Running %s in %s", pm.InstallCommand(), workDir))

		code, err := state.Runner.Run(ctx, pm.String(), []string{"install"}, exec.RunOpts{Dir: workDir})
		if err != nil || code != 0 {
			manual := fmt.Sprintf("cd %s && %s", workDir, pm.InstallCommand())
			if err != nil {
				state.Logger.Warn(fmt.Sprintf("Install failed in %s: %v", workDir, err))
			} else {
				state.Logger.Warn(fmt.Sprintf("Install in %s exited with code %d", workDir, code))
			}
			// Not fatal: the remaining installs operate on separate subtrees.
			warn(state, InstallDependencies, fmt.Errorf("install failed in %s, run it manually: %s", workDir, manual))
			continue
		}
		state.Logger.Debug(fmt.Sprintf("Install completed in %s", workDir))
	}
	return nil
}
