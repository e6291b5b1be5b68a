package core

import (
	"context"
	"fmt"
	"path/filepath"
)

// CommitMessage is the fixed message for the submodule-config commit.
const CommitMessage = "Update submodule URLs"

// RenderGitmodules produces the .gitmodules content for the two template
// submodules, pointed at the user-supplied repositories.
func RenderGitmodules(backendURL, frontendURL string) string {
	return fmt.Sprintf("[submodule %q]\n\tpath = %s\n\turl = %s\n[submodule %q]\n\tpath = %s\n\turl = %s\n",
		BackendDir, BackendDir, backendURL,
		FrontendDir, FrontendDir, frontendURL)
}

type SetRootRemoteStep struct{}

func (s *SetRootRemoteStep) Execute(ctx context.Context, state *State) error {
	url := state.Remotes.RootURL
	code, err := state.Git.SetRemoteURL(ctx, state.TargetPath, url)
	if err != nil || code != 0 {
		manual := fmt.Sprintf("cd %s && git remote set-url origin %s", state.TargetPath, url)
		state.Logger.Warn(fmt.Sprintf("Failed to set root remote: code=%d err=%v", code, err))
		warn(state, SetRootRemote, fmt.Errorf("could not set the root remote, run it manually: %s", manual))
	}
	return nil
}

type WriteSubmoduleConfigStep struct{}

// Execute overwrites .gitmodules with the user-supplied backend and frontend
// URLs. Editing the descriptor and syncing keeps submodule metadata
// consistent with the rewritten remotes.
func (s *WriteSubmoduleConfigStep) Execute(ctx context.Context, state *State) error {
	path := filepath.Join(state.TargetPath, ".gitmodules")
	content := RenderGitmodules(state.Remotes.BackendURL, state.Remotes.FrontendURL)
	if err := state.FS.WriteFile(path, content); err != nil {
		state.Logger.Warn(fmt.Sprintf("Failed to write .gitmodules: %v", err))
		warn(state, WriteSubmoduleConfig, fmt.Errorf("could not write %s, edit the submodule URLs there by hand", path))
	}
	return nil
}

type SyncSubmodulesStep struct{}

func (s *SyncSubmodulesStep) Execute(ctx context.Context, state *State) error {
	code, err := state.Git.SubmoduleSync(ctx, state.TargetPath)
	if err != nil || code != 0 {
		manual := fmt.Sprintf("cd %s && git submodule sync --recursive", state.TargetPath)
		state.Logger.Warn(fmt.Sprintf("Submodule sync failed: code=%d err=%v", code, err))
		warn(state, SyncSubmodules, fmt.Errorf("submodule sync failed, run it manually: %s", manual))
	}
	return nil
}

type CommitSubmoduleConfigStep struct{}

func (s *CommitSubmoduleConfigStep) Execute(ctx context.Context, state *State) error {
	dir := state.TargetPath

	code, err := state.Git.Add(ctx, dir, ".gitmodules")
	if err != nil || code != 0 {
		manual := fmt.Sprintf("cd %s && git add .gitmodules", dir)
		state.Logger.Warn(fmt.Sprintf("Staging .gitmodules failed: code=%d err=%v", code, err))
		warn(state, CommitSubmoduleConfig, fmt.Errorf("could not stage .gitmodules, run it manually: %s", manual))
	}

	code, err = state.Git.Commit(ctx, dir, CommitMessage)
	if err != nil || code != 0 {
		manual := fmt.Sprintf("cd %s && git commit -m %q", dir, CommitMessage)
		state.Logger.Warn(fmt.Sprintf("Commit failed: code=%d err=%v", code, err))
		warn(state, CommitSubmoduleConfig, fmt.Errorf("could not commit the submodule config, run it manually: %s", manual))
	}
	return nil
}

type PushRepositoriesStep struct{}

// Execute pushes the backend, the frontend, and finally the root repository,
// each to origin/<branch>. Each push is independent.
func (s *PushRepositoriesStep) Execute(ctx context.Context, state *State) error {
	branch := state.Settings.Branch
	dirs := []string{
		filepath.Join(state.TargetPath, BackendDir),
		filepath.Join(state.TargetPath, FrontendDir),
		state.TargetPath,
	}

	for _, dir := range dirs {
		code, err := state.Git.PushUpstream(ctx, dir, branch)
		if err != nil || code != 0 {
			manual := fmt.Sprintf("cd %s && git push -u origin %s", dir, branch)
			state.Logger.Warn(fmt.Sprintf("Push failed in %s: code=%d err=%v", dir, code, err))
			warn(state, PushRepositories, fmt.Errorf("push failed in %s, run it manually: %s", dir, manual))
		}
	}
	return nil
}
