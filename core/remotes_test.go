package core

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRewriteState(t *testing.T) (*State, *stubRunner) {
	t.Helper()
	req := &Request{ProjectName: "demo", PackageManager: Bun, InstallNow: true}
	state, runner := newTestState(req)
	state.TargetPath = targetFor("demo")
	state.Remotes = &RemoteConfig{
		RootURL:     "git@example.com:me/root.git",
		BackendURL:  "git@example.com:me/backend.git",
		FrontendURL: "git@example.com:me/frontend.git",
	}
	return state, runner
}

func TestRewritePipeline_CommandSequence(t *testing.T) {
	state, runner := newRewriteState(t)
	pub := &recordingPublisher{}

	err := NewRewritePipeline(state, pub).Execute(context.Background())
	require.NoError(t, err)

	target := state.TargetPath
	want := []call{
		{name: "git", args: []string{"remote", "set-url", "origin", "git@example.com:me/root.git"}, dir: target},
		{name: "git", args: []string{"submodule", "sync", "--recursive"}, dir: target},
		{name: "git", args: []string{"add", ".gitmodules"}, dir: target},
		{name: "git", args: []string{"commit", "-m", CommitMessage}, dir: target},
		{name: "git", args: []string{"push", "-u", "origin", "main"}, dir: filepath.Join(target, BackendDir)},
		{name: "git", args: []string{"push", "-u", "origin", "main"}, dir: filepath.Join(target, FrontendDir)},
		{name: "git", args: []string{"push", "-u", "origin", "main"}, dir: target},
	}
	assert.Equal(t, want, runner.calls)

	content, err := state.FS.ReadFile(filepath.Join(target, ".gitmodules"))
	require.NoError(t, err)
	assert.Equal(t, RenderGitmodules("git@example.com:me/backend.git", "git@example.com:me/frontend.git"), content)

	assert.Empty(t, pub.warns)
	assert.Empty(t, pub.errors)
}

func TestRewritePipeline_FailuresAreAdvisory(t *testing.T) {
	state, runner := newRewriteState(t)
	backendDir := filepath.Join(state.TargetPath, BackendDir)
	runner.script = func(c call) (int, error) {
		if c.dir == backendDir {
			return 1, nil
		}
		return 0, nil
	}
	pub := &recordingPublisher{}

	err := NewRewritePipeline(state, pub).Execute(context.Background())
	require.NoError(t, err)

	// The failed backend push does not stop the frontend or root pushes.
	require.Len(t, runner.calls, 7)
	require.Len(t, pub.warns, 1)
	assert.Contains(t, pub.warns[0].Error(), "cd "+backendDir+" && git push -u origin main")
	assert.Equal(t, []StepType{SetRootRemote, WriteSubmoduleConfig, SyncSubmodules, CommitSubmoduleConfig, PushRepositories}, pub.completed)
}

func TestRenderGitmodules(t *testing.T) {
	got := RenderGitmodules("https://example.com/b.git", "https://example.com/f.git")
	want := "[submodule \"back-end/app\"]\n" +
		"\tpath = back-end/app\n" +
		"\turl = https://example.com/b.git\n" +
		"[submodule \"front-end/my-app\"]\n" +
		"\tpath = front-end/my-app\n" +
		"\turl = https://example.com/f.git\n"
	assert.Equal(t, want, got)
}
