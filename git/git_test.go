package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XAN44/create-next-elysia/exec"
)

type stubRunner struct {
	name string
	args []string
	dir  string

	exitCode int
	err      error
}

func (r *stubRunner) Run(ctx context.Context, name string, args []string, opts exec.RunOpts) (int, error) {
	r.name = name
	r.args = args
	r.dir = opts.Dir
	return r.exitCode, r.err
}

func TestCloneRecursive(t *testing.T) {
	runner := &stubRunner{}
	code, err := NewClient(runner).CloneRecursive(context.Background(), "https://example.com/t.git", "/tmp/demo")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "git", runner.name)
	assert.Equal(t, []string{"clone", "--recurse-submodules", "https://example.com/t.git", "/tmp/demo"}, runner.args)
	assert.Empty(t, runner.dir)
}

func TestSetRemoteURL(t *testing.T) {
	runner := &stubRunner{}
	_, err := NewClient(runner).SetRemoteURL(context.Background(), "/tmp/demo", "git@example.com:me/r.git")
	require.NoError(t, err)
	assert.Equal(t, []string{"remote", "set-url", "origin", "git@example.com:me/r.git"}, runner.args)
	assert.Equal(t, "/tmp/demo", runner.dir)
}

func TestSubmoduleSync(t *testing.T) {
	runner := &stubRunner{}
	_, err := NewClient(runner).SubmoduleSync(context.Background(), "/tmp/demo")
	require.NoError(t, err)
	assert.Equal(t, []string{"submodule", "sync", "--recursive"}, runner.args)
}

func TestAddCommitPush(t *testing.T) {
	runner := &stubRunner{}
	client := NewClient(runner)

	_, err := client.Add(context.Background(), "/tmp/demo", ".gitmodules")
	require.NoError(t, err)
	assert.Equal(t, []string{"add", ".gitmodules"}, runner.args)

	_, err = client.Commit(context.Background(), "/tmp/demo", "Update submodule URLs")
	require.NoError(t, err)
	assert.Equal(t, []string{"commit", "-m", "Update submodule URLs"}, runner.args)

	_, err = client.PushUpstream(context.Background(), "/tmp/demo", "main")
	require.NoError(t, err)
	assert.Equal(t, []string{"push", "-u", "origin", "main"}, runner.args)
	assert.Equal(t, "/tmp/demo", runner.dir)
}

func TestExitCodeAndErrorPassThrough(t *testing.T) {
	runner := &stubRunner{exitCode: 128}
	code, err := NewClient(runner).CloneRecursive(context.Background(), "u", "d")
	require.NoError(t, err)
	assert.Equal(t, 128, code)

	spawnErr := errors.New("executable file not found")
	runner = &stubRunner{exitCode: -1, err: spawnErr}
	code, err = NewClient(runner).PushUpstream(context.Background(), "/tmp/demo", "main")
	assert.Equal(t, -1, code)
	assert.ErrorIs(t, err, spawnErr)
}
