// Package git exposes the git operations the scaffolder needs via CommandRunner.
package git

import (
	"context"

	"github.com/XAN44/create-next-elysia/exec"
)

// Client runs git subcommands through a CommandRunner so tests can stub the
// binary away. Every method returns the subprocess exit code; a non-nil error
// means the command could not be run at all (git missing, ctx canceled).
type Client struct {
	runner exec.CommandRunner
}

// NewClient creates a Client backed by the given runner.
func NewClient(runner exec.CommandRunner) *Client {
	return &Client{runner: runner}
}

// CloneRecursive clones url into dest, including submodules.
func (c *Client) CloneRecursive(ctx context.Context, url, dest string) (int, error) {
	return c.runner.Run(ctx, "git", []string{"clone", "--recurse-submodules", url, dest}, exec.RunOpts{})
}

// SetRemoteURL rewrites the origin remote of the repository at dir.
func (c *Client) SetRemoteURL(ctx context.Context, dir, url string) (int, error) {
	return c.runner.Run(ctx, "git", []string{"remote", "set-url", "origin", url}, exec.RunOpts{Dir: dir})
}

// SubmoduleSync propagates .gitmodules URL changes into the submodules'
// remote configuration.
func (c *Client) SubmoduleSync(ctx context.Context, dir string) (int, error) {
	return c.runner.Run(ctx, "git", []string{"submodule", "sync", "--recursive"}, exec.RunOpts{Dir: dir})
}

// Add stages the given paths in the repository at dir.
func (c *Client) Add(ctx context.Context, dir string, paths ...string) (int, error) {
	args := append([]string{"add"}, paths...)
	return c.runner.Run(ctx, "git", args, exec.RunOpts{Dir: dir})
}

// Commit records staged changes in the repository at dir.
func (c *Client) Commit(ctx context.Context, dir, message string) (int, error) {
	return c.runner.Run(ctx, "git", []string{"commit", "-m", message}, exec.RunOpts{Dir: dir})
}

// PushUpstream pushes branch to origin and sets it as upstream.
func (c *Client) PushUpstream(ctx context.Context, dir, branch string) (int, error) {
	return c.runner.Run(ctx, "git", []string{"push", "-u", "origin", branch}, exec.RunOpts{Dir: dir})
}
