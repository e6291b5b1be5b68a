package exec

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExitCodes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	r := NewRealRunner()

	code, err := r.Run(context.Background(), "sh", []string{"-c", "exit 0"}, RunOpts{})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = r.Run(context.Background(), "sh", []string{"-c", "exit 3"}, RunOpts{})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestRunMissingBinary(t *testing.T) {
	r := NewRealRunner()
	code, err := r.Run(context.Background(), "definitely-not-a-binary-xyz", nil, RunOpts{})
	assert.Error(t, err)
	assert.Equal(t, -1, code)
}

func TestRunWorkingDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}
	dir := t.TempDir()
	r := NewRealRunner()

	code, err := r.Run(context.Background(), "sh", []string{"-c", "touch marker"}, RunOpts{Dir: dir})
	require.NoError(t, err)
	require.Equal(t, 0, code)

	_, err = os.Stat(filepath.Join(dir, "marker"))
	assert.NoError(t, err)
}
