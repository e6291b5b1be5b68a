package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatProjectName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"demo", "demo"},
		{"my cool app", "my-cool-app"},
		{"--demo", "demo"},
		{"42app", "project-42app"},
		{"", DefaultProjectName},
		{"!!!", DefaultProjectName},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatProjectName(tt.name), "input %q", tt.name)
	}
}

func TestIsValidProjectName(t *testing.T) {
	assert.True(t, IsValidProjectName("demo"))
	assert.True(t, IsValidProjectName("demo-2_x"))
	assert.False(t, IsValidProjectName("-demo"))
	assert.False(t, IsValidProjectName("my app"))
	assert.False(t, IsValidProjectName(""))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "lon...", TruncateString("long-string", 6))
}
