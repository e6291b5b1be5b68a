package utils

import (
	"regexp"
	"strings"
)

// DefaultProjectName is used when the user gives no project name at all.
const DefaultProjectName = "next-elysia-app"

// IsValidProjectName checks if the given project name is valid
func IsValidProjectName(name string) bool {
	// Project name should start with a letter or number,
	// and can contain letters, numbers, hyphens, and underscores
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9][a-zA-Z0-9\-_]*$`, name)
	return matched
}

// FormatProjectName turns free-form user input into a safe directory name.
func FormatProjectName(name string) string {
	// Replace spaces and other invalid characters with hyphens
	reg := regexp.MustCompile(`[^a-zA-Z0-9\-_]`)
	formatted := reg.ReplaceAllString(name, "-")

	// Remove leading hyphens or underscores
	formatted = strings.TrimLeft(formatted, "-_")

	// If the name is not empty and starts with a number, prepend "project-"
	if len(formatted) > 0 && strings.IndexAny(formatted[0:1], "0123456789") == 0 {
		formatted = "project-" + formatted
	}

	// If the name is empty after formatting, use the default name
	if formatted == "" {
		formatted = DefaultProjectName
	}

	return formatted
}

// TruncateString truncates a string to the specified length, adding an ellipsis if truncated
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
