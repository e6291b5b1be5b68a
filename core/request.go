package core

import (
	"strings"

	"github.com/XAN44/create-next-elysia/utils"
)

// PackageManager is the closed set of supported package managers.
type PackageManager int

const (
	Bun PackageManager = iota
	Npm
	Yarn
)

func (pm PackageManager) String() string {
	switch pm {
	case Npm:
		return "npm"
	case Yarn:
		return "yarn"
	default:
		return "bun"
	}
}

// InstallCommand is the literal shell command for installing dependencies,
// also shown to the user verbatim when an install has to be re-run by hand.
func (pm PackageManager) InstallCommand() string {
	return pm.String() + " install"
}

// Request indicates the user's answers for a new project.
type Request struct {
	ProjectName    string
	PackageManager PackageManager
	InstallNow     bool
}

// RemoteConfig holds the user-supplied repository URLs for the rewrite stage.
type RemoteConfig struct {
	RootURL     string
	BackendURL  string
	FrontendURL string
}

// ResolveProjectName picks the project name: a positional argument wins,
// then the prompt answer, then the default.
func ResolveProjectName(arg, answer string) string {
	if strings.TrimSpace(arg) != "" {
		return strings.TrimSpace(arg)
	}
	if strings.TrimSpace(answer) != "" {
		return strings.TrimSpace(answer)
	}
	return utils.DefaultProjectName
}

// ResolvePackageManager maps a menu answer onto the enum. Only the literal
// selectors "2" and "3" pick the alternates; anything else is bun.
func ResolvePackageManager(answer string) PackageManager {
	switch strings.TrimSpace(answer) {
	case "2":
		return Npm
	case "3":
		return Yarn
	default:
		return Bun
	}
}

// ResolveInstallNow maps the install prompt answer onto a flag. Only the
// case-insensitive literal "no" skips the install.
func ResolveInstallNow(answer string) bool {
	return !strings.EqualFold(strings.TrimSpace(answer), "no")
}

// ResolveRewriteOptIn maps the repository-setup prompt answer onto a flag.
// The rewrite stage touches remote repositories, so it requires an explicit
// "yes" (or "y"); anything else declines.
func ResolveRewriteOptIn(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "yes" || a == "y"
}
