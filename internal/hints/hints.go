// Package hints appends actionable advice to error messages.
// Every hint renders as "\n  hint: <text>" so the CLI prints them uniformly
// under the error line.
package hints

import (
	"strings"

	"github.com/joshuaclayton/print-to-pdf/internal/fileutil"
)

// Getenv looks up an environment variable, like os.Getenv.
type Getenv func(key string) string

// ContainerOverride forces container detection on ("1") or off ("0").
const ContainerOverride = "PRINT_TO_PDF_CONTAINER"

// dockerMarker is created by Docker in every container.
const dockerMarker = "/.dockerenv"

var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// InCI reports whether any well-known CI variable is set.
func InCI(getenv Getenv) bool {
	for _, name := range ciVars {
		if getenv(name) != "" {
			return true
		}
	}
	return false
}

// InContainer reports whether the process runs in a container, and the
// signal that gave it away.
func InContainer(getenv Getenv) (bool, string) {
	switch getenv(ContainerOverride) {
	case "1":
		return true, ContainerOverride + "=1"
	case "0":
		return false, ""
	}
	if fileutil.FileExists(dockerMarker) {
		return true, dockerMarker
	}
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// NeedsNoSandbox reports whether Chrome will likely refuse to start with its
// sandbox: inside CI or a container, unless ROD_NO_SANDBOX=1 is already set.
func NeedsNoSandbox(getenv Getenv) bool {
	if getenv("ROD_NO_SANDBOX") == "1" {
		return false
	}
	container, _ := InContainer(getenv)
	return container || InCI(getenv)
}

// BrowserSetup is what the user already configured for the browser, from
// flags, environment or config file.
type BrowserSetup struct {
	Engine    string
	Bin       string
	NoSandbox bool
}

// ForBrowserConnect returns hints for a browser that failed to start.
// Advice for settings already present in setup is left out. chromedp never
// downloads Chrome, so it always gets the binary hint when no binary is
// configured.
func ForBrowserConnect(getenv Getenv, setup BrowserSetup) string {
	var advice []string

	if !setup.NoSandbox && NeedsNoSandbox(getenv) {
		advice = append(advice, "set ROD_NO_SANDBOX=1 or pass --no-sandbox for Docker/CI")
	}

	if setup.Bin == "" && getenv("ROD_BROWSER_BIN") == "" {
		if setup.Engine == "chromedp" {
			advice = append(advice, "chromedp needs an installed Chrome: set ROD_BROWSER_BIN or --browser-bin")
		} else {
			advice = append(advice, "set ROD_BROWSER_BIN to use custom Chrome")
		}
	}

	return join(advice)
}

// ForTimeout is given when the --timeout deadline ended the run.
func ForTimeout() string {
	return format("for slow pages, raise --timeout or leave it unset")
}

// ForConfigNotFound suggests --config, or creating the file under the user
// config directory when that is one of the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "print-to-pdf") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func ForInputPath() string {
	return format("pass an existing local HTML file; directories and remote URLs are not supported")
}

// ForChoice lists the accepted values of an option.
func ForChoice(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func join(advice []string) string {
	if len(advice) == 0 {
		return ""
	}
	return format(strings.Join(advice, "; "))
}
