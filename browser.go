package printtopdf

import (
	"context"
	"fmt"
	"strings"
)

// Launcher starts or attaches to a browser.
type Launcher interface {
	Launch(ctx context.Context) (Browser, error)
}

// Browser is a running browser owned by a single conversion.
type Browser interface {
	OpenTab(ctx context.Context) (Tab, error)
	Close() error
}

// Tab is one page in a Browser.
type Tab interface {
	Navigate(ctx context.Context, url string) error
	// WaitLoad blocks until the page signals load completion.
	WaitLoad(ctx context.Context) error
	PrintToPDF(ctx context.Context, opts PrintOptions) ([]byte, error)
	Close() error
}

// Engine names a Launcher implementation.
type Engine string

// Supported engines.
const (
	EngineRod      Engine = "rod"
	EngineChromedp Engine = "chromedp"
)

// DefaultEngine is used when no engine is configured.
const DefaultEngine = EngineRod

// EngineNames lists the accepted engine names.
func EngineNames() []string {
	return []string{string(EngineRod), string(EngineChromedp)}
}

// ParseEngine maps a name to an Engine (case-insensitive). Empty selects DefaultEngine.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultEngine, nil
	case string(EngineRod):
		return EngineRod, nil
	case string(EngineChromedp):
		return EngineChromedp, nil
	default:
		return "", fmt.Errorf("%w: %q (must be %s)", ErrUnknownEngine, s, strings.Join(EngineNames(), " or "))
	}
}

// LaunchOptions configures how a browser is started.
type LaunchOptions struct {
	// BrowserBin is the Chrome/Chromium executable. Empty lets the engine
	// locate (or, for rod, download) one.
	BrowserBin string
	// NoSandbox disables the Chrome sandbox (required as root, e.g. in Docker).
	NoSandbox bool
	// Headless is true for every production run; tests against a visible
	// browser can turn it off.
	Headless bool
}

// DefaultLaunchOptions returns headless launch options with the sandbox on.
func DefaultLaunchOptions() LaunchOptions {
	return LaunchOptions{Headless: true}
}

// NewLauncher returns the Launcher for engine.
func NewLauncher(engine Engine, opts LaunchOptions) (Launcher, error) {
	switch engine {
	case EngineRod, "":
		return newRodLauncher(opts), nil
	case EngineChromedp:
		return newChromedpLauncher(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}
