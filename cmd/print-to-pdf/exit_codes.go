package main

import (
	"errors"

	printtopdf "github.com/joshuaclayton/print-to-pdf"
	"github.com/joshuaclayton/print-to-pdf/internal/config"
)

// Exit codes for the print-to-pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // PDF written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, layout, engine, or config
	ExitIO      = 3 // HTML path unresolvable, PDF not writable
	ExitBrowser = 4 // Browser launch, tab, navigation or render failure
)

// ErrUsage marks command-line mistakes detected by the CLI itself.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4), including steps cut short by --timeout
	if errors.Is(err, printtopdf.ErrBrowserLaunch) ||
		errors.Is(err, printtopdf.ErrTabOpen) ||
		errors.Is(err, printtopdf.ErrNavigation) ||
		errors.Is(err, printtopdf.ErrRender) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, printtopdf.ErrPathResolution) ||
		errors.Is(err, printtopdf.ErrOutputWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, printtopdf.ErrInvalidLayout) ||
		errors.Is(err, printtopdf.ErrUnknownEngine) ||
		errors.Is(err, printtopdf.ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitUsage
	}

	return ExitGeneral
}
