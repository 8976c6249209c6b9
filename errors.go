package printtopdf

import "errors"

// Sentinel errors for library operations.
var (
	// Configuration errors, reported before any browser interaction.
	ErrInvalidLayout  = errors.New("invalid page layout")
	ErrUnknownEngine  = errors.New("unknown browser engine")
	ErrPathResolution = errors.New("failed to resolve HTML path")
	ErrInvalidTimeout = errors.New("invalid timeout")

	// Pipeline step errors.
	ErrBrowserLaunch = errors.New("failed to launch browser")
	ErrTabOpen       = errors.New("failed to open browser tab")
	ErrNavigation    = errors.New("failed to load page")
	ErrRender        = errors.New("PDF generation failed")
	ErrOutputWrite   = errors.New("failed to write PDF file")

	// ErrEmptyPDF is returned (wrapped in ErrRender) when the browser
	// produced zero bytes.
	ErrEmptyPDF = errors.New("browser returned an empty PDF")
)
