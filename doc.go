// Package printtopdf prints local HTML files to PDF using headless Chrome.
//
// # Quick Start
//
// Build the print options for a layout, then convert a file:
//
//	conv := printtopdf.NewConverter()
//	opts := printtopdf.BuildPrintOptions(printtopdf.Legal, nil)
//
//	err := conv.ConvertFile(ctx, "report.html", "report.pdf", opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Every call launches its own browser and closes it before returning.
//
// # Conversion Pipeline
//
// A conversion runs these steps in order, each at most once:
//
//  1. Resolve the HTML path to an absolute file:// URL
//  2. Launch the browser
//  3. Open a tab
//  4. Navigate and wait for the load event
//  5. Print to PDF
//  6. Write the PDF to the output path
//
// The first failing step stops the run. Its error wraps one of ErrPathResolution,
// ErrBrowserLaunch, ErrTabOpen, ErrNavigation, ErrRender or ErrOutputWrite, so
// callers classify failures with errors.Is. The output file is replaced
// atomically and only after the PDF has been rendered; a failed run leaves an
// existing file untouched.
//
// # Layouts
//
// Two presets are available:
//
//	Legal      8.5 x 11 in, portrait, backgrounds printed, scale 1.0
//	Slideshow  16 x 9 in, landscape, otherwise as Legal
//
// A non-nil scale passed to BuildPrintOptions replaces the preset scale.
// Paper size yields to a CSS @page rule when the document declares one.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	launcher, err := printtopdf.NewLauncher(printtopdf.EngineChromedp, printtopdf.LaunchOptions{
//	    Headless:  true,
//	    NoSandbox: true,
//	})
//	conv := printtopdf.NewConverter(
//	    printtopdf.WithLauncher(launcher),
//	    printtopdf.WithTimeout(2 * time.Minute),
//	    printtopdf.WithLogger(logger),
//	)
//
// Without WithTimeout an unresponsive page blocks until ctx is cancelled.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The rod engine (the default)
// downloads a managed Chromium on first run (~/.cache/rod/browser/); the
// chromedp engine needs an installed browser.
//
// For containers and CI environments, set LaunchOptions.NoSandbox to disable
// the Chrome sandbox and LaunchOptions.BrowserBin to use a custom Chrome
// binary. The print-to-pdf command reads them from ROD_NO_SANDBOX=1 and
// ROD_BROWSER_BIN.
package printtopdf
