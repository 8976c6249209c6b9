package printtopdf

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/joshuaclayton/print-to-pdf/internal/fileutil"
)

// outputPermissions is rw-r--r--: PDFs are meant to be readable.
const outputPermissions = 0o644

// Converter drives one browser through a single HTML to PDF conversion.
// Create with NewConverter and call Convert once per document; every call
// launches its own browser and closes it before returning.
type Converter struct {
	cfg      converterConfig
	launcher Launcher
}

// NewConverter creates a Converter. Without WithLauncher it uses the rod
// engine with DefaultLaunchOptions.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			logger: zerolog.Nop(),
			now:    time.Now,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.launcher == nil {
		c.launcher = newRodLauncher(DefaultLaunchOptions())
	}
	return c
}

// ConvertFile resolves htmlPath, then runs Convert. A missing input fails
// with ErrPathResolution before any browser is launched.
func (c *Converter) ConvertFile(ctx context.Context, htmlPath, outputPath string, opts PrintOptions) error {
	req, err := NewConversionRequest(htmlPath, outputPath, opts)
	if err != nil {
		return err
	}
	return c.Convert(ctx, req)
}

// Convert runs launch, open tab, navigate, wait for load, print and write,
// strictly in that order and each at most once. The first failure stops the
// run and is returned wrapped in the sentinel error for its step. The output
// file is only touched after the PDF has been fully rendered.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, req ConversionRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	log := c.cfg.logger
	step := c.stepTimer()

	log.Info().Msg("starting new browser")
	browser, err := c.launcher.Launch(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBrowserLaunch, err)
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("closing browser")
		}
	}()
	step("launch")

	log.Info().Msg("opening tab")
	tab, err := browser.OpenTab(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTabOpen, err)
	}
	defer func() {
		if closeErr := tab.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("closing tab")
		}
	}()
	step("open tab")

	log.Info().Msgf("navigating to %s", req.FileURL())
	if err := tab.Navigate(ctx, req.FileURL()); err != nil {
		return fmt.Errorf("%w: %w", ErrNavigation, err)
	}
	if err := tab.WaitLoad(ctx); err != nil {
		return fmt.Errorf("%w: waiting for load: %w", ErrNavigation, err)
	}
	step("navigate")

	log.Info().Msg("loaded; now printing to PDF")
	pdf, err := tab.PrintToPDF(ctx, req.Options())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	if len(pdf) == 0 {
		return fmt.Errorf("%w: %w", ErrRender, ErrEmptyPDF)
	}
	step("print")

	log.Info().Msg("writing to disk")
	if err := fileutil.WriteFileAtomic(req.OutputPath(), pdf, outputPermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	step("write")

	log.Info().
		Str("output", req.OutputPath()).
		Int("bytes", len(pdf)).
		Msg("PDF successfully created from local web page.")
	return nil
}

// stepTimer returns a function that logs, at debug level, the time spent
// since the previous call.
func (c *Converter) stepTimer() func(name string) {
	last := c.cfg.now()
	return func(name string) {
		now := c.cfg.now()
		c.cfg.logger.Debug().Str("step", name).Dur("elapsed", now.Sub(last)).Msg("step done")
		last = now
	}
}
