package printtopdf

import (
	"context"
	"fmt"

	cdppage "github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Compile-time interface checks
var (
	_ Launcher = (*chromedpLauncher)(nil)
	_ Browser  = (*chromedpBrowser)(nil)
	_ Tab      = (*chromedpTab)(nil)
)

// chromedpLauncher starts Chrome through chromedp's exec allocator.
// Unlike rod it never downloads a browser: Chrome must be installed.
type chromedpLauncher struct {
	opts LaunchOptions
}

func newChromedpLauncher(opts LaunchOptions) *chromedpLauncher {
	return &chromedpLauncher{opts: opts}
}

// allocatorOptions returns the exec allocator flags for opts.
func (c *chromedpLauncher) allocatorOptions() []chromedp.ExecAllocatorOption {
	allocOpts := append([]chromedp.ExecAllocatorOption{},
		chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts,
		chromedp.Flag("headless", c.opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
	)
	if c.opts.BrowserBin != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(c.opts.BrowserBin))
	}
	if c.opts.NoSandbox {
		allocOpts = append(allocOpts, chromedp.NoSandbox)
	}
	return allocOpts
}

// Launch starts the browser eagerly so launch failures surface here rather
// than on the first tab.
func (c *chromedpLauncher) Launch(ctx context.Context) (Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The browser outlives individual calls; ctx only bounds the startup.
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), c.allocatorOptions()...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	b := &chromedpBrowser{
		ctx:         browserCtx,
		cancel:      browserCancel,
		allocCancel: allocCancel,
	}
	// The first Run allocates the browser and ties its lifetime to the
	// context it runs on, so it must run on browserCtx itself.
	if err := runFirst(ctx, browserCtx, browserCancel); err != nil {
		_ = b.Close()
		return nil, err
	}
	return b, nil
}

type chromedpBrowser struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

// OpenTab creates a new target in the running browser.
func (b *chromedpBrowser) OpenTab(ctx context.Context) (Tab, error) {
	tabCtx, tabCancel := chromedp.NewContext(b.ctx)
	if err := runFirst(ctx, tabCtx, tabCancel); err != nil {
		tabCancel()
		return nil, err
	}
	return &chromedpTab{ctx: tabCtx, cancel: tabCancel}, nil
}

// Close shuts the browser down and stops the allocator.
func (b *chromedpBrowser) Close() error {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	if b.allocCancel != nil {
		b.allocCancel()
		b.allocCancel = nil
	}
	return nil
}

type chromedpTab struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func (t *chromedpTab) Navigate(ctx context.Context, url string) error {
	return runWithin(ctx, t.ctx, chromedp.Navigate(url))
}

// WaitLoad waits for the document body to be ready. chromedp.Navigate has
// already waited for the load event by then; this catches documents that
// replace themselves after load.
func (t *chromedpTab) WaitLoad(ctx context.Context) error {
	return runWithin(ctx, t.ctx, chromedp.WaitReady("body", chromedp.ByQuery))
}

func (t *chromedpTab) PrintToPDF(ctx context.Context, opts PrintOptions) ([]byte, error) {
	var buf []byte
	err := runWithin(ctx, t.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		data, _, err := buildChromedpPDFParams(opts).Do(ctx)
		if err != nil {
			return err
		}
		buf = data
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (t *chromedpTab) Close() error {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	return nil
}

// runFirst performs the first Run on a fresh chromedp context. Cancelling
// ctx while it runs tears the new browser or tab down.
func runFirst(ctx, target context.Context, cancelTarget context.CancelFunc) error {
	stop := context.AfterFunc(ctx, cancelTarget)
	defer stop()

	if err := chromedp.Run(target); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", ctxErr, err)
		}
		return err
	}
	return nil
}

// runWithin runs actions on the chromedp context target while honouring the
// deadline and cancellation of the caller's ctx.
func runWithin(ctx, target context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(target)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", ctxErr, err)
		}
		return err
	}
	return nil
}

// buildChromedpPDFParams applies only the options that are set, leaving the
// rest at the protocol defaults.
func buildChromedpPDFParams(opts PrintOptions) *cdppage.PrintToPDFParams {
	params := cdppage.PrintToPDF()
	if opts.Landscape != nil {
		params = params.WithLandscape(*opts.Landscape)
	}
	if opts.PrintBackground != nil {
		params = params.WithPrintBackground(*opts.PrintBackground)
	}
	if opts.Scale != nil {
		params = params.WithScale(*opts.Scale)
	}
	if opts.PaperWidthInches != nil {
		params = params.WithPaperWidth(*opts.PaperWidthInches)
	}
	if opts.PaperHeightInches != nil {
		params = params.WithPaperHeight(*opts.PaperHeightInches)
	}
	if opts.PreferCSSPageSize != nil {
		params = params.WithPreferCSSPageSize(*opts.PreferCSSPageSize)
	}
	return params
}
