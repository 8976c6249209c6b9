package printtopdf

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/joshuaclayton/print-to-pdf/internal/process"
)

// Compile-time interface checks
var (
	_ Launcher = (*rodLauncher)(nil)
	_ Browser  = (*rodBrowser)(nil)
	_ Tab      = (*rodTab)(nil)
)

// rodLauncher starts Chrome through go-rod.
// Rod downloads a managed Chromium on first run if none is found.
type rodLauncher struct {
	opts LaunchOptions
}

func newRodLauncher(opts LaunchOptions) *rodLauncher {
	return &rodLauncher{opts: opts}
}

// Launch starts a browser process and connects to it over CDP.
func (r *rodLauncher) Launch(ctx context.Context) (Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := launcher.New().Context(ctx).Headless(r.opts.Headless)
	if r.opts.BrowserBin != "" {
		l = l.Bin(r.opts.BrowserBin)
	}
	if r.opts.NoSandbox {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		l.Kill()
		return nil, err
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		killLauncher(l)
		return nil, err
	}

	return &rodBrowser{browser: browser, launcher: l}, nil
}

// rodBrowser owns the browser connection and the launched process.
type rodBrowser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// OpenTab creates a blank page.
func (b *rodBrowser) OpenTab(ctx context.Context) (Tab, error) {
	page, err := b.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	return &rodTab{page: page}, nil
}

// Close closes the browser and kills whatever is left of its process tree.
func (b *rodBrowser) Close() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		killLauncher(b.launcher)
		b.launcher = nil
	}
	return err
}

// killLauncher terminates the launched process group and removes the
// temporary user data dir.
func killLauncher(l *launcher.Launcher) {
	if pid := l.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	l.Kill()
	l.Cleanup()
}

type rodTab struct {
	page *rod.Page
}

func (t *rodTab) Navigate(ctx context.Context, url string) error {
	return t.page.Context(ctx).Navigate(url)
}

func (t *rodTab) WaitLoad(ctx context.Context) error {
	return t.page.Context(ctx).WaitLoad()
}

func (t *rodTab) PrintToPDF(ctx context.Context, opts PrintOptions) ([]byte, error) {
	reader, err := t.page.Context(ctx).PDF(buildRodPDFOptions(opts))
	if err != nil {
		return nil, err
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading PDF stream: %w", err)
	}
	return pdfBuf, nil
}

func (t *rodTab) Close() error {
	if t.page == nil {
		return nil
	}
	err := t.page.Close()
	t.page = nil
	return err
}

// buildRodPDFOptions maps PrintOptions onto rod's protocol struct.
// Unset optional numbers stay nil; unset booleans stay false, which is the
// protocol default for all of them.
func buildRodPDFOptions(opts PrintOptions) *proto.PagePrintToPDF {
	req := &proto.PagePrintToPDF{
		Landscape:         boolValue(opts.Landscape),
		PrintBackground:   boolValue(opts.PrintBackground),
		PreferCSSPageSize: boolValue(opts.PreferCSSPageSize),
	}
	if opts.Scale != nil {
		req.Scale = floatPtr(*opts.Scale)
	}
	if opts.PaperWidthInches != nil {
		req.PaperWidth = floatPtr(*opts.PaperWidthInches)
	}
	if opts.PaperHeightInches != nil {
		req.PaperHeight = floatPtr(*opts.PaperHeightInches)
	}
	return req
}
