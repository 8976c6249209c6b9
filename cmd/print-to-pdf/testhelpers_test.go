package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	printtopdf "github.com/joshuaclayton/print-to-pdf"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake browser and environment
// ---------------------------------------------------------------------------

// fakeLauncher records calls and fails at the configured step.
type fakeLauncher struct {
	mu sync.Mutex

	launchErr error
	openErr   error
	navErr    error
	printErr  error
	pdf       []byte

	launches  int
	navigated []string
	printed   []printtopdf.PrintOptions
	engine    printtopdf.Engine
	opts      printtopdf.LaunchOptions
}

func newFakeLauncher() *fakeLauncher {
	return &fakeLauncher{pdf: []byte("%PDF-1.7\nfake\n%%EOF\n")}
}

func (f *fakeLauncher) Launch(context.Context) (printtopdf.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.launches++
	if f.launchErr != nil {
		return nil, f.launchErr
	}
	return &fakeBrowser{l: f}, nil
}

func (f *fakeLauncher) launchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.launches
}

type fakeBrowser struct{ l *fakeLauncher }

func (b *fakeBrowser) OpenTab(context.Context) (printtopdf.Tab, error) {
	if b.l.openErr != nil {
		return nil, b.l.openErr
	}
	return &fakeTab{l: b.l}, nil
}

func (b *fakeBrowser) Close() error { return nil }

type fakeTab struct{ l *fakeLauncher }

func (t *fakeTab) Navigate(_ context.Context, url string) error {
	t.l.mu.Lock()
	t.l.navigated = append(t.l.navigated, url)
	t.l.mu.Unlock()
	return t.l.navErr
}

func (t *fakeTab) WaitLoad(context.Context) error { return nil }

func (t *fakeTab) PrintToPDF(_ context.Context, opts printtopdf.PrintOptions) ([]byte, error) {
	t.l.mu.Lock()
	t.l.printed = append(t.l.printed, opts)
	t.l.mu.Unlock()
	if t.l.printErr != nil {
		return nil, t.l.printErr
	}
	return t.l.pdf, nil
}

func (t *fakeTab) Close() error { return nil }

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	launcher *fakeLauncher
}

// newTestEnv returns an environment whose process environment is vars only
// and whose browser is l.
func newTestEnv(l *fakeLauncher, vars map[string]string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		NewLauncher: func(engine printtopdf.Engine, opts printtopdf.LaunchOptions) (printtopdf.Launcher, error) {
			l.mu.Lock()
			l.engine, l.opts = engine, opts
			l.mu.Unlock()
			return l, nil
		},
	}
	return &testEnv{Environment: env, stdout: stdout, stderr: stderr, launcher: l}
}

// writeHTML creates an HTML file in a fresh temp dir and returns its path.
func writeHTML(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<html><body><h1>Hi</h1></body></html>"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// cmdline builds a command line with the program name prepended.
func cmdline(a ...string) []string {
	return append([]string{"print-to-pdf"}, a...)
}

// lines splits captured output into trimmed non-empty lines.
func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
