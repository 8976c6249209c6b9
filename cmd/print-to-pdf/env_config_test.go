package main

// Notes:
// - loadEnvConfig takes a getenv function, so these tests never touch the
//   process environment and can run in parallel.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"reflect"
	"testing"

	"github.com/joshuaclayton/print-to-pdf/internal/config"
)

func mapGetenv(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Reading PRINT_TO_PDF_* and ROD_* variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want envConfig
	}{
		{
			name: "empty environment",
			vars: nil,
			want: envConfig{},
		},
		{
			name: "all variables",
			vars: map[string]string{
				"PRINT_TO_PDF_CONFIG":   "team",
				"PRINT_TO_PDF_LAYOUT":   "slideshow",
				"PRINT_TO_PDF_ENGINE":   "chromedp",
				"PRINT_TO_PDF_TIMEOUT":  "1m",
				"PRINT_TO_PDF_LOG_FILE": "/var/log/print.log",
				"ROD_BROWSER_BIN":       "/opt/chrome",
				"ROD_NO_SANDBOX":        "1",
			},
			want: envConfig{
				ConfigPath: "team",
				Layout:     "slideshow",
				Engine:     "chromedp",
				Timeout:    "1m",
				LogFile:    "/var/log/print.log",
				BrowserBin: "/opt/chrome",
				NoSandbox:  true,
			},
		},
		{
			name: "ROD_NO_SANDBOX must be exactly 1",
			vars: map[string]string{"ROD_NO_SANDBOX": "true"},
			want: envConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := loadEnvConfig(mapGetenv(tt.vars))
			if *got != tt.want {
				t.Errorf("loadEnvConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestUnknownEnvVars(t *testing.T) {
	t.Parallel()

	environ := []string{
		"HOME=/root",
		"PRINT_TO_PDF_LAYOUT=legal",
		"PRINT_TO_PDF_LAYUOT=legal",
		"PRINT_TO_PDF_SCALE=0.5",
		"ROD_NO_SANDBOX=1",
		"PRINT_TO_PDF_CONTAINER=1",
		"PRINT_TO_PDF_EMPTY=",
	}

	got := unknownEnvVars(environ)
	want := []string{"PRINT_TO_PDF_EMPTY", "PRINT_TO_PDF_LAYUOT", "PRINT_TO_PDF_SCALE"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unknownEnvVars() = %v, want %v", got, want)
	}

	if got := unknownEnvVars([]string{"PATH=/bin"}); len(got) != 0 {
		t.Errorf("unknownEnvVars() = %v, want none", got)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Environment overrides the config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set variables replace file values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Layout = "legal"
		cfg.Engine = "rod"
		cfg.Browser.Bin = "/usr/bin/chromium"

		applyEnvConfig(&envConfig{
			Layout:     "slideshow",
			Engine:     "chromedp",
			Timeout:    "10s",
			LogFile:    "/tmp/p.log",
			BrowserBin: "/opt/chrome",
			NoSandbox:  true,
		}, cfg)

		if cfg.Layout != "slideshow" {
			t.Errorf("Layout = %q, want slideshow", cfg.Layout)
		}
		if cfg.Engine != "chromedp" {
			t.Errorf("Engine = %q, want chromedp", cfg.Engine)
		}
		if cfg.Timeout != "10s" {
			t.Errorf("Timeout = %q, want 10s", cfg.Timeout)
		}
		if cfg.Log.File != "/tmp/p.log" {
			t.Errorf("Log.File = %q, want /tmp/p.log", cfg.Log.File)
		}
		if cfg.Browser.Bin != "/opt/chrome" {
			t.Errorf("Browser.Bin = %q, want /opt/chrome", cfg.Browser.Bin)
		}
		if !cfg.Browser.NoSandbox {
			t.Error("Browser.NoSandbox should be true")
		}
	})

	t.Run("unset variables keep file values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Layout = "slideshow"
		cfg.Browser.NoSandbox = true

		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Layout != "slideshow" {
			t.Errorf("Layout = %q, want slideshow", cfg.Layout)
		}
		if !cfg.Browser.NoSandbox {
			t.Error("Browser.NoSandbox from file should survive an unset ROD_NO_SANDBOX")
		}
	})
}
