package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Layout != "" {
		t.Errorf("Layout = %q, want empty", cfg.Layout)
	}
	if cfg.Scale != nil {
		t.Errorf("Scale = %v, want nil", *cfg.Scale)
	}
	if cfg.Engine != "" {
		t.Errorf("Engine = %q, want empty", cfg.Engine)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.MaxSizeMB != DefaultLogMaxSizeMB {
		t.Errorf("Log.MaxSizeMB = %d, want %d", cfg.Log.MaxSizeMB, DefaultLogMaxSizeMB)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"under limit", "legal", 20, false},
		{"at limit", strings.Repeat("a", 20), 20, false},
		{"over limit", strings.Repeat("a", 21), 20, true},
		{"empty", "", 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("layout", tt.value, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

func TestConfig_TimeoutDuration(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
		want    time.Duration
		wantErr bool
	}{
		{"empty means none", "", 0, false},
		{"whitespace means none", "  ", 0, false},
		{"zero", "0", 0, false},
		{"seconds", "45s", 45 * time.Second, false},
		{"minutes", "2m", 2 * time.Minute, false},
		{"garbage", "soon", 0, true},
		{"negative", "-5s", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Timeout: tt.timeout}
			got, err := cfg.TimeoutDuration()
			if (err != nil) != tt.wantErr {
				t.Fatalf("TimeoutDuration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("error = %v, want ErrInvalidValue", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("TimeoutDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	negative := -0.5
	zero := 0.0

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"defaults are valid", func(*Config) {}, nil},
		{"layout too long", func(c *Config) { c.Layout = strings.Repeat("x", MaxLayoutLength+1) }, ErrFieldTooLong},
		{"engine too long", func(c *Config) { c.Engine = strings.Repeat("x", MaxEngineLength+1) }, ErrFieldTooLong},
		{"browser bin too long", func(c *Config) { c.Browser.Bin = strings.Repeat("x", MaxPathLength+1) }, ErrFieldTooLong},
		{"bad timeout", func(c *Config) { c.Timeout = "forever" }, ErrInvalidValue},
		{"negative scale", func(c *Config) { c.Scale = &negative }, ErrInvalidValue},
		{"zero scale", func(c *Config) { c.Scale = &zero }, ErrInvalidValue},
		{"unknown log level", func(c *Config) { c.Log.Level = "chatty" }, ErrInvalidValue},
		{"log level is case-insensitive", func(c *Config) { c.Log.Level = "DEBUG" }, nil},
		{"negative rotation", func(c *Config) { c.Log.MaxBackups = -1 }, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "print.yaml")
		content := `layout: slideshow
scale: 0.75
engine: chromedp
timeout: 45s
browser:
  bin: /usr/bin/chromium
  noSandbox: true
log:
  level: debug
  file: /tmp/print-to-pdf.log
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Layout != "slideshow" {
			t.Errorf("Layout = %q, want %q", cfg.Layout, "slideshow")
		}
		if cfg.Scale == nil || *cfg.Scale != 0.75 {
			t.Errorf("Scale = %v, want 0.75", cfg.Scale)
		}
		if cfg.Engine != "chromedp" {
			t.Errorf("Engine = %q, want %q", cfg.Engine, "chromedp")
		}
		if d, _ := cfg.TimeoutDuration(); d != 45*time.Second {
			t.Errorf("TimeoutDuration() = %v, want 45s", d)
		}
		if cfg.Browser.Bin != "/usr/bin/chromium" || !cfg.Browser.NoSandbox {
			t.Errorf("Browser = %+v, want bin and noSandbox set", cfg.Browser)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
		}
	})

	t.Run("omitted log settings keep defaults", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "print.yaml")
		if err := os.WriteFile(configPath, []byte("layout: legal\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Log.MaxBackups != DefaultLogMaxBackups {
			t.Errorf("Log.MaxBackups = %d, want %d", cfg.Log.MaxBackups, DefaultLogMaxBackups)
		}
		if cfg.Scale != nil {
			t.Errorf("Scale = %v, want nil", *cfg.Scale)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown name returns ErrConfigNotFound listing search paths", func(t *testing.T) {
		_, err := LoadConfig("no-such-print-config-xyz")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "no-such-print-config-xyz.yaml") {
			t.Errorf("error %q should list the tried paths", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("layout: [unclosed"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "typo.yaml")
		if err := os.WriteFile(configPath, []byte("layuot: slideshow\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(configPath, []byte("timeout: whenever\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	paths := SearchPaths("print")

	if len(paths) < 2 {
		t.Fatalf("SearchPaths() returned %d paths, want at least 2", len(paths))
	}
	if paths[0] != "print.yaml" || paths[1] != "print.yml" {
		t.Errorf("first paths = %v, want current directory .yaml then .yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, appDirName) {
			t.Errorf("user path %q should be under %q", p, appDirName)
		}
	}
}
