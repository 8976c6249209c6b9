package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joshuaclayton/print-to-pdf/internal/fileutil"
	"github.com/joshuaclayton/print-to-pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// appDirName is the directory under os.UserConfigDir searched for configs.
const appDirName = "print-to-pdf"

// Field length limits.
const (
	MaxLayoutLength   = 20
	MaxEngineLength   = 20
	MaxTimeoutLength  = 20
	MaxPathLength     = 4096
	MaxLogLevelLength = 10
)

// Config holds everything a conversion can be configured with besides the
// input and output paths.
type Config struct {
	Layout  string        `yaml:"layout"`  // "legal", "slideshow" (default: "legal")
	Scale   *float64      `yaml:"scale"`   // nil = preset scale
	Engine  string        `yaml:"engine"`  // "rod", "chromedp" (default: "rod")
	Timeout string        `yaml:"timeout"` // Go duration, "" or "0" = none
	Browser BrowserConfig `yaml:"browser"`
	Log     LogConfig     `yaml:"log"`
}

// BrowserConfig defines how Chrome is started.
type BrowserConfig struct {
	Bin       string `yaml:"bin"`       // Empty = engine default lookup
	NoSandbox bool   `yaml:"noSandbox"` // Required when running as root
}

// LogConfig defines diagnostic logging. Progress always goes to stderr;
// File additionally receives JSON records, rotated by size.
type LogConfig struct {
	Level      string `yaml:"level"` // "debug", "info", "warn", "error" (default: "info")
	File       string `yaml:"file"`  // Empty = no log file
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// Default log rotation settings.
const (
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// DefaultConfig returns the configuration used when no file is given.
// Layout and engine are left empty so that "not set" stays distinguishable
// from an explicit value when flags and environment are merged in.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
	}
}

// TimeoutDuration parses Timeout. Empty means no timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(c.Timeout))
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: timeout %q must not be negative", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

// Validate checks field lengths and values that can be checked without
// knowing which layouts or engines exist; those are parsed by their owners.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := validateFieldLength("layout", c.Layout, MaxLayoutLength); err != nil {
		return err
	}
	if err := validateFieldLength("engine", c.Engine, MaxEngineLength); err != nil {
		return err
	}
	if err := validateFieldLength("timeout", c.Timeout, MaxTimeoutLength); err != nil {
		return err
	}
	if err := validateFieldLength("browser.bin", c.Browser.Bin, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("log.file", c.Log.File, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("log.level", c.Log.Level, MaxLogLevelLength); err != nil {
		return err
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	if c.Scale != nil && *c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidValue, *c.Scale)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log rotation settings must not be negative", ErrInvalidValue)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Missing log settings keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
