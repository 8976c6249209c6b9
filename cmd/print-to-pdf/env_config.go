package main

import (
	"sort"
	"strings"

	"github.com/joshuaclayton/print-to-pdf/internal/config"
	"github.com/joshuaclayton/print-to-pdf/internal/hints"
)

// envPrefix marks the variables this tool owns.
const envPrefix = "PRINT_TO_PDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // PRINT_TO_PDF_CONFIG: config file name or path
	Layout     string // PRINT_TO_PDF_LAYOUT: legal, slideshow
	Engine     string // PRINT_TO_PDF_ENGINE: rod, chromedp
	Timeout    string // PRINT_TO_PDF_TIMEOUT: Go duration
	LogFile    string // PRINT_TO_PDF_LOG_FILE: JSON log file

	// Shared with rod's own tooling.
	BrowserBin string // ROD_BROWSER_BIN: Chrome executable
	NoSandbox  bool   // ROD_NO_SANDBOX=1
}

// knownEnvVars lists valid PRINT_TO_PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PRINT_TO_PDF_CONFIG":   true,
	"PRINT_TO_PDF_LAYOUT":   true,
	"PRINT_TO_PDF_ENGINE":   true,
	"PRINT_TO_PDF_TIMEOUT":  true,
	"PRINT_TO_PDF_LOG_FILE": true,
	hints.ContainerOverride: true, // read by doctor and error hints
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("PRINT_TO_PDF_CONFIG"),
		Layout:     getenv("PRINT_TO_PDF_LAYOUT"),
		Engine:     getenv("PRINT_TO_PDF_ENGINE"),
		Timeout:    getenv("PRINT_TO_PDF_TIMEOUT"),
		LogFile:    getenv("PRINT_TO_PDF_LOG_FILE"),
		BrowserBin: getenv("ROD_BROWSER_BIN"),
		NoSandbox:  getenv("ROD_NO_SANDBOX") == "1",
	}
}

// unknownEnvVars returns the unrecognized PRINT_TO_PDF_* names in environ,
// sorted. Helps catch typos like PRINT_TO_PDF_LAYUOT.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// applyEnvConfig applies environment variable values to config.
// Set variables replace file values: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Layout != "" {
		cfg.Layout = env.Layout
	}
	if env.Engine != "" {
		cfg.Engine = env.Engine
	}
	if env.Timeout != "" {
		cfg.Timeout = env.Timeout
	}
	if env.LogFile != "" {
		cfg.Log.File = env.LogFile
	}
	if env.BrowserBin != "" {
		cfg.Browser.Bin = env.BrowserBin
	}
	if env.NoSandbox {
		cfg.Browser.NoSandbox = true
	}
}
