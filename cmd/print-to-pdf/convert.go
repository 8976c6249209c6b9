package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	printtopdf "github.com/joshuaclayton/print-to-pdf"
	"github.com/joshuaclayton/print-to-pdf/internal/config"
	"github.com/joshuaclayton/print-to-pdf/internal/hints"
	"github.com/joshuaclayton/print-to-pdf/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput  = errors.New("--html-path is required")
	ErrNoOutput = errors.New("--out is required")
)

// runConvert loads configuration, validates everything that can be checked
// without a browser, then runs one conversion. Errors carry a hint when one
// applies.
func runConvert(ctx context.Context, flags *convertFlags, env *Environment) error {
	envCfg := loadEnvConfig(env.Getenv)

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			err = fmt.Errorf("loading config: %w", err)
			if errors.Is(err, config.ErrConfigNotFound) {
				return withHint(err, hints.ForConfigNotFound(config.SearchPaths(configName)))
			}
			return err
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	logger, closer := logging.New(env.Stderr, logging.Options{
		Level:      cfg.Log.Level,
		Quiet:      flags.common.quiet,
		Verbose:    flags.common.verbose,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	defer func() { _ = closer.Close() }()

	for _, name := range unknownEnvVars(env.Environ()) {
		logger.Warn().Str("var", name).Msg("unknown environment variable (typo?)")
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug().Msgf(format, args...)
	}))

	params, err := resolveParams(flags, cfg)
	if err != nil {
		return err
	}

	req, err := printtopdf.NewConversionRequest(params.htmlPath, params.outputPath,
		printtopdf.BuildPrintOptions(params.layout, params.scale))
	if err != nil {
		return withHint(err, hintFor(err, params, env.Getenv))
	}

	launcher, err := env.NewLauncher(params.engine, params.launch)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("layout", params.layout.String()).
		Str("engine", string(params.engine)).
		Dur("timeout", params.timeout).
		Str("source", req.SourcePath()).
		Msg("resolved request")

	conv := printtopdf.NewConverter(
		printtopdf.WithLauncher(launcher),
		printtopdf.WithTimeout(params.timeout),
		printtopdf.WithLogger(logger),
	)
	if err := conv.Convert(ctx, req); err != nil {
		return withHint(err, hintFor(err, params, env.Getenv))
	}
	return nil
}

// conversionParams is the fully resolved, validated input of one run.
type conversionParams struct {
	htmlPath   string
	outputPath string
	layout     printtopdf.PageLayout
	scale      *float64
	engine     printtopdf.Engine
	timeout    time.Duration
	launch     printtopdf.LaunchOptions
}

// resolveParams validates the merged configuration. Nothing here touches
// the browser, so a bad layout or engine never launches one.
func resolveParams(flags *convertFlags, cfg *config.Config) (*conversionParams, error) {
	if strings.TrimSpace(flags.htmlPath) == "" {
		return nil, fmt.Errorf("%w: %w", ErrUsage, ErrNoInput)
	}
	if strings.TrimSpace(flags.out) == "" {
		return nil, fmt.Errorf("%w: %w", ErrUsage, ErrNoOutput)
	}

	// An explicit --layout= is rejected like any other unknown name.
	layoutName := cfg.Layout
	if layoutName == "" && !flags.layoutSet {
		layoutName = printtopdf.DefaultLayout.String()
	}
	layout, err := printtopdf.ParseLayout(layoutName)
	if err != nil {
		return nil, withHint(err, hints.ForChoice(printtopdf.LayoutNames()))
	}

	engine, err := printtopdf.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, withHint(err, hints.ForChoice(printtopdf.EngineNames()))
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", printtopdf.ErrInvalidTimeout, err)
	}

	launch := printtopdf.DefaultLaunchOptions()
	launch.BrowserBin = cfg.Browser.Bin
	launch.NoSandbox = cfg.Browser.NoSandbox

	return &conversionParams{
		htmlPath:   flags.htmlPath,
		outputPath: flags.out,
		layout:     layout,
		scale:      cfg.Scale,
		engine:     engine,
		timeout:    timeout,
		launch:     launch,
	}, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.layoutSet || flags.layout != "" {
		cfg.Layout = flags.layout
	}
	if flags.scaleSet {
		scale := flags.scale
		cfg.Scale = &scale
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.browser.engine != "" {
		cfg.Engine = flags.browser.engine
	}
	if flags.browser.bin != "" {
		cfg.Browser.Bin = flags.browser.bin
	}
	if flags.browser.noSandbox {
		cfg.Browser.NoSandbox = true
	}
}

// hintFor returns an actionable hint for a conversion error, or "".
func hintFor(err error, params *conversionParams, getenv hints.Getenv) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, printtopdf.ErrBrowserLaunch):
		return hints.ForBrowserConnect(getenv, hints.BrowserSetup{
			Engine:    string(params.engine),
			Bin:       params.launch.BrowserBin,
			NoSandbox: params.launch.NoSandbox,
		})
	case errors.Is(err, printtopdf.ErrPathResolution):
		return hints.ForInputPath()
	case errors.Is(err, printtopdf.ErrOutputWrite):
		return hints.ForOutputDirectory()
	}
	return ""
}

// withHint appends hint to the message of err, keeping it matchable with errors.Is.
func withHint(err error, hint string) error {
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
