package printtopdf

import (
	"time"

	"github.com/rs/zerolog"
)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
	logger  zerolog.Logger
	now     func() time.Time
}

// Option configures a Converter.
type Option func(*Converter)

// WithLauncher sets the browser collaborator.
// Panics if l is nil (programmer error).
func WithLauncher(l Launcher) Option {
	if l == nil {
		panic("printtopdf: WithLauncher launcher must not be nil")
	}
	return func(c *Converter) {
		c.launcher = l
	}
}

// WithTimeout bounds the whole browser interaction. Zero (the default)
// means no timeout: an unresponsive page blocks until the context is
// cancelled.
// Panics if d < 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("printtopdf: WithTimeout duration must not be negative")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithLogger sets the logger that receives progress messages.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = l
	}
}
