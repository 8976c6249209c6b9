// Package logging builds the zerolog loggers used by the CLI.
//
// Progress goes to a plain console writer (no colour, no timestamp) so the
// lines read like messages rather than records. An optional log file
// receives the same events as JSON, rotated by lumberjack.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the level and destinations of a logger.
type Options struct {
	Level   string // "debug", "info", "warn", "error"; unknown falls back to info
	Quiet   bool   // errors only; wins over Verbose
	Verbose bool   // debug

	File       string // empty = console only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// level resolves the effective level: -q, then -v, then the configured name.
func (o Options) level() zerolog.Level {
	switch {
	case o.Quiet:
		return zerolog.ErrorLevel
	case o.Verbose:
		return zerolog.DebugLevel
	default:
		return ParseLevel(o.Level)
	}
}

// New returns a logger writing to console and, when opts.File is set, to a
// rotated JSON file. The returned closer releases the file; it is safe to
// call when no file was configured.
func New(console io.Writer, opts Options) (zerolog.Logger, io.Closer) {
	var (
		w      io.Writer = newConsoleWriter(console)
		closer io.Closer = nopCloser{}
	)

	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		w = zerolog.MultiLevelWriter(w, file)
		closer = file
	}

	logger := zerolog.New(w).Level(opts.level())
	if opts.File != "" {
		logger = logger.With().Timestamp().Logger()
	}
	return logger, closer
}

// newConsoleWriter prints "message key=value" for info and
// "LEVEL message key=value" for everything else.
func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       true,
		PartsOrder:    []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FieldsExclude: []string{zerolog.TimestampFieldName},
		FormatLevel: func(i any) string {
			lvl, _ := i.(string)
			if lvl == "" || lvl == zerolog.LevelInfoValue {
				return ""
			}
			return strings.ToUpper(lvl) + ":"
		},
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
