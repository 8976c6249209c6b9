package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseLevel(tt.name); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestOptionsLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want zerolog.Level
	}{
		{"configured level", Options{Level: "warn"}, zerolog.WarnLevel},
		{"verbose", Options{Level: "warn", Verbose: true}, zerolog.DebugLevel},
		{"quiet", Options{Level: "debug", Quiet: true}, zerolog.ErrorLevel},
		{"quiet wins over verbose", Options{Quiet: true, Verbose: true}, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.opts.level(); got != tt.want {
				t.Errorf("level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, closer := New(&buf, Options{Level: "info"})
	defer closer.Close()

	logger.Info().Msg("starting new browser")
	logger.Debug().Msg("hidden")
	logger.Warn().Str("var", "PRINT_TO_PDF_FOO").Msg("unknown environment variable")

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if lines[0] != "starting new browser" {
		t.Errorf("info line = %q, want bare message", lines[0])
	}
	if !strings.HasPrefix(lines[1], "WARN: unknown environment variable") {
		t.Errorf("warn line = %q, want WARN: prefix", lines[1])
	}
	if !strings.Contains(lines[1], "var=PRINT_TO_PDF_FOO") {
		t.Errorf("warn line = %q, want var field", lines[1])
	}
}

func TestNew_Quiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, _ := New(&buf, Options{Quiet: true})

	logger.Info().Msg("opening tab")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}

	logger.Error().Msg("boom")
	if !strings.Contains(buf.String(), "ERROR: boom") {
		t.Errorf("output = %q, want error line", buf.String())
	}
}

func TestNew_Verbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, _ := New(&buf, Options{Verbose: true})

	logger.Debug().Str("step", "launch").Msg("step done")
	if !strings.Contains(buf.String(), "DEBUG: step done") {
		t.Errorf("output = %q, want debug line", buf.String())
	}
}

func TestNew_File(t *testing.T) {
	t.Parallel()

	logFile := filepath.Join(t.TempDir(), "print-to-pdf.log")

	var buf bytes.Buffer
	logger, closer := New(&buf, Options{
		Level:      "info",
		File:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	})

	logger.Info().Str("output", "out.pdf").Msg("writing to disk")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if !strings.Contains(buf.String(), "writing to disk") {
		t.Errorf("console output = %q, want message", buf.String())
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("log file is not a JSON record: %v\n%s", err, data)
	}
	if record["message"] != "writing to disk" {
		t.Errorf("message = %v, want %q", record["message"], "writing to disk")
	}
	if record["output"] != "out.pdf" {
		t.Errorf("output = %v, want %q", record["output"], "out.pdf")
	}
	if _, ok := record["time"]; !ok {
		t.Error("file record should carry a timestamp")
	}
}
