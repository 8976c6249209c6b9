// Package yamlutil decodes configuration YAML through goccy/go-yaml behind a
// size guard, so callers never import the YAML library directly.
package yamlutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps accepted documents at 64KB. Print configs are a handful
// of keys; anything larger is a mistake.
var MaxInputSize = 64 << 10

// Sentinel errors for YAML decoding.
var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict decodes data into v and rejects unknown keys, which
// catches typos such as "layuot:" in config files.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return tooLarge(int64(len(data)))
	case v == nil:
		return ErrNilDestination
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// DecodeFileStrict reads path and decodes it with UnmarshalStrict. Oversized
// files are rejected from their size alone, before being read. Errors from
// opening the file are returned unwrapped by this package, so
// errors.Is(err, fs.ErrNotExist) works.
func DecodeFileStrict(path string, v any) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > int64(MaxInputSize) {
		return tooLarge(info.Size())
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path chosen by the user
	if err != nil {
		return err
	}
	return UnmarshalStrict(data, v)
}

func tooLarge(n int64) error {
	return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, n, MaxInputSize)
}
