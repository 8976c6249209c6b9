// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrIsDirectory = errors.New("path is a directory")
	ErrRemoteURL   = errors.New("remote URLs are not supported")
	ErrNoOutputDir = errors.New("output directory does not exist")
	ErrOutputIsDir = errors.New("output path is a directory")
)

// CanonicalPath resolves path against the current working directory,
// follows symlinks and checks that the result is an existing regular file.
func CanonicalPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrEmptyPath
	}
	if IsURL(path) {
		return "", fmt.Errorf("%w: %s", ErrRemoteURL, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("making %s absolute: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, resolved)
	}
	return resolved, nil
}

// FileURL builds a file:// URL for an absolute filesystem path.
// Characters that are not valid in a URL path (spaces, '#', '?') are escaped.
func FileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	// Windows drive paths ("C:/x") need a leading slash: file:///C:/x
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// ResolveFileURL combines CanonicalPath and FileURL.
// Returns the canonical path alongside the URL.
func ResolveFileURL(path string) (absPath, fileURL string, err error) {
	absPath, err = CanonicalPath(path)
	if err != nil {
		return "", "", err
	}
	return absPath, FileURL(absPath), nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place, so path is either left untouched or fully replaced.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNoOutputDir, dir)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNoOutputDir, dir)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputIsDir, path)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("syncing temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, perm); chmodErr != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", chmodErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, renameErr)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "print" -> false (name)
//   - "./print.yaml" -> true (relative path)
//   - "/etc/print-to-pdf/print.yaml" -> true (absolute)
//   - "C:\config\print.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a remote URL.
func IsURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
