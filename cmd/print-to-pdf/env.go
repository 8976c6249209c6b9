package main

import (
	"io"
	"os"
	"time"

	printtopdf "github.com/joshuaclayton/print-to-pdf"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment and the browser factory.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// NewLauncher builds the browser collaborator for an engine.
	NewLauncher func(printtopdf.Engine, printtopdf.LaunchOptions) (printtopdf.Launcher, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Environ:     os.Environ,
		NewLauncher: printtopdf.NewLauncher,
	}
}
