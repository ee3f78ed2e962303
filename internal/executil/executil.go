// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package executil abstracts external command execution so that callers
// shelling out to converter and browser binaries can be tested without
// those binaries installed.
package executil

import "os/exec"

// Executor abstracts command execution for testing.
type Executor interface {
	// LookPath searches for an executable named file on PATH.
	LookPath(file string) (string, error)

	// RunSilent runs a command, discarding its output.
	RunSilent(name string, args ...string) error

	// RunCapture runs a command and returns its combined stdout and stderr.
	RunCapture(name string, args ...string) ([]byte, error)
}

// osExecutor is the production Executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunCapture(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// System is the production Executor used outside tests.
var System Executor = &osExecutor{}
