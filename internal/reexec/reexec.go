// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package reexec replaces the current process image with the target program
// and owns the fixed exit-status contract. The statuses follow the
// POSIX/nohup/env convention so scripts can tell "the launcher failed" apart
// from "the target failed".
package reexec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// The fixed exit statuses. Anything else a nosig process exits with was
// inherited verbatim from the replaced program image.
const (
	// ExitOK means an informational option was handled.
	ExitOK = 0
	// ExitErr covers every internal failure: bad signal spec, bad option,
	// redirection failure, and so on.
	ExitErr = 125
	// ExitNotExecutable means the target program was found but could not
	// be executed.
	ExitNotExecutable = 126
	// ExitNotFound means the target program could not be found.
	ExitNotFound = 127
)

// ErrMissingProgram is returned when no target program remains after the
// options.
var ErrMissingProgram = errors.New("missing program to run")

// ExitError carries one of the contract exit statuses up to main.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit wraps err with a contract exit status.
func Exit(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// Execve is the raw process-replacement primitive. It is a package variable
// so tests can substitute a recorder.
var Execve = unix.Exec

// Run resolves argv[0] (via PATH when it carries no slash) and replaces the
// current process image. On success it never returns; any return value is an
// *ExitError with the appropriate contract status.
func Run(argv, env []string) error {
	if len(argv) == 0 {
		return Exit(ExitErr, ErrMissingProgram)
	}

	path := argv[0]

	if !strings.Contains(path, "/") {
		found, err := exec.LookPath(path)
		if err != nil {
			// execvp remembers EACCES during the PATH walk and reports
			// it when nothing else matches; LookPath collapses that
			// into "not found". Distinguish the two so the exit status
			// says "found but not executable".
			if errors.Is(err, exec.ErrNotFound) && matchedNotExecutable(path) {
				err = fs.ErrPermission
			}

			return Exit(classify(err), fmt.Errorf("%s: %w", argv[0], err))
		}

		path = found
	}

	err := Execve(path, argv, env)

	return Exit(classify(err), fmt.Errorf("%s: %w", argv[0], err))
}

// matchedNotExecutable reports whether some PATH entry holds name as a
// regular file that cannot be executed.
func matchedNotExecutable(name string) bool {
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}

		candidate := filepath.Join(dir, name)

		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}

		if unix.Access(candidate, unix.X_OK) != nil {
			return true
		}
	}

	return false
}

func classify(err error) int {
	switch {
	case errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, fs.ErrPermission):
		return ExitNotExecutable
	default:
		return ExitErr
	}
}
