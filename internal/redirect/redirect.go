// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package redirect rewires the standard descriptors to files ahead of
// process replacement.
package redirect

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	// ErrOpen is returned when a redirection target cannot be opened.
	ErrOpen = errors.New("could not open redirection target")
	// ErrDup is returned when a descriptor cannot be duplicated.
	ErrDup = errors.New("could not duplicate descriptor")
)

const devNull = "/dev/null"

// rebind opens path and installs it as oldfd. Output targets are created
// with mode 0666 so the umask applies.
func rebind(oldfd int, path string, flags int) error {
	newfd, err := unix.Open(path, flags, 0o666)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}

	// Pathological edge case: oldfd was closed and the open landed on it.
	if newfd == oldfd {
		return nil
	}

	defer unix.Close(newfd)

	if err := unix.Dup2(newfd, oldfd); err != nil {
		return fmt.Errorf("%w: fd %d: %v", ErrDup, oldfd, err)
	}

	return nil
}

// Stdin redirects standard input from path.
func Stdin(path string) error {
	return rebind(0, path, unix.O_RDONLY)
}

// Stdout redirects standard output to path.
func Stdout(path string) error {
	return rebind(1, path, unix.O_WRONLY|unix.O_CREAT)
}

// Stderr redirects standard error to path.
func Stderr(path string) error {
	return rebind(2, path, unix.O_WRONLY|unix.O_CREAT)
}

// Output redirects both standard output and standard error to path, sharing
// one open file description between them.
func Output(path string) error {
	if err := Stdout(path); err != nil {
		return err
	}

	if err := unix.Dup2(1, 2); err != nil {
		return fmt.Errorf("%w: stdout to stderr: %v", ErrDup, err)
	}

	return nil
}

// NullIO redirects all three standard descriptors to /dev/null.
func NullIO() error {
	if err := Stdin(devNull); err != nil {
		return err
	}

	if err := Stdout(devNull); err != nil {
		return err
	}

	return Stderr(devNull)
}
