// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix && !linux

package sigstate

import (
	"fmt"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/vapier/nosig/internal/sigset"
)

// The portable implementation goes through os/signal, which can install the
// ignore disposition and restore the default one but exposes neither a
// disposition query nor the block mask. Mask operations degrade to
// ErrUnsupported and are reported as warnings by the engines.
type processState struct{}

// Process returns the handle on the calling process's signal state.
func Process() State {
	runtime.LockOSThread()

	return processState{}
}

func fixed(sig int) bool {
	return sig == int(unix.SIGKILL) || sig == int(unix.SIGSTOP)
}

func (processState) Ignore(sig int) error {
	if fixed(sig) {
		return fmt.Errorf("%w: signal %d", ErrNotSettable, sig)
	}

	signal.Ignore(syscall.Signal(sig))

	return nil
}

func (processState) Default(sig int) error {
	if fixed(sig) {
		return fmt.Errorf("%w: signal %d", ErrNotSettable, sig)
	}

	signal.Reset(syscall.Signal(sig))

	return nil
}

func (processState) Disposition(sig int) (Disposition, error) {
	if fixed(sig) {
		return Default, nil
	}

	return Other, ErrUnsupported
}

func (processState) ApplyMask(how How, set *sigset.Set) error {
	return ErrUnsupported
}

func (processState) ReadMask() (*sigset.Set, error) {
	return nil, ErrUnsupported
}
