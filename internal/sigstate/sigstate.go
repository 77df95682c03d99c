// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sigstate

import (
	"errors"

	"github.com/vapier/nosig/internal/sigset"
)

var (
	// ErrNotSettable is returned when the platform refuses a disposition
	// change because the signal is fixed (SIGKILL, SIGSTOP, or a number
	// the C library reserves for itself).
	ErrNotSettable = errors.New("signal disposition is fixed by the platform")
	// ErrUnsupported is returned where the platform has no usable mask or
	// disposition-query primitive.
	ErrUnsupported = errors.New("operation not supported on this platform")
)

// Disposition is how the process currently reacts to a signal.
type Disposition int

const (
	// Default means the signal triggers its default action.
	Default Disposition = iota
	// Ignored means the signal is discarded on delivery.
	Ignored
	// Other means some handler outside our control is installed.
	Other
)

// How selects the semantics of a mask application.
type How int

const (
	// Block adds the set to the block mask.
	Block How = iota
	// Unblock removes the set from the block mask.
	Unblock
	// SetMask replaces the block mask with the set.
	SetMask
)

// State is the resource handle for the process signal state.
type State interface {
	// Ignore requests the ignore disposition for sig.
	Ignore(sig int) error
	// Default requests the default disposition for sig.
	Default(sig int) error
	// Disposition reads the current disposition of sig without mutating it.
	Disposition(sig int) (Disposition, error)
	// ApplyMask applies set to the process block mask.
	ApplyMask(how How, set *sigset.Set) error
	// ReadMask returns the current block mask without mutating it.
	ReadMask() (*sigset.Set, error)
}
