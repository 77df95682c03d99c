// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sigstate

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/vapier/nosig/internal/platform"
	"github.com/vapier/nosig/internal/sigset"
)

// Raw sigaction handler values and the kernel's sigset size in bytes.
const (
	sigActDefault = 0 // SIG_DFL
	sigActIgnore  = 1 // SIG_IGN
	sigsetBytes   = 8
)

// sigactiont mirrors the kernel's struct sigaction on 64-bit Linux.
type sigactiont struct {
	handler  uintptr
	flags    uint64
	restorer uintptr
	mask     uint64
}

type processState struct{}

// Process returns the handle on the calling process's signal state.
//
// It locks the calling goroutine to its OS thread: the block mask is
// per-thread state, and a later exec must happen from the same thread for
// the mask to carry into the new program image.
func Process() State {
	runtime.LockOSThread()

	return processState{}
}

// rtSigaction calls the raw syscall instead of going through os/signal: we
// need real SIG_IGN/SIG_DFL dispositions installed at the OS level (they are
// what survives exec), not the Go runtime's notion of a handled signal.
func rtSigaction(sig int, act, old *sigactiont) error {
	_, _, errno := unix.Syscall6(unix.SYS_RT_SIGACTION,
		uintptr(sig),
		uintptr(unsafe.Pointer(act)),
		uintptr(unsafe.Pointer(old)),
		sigsetBytes, 0, 0)
	if errno != 0 {
		return errno
	}

	return nil
}

func setDisposition(sig int, handler uintptr) error {
	// The raw syscall would happily act on the numbers the C library
	// reserves below the usable realtime band; refuse them with the same
	// error the C library gives.
	if platform.Current().Reserved(sig) {
		return fmt.Errorf("%w: signal %d", ErrNotSettable, sig)
	}

	act := sigactiont{handler: handler}

	err := rtSigaction(sig, &act, nil)
	if err == unix.EINVAL {
		return fmt.Errorf("%w: signal %d", ErrNotSettable, sig)
	}

	return err
}

func (processState) Ignore(sig int) error {
	return setDisposition(sig, sigActIgnore)
}

func (processState) Default(sig int) error {
	return setDisposition(sig, sigActDefault)
}

func (processState) Disposition(sig int) (Disposition, error) {
	if platform.Current().Reserved(sig) {
		return Default, nil
	}

	var old sigactiont

	err := rtSigaction(sig, nil, &old)
	if err != nil {
		if err == unix.EINVAL {
			// SIGKILL/SIGSTOP style signals always act by default.
			return Default, nil
		}

		return Other, err
	}

	switch old.handler {
	case sigActIgnore:
		return Ignored, nil
	case sigActDefault:
		return Default, nil
	default:
		return Other, nil
	}
}

func (processState) ApplyMask(how How, set *sigset.Set) error {
	native := nativeSigset(set)

	return unix.PthreadSigmask(unixHow(how), &native, nil)
}

func (processState) ReadMask() (*sigset.Set, error) {
	var native unix.Sigset_t
	if err := unix.PthreadSigmask(unix.SIG_BLOCK, nil, &native); err != nil {
		return nil, err
	}

	out := sigset.New()
	out.SetWords([2]uint64{native.Val[0], native.Val[1]})

	return out, nil
}

func nativeSigset(set *sigset.Set) unix.Sigset_t {
	words := set.Words()

	var native unix.Sigset_t
	native.Val[0] = words[0]
	native.Val[1] = words[1]

	return native
}

func unixHow(how How) int {
	switch how {
	case Block:
		return unix.SIG_BLOCK
	case Unblock:
		return unix.SIG_UNBLOCK
	default:
		return unix.SIG_SETMASK
	}
}
