// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sigstatus renders diagnostic views of the signal environment: the
// table of known signals and the current disposition/mask state. Rendering
// reads state without ever mutating it.
package sigstatus

import (
	"context"
	"fmt"
	"io"
	"syscall"

	"github.com/vapier/nosig/internal/ctxlog"
	"github.com/vapier/nosig/internal/platform"
	"github.com/vapier/nosig/internal/signame"
	"github.com/vapier/nosig/internal/sigstate"
)

// Wider than any signal name we know about.
const nameWidth = 15

func listOne(w io.Writer, name string, num int) {
	fmt.Fprintf(w, "%-*s %2d   %s\n", nameWidth, name, num, syscall.Signal(num).String())
}

// List writes every known signal name to w, realtime aliases included.
func List(w io.Writer, caps platform.Caps) {
	for _, e := range signame.Entries() {
		listOne(w, e.Name, e.Num)
	}

	if !caps.HasRealtime {
		return
	}

	listOne(w, "SIGRTMIN", caps.RTMin)

	for i := 0; i <= caps.Span(); i++ {
		listOne(w, fmt.Sprintf("SIGRTMIN+%d", i), caps.RTMin+i)
	}

	listOne(w, "SIGRTMAX", caps.RTMax)

	for i := 0; i <= caps.Span(); i++ {
		listOne(w, fmt.Sprintf("SIGRTMAX-%d", i), caps.RTMax-i)
	}
}

// Status dumps the disposition of every valid signal (i=ignored, d=default,
// ?=other) followed by the block mask (b=blocked, u=unblocked). At verbosity
// 1 each entry carries the signal name without the SIG prefix; at 2 the full
// name.
func Status(ctx context.Context, w io.Writer, st sigstate.State, caps platform.Caps, verbose int) error {
	if verbose > 0 {
		fmt.Fprint(w, "disp:")
	}

	for sig := 1; sig <= caps.Max(); sig++ {
		c := "?"

		d, err := st.Disposition(sig)
		if err != nil {
			ctxlog.Warn(ctx, "could not read disposition",
				"signal", signame.Name(sig, caps),
				"number", sig,
				"error", err.Error(),
			)
		} else {
			switch d {
			case sigstate.Ignored:
				c = "i"
			case sigstate.Default:
				c = "d"
			case sigstate.Other:
				c = "?"
			}
		}

		fmt.Fprintf(w, " %s", c)
		writeSigLabel(w, sig, caps, verbose)
	}

	fmt.Fprintln(w)

	mask, err := st.ReadMask()
	if err != nil {
		return fmt.Errorf("could not read block mask: %w", err)
	}

	if verbose > 0 {
		fmt.Fprint(w, "mask:")
	}

	for sig := 1; sig <= caps.Max(); sig++ {
		c := "u"
		if mask.Contains(sig) {
			c = "b"
		}

		fmt.Fprintf(w, " %s", c)
		writeSigLabel(w, sig, caps, verbose)
	}

	fmt.Fprintln(w)

	return nil
}

func writeSigLabel(w io.Writer, sig int, caps platform.Caps, verbose int) {
	if verbose == 0 {
		fmt.Fprintf(w, "%d", sig)
		return
	}

	name := signame.Name(sig, caps)
	if verbose == 1 {
		name = name[3:]
	}

	fmt.Fprintf(w, "%s[%d]", name, sig)
}
