// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signame is the table binding symbolic signal names to numbers for
// the standard signals known on the build platform. Realtime signals are
// deliberately not table entries: their numbers are allowed to move as the
// C library reserves from the band, so they are parsed and formatted on the
// fly instead.
package signame

import (
	"strconv"
	"strings"

	"github.com/vapier/nosig/internal/platform"
)

// Entry is an immutable pair of canonical signal name (with the SIG prefix)
// and signal number.
type Entry struct {
	Name string
	Num  int
}

// Entries returns the table in display order. The order doubles as the
// priority order for ByNumber when several names alias one number.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)

	return out
}

// ByName looks up a signal by symbolic name. The leading "SIG" is optional.
// Matching is exact: no case folding is performed.
func ByName(name string) (int, bool) {
	bare := !strings.HasPrefix(name, "SIG")
	for _, e := range table {
		n := e.Name
		if bare {
			n = n[3:]
		}

		if n == name {
			return e.Num, true
		}
	}

	return 0, false
}

// ByNumber returns the canonical name for a standard signal number. When a
// number has several names the first table entry wins; the table order is a
// deliberate choice, not an accident.
func ByNumber(sig int) (string, bool) {
	for _, e := range table {
		if e.Num == sig {
			return e.Name, true
		}
	}

	return "", false
}

// Name returns a display name for any valid signal number, falling back to
// realtime offset notation and finally "SIG???" for numbers nothing can name.
func Name(sig int, caps platform.Caps) string {
	if n, ok := ByNumber(sig); ok {
		return n
	}

	if caps.HasRealtime {
		switch {
		case sig == caps.RTMin:
			return "SIGRTMIN"
		case sig == caps.RTMax:
			return "SIGRTMAX"
		case sig > caps.RTMin && sig < caps.RTMax:
			return "SIGRTMIN+" + strconv.Itoa(sig-caps.RTMin)
		}
	}

	return "SIG???"
}
