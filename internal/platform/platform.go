// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package platform exposes the signal capabilities of the running platform:
// the highest standard signal number, the usable realtime band (if any), and
// which signals the platform considers fillable by the "all signals" mask
// primitive. The capabilities are queried once and cached for the lifetime of
// the process.
package platform

import "sync"

// Caps describes the signal capabilities of the running platform.
type Caps struct {
	// StdMax is the highest standard (non-realtime) signal number.
	StdMax int
	// RTMin and RTMax bound the usable realtime band. They are zero when
	// HasRealtime is false. The band excludes any low realtime numbers the
	// C library reserves for its own use, so it may be narrower than the
	// kernel's raw range.
	RTMin int
	RTMax int
	// HasRealtime reports whether the platform has a realtime signal band.
	HasRealtime bool
}

// Max returns the highest valid signal number.
func (c Caps) Max() int {
	if c.HasRealtime {
		return c.RTMax
	}

	return c.StdMax
}

// Span returns the width of the realtime band, or zero without realtime
// support. An offset expression like RTMIN+n is valid for n in [0, Span].
func (c Caps) Span() int {
	if !c.HasRealtime {
		return 0
	}

	return c.RTMax - c.RTMin
}

// Fillable reports whether sig belongs to the platform's "all signals" set.
// Signals in the reserved band between the standard signals and RTMin are
// excluded, matching what the C library's fill primitive does.
func (c Caps) Fillable(sig int) bool {
	if sig < 1 || sig > c.Max() {
		return false
	}

	if c.HasRealtime && sig > c.StdMax && sig < c.RTMin {
		return false
	}

	return true
}

// Reserved reports whether sig lies in the band the C library reserves
// between the standard signals and the usable realtime range.
func (c Caps) Reserved(sig int) bool {
	return c.HasRealtime && sig > c.StdMax && sig < c.RTMin
}

var (
	queryOnce sync.Once
	cached    Caps
)

// Current returns the capabilities of the running platform. The underlying
// query happens once; subsequent calls return the cached value.
func Current() Caps {
	queryOnce.Do(func() {
		cached = query()
	})

	return cached
}
