// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package disposition applies oneshot disposition changes (ignore or reset
// to default) to single signals or inclusive numeric ranges.
package disposition

import (
	"context"
	"errors"

	"github.com/vapier/nosig/internal/ctxlog"
	"github.com/vapier/nosig/internal/platform"
	"github.com/vapier/nosig/internal/signame"
	"github.com/vapier/nosig/internal/sigstate"
)

// Engine requests disposition changes against a State.
type Engine struct {
	state sigstate.State
	caps  platform.Caps
}

// New returns an Engine operating on the given state.
func New(state sigstate.State, caps platform.Caps) *Engine {
	return &Engine{state: state, caps: caps}
}

// Ignore requests the ignore disposition for a single signal.
func (e *Engine) Ignore(ctx context.Context, sig int) {
	e.IgnoreRange(ctx, sig, sig)
}

// IgnoreRange requests the ignore disposition for every signal in
// [first, last]. Signals the platform refuses are skipped, never aborting
// the range.
func (e *Engine) IgnoreRange(ctx context.Context, first, last int) {
	e.applyRange(ctx, first, last, e.state.Ignore, "ignore")
}

// Default requests the default disposition for a single signal.
func (e *Engine) Default(ctx context.Context, sig int) {
	e.DefaultRange(ctx, sig, sig)
}

// DefaultRange requests the default disposition for every signal in
// [first, last], with the same soft-failure policy as IgnoreRange.
func (e *Engine) DefaultRange(ctx context.Context, first, last int) {
	e.applyRange(ctx, first, last, e.state.Default, "default")
}

// applyRange attempts each signal independently. A fixed signal (SIGKILL,
// SIGSTOP, reserved numbers) is expected to be refused and is only surfaced
// at debug level; anything else is warned about. Either way the iteration
// continues.
func (e *Engine) applyRange(ctx context.Context, first, last int, op func(int) error, what string) {
	for sig := first; sig <= last; sig++ {
		err := op(sig)
		if err == nil {
			continue
		}

		logFn := ctxlog.Warn
		if errors.Is(err, sigstate.ErrNotSettable) {
			logFn = ctxlog.Debug
		}

		logFn(ctx, "could not change disposition",
			"action", what,
			"signal", signame.Name(sig, e.caps),
			"number", sig,
			"error", err.Error(),
		)
	}
}
