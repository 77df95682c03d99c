// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sigmask applies signal sets to the process block mask.
//
// Range operations are built from the filled set minus the complement of the
// range, never from an empty set plus the range. The platform's fill
// primitive silently excludes any signals it reserves, and building ranges
// this way keeps --block-all and --fill --block behaviorally identical.
package sigmask

import (
	"context"

	"github.com/vapier/nosig/internal/ctxlog"
	"github.com/vapier/nosig/internal/platform"
	"github.com/vapier/nosig/internal/sigset"
	"github.com/vapier/nosig/internal/sigstate"
)

// Engine applies sets and ranges to the block mask of a State.
type Engine struct {
	state sigstate.State
	caps  platform.Caps
}

// New returns an Engine operating on the given state.
func New(state sigstate.State, caps platform.Caps) *Engine {
	return &Engine{state: state, caps: caps}
}

// Block adds set to the block mask.
func (e *Engine) Block(ctx context.Context, set *sigset.Set) {
	e.apply(ctx, sigstate.Block, set)
}

// Unblock removes set from the block mask.
func (e *Engine) Unblock(ctx context.Context, set *sigset.Set) {
	e.apply(ctx, sigstate.Unblock, set)
}

// SetMask replaces the block mask with set.
func (e *Engine) SetMask(ctx context.Context, set *sigset.Set) {
	e.apply(ctx, sigstate.SetMask, set)
}

// BlockRange blocks every blockable signal in [first, last].
func (e *Engine) BlockRange(ctx context.Context, first, last int) {
	e.apply(ctx, sigstate.Block, e.rangeSet(first, last))
}

// UnblockRange unblocks every blockable signal in [first, last].
func (e *Engine) UnblockRange(ctx context.Context, first, last int) {
	e.apply(ctx, sigstate.Unblock, e.rangeSet(first, last))
}

// BlockAll blocks the full valid range.
func (e *Engine) BlockAll(ctx context.Context) {
	e.BlockRange(ctx, 1, e.caps.Max())
}

// UnblockAll unblocks the full valid range.
func (e *Engine) UnblockAll(ctx context.Context) {
	e.UnblockRange(ctx, 1, e.caps.Max())
}

// BlockStd blocks the standard partition, or everything when the platform
// has no realtime band.
func (e *Engine) BlockStd(ctx context.Context) {
	first, last := e.stdRange()
	e.BlockRange(ctx, first, last)
}

// UnblockStd unblocks the standard partition.
func (e *Engine) UnblockStd(ctx context.Context) {
	first, last := e.stdRange()
	e.UnblockRange(ctx, first, last)
}

// BlockRt blocks the realtime partition. Only meaningful with realtime
// support; without it the range is empty and nothing happens.
func (e *Engine) BlockRt(ctx context.Context) {
	if !e.caps.HasRealtime {
		return
	}

	e.BlockRange(ctx, e.caps.RTMin, e.caps.RTMax)
}

// UnblockRt unblocks the realtime partition.
func (e *Engine) UnblockRt(ctx context.Context) {
	if !e.caps.HasRealtime {
		return
	}

	e.UnblockRange(ctx, e.caps.RTMin, e.caps.RTMax)
}

func (e *Engine) stdRange() (int, int) {
	if e.caps.HasRealtime {
		return 1, e.caps.RTMin - 1
	}

	return 1, e.caps.Max()
}

// rangeSet is fill-minus-complement: start from everything the platform
// considers fillable and remove what lies outside [first, last].
func (e *Engine) rangeSet(first, last int) *sigset.Set {
	s := sigset.New()
	s.Fill(e.caps)

	for sig := 1; sig <= e.caps.Max(); sig++ {
		if sig < first || sig > last {
			s.Del(sig)
		}
	}

	return s
}

// apply requests the mask change. Failures are not recoverable in any useful
// way for a best-effort signal shield, so they surface as warnings and the
// run continues.
func (e *Engine) apply(ctx context.Context, how sigstate.How, set *sigset.Set) {
	if err := e.state.ApplyMask(how, set); err != nil {
		ctxlog.Warn(ctx, "could not change block mask",
			"how", howName(how),
			"error", err.Error(),
		)
	}
}

func howName(how sigstate.How) string {
	switch how {
	case sigstate.Block:
		return "block"
	case sigstate.Unblock:
		return "unblock"
	default:
		return "setmask"
	}
}
