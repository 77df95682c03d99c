// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sigmask_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vapier/nosig/internal/platform"
	"github.com/vapier/nosig/internal/sigmask"
	"github.com/vapier/nosig/internal/sigset"
	"github.com/vapier/nosig/internal/sigstate"
)

var rtCaps = platform.Caps{StdMax: 31, RTMin: 34, RTMax: 64, HasRealtime: true}

func TestBlockUnblockSet(t *testing.T) {
	r := sigstate.NewRecorder()
	e := sigmask.New(r, rtCaps)

	s := sigset.New()
	s.Add(15)
	s.Add(2)

	e.Block(t.Context(), s)
	assert.True(t, r.Mask.Contains(15))
	assert.True(t, r.Mask.Contains(2))

	del := sigset.New()
	del.Add(2)
	e.Unblock(t.Context(), del)
	assert.True(t, r.Mask.Contains(15))
	assert.False(t, r.Mask.Contains(2))

	repl := sigset.New()
	repl.Add(1)
	e.SetMask(t.Context(), repl)
	assert.False(t, r.Mask.Contains(15))
	assert.True(t, r.Mask.Contains(1))
}

// --block-all must end up identical to --fill --block.
func TestBlockAllMatchesFillBlock(t *testing.T) {
	viaRange := sigstate.NewRecorder()
	sigmask.New(viaRange, rtCaps).BlockAll(t.Context())

	viaFill := sigstate.NewRecorder()
	filled := sigset.New()
	filled.Fill(rtCaps)
	sigmask.New(viaFill, rtCaps).Block(t.Context(), filled)

	assert.Equal(t, viaFill.Mask.Words(), viaRange.Mask.Words())
}

func TestBlockStdAndRtPartition(t *testing.T) {
	r := sigstate.NewRecorder()
	e := sigmask.New(r, rtCaps)

	e.BlockStd(t.Context())

	for sig := 1; sig <= 31; sig++ {
		assert.True(t, r.Mask.Contains(sig), sig)
	}

	for sig := 32; sig <= 64; sig++ {
		assert.False(t, r.Mask.Contains(sig), sig)
	}

	e.BlockRt(t.Context())

	for sig := 34; sig <= 64; sig++ {
		assert.True(t, r.Mask.Contains(sig), sig)
	}

	// Reserved numbers stay out even after blocking both partitions.
	assert.False(t, r.Mask.Contains(32))
	assert.False(t, r.Mask.Contains(33))

	e.UnblockRt(t.Context())

	for sig := 34; sig <= 64; sig++ {
		assert.False(t, r.Mask.Contains(sig), sig)
	}

	assert.True(t, r.Mask.Contains(1))
}

func TestStdSpansEverythingWithoutRealtime(t *testing.T) {
	stdCaps := platform.Caps{StdMax: 31}
	r := sigstate.NewRecorder()
	e := sigmask.New(r, stdCaps)

	e.BlockStd(t.Context())

	for sig := 1; sig <= 31; sig++ {
		assert.True(t, r.Mask.Contains(sig), sig)
	}
}

func TestRtIsNoopWithoutRealtime(t *testing.T) {
	stdCaps := platform.Caps{StdMax: 31}
	r := sigstate.NewRecorder()

	sigmask.New(r, stdCaps).BlockRt(t.Context())

	assert.Empty(t, r.Ops)
	assert.Zero(t, r.Mask.Len())
}

func TestMaskFailureIsNonFatal(t *testing.T) {
	r := sigstate.NewRecorder()
	r.MaskErr = errors.New("boom")

	e := sigmask.New(r, rtCaps)

	// Must not panic and must keep going.
	e.BlockAll(t.Context())
	e.UnblockAll(t.Context())

	require.Len(t, r.Ops, 2)
}
