// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/vapier/nosig/internal/platform"
)

var rtCaps = platform.Caps{StdMax: 31, RTMin: 34, RTMax: 64, HasRealtime: true}

func TestByName(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		n, ok := ByName("SIGTERM")
		require.True(t, ok)
		assert.Equal(t, int(unix.SIGTERM), n)
	})

	t.Run("without prefix", func(t *testing.T) {
		n, ok := ByName("TERM")
		require.True(t, ok)
		assert.Equal(t, int(unix.SIGTERM), n)
	})

	t.Run("prefix and bare agree for every entry", func(t *testing.T) {
		for _, e := range Entries() {
			full, ok := ByName(e.Name)
			require.True(t, ok, e.Name)

			bare, ok := ByName(strings.TrimPrefix(e.Name, "SIG"))
			require.True(t, ok, e.Name)

			assert.Equal(t, full, bare, e.Name)
		}
	})

	t.Run("no case folding", func(t *testing.T) {
		_, ok := ByName("term")
		assert.False(t, ok)
		_, ok = ByName("sigterm")
		assert.False(t, ok)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := ByName("NOPE")
		assert.False(t, ok)
	})
}

func TestByNumber(t *testing.T) {
	name, ok := ByNumber(int(unix.SIGHUP))
	require.True(t, ok)
	assert.Equal(t, "SIGHUP", name)

	_, ok = ByNumber(1000)
	assert.False(t, ok)
}

func TestName(t *testing.T) {
	assert.Equal(t, "SIGINT", Name(int(unix.SIGINT), rtCaps))
	assert.Equal(t, "SIGRTMIN", Name(34, rtCaps))
	assert.Equal(t, "SIGRTMAX", Name(64, rtCaps))
	assert.Equal(t, "SIGRTMIN+3", Name(37, rtCaps))
	assert.Equal(t, "SIG???", Name(33, rtCaps))
	assert.Equal(t, "SIG???", Name(99, rtCaps))

	std := platform.Caps{StdMax: 31}
	assert.Equal(t, "SIG???", Name(40, std))
}

func TestEntriesIsACopy(t *testing.T) {
	a := Entries()
	a[0].Name = "CLOBBERED"
	b := Entries()
	assert.NotEqual(t, a[0].Name, b[0].Name)
}
