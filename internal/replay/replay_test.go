// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package replay

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vapier/nosig/internal/ctxlog"
	"github.com/vapier/nosig/internal/platform"
	"github.com/vapier/nosig/internal/reexec"
	"github.com/vapier/nosig/internal/sigstate"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var rtCaps = platform.Caps{StdMax: 31, RTMin: 34, RTMax: 64, HasRealtime: true}

func newTestDriver(caps platform.Caps) (*Driver, *sigstate.Recorder, *bytes.Buffer) {
	r := sigstate.NewRecorder()
	out := &bytes.Buffer{}
	return New(r, caps, WithOutput(out)), r, out
}

func TestOrderSensitivity(t *testing.T) {
	t.Run("fill del block spares the deleted signal", func(t *testing.T) {
		d, r, _ := newTestDriver(rtCaps)

		rest, err := d.Run(t.Context(), []string{"--fill", "--del", "TERM", "--block"})
		require.NoError(t, err)
		assert.Nil(t, rest)

		assert.False(t, r.Mask.Contains(15))
		assert.True(t, r.Mask.Contains(9))
		assert.True(t, r.Mask.Contains(64))
	})

	t.Run("block before fill blocks nothing", func(t *testing.T) {
		d, r, _ := newTestDriver(rtCaps)

		rest, err := d.Run(t.Context(), []string{"--block", "--fill", "--del", "TERM"})
		require.NoError(t, err)
		assert.Nil(t, rest)

		assert.Zero(t, r.Mask.Len())
	})
}

func TestScanStopsAtProgram(t *testing.T) {
	t.Run("first non-option", func(t *testing.T) {
		d, r, _ := newTestDriver(rtCaps)

		rest, err := d.Run(t.Context(), []string{"-I", "TERM", "prog", "--fill"})
		require.NoError(t, err)

		assert.Equal(t, []string{"prog", "--fill"}, rest)
		assert.Equal(t, sigstate.Ignored, r.Dispositions[15])
	})

	t.Run("double dash", func(t *testing.T) {
		d, _, _ := newTestDriver(rtCaps)

		rest, err := d.Run(t.Context(), []string{"--", "-I", "TERM"})
		require.NoError(t, err)

		assert.Equal(t, []string{"-I", "TERM"}, rest)
	})

	t.Run("bare dash is a program name", func(t *testing.T) {
		d, _, _ := newTestDriver(rtCaps)

		rest, err := d.Run(t.Context(), []string{"-"})
		require.NoError(t, err)

		assert.Equal(t, []string{"-"}, rest)
	})
}

func TestLongOptionForms(t *testing.T) {
	t.Run("equals value", func(t *testing.T) {
		d, r, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"--ignore=HUP"})
		require.NoError(t, err)

		assert.Equal(t, sigstate.Ignored, r.Dispositions[1])
	})

	t.Run("unique prefix", func(t *testing.T) {
		d, r, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"--res"})
		require.NoError(t, err)

		assert.Contains(t, r.Ops[0], "mask unblock")
	})

	t.Run("ambiguous prefix", func(t *testing.T) {
		d, _, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"--un"})
		require.ErrorIs(t, err, ErrUsage)
	})

	t.Run("unknown option", func(t *testing.T) {
		d, _, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"--bogus"})
		require.ErrorIs(t, err, ErrUsage)
	})

	t.Run("missing argument", func(t *testing.T) {
		d, _, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"--ignore"})
		require.ErrorIs(t, err, ErrUsage)
	})

	t.Run("value on flag option", func(t *testing.T) {
		d, _, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"--fill=yes"})
		require.ErrorIs(t, err, ErrUsage)
	})
}

func TestShortOptionForms(t *testing.T) {
	t.Run("cluster", func(t *testing.T) {
		d, r, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"-fb"})
		require.NoError(t, err)

		assert.True(t, r.Mask.Contains(1))
		assert.True(t, r.Mask.Contains(64))
		assert.False(t, r.Mask.Contains(32))
	})

	t.Run("attached argument", func(t *testing.T) {
		d, r, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"-ITERM"})
		require.NoError(t, err)

		assert.Equal(t, sigstate.Ignored, r.Dispositions[15])
	})

	t.Run("detached argument", func(t *testing.T) {
		d, r, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"-a", "USR1", "-b"})
		require.NoError(t, err)

		assert.True(t, r.Mask.Contains(10))
		assert.Equal(t, 1, r.Mask.Len())
	})

	t.Run("invalid short", func(t *testing.T) {
		d, _, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"-z"})
		require.ErrorIs(t, err, ErrUsage)
	})

	t.Run("redirection options are long-only", func(t *testing.T) {
		d, _, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"-o", "both.log"})
		require.ErrorIs(t, err, ErrUsage)
	})

	t.Run("missing argument at end of argv", func(t *testing.T) {
		d, _, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"-I"})
		require.ErrorIs(t, err, ErrUsage)
	})
}

func TestRealtimeOptionsHiddenWithoutSupport(t *testing.T) {
	stdCaps := platform.Caps{StdMax: 31}
	d, _, _ := newTestDriver(stdCaps)

	_, err := d.Run(t.Context(), []string{"--block-all-rt"})
	require.ErrorIs(t, err, ErrUsage)
}

func TestBadSignalSpecIsFatal(t *testing.T) {
	d, _, _ := newTestDriver(rtCaps)

	_, err := d.Run(t.Context(), []string{"-I", "BOGUS"})

	var exitErr *reexec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, reexec.ExitErr, exitErr.Code)
}

func TestReset(t *testing.T) {
	d, r, _ := newTestDriver(rtCaps)
	r.Mask.Add(15)
	r.Dispositions[2] = sigstate.Ignored

	_, err := d.Run(t.Context(), []string{"--reset"})
	require.NoError(t, err)

	assert.Zero(t, r.Mask.Len())
	assert.Equal(t, sigstate.Default, r.Dispositions[2])
}

func TestRangeOptions(t *testing.T) {
	t.Run("ignore-all-std stops below realtime", func(t *testing.T) {
		d, r, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"--ignore-all-std"})
		require.NoError(t, err)

		assert.Equal(t, sigstate.Ignored, r.Dispositions[31])
		assert.NotContains(t, r.Dispositions, 34)
	})

	t.Run("default-all-rt covers the realtime band", func(t *testing.T) {
		d, r, _ := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"--ignore-all", "--default-all-rt"})
		require.NoError(t, err)

		assert.Equal(t, sigstate.Ignored, r.Dispositions[15])
		assert.Equal(t, sigstate.Default, r.Dispositions[34])
		assert.Equal(t, sigstate.Default, r.Dispositions[64])
	})
}

func TestRedirections(t *testing.T) {
	var got []string
	record := func(name string) func(string) error {
		return func(path string) error {
			got = append(got, name+":"+path)
			return nil
		}
	}

	stubs := gostub.Stub(&redirectStdin, record("stdin")).
		Stub(&redirectStdout, record("stdout")).
		Stub(&redirectStderr, record("stderr")).
		Stub(&redirectOutput, record("output")).
		Stub(&redirectNull, func() error {
			got = append(got, "null")
			return nil
		})
	defer stubs.Reset()

	d, _, _ := newTestDriver(rtCaps)

	rest, err := d.Run(t.Context(), []string{
		"--stdin", "/dev/null", "--stdout", "out.log", "--stderr", "err.log",
		"--output", "both.log", "--null-io", "true",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"true"}, rest)
	assert.Equal(t, []string{
		"stdin:/dev/null", "stdout:out.log", "stderr:err.log",
		"output:both.log", "null",
	}, got)
}

func TestRedirectionFailureIsFatal(t *testing.T) {
	stubs := gostub.Stub(&redirectStdout, func(string) error {
		return errors.New("open failed")
	})
	defer stubs.Reset()

	d, _, _ := newTestDriver(rtCaps)

	_, err := d.Run(t.Context(), []string{"--stdout", "/nope/out.log"})

	var exitErr *reexec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, reexec.ExitErr, exitErr.Code)
}

func TestVerboseRaisesLogLevel(t *testing.T) {
	prev := ctxlog.LevelVar.Level()
	defer ctxlog.LevelVar.Set(prev)

	d, _, _ := newTestDriver(rtCaps)

	_, err := d.Run(t.Context(), []string{"-v"})
	require.NoError(t, err)

	assert.Equal(t, 1, d.verbose)
	assert.Equal(t, slog.LevelDebug, ctxlog.LevelVar.Level())
}

func TestInformationalOptions(t *testing.T) {
	requireCleanExit := func(t *testing.T, err error) {
		t.Helper()

		var exitErr *reexec.ExitError
		require.ErrorAs(t, err, &exitErr)
		require.Equal(t, reexec.ExitOK, exitErr.Code)
	}

	t.Run("list", func(t *testing.T) {
		d, _, out := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"--list"})
		requireCleanExit(t, err)

		assert.Contains(t, out.String(), "SIGTERM")
		assert.Contains(t, out.String(), "SIGRTMIN+1")
	})

	t.Run("version", func(t *testing.T) {
		d, _, out := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"-V"})
		requireCleanExit(t, err)

		assert.Contains(t, out.String(), "nosig v")
		assert.Contains(t, out.String(), "Realtime signals supported")
	})

	t.Run("help", func(t *testing.T) {
		d, _, out := newTestDriver(rtCaps)

		_, err := d.Run(t.Context(), []string{"--help"})
		requireCleanExit(t, err)

		assert.Contains(t, out.String(), "Usage: nosig [options] <program> [program args]")
		assert.Contains(t, out.String(), "--block-all-rt")
	})

	t.Run("help omits realtime options without support", func(t *testing.T) {
		d, _, out := newTestDriver(platform.Caps{StdMax: 31})

		_, err := d.Run(t.Context(), []string{"--help"})
		requireCleanExit(t, err)

		assert.NotContains(t, out.String(), "--block-all-rt")
		assert.NotContains(t, out.String(), "SIGRTMIN")
	})

	t.Run("show-status", func(t *testing.T) {
		d, r, out := newTestDriver(rtCaps)
		r.Dispositions[15] = sigstate.Ignored
		r.Mask.Add(2)

		_, err := d.Run(t.Context(), []string{"--show-status"})
		requireCleanExit(t, err)

		assert.NotEmpty(t, out.String())
	})
}
