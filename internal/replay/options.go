// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package replay

import (
	"context"

	"github.com/vapier/nosig/internal/reexec"
	"github.com/vapier/nosig/internal/sigstatus"
)

// option describes one command-line option. Options marked rt only exist
// when the platform has realtime signals, so a build without them rejects
// the flag the same way it rejects a typo.
type option struct {
	long  string
	short byte
	arg   bool
	rt    bool
	help  string
	run   func(ctx context.Context, d *Driver, val string) error
}

var options []option

// init assigns options so the --help entry may reference Usage, which
// iterates options, without a package initialization cycle.
func init() {
	options = []option{
		{
			long: "reset",
			help: "Reset all signals: unblock & set to default dispositions",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.mask.UnblockAll(ctx)
				d.disp.DefaultRange(ctx, 1, d.caps.Max())
				return nil
			},
		},

		{
			long: "ignore", short: 'I', arg: true,
			help: "Ignore one signal",
			run: func(ctx context.Context, d *Driver, val string) error {
				sig, err := d.resolve(val)
				if err != nil {
					return err
				}
				d.disp.Ignore(ctx, sig)
				return nil
			},
		},
		{
			long: "ignore-all",
			help: "Ignore all signals",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.disp.IgnoreRange(ctx, 1, d.caps.Max())
				return nil
			},
		},
		{
			long: "ignore-all-std",
			help: "Ignore all standard signals",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.disp.IgnoreRange(ctx, 1, d.caps.StdMax)
				return nil
			},
		},
		{
			long: "ignore-all-rt", rt: true,
			help: "Ignore all realtime signals",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.disp.IgnoreRange(ctx, d.caps.RTMin, d.caps.RTMax)
				return nil
			},
		},
		{
			long: "default", short: 'D', arg: true,
			help: "Reset one signal disposition to the default",
			run: func(ctx context.Context, d *Driver, val string) error {
				sig, err := d.resolve(val)
				if err != nil {
					return err
				}
				d.disp.Default(ctx, sig)
				return nil
			},
		},
		{
			long: "default-all",
			help: "Reset all signal dispositions to their default",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.disp.DefaultRange(ctx, 1, d.caps.Max())
				return nil
			},
		},
		{
			long: "default-all-std",
			help: "Reset all standard signal dispositions to their default",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.disp.DefaultRange(ctx, 1, d.caps.StdMax)
				return nil
			},
		},
		{
			long: "default-all-rt", rt: true,
			help: "Reset all realtime signal dispositions to their default",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.disp.DefaultRange(ctx, d.caps.RTMin, d.caps.RTMax)
				return nil
			},
		},

		{
			long: "add", short: 'a', arg: true,
			help: "Add signal to the current signal set",
			run: func(_ context.Context, d *Driver, val string) error {
				sig, err := d.resolve(val)
				if err != nil {
					return err
				}
				d.set.Add(sig)
				return nil
			},
		},
		{
			long: "del", short: 'd', arg: true,
			help: "Delete signal from the current signal set",
			run: func(_ context.Context, d *Driver, val string) error {
				sig, err := d.resolve(val)
				if err != nil {
					return err
				}
				d.set.Del(sig)
				return nil
			},
		},
		{
			long: "empty", short: 'e',
			help: "Empty out the current signal set",
			run: func(_ context.Context, d *Driver, _ string) error {
				d.set.Empty()
				return nil
			},
		},
		{
			long: "fill", short: 'f',
			help: "Fill the current signal set",
			run: func(_ context.Context, d *Driver, _ string) error {
				d.set.Fill(d.caps)
				return nil
			},
		},

		{
			long: "block", short: 'b',
			help: "Add the current signal set to the block mask",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.mask.Block(ctx, d.set)
				return nil
			},
		},
		{
			long: "unblock", short: 'u',
			help: "Remove the current signal set from the block mask",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.mask.Unblock(ctx, d.set)
				return nil
			},
		},
		{
			long: "set", short: 's',
			help: "Set the block mask to the current signal set",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.mask.SetMask(ctx, d.set)
				return nil
			},
		},
		{
			long: "block-all",
			help: "Block all signals (ignores current signal set)",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.mask.BlockAll(ctx)
				return nil
			},
		},
		{
			long: "block-all-std",
			help: "Block all standard signals (ignores current signal set)",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.mask.BlockStd(ctx)
				return nil
			},
		},
		{
			long: "block-all-rt", rt: true,
			help: "Block all realtime signals (ignores current signal set)",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.mask.BlockRt(ctx)
				return nil
			},
		},
		{
			long: "unblock-all",
			help: "Unblock all signals (ignores current signal set)",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.mask.UnblockAll(ctx)
				return nil
			},
		},
		{
			long: "unblock-all-std",
			help: "Unblock all standard signals (ignores current signal set)",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.mask.UnblockStd(ctx)
				return nil
			},
		},
		{
			long: "unblock-all-rt", rt: true,
			help: "Unblock all realtime signals (ignores current signal set)",
			run: func(ctx context.Context, d *Driver, _ string) error {
				d.mask.UnblockRt(ctx)
				return nil
			},
		},

		{
			long: "stdin", arg: true,
			help: "Redirect stdin from the specified path",
			run: func(_ context.Context, d *Driver, val string) error {
				return fatal(redirectStdin(val))
			},
		},
		{
			long: "stdout", arg: true,
			help: "Redirect stdout to the specified path",
			run: func(_ context.Context, d *Driver, val string) error {
				return fatal(redirectStdout(val))
			},
		},
		{
			long: "stderr", arg: true,
			help: "Redirect stderr to the specified path",
			run: func(_ context.Context, d *Driver, val string) error {
				return fatal(redirectStderr(val))
			},
		},
		{
			long: "output", arg: true,
			help: "Redirect stdout & stderr to the specified path",
			run: func(_ context.Context, d *Driver, val string) error {
				return fatal(redirectOutput(val))
			},
		},
		{
			long: "null-io",
			help: "Redirect stdin/stdout/stderr to /dev/null",
			run: func(_ context.Context, d *Driver, _ string) error {
				return fatal(redirectNull())
			},
		},

		{
			long: "verbose", short: 'v',
			help: "Display verbose internal nosig output",
			run: func(_ context.Context, d *Driver, _ string) error {
				d.raiseVerbosity()
				return nil
			},
		},
		{
			long: "show-status",
			help: "Display current signal settings (meant for debugging)",
			run: func(ctx context.Context, d *Driver, _ string) error {
				if err := sigstatus.Status(ctx, d.stdout, d.state, d.caps, d.verbose); err != nil {
					return reexec.Exit(reexec.ExitErr, err)
				}
				return reexec.Exit(reexec.ExitOK, nil)
			},
		},
		{
			long: "list", short: 'l',
			help: "List all known signals",
			run: func(_ context.Context, d *Driver, _ string) error {
				sigstatus.List(d.stdout, d.caps)
				return reexec.Exit(reexec.ExitOK, nil)
			},
		},
		{
			long: "version", short: 'V',
			help: "Show version info and exit",
			run: func(_ context.Context, d *Driver, _ string) error {
				showVersion(d.stdout, d.caps)
				return reexec.Exit(reexec.ExitOK, nil)
			},
		},
		{
			long: "help", short: 'h',
			help: "This help text",
			run: func(_ context.Context, d *Driver, _ string) error {
				Usage(d.stdout, d.caps)
				return reexec.Exit(reexec.ExitOK, nil)
			},
		},
	}
}

// fatal promotes redirection failures to the internal error status so the
// target program never runs with half-wired stdio.
func fatal(err error) error {
	if err == nil {
		return nil
	}
	return reexec.Exit(reexec.ExitErr, err)
}
