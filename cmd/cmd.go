// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vapier/nosig/internal/platform"
	"github.com/vapier/nosig/internal/reexec"
	"github.com/vapier/nosig/internal/replay"
	"github.com/vapier/nosig/internal/sigstate"
)

// Environ is stubbed in tests to control the environment handed to the
// target program.
var Environ = os.Environ

// RootCmd is the root command for the CLI. Flag parsing is skipped
// because option order is meaningful: each option mutates process signal
// state as it is scanned, so the raw argv goes straight to the replay
// driver.
var RootCmd = &cli.Command{
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "nosig",
	Description: `Nosig runs a program with its signal dispositions and block mask
rewritten first. It is nohup with full control: ignore or reset individual
signals, build a signal set, and block or unblock it, all applied strictly
left to right before the program is started.`,
	Usage:           "nosig [options] <program> [program args]",
	Copyright:       "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	SkipFlagParsing: true,
	HideHelp:        true,
	HideVersion:     true,
	Action:          run,
}

// run replays the options against the live process state and then hands
// control to the target program.
func run(ctx context.Context, cmd *cli.Command) error {
	caps := platform.Current()
	driver := replay.New(sigstate.Process(), caps, replay.WithOutput(cmd.Writer))

	rest, err := driver.Run(ctx, cmd.Args().Slice())
	if err != nil {
		var exitErr *reexec.ExitError
		if errors.As(err, &exitErr) {
			return err
		}

		if errors.Is(err, replay.ErrUsage) {
			// The diagnostic and usage text go out here; the bare exit
			// status stops main from logging the error a second time.
			fmt.Fprintf(cmd.ErrWriter, "nosig: %v\n", err)
			replay.Usage(cmd.ErrWriter, caps)

			return reexec.Exit(reexec.ExitErr, nil)
		}

		return reexec.Exit(reexec.ExitErr, err)
	}

	return reexec.Run(rest, Environ())
}
