// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the nosig command-line interface (CLI).
package main

import (
	"context"
	"errors"
	"os"

	"github.com/vapier/nosig/cmd"
	"github.com/vapier/nosig/internal/ctxlog"
	"github.com/vapier/nosig/internal/reexec"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	err := cmd.RootCmd.Run(ctx, os.Args)
	if err == nil {
		// A successful exec never returns, so this is only reachable in
		// exotic situations like an empty os.Args.
		return
	}

	var exitErr *reexec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code != reexec.ExitOK && exitErr.Err != nil {
			ctxlog.Logger(ctx).Error("nosig failed", "error", exitErr.Err)
		}

		os.Exit(exitErr.Code)
	}

	ctxlog.Logger(ctx).Error("nosig failed", "error", err)
	os.Exit(reexec.ExitErr)
}
