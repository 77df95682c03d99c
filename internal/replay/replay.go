// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vapier/nosig/internal/ctxlog"
	"github.com/vapier/nosig/internal/disposition"
	"github.com/vapier/nosig/internal/platform"
	"github.com/vapier/nosig/internal/redirect"
	"github.com/vapier/nosig/internal/reexec"
	"github.com/vapier/nosig/internal/sigmask"
	"github.com/vapier/nosig/internal/sigset"
	"github.com/vapier/nosig/internal/sigspec"
	"github.com/vapier/nosig/internal/sigstate"
)

// ErrUsage marks command-line syntax errors. Callers should print the
// usage text and exit with the internal error status when they see it.
var ErrUsage = errors.New("usage error")

// Stubbed in tests so redirection handlers do not touch real fds.
var (
	redirectStdin  = redirect.Stdin
	redirectStdout = redirect.Stdout
	redirectStderr = redirect.Stderr
	redirectOutput = redirect.Output
	redirectNull   = redirect.NullIO
)

// Driver scans argv and applies each option as it is seen.
type Driver struct {
	caps    platform.Caps
	state   sigstate.State
	set     *sigset.Set
	disp    *disposition.Engine
	mask    *sigmask.Engine
	stdout  io.Writer
	verbose int
}

// Option configures a Driver.
type Option func(*Driver)

// WithOutput redirects informational output (status, listings, version)
// away from os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(d *Driver) {
		d.stdout = w
	}
}

// New returns a Driver that applies options to st.
func New(st sigstate.State, caps platform.Caps, opts ...Option) *Driver {
	d := &Driver{
		caps:   caps,
		state:  st,
		set:    sigset.New(),
		disp:   disposition.New(st, caps),
		mask:   sigmask.New(st, caps),
		stdout: os.Stdout,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Run scans args left to right, dispatching each option to its handler,
// and returns the tokens left over after the first non-option (the target
// program and its arguments). Informational options stop the scan by
// returning a *reexec.ExitError with a zero code.
func (d *Driver) Run(ctx context.Context, args []string) ([]string, error) {
	i := 0
	for i < len(args) {
		tok := args[i]
		switch {
		case tok == "--":
			return args[i+1:], nil
		case strings.HasPrefix(tok, "--"):
			n, err := d.runLong(ctx, args, i)
			if err != nil {
				return nil, err
			}
			i = n
		case len(tok) >= 2 && tok[0] == '-':
			n, err := d.runShort(ctx, args, i)
			if err != nil {
				return nil, err
			}
			i = n
		default:
			return args[i:], nil
		}
	}
	return nil, nil
}

// runLong handles args[i], a "--name" or "--name=value" token, and
// returns the index of the next unconsumed token.
func (d *Driver) runLong(ctx context.Context, args []string, i int) (int, error) {
	name, val, hasVal := strings.Cut(args[i][2:], "=")
	opt, err := d.findLong(name)
	if err != nil {
		return 0, err
	}
	i++
	switch {
	case opt.arg && !hasVal:
		if i >= len(args) {
			return 0, fmt.Errorf("%w: option '--%s' requires an argument", ErrUsage, opt.long)
		}
		val = args[i]
		i++
	case !opt.arg && hasVal:
		return 0, fmt.Errorf("%w: option '--%s' doesn't allow an argument", ErrUsage, opt.long)
	}
	if err := opt.run(ctx, d, val); err != nil {
		return 0, err
	}
	return i, nil
}

// runShort handles args[i], a "-abc" cluster, and returns the index of
// the next unconsumed token. An option taking an argument consumes the
// rest of the cluster, or the next token when the cluster ends.
func (d *Driver) runShort(ctx context.Context, args []string, i int) (int, error) {
	tok := args[i]
	i++
	for j := 1; j < len(tok); j++ {
		opt := d.findShort(tok[j])
		if opt == nil {
			return 0, fmt.Errorf("%w: invalid option -- '%c'", ErrUsage, tok[j])
		}
		var val string
		if opt.arg {
			val = tok[j+1:]
			if val == "" {
				if i >= len(args) {
					return 0, fmt.Errorf("%w: option requires an argument -- '%c'", ErrUsage, tok[j])
				}
				val = args[i]
				i++
			}
			if err := opt.run(ctx, d, val); err != nil {
				return 0, err
			}
			return i, nil
		}
		if err := opt.run(ctx, d, val); err != nil {
			return 0, err
		}
	}
	return i, nil
}

// findLong resolves a long option by exact name or unique prefix.
// Realtime-only options are invisible without realtime support, matching
// a build without them.
func (d *Driver) findLong(name string) (*option, error) {
	var prefix []*option
	for i := range options {
		opt := &options[i]
		if opt.rt && !d.caps.HasRealtime {
			continue
		}
		if opt.long == name {
			return opt, nil
		}
		if strings.HasPrefix(opt.long, name) {
			prefix = append(prefix, opt)
		}
	}
	switch len(prefix) {
	case 0:
		return nil, fmt.Errorf("%w: unrecognized option '--%s'", ErrUsage, name)
	case 1:
		return prefix[0], nil
	default:
		return nil, fmt.Errorf("%w: option '--%s' is ambiguous", ErrUsage, name)
	}
}

func (d *Driver) findShort(c byte) *option {
	for i := range options {
		opt := &options[i]
		if opt.rt && !d.caps.HasRealtime {
			continue
		}
		if opt.short == c {
			return opt
		}
	}
	return nil
}

// resolve turns a signal spec argument into a number, wrapping failures
// as fatal so the caller exits without running the target program.
func (d *Driver) resolve(val string) (int, error) {
	sig, err := sigspec.Resolve(d.caps, val)
	if err != nil {
		return 0, reexec.Exit(reexec.ExitErr, err)
	}
	return sig, nil
}

func (d *Driver) raiseVerbosity() {
	d.verbose++
	ctxlog.LevelVar.Set(slog.LevelDebug)
}
