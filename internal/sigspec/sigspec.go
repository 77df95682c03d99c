// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sigspec resolves user-supplied signal references into validated
// signal numbers. A reference is a symbolic name (SIGTERM or TERM), a
// realtime offset expression (SIGRTMIN, RTMIN+3, SIGRTMAX-1) or a bare
// decimal number.
package sigspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vapier/nosig/internal/platform"
	"github.com/vapier/nosig/internal/signame"
)

var (
	// ErrMissingSpec is returned when no signal reference was supplied.
	ErrMissingSpec = errors.New("missing signal spec")
	// ErrInvalidSyntax is returned when a reference parses as neither a
	// name, a realtime expression, nor an integer.
	ErrInvalidSyntax = errors.New("invalid signal spec")
	// ErrOutOfRange is returned when a reference parses but lands outside
	// the platform's valid signal numbers.
	ErrOutOfRange = errors.New("signal spec out of range")
)

// Resolve turns a signal reference into a signal number. Numeric references
// are accepted even when no symbolic name exists for them, bounded only by
// the platform maximum.
func Resolve(caps platform.Caps, token string) (int, error) {
	if token == "" {
		return 0, ErrMissingSpec
	}

	if n, ok := signame.ByName(token); ok {
		return n, nil
	}

	if caps.HasRealtime {
		rest := strings.TrimPrefix(token, "SIG")

		if suffix, ok := strings.CutPrefix(rest, "RTMIN"); ok {
			return resolveRTMin(caps, suffix)
		}

		if suffix, ok := strings.CutPrefix(rest, "RTMAX"); ok {
			return resolveRTMax(caps, suffix)
		}
	}

	return resolveNumber(caps, token)
}

func resolveRTMin(caps platform.Caps, suffix string) (int, error) {
	switch {
	case suffix == "":
		return caps.RTMin, nil
	case suffix[0] == '+':
		adj, err := parseOffset(suffix)
		if err != nil {
			return 0, err
		}

		if adj > caps.Span() {
			return 0, fmt.Errorf("%w: SIGRTMIN offset exceeds %d", ErrOutOfRange, caps.Span())
		}

		return caps.RTMin + adj, nil
	default:
		return 0, fmt.Errorf("%w: must be RTMIN or RTMIN+<number>", ErrInvalidSyntax)
	}
}

func resolveRTMax(caps platform.Caps, suffix string) (int, error) {
	switch {
	case suffix == "":
		return caps.RTMax, nil
	case suffix[0] == '-':
		adj, err := parseOffset(suffix)
		if err != nil {
			return 0, err
		}

		if -adj > caps.Span() {
			return 0, fmt.Errorf("%w: SIGRTMAX offset exceeds %d", ErrOutOfRange, caps.Span())
		}

		return caps.RTMax + adj, nil
	default:
		return 0, fmt.Errorf("%w: must be RTMAX or RTMAX-<number>", ErrInvalidSyntax)
	}
}

// parseOffset decodes a signed decimal offset including its leading sign.
func parseOffset(s string) (int, error) {
	adj, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: offset %s", ErrOutOfRange, s)
		}

		return 0, fmt.Errorf("%w: could not decode %s", ErrInvalidSyntax, s)
	}

	return adj, nil
}

func resolveNumber(caps platform.Caps, token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrOutOfRange, token)
		}

		return 0, fmt.Errorf("%w: could not decode %s", ErrInvalidSyntax, token)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: only positive integers are allowed: %s", ErrOutOfRange, token)
	}

	if n > caps.Max() {
		return 0, fmt.Errorf("%w: signals greater than %d not supported", ErrOutOfRange, caps.Max())
	}

	return n, nil
}
