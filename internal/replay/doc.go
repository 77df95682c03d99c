// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package replay drives the ordered application of command-line options
// against the process signal state.
//
// The options are a transcript, not a declarative set: each one is
// dispatched to its engine the moment it is scanned, strictly left to
// right, so "--fill --del TERM --block" blocks everything except SIGTERM
// while "--block --fill --del TERM" blocks everything. Scanning stops at
// "--" or the first non-option token; whatever remains is the target
// program and its arguments.
package replay
