// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sigstate is the handle on the process-global signal state owned by
// the operating system: the per-signal disposition table and the block mask.
// The engines only ever request changes through the State interface and never
// cache a copy, so tests can substitute a Recorder that captures requested
// changes without real system calls.
package sigstate
