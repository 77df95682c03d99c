// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix && !linux

package platform

// Realtime signals were optional in POSIX and macOS and the BSDs never grew
// them, so the supported set narrows to the standard signals.
func query() Caps {
	return Caps{
		StdMax:      31,
		HasRealtime: false,
	}
}
