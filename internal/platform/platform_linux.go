// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package platform

// The kernel's realtime range is 32..64, but glibc reserves the first two
// numbers for thread cancellation and setxid synchronisation, so the usable
// band starts at 34. The same values are used by the runtimes that hardcode
// this mapping (e.g. the Kubernetes signal tables).
const (
	stdMax = 31
	rtMin  = 34
	rtMax  = 64
)

func query() Caps {
	return Caps{
		StdMax:      stdMax,
		RTMin:       rtMin,
		RTMax:       rtMax,
		HasRealtime: true,
	}
}
