// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sigset is the in-memory signal set the mask operations consume.
// Bits are laid out the way the kernel lays out sigset_t (bit sig-1), so a
// Set converts to the platform mask type without translation.
package sigset

import "math/bits"

// maxBits caps the representable signal numbers. Large enough for any unix
// we target; numbers outside [1, maxBits] are ignored by mutations.
const maxBits = 128

// Filler enumerates the signals the platform's fill primitive considers
// blockable. It is satisfied by platform.Caps.
type Filler interface {
	Max() int
	Fillable(sig int) bool
}

// Set is a mutable set of signal numbers. The zero value is the empty set.
type Set struct {
	words [maxBits / 64]uint64
}

// New returns an empty set.
func New() *Set {
	return &Set{}
}

// Add inserts sig into the set.
func (s *Set) Add(sig int) {
	if sig < 1 || sig > maxBits {
		return
	}

	s.words[(sig-1)/64] |= 1 << uint((sig-1)%64)
}

// Del removes sig from the set.
func (s *Set) Del(sig int) {
	if sig < 1 || sig > maxBits {
		return
	}

	s.words[(sig-1)/64] &^= 1 << uint((sig-1)%64)
}

// Empty removes every signal from the set.
func (s *Set) Empty() {
	s.words = [maxBits / 64]uint64{}
}

// Fill replaces the contents with every signal the platform's fill primitive
// exposes. Reserved signals stay excluded so that explicit ranges built from
// a filled set stay consistent with the platform's own "all signals" notion.
func (s *Set) Fill(f Filler) {
	s.Empty()

	for sig := 1; sig <= f.Max(); sig++ {
		if f.Fillable(sig) {
			s.Add(sig)
		}
	}
}

// Contains reports whether sig is in the set.
func (s *Set) Contains(sig int) bool {
	if sig < 1 || sig > maxBits {
		return false
	}

	return s.words[(sig-1)/64]&(1<<uint((sig-1)%64)) != 0
}

// Len returns the number of signals in the set.
func (s *Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := *s
	return &c
}

// Words exposes the raw kernel-layout bit words for the mask primitive.
func (s *Set) Words() [maxBits / 64]uint64 {
	return s.words
}

// SetWords overwrites the raw bit words, for mask reads from the platform.
func (s *Set) SetWords(w [maxBits / 64]uint64) {
	s.words = w
}
