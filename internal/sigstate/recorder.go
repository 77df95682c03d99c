// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sigstate

import (
	"fmt"

	"github.com/vapier/nosig/internal/sigset"
)

// Recorder is a State that records every requested change in memory. It is
// the test double for the engines; it also keeps an ordered transcript so
// tests can assert on effect order.
type Recorder struct {
	// Dispositions holds the last requested disposition per signal.
	Dispositions map[int]Disposition
	// Mask is the simulated block mask.
	Mask *sigset.Set
	// NotSettable marks signals to reject with ErrNotSettable.
	NotSettable map[int]bool
	// MaskErr, when set, is returned by every mask operation.
	MaskErr error
	// Ops is the ordered transcript of requested changes.
	Ops []string
}

// NewRecorder returns a Recorder with empty state.
func NewRecorder() *Recorder {
	return &Recorder{
		Dispositions: map[int]Disposition{},
		Mask:         sigset.New(),
		NotSettable:  map[int]bool{},
	}
}

func (r *Recorder) Ignore(sig int) error {
	r.Ops = append(r.Ops, fmt.Sprintf("ignore %d", sig))

	if r.NotSettable[sig] {
		return fmt.Errorf("%w: signal %d", ErrNotSettable, sig)
	}

	r.Dispositions[sig] = Ignored

	return nil
}

func (r *Recorder) Default(sig int) error {
	r.Ops = append(r.Ops, fmt.Sprintf("default %d", sig))

	if r.NotSettable[sig] {
		return fmt.Errorf("%w: signal %d", ErrNotSettable, sig)
	}

	r.Dispositions[sig] = Default

	return nil
}

func (r *Recorder) Disposition(sig int) (Disposition, error) {
	return r.Dispositions[sig], nil
}

func (r *Recorder) ApplyMask(how How, set *sigset.Set) error {
	r.Ops = append(r.Ops, fmt.Sprintf("mask %s len=%d", howName(how), set.Len()))

	if r.MaskErr != nil {
		return r.MaskErr
	}

	words := set.Words()
	cur := r.Mask.Words()

	for i := range cur {
		switch how {
		case Block:
			cur[i] |= words[i]
		case Unblock:
			cur[i] &^= words[i]
		case SetMask:
			cur[i] = words[i]
		}
	}

	r.Mask.SetWords(cur)

	return nil
}

func (r *Recorder) ReadMask() (*sigset.Set, error) {
	if r.MaskErr != nil {
		return nil, r.MaskErr
	}

	return r.Mask.Clone(), nil
}

func howName(how How) string {
	switch how {
	case Block:
		return "block"
	case Unblock:
		return "unblock"
	default:
		return "setmask"
	}
}
