// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"github.com/holiman/uint256"
)

// Sum accumulates u64 amounts in 256 bits so intermediate totals never wrap.
type Sum struct {
	total uint256.Int
}

func (s *Sum) Add(amount uint64) {
	var v uint256.Int
	v.SetUint64(amount)
	s.total.Add(&s.total, &v)
}

// Big returns a copy of the running total.
func (s *Sum) Big() *uint256.Int {
	return new(uint256.Int).Set(&s.total)
}

// Uint64 returns the total, or ErrOverflow if it does not fit in 64 bits.
func (s *Sum) Uint64() (uint64, error) {
	if !s.total.IsUint64() {
		return 0, ErrOverflow
	}
	return s.total.Uint64(), nil
}

// Sum64 adds all of [amounts] and returns ErrOverflow if the result does not
// fit in 64 bits.
func Sum64(amounts ...uint64) (uint64, error) {
	var s Sum
	for _, amount := range amounts {
		s.Add(amount)
	}
	return s.Uint64()
}
