// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import "github.com/avdva/binfloat/internal/bitutil"

// RoundNearestEven moves a mantissa from a 'from'-bit field into a 'to'-bit field.
// Widening is a plain shift and is always exact.
// Narrowing rounds to nearest, ties to even, looking at the discarded bits:
// above a half ULP rounds up, exactly a half rounds up only if the kept value is odd.
// If rounding up reaches 2^to, carry is set and the returned mantissa is zero,
// the caller must add one to the exponent.
func RoundNearestEven(mant uint64, from, to uint) (result uint64, inexact, carry bool) {
	if to >= from {
		return mant << (to - from), false, false
	}
	drop := from - to
	if drop > uint(bitutil.StorageBits) {
		// even the highest bit is below a half ULP.
		return 0, mant != 0, false
	}
	kept, rest := mant>>drop, mant&bitutil.Mask(drop)
	half := uint64(1) << (drop - 1)
	if rest > half || rest == half && kept&1 == 1 {
		kept++
	}
	if limit := bitutil.Mask(to); kept > limit {
		return kept & limit, rest != 0, true
	}
	return kept, rest != 0, false
}
