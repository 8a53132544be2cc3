// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import "github.com/avdva/binfloat/internal/bitutil"

// shifts past this discard every significand bit alike.
const maxDenormShift = 2 * bitutil.StorageBits

// rescaled is a value placed into the target's exponent range, before rounding.
//   - Normal: mant is the source fraction of 'width' bits, biased is the target exponent.
//   - Subnormal: mant is the source significand with an explicit leading one,
//     'width' includes the denormalization shift, so that rounding it
//     to the target mantissa width gives the subnormal's mantissa field.
//   - Infinity with overflow set: a finite value out of the target range.
type rescaled struct {
	class    Class
	biased   int
	mant     uint64
	width    uint
	overflow bool
}

func rescale(v Value, from, to Format) rescaled {
	var exp int
	var frac uint64
	switch v.Class {
	case Normal:
		exp, frac = v.Exp, v.Mant
	case Subnormal:
		// 2^(1-bias) * 0.mant, normalize to 2^(1-bias-shift) * 1.frac
		sig, shift := bitutil.Normalize(v.Mant, from.mantBits)
		exp, frac = 1-from.bias-shift, sig&from.mantMask
	default:
		return rescaled{class: v.Class}
	}
	biased := exp + to.bias
	if biased >= int(to.maxExp) {
		return rescaled{class: Infinity, overflow: true}
	}
	if biased > 0 {
		return rescaled{class: Normal, biased: biased, mant: frac, width: from.mantBits}
	}
	shift := 1 - biased
	if shift > maxDenormShift {
		shift = maxDenormShift
	}
	return rescaled{
		class: Subnormal,
		mant:  frac | 1<<from.mantBits,
		width: from.mantBits + uint(shift),
	}
}
