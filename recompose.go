// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import "github.com/avdva/binfloat/internal/bitutil"

// recompose assembles the target encoding of a non-NaN class.
// biased and mant are only used by Normal and Subnormal values.
func recompose(neg bool, class Class, biased int, mant uint64, to Format) uint64 {
	switch class {
	case Zero:
		return to.Pack(neg, 0, 0)
	case Infinity:
		return to.Pack(neg, to.maxExp, 0)
	case Subnormal:
		return to.Pack(neg, 0, mant)
	default:
		return to.Pack(neg, uint64(biased), mant)
	}
}

// recomposeNaN moves the quiet bit to the top of the target mantissa and shifts
// the payload under it, so that the high payload bits stay in place:
// narrowing drops the low bits, widening pads them with zeros.
//
//	half:   s 11111    XPPPPPPPPP
//	single: s 11111111 XPPPPPPPPP0000000000000
//
// The mantissa is never left all zero, as that would be an infinity.
func recomposeNaN(v Value, from, to Format) (uint64, Outcome) {
	shift := int(to.payloadBits()) - int(from.payloadBits())
	truncated := shift < 0 && v.Mant&bitutil.Mask(uint(-shift)) != 0
	mant := bitutil.ShiftLeft(v.Mant, shift)
	if v.Quiet {
		mant |= to.QuietMask()
	}
	if mant == 0 {
		mant, truncated = 1, true
	}
	if truncated {
		return to.Pack(v.Neg, to.maxExp, mant), NaNPayloadTruncated
	}
	return to.Pack(v.Neg, to.maxExp, mant), Exact
}
