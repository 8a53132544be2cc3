// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"strconv"
)

// Outcome tells what happened to the value during a conversion.
// It never changes the produced bits.
type Outcome uint8

const (
	// Exact means no information was lost.
	Exact Outcome = iota
	// Rounded means the mantissa lost precision and was rounded to nearest, ties to even.
	Rounded
	// Overflow means a finite value was too large for the target and became an infinity.
	Overflow
	// Underflow means a nonzero value was too small for the target and became
	// a zero or an inexact subnormal.
	Underflow
	// NaNPayloadTruncated means some NaN payload bits didn't fit the target.
	NaNPayloadTruncated
)

var outcomeNames = [...]string{"exact", "rounded", "overflow", "underflow", "nan-payload-truncated"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "outcome(" + strconv.Itoa(int(o)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if int(o) >= len(outcomeNames) {
		return nil, fmt.Errorf("unknown outcome %d", o)
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(data []byte) error {
	for i, name := range outcomeNames {
		if name == string(data) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", data)
}

// Convert converts an encoding of format 'from' into format 'to'.
// Bits above from.TotalBits() are ignored.
// Convert is total: any input produces a valid encoding of 'to'.
func Convert(bits uint64, from, to Format) (uint64, Outcome) {
	v := from.Classify(bits)
	if v.Class == NaN {
		return recomposeNaN(v, from, to)
	}
	r := rescale(v, from, to)
	switch r.class {
	case Zero:
		return recompose(v.Neg, Zero, 0, 0, to), Exact
	case Infinity:
		if r.overflow {
			return recompose(v.Neg, Infinity, 0, 0, to), Overflow
		}
		return recompose(v.Neg, Infinity, 0, 0, to), Exact
	}

	mant, inexact, carry := RoundNearestEven(r.mant, r.width, to.mantBits)
	class, biased := r.class, r.biased
	if carry {
		// 1.11..1 rounded to 10.00..0, or the largest subnormal to the smallest normal.
		class, biased = Normal, biased+1
		if biased >= int(to.maxExp) {
			return recompose(v.Neg, Infinity, 0, 0, to), Overflow
		}
	}
	outcome := Exact
	switch {
	case class == Subnormal && mant == 0:
		return recompose(v.Neg, Zero, 0, 0, to), Underflow
	case class == Subnormal && inexact:
		outcome = Underflow
	case inexact:
		outcome = Rounded
	}
	return recompose(v.Neg, class, biased, mant, to), outcome
}
