// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import "strconv"

// Class is the category of an encoded value.
type Class uint8

const (
	Zero Class = iota
	Subnormal
	Normal
	Infinity
	NaN
)

var classNames = [...]string{"zero", "subnormal", "normal", "infinity", "nan"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "class(" + strconv.Itoa(int(c)) + ")"
}

// Value is a decoded encoding.
//   - Zero, Infinity: only Neg is meaningful.
//   - Subnormal: Mant holds the fraction, the implicit bit is 0.
//   - Normal: Exp is the unbiased exponent, Mant holds the fraction, the implicit bit is 1.
//   - NaN: Quiet is the top mantissa bit, Mant holds the remaining M-1 payload bits.
type Value struct {
	Class Class
	Neg   bool
	Exp   int
	Mant  uint64
	Quiet bool
}

// Classify decodes bits into a Value. Every bit pattern belongs to exactly one class.
func (f Format) Classify(bits uint64) Value {
	neg, e, m := f.Unpack(bits)
	v := Value{Neg: neg}
	switch e {
	case 0:
		if m == 0 {
			v.Class = Zero
		} else {
			v.Class, v.Mant = Subnormal, m
		}
	case f.maxExp:
		if m == 0 {
			v.Class = Infinity
		} else {
			v.Class = NaN
			v.Quiet = m&f.QuietMask() != 0
			v.Mant = m &^ f.QuietMask()
		}
	default:
		v.Class, v.Exp, v.Mant = Normal, int(e)-f.bias, m
	}
	return v
}

// IsNaN reports whether bits encode a NaN.
func (f Format) IsNaN(bits uint64) bool {
	return bits&f.expMask == f.expMask && bits&f.mantMask != 0
}

// IsQuietNaN reports whether bits encode a NaN with the quiet bit set.
func (f Format) IsQuietNaN(bits uint64) bool {
	return bits&f.expMask == f.expMask && bits&f.QuietMask() != 0
}

// IsInf reports whether bits encode an infinity, according to sign.
// If sign > 0, IsInf reports whether bits is positive infinity.
// If sign < 0, IsInf reports whether bits is negative infinity.
// If sign == 0, IsInf reports whether bits is either infinity.
func (f Format) IsInf(bits uint64, sign int) bool {
	if bits&(f.expMask|f.mantMask) != f.expMask {
		return false
	}
	neg := bits&f.signMask != 0
	return sign == 0 || sign > 0 && !neg || sign < 0 && neg
}

// IsZero reports whether bits encode +0 or -0.
func (f Format) IsZero(bits uint64) bool {
	return bits&(f.expMask|f.mantMask) == 0
}

// IsSubnormal reports whether bits encode a nonzero value with a zero exponent field.
func (f Format) IsSubnormal(bits uint64) bool {
	return bits&f.expMask == 0 && bits&f.mantMask != 0
}

// IsNormal reports whether bits encode a finite value with the implicit leading one.
func (f Format) IsNormal(bits uint64) bool {
	e := bits & f.expMask
	return e != 0 && e != f.expMask
}

// Signbit reports whether the sign bit is set.
func (f Format) Signbit(bits uint64) bool {
	return bits&f.signMask != 0
}
