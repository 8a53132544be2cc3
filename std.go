// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import "math"

// HalfToSingle widens a binary16 encoding to binary32.
// The result is always exact. NaN payloads keep their top-aligned position
// under the quiet bit, so 0x7c07 widens to 0x7f80e000, not 0x7f800007.
func HalfToSingle(h uint16) (uint32, Outcome) {
	bits, outcome := Convert(uint64(h), Half, Single)
	return uint32(bits), outcome
}

// SingleToHalf narrows a binary32 encoding to binary16.
func SingleToHalf(s uint32) (uint16, Outcome) {
	bits, outcome := Convert(uint64(s), Single, Half)
	return uint16(bits), outcome
}

// BFloat16ToSingle widens a bfloat16 encoding to binary32.
func BFloat16ToSingle(b uint16) (uint32, Outcome) {
	bits, outcome := Convert(uint64(b), BFloat16, Single)
	return uint32(bits), outcome
}

// SingleToBFloat16 narrows a binary32 encoding to bfloat16.
// Unlike plain truncation of the low 16 bits, the mantissa is rounded to nearest, ties to even.
func SingleToBFloat16(s uint32) (uint16, Outcome) {
	bits, outcome := Convert(uint64(s), Single, BFloat16)
	return uint16(bits), outcome
}

// HalfFromFloat32 returns the binary16 encoding nearest to f.
func HalfFromFloat32(f float32) (uint16, Outcome) {
	return SingleToHalf(math.Float32bits(f))
}

// HalfToFloat32 returns the float32 value of a binary16 encoding.
func HalfToFloat32(h uint16) float32 {
	s, _ := HalfToSingle(h)
	return math.Float32frombits(s)
}

// FromFloat64 returns the encoding of x in format f.
func (f Format) FromFloat64(x float64) (uint64, Outcome) {
	return Convert(math.Float64bits(x), Double, f)
}

// Float64 returns the float64 value of bits.
// The result is exact for formats not wider than Double in both fields.
func (f Format) Float64(bits uint64) float64 {
	d, _ := Convert(bits, f, Double)
	return math.Float64frombits(d)
}
