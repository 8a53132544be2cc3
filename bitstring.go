// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import "strings"

// BitString renders bits as sign, exponent and mantissa groups, like "0 11111 0000000111".
// It is meant for diagnostics, the conversion code doesn't use it.
func (f Format) BitString(bits uint64) string {
	var builder strings.Builder
	builder.Grow(f.TotalBits() + 2)
	writeBit := func(i uint) {
		if bits&(1<<i) != 0 {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	writeBit(f.expBits + f.mantBits)
	builder.WriteByte(' ')
	for i := f.expBits + f.mantBits; i > f.mantBits; i-- {
		writeBit(i - 1)
	}
	builder.WriteByte(' ')
	for i := f.mantBits; i > 0; i-- {
		writeBit(i - 1)
	}
	return builder.String()
}
