package bitutil

import (
	"math/bits"
	"unsafe"
)

// StorageBits is the width of the integer every encoding is kept in.
const StorageBits = int(8 * unsafe.Sizeof(uint64(0)))

// Mask returns a value with the n lowest bits set.
// n >= 64 returns all ones.
func Mask(n uint) uint64 {
	if n >= uint(StorageBits) {
		return ^uint64(0)
	}
	return 1<<n - 1
}

// BinaryDigits returns the number of bits needed to represent value.
func BinaryDigits(value uint64) int {
	return StorageBits - bits.LeadingZeros64(value)
}

// Normalize shifts value left until its highest set bit is at position 'top'.
// Returns the shifted value and the shift count.
// A zero value is returned as is.
func Normalize(value uint64, top uint) (uint64, int) {
	if value == 0 {
		return 0, 0
	}
	shift := int(top) + 1 - BinaryDigits(value)
	if shift <= 0 {
		return value, 0
	}
	return value << uint(shift), shift
}

// ShiftLeft shifts value by n bits, with negative n shifting right.
// Bits shifted out are lost.
func ShiftLeft(value uint64, n int) uint64 {
	if n >= 0 {
		return value << uint(n)
	}
	return value >> uint(-n)
}
