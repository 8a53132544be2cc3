// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// the largest binary exponent, for which an exact decimal is built.
// it covers every format with up to 15 exponent bits.
const maxDecimalExp = 1 << 15

var (
	errRange = errors.New("value out of range")

	bigFive = big.NewInt(5)
)

// Decimal returns the exact value of bits as a decimal number.
// Both zeros return decimal zero. Infinities and NaNs return ErrNotFinite.
func (f Format) Decimal(bits uint64) (decimal.Decimal, error) {
	v := f.Classify(bits)
	var sig uint64
	var exp int // the value is sig * 2^exp
	switch v.Class {
	case Zero:
		return decimal.Zero, nil
	case Subnormal:
		sig, exp = v.Mant, 1-f.bias-int(f.mantBits)
	case Normal:
		sig, exp = v.Mant|1<<f.mantBits, v.Exp-int(f.mantBits)
	default:
		return decimal.Zero, fmt.Errorf("%v in %v: %w", v.Class, f, ErrNotFinite)
	}
	if exp > maxDecimalExp || exp < -maxDecimalExp {
		return decimal.Zero, fmt.Errorf("binary exponent %d: %w", exp, errRange)
	}
	n := new(big.Int).SetUint64(sig)
	var result decimal.Decimal
	if exp >= 0 {
		result = decimal.NewFromBigInt(n.Lsh(n, uint(exp)), 0)
	} else {
		// sig * 2^-k == sig * 5^k * 10^-k
		k := int64(-exp)
		n.Mul(n, new(big.Int).Exp(bigFive, big.NewInt(k), nil))
		result = decimal.NewFromBigInt(n, int32(exp))
	}
	if v.Neg {
		result = result.Neg()
	}
	return result, nil
}
