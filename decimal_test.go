// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f    Format
		bits uint64
		s    string
	}{
		{Half, 0x0000, "0"},
		{Half, 0x8000, "0"},
		{Half, 0x3c00, "1"},
		{Half, 0xc000, "-2"},
		{Half, 0x3555, "0.333251953125"},
		{Half, 0x7bff, "65504"},
		{Half, 0x0001, "0.000000059604644775390625"},
		{Half, 0x0400, "0.00006103515625"},
		{Single, 0x3dcccccd, "0.100000001490116119384765625"},
		{Double, math.Float64bits(0.1), "0.1000000000000000055511151231257827021181583404541015625"},
		{Double, math.Float64bits(1e20), "100000000000000000000"},
		{BFloat16, 0x4049, "3.140625"},
		{MustFormat(3, 4), 0x01, "0.015625"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := test.f.Decimal(test.bits)
			if a.NoError(err) {
				a.Equal(test.s, d.String())
			}
		})
	}
}

func TestDecimalErrors(t *testing.T) {
	a := assert.New(t)
	for _, bits := range []uint64{0x7c00, 0xfc00, 0x7c01, 0x7e00} {
		_, err := Half.Decimal(bits)
		a.True(errors.Is(err, ErrNotFinite))
	}
	_, err := Single.Decimal(0x7fc00000)
	a.EqualError(err, "nan in e8m23: value is not finite")

	wide := MustFormat(20, 10)
	_, err = wide.Decimal(wide.Pack(false, wide.MaxBiasedExponent()-1, 0))
	a.True(errors.Is(err, errRange))
}

func TestDecimalMatchesFloat64(t *testing.T) {
	a := assert.New(t)
	for i := 0; i < 0x7c00; i += 7 {
		d, err := Half.Decimal(uint64(i))
		a.NoError(err)
		f, exact := d.Float64()
		a.True(exact)
		a.Equal(Half.Float64(uint64(i)), f, "%#04x", i)
	}
}
