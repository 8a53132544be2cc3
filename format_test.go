// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		e, m                        int
		total, bias                 int
		maxExp                      uint64
		signMask, expMask, mantMask uint64
		quietMask                   uint64
	}{
		{5, 10, 16, 15, 31, 0x8000, 0x7c00, 0x3ff, 0x200},
		{8, 23, 32, 127, 255, 0x80000000, 0x7f800000, 0x7fffff, 0x400000},
		{11, 52, 64, 1023, 2047, 1 << 63, 0x7ff0000000000000, 0xfffffffffffff, 1 << 51},
		{8, 7, 16, 127, 255, 0x8000, 0x7f80, 0x7f, 0x40},
		{3, 4, 8, 3, 7, 0x80, 0x70, 0xf, 0x8},
		{1, 1, 3, 0, 1, 0x4, 0x2, 0x1, 0x1},
		{32, 31, 64, 1<<31 - 1, 1<<32 - 1, 1 << 63, (1<<32 - 1) << 31, 1<<31 - 1, 1 << 30},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := NewFormat(test.e, test.m)
			if !a.NoError(err) {
				return
			}
			a.Equal(test.e, f.ExpBits())
			a.Equal(test.m, f.MantBits())
			a.Equal(test.total, f.TotalBits())
			a.Equal(test.bias, f.Bias())
			a.Equal(test.maxExp, f.MaxBiasedExponent())
			a.Equal(test.signMask, f.SignMask())
			a.Equal(test.expMask, f.ExpMask())
			a.Equal(test.mantMask, f.MantMask())
			a.Equal(test.quietMask, f.QuietMask())
		})
	}
}

func TestNewFormatErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		e, m int
		err  string
	}{
		{0, 10, "invalid format e0m10: exponent width must be positive"},
		{-1, 10, "invalid format e-1m10: exponent width must be positive"},
		{5, 0, "invalid format e5m0: mantissa width must be positive"},
		{12, 52, "invalid format e12m52: 65 bits do not fit 64-bit storage"},
		{1, 63, "invalid format e1m63: 65 bits do not fit 64-bit storage"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := NewFormat(test.e, test.m)
			a.EqualError(err, test.err)
			a.True(errors.Is(err, ErrConfig))
			var ce *ConfigError
			if a.True(errors.As(err, &ce)) {
				a.Equal(test.e, ce.ExpBits)
				a.Equal(test.m, ce.MantBits)
			}
		})
	}
	a.Panics(func() { MustFormat(0, 0) })
}

func TestParseFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		f   Format
		err bool
	}{
		{"half", Half, false},
		{" Single ", Single, false},
		{"DOUBLE", Double, false},
		{"bfloat16", BFloat16, false},
		{"e5m10", Half, false},
		{"E8M23", Single, false},
		{"e3m4", MustFormat(3, 4), false},
		{"", Format{}, true},
		{"quad", Format{}, true},
		{"e5", Format{}, true},
		{"exm3", Format{}, true},
		{"e3mx", Format{}, true},
		{"e0m3", Format{}, true},
		{"e40m40", Format{}, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := ParseFormat(test.s)
			if test.err {
				a.Error(err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.f, f)
			}
		})
	}
}

func TestFormatText(t *testing.T) {
	a := assert.New(t)
	a.Equal("e5m10", Half.String())
	a.Equal("e11m52", Double.String())

	type config struct {
		From Format `json:"from"`
		To   Format `json:"to"`
	}
	data, err := json.Marshal(config{From: Half, To: BFloat16})
	a.NoError(err)
	a.Equal(`{"from":"e5m10","to":"e8m7"}`, string(data))

	var c config
	a.NoError(json.Unmarshal([]byte(`{"from":"single","to":"e3m4"}`), &c))
	a.Equal(Single, c.From)
	a.Equal(MustFormat(3, 4), c.To)

	a.Error(json.Unmarshal([]byte(`{"from":"e0m0"}`), &c))
}

func TestPackUnpack(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f         Format
		neg       bool
		exp, mant uint64
		bits      uint64
	}{
		{Half, false, 0, 0, 0x0000},
		{Half, true, 0, 0, 0x8000},
		{Half, false, 31, 0, 0x7c00},
		{Half, true, 31, 7, 0xfc07},
		{Half, false, 15, 0x155, 0x3d55},
		{Single, false, 127, 0, 0x3f800000},
		{Single, true, 255, 0x400000, 0xffc00000},
		{MustFormat(3, 4), true, 2, 5, 0xa5},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.bits, test.f.Pack(test.neg, test.exp, test.mant))
			neg, exp, mant := test.f.Unpack(test.bits)
			a.Equal(test.neg, neg)
			a.Equal(test.exp, exp)
			a.Equal(test.mant, mant)
		})
	}
	// wider fields are truncated, extra input bits are ignored.
	a.Equal(uint64(0x7fff), Half.Pack(false, 0xff, 0xffff))
	neg, exp, mant := Half.Unpack(0xfffffc01)
	a.True(neg)
	a.Equal(uint64(31), exp)
	a.Equal(uint64(1), mant)
}
