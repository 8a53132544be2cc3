// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundNearestEven(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mant           uint64
		from, to       uint
		res            uint64
		inexact, carry bool
	}{
		{0x3ff, 10, 23, 0x3ff << 13, false, false},
		{0, 30, 10, 0, false, false},
		{0b1000, 4, 2, 0b10, false, false},
		{0b1001, 4, 2, 0b10, true, false},
		{0b1010, 4, 2, 0b10, true, false}, // tie, even stays
		{0b1011, 4, 2, 0b11, true, false},
		{0b0110, 4, 2, 0b10, true, false}, // tie, odd goes up
		{0b1110, 4, 2, 0, true, true},     // tie, odd goes up and carries
		{0b1111, 4, 2, 0, true, true},
		{0b1101, 4, 2, 0b11, true, false},
		{0x7fffff, 23, 10, 0, true, true},
		{0x7fe000, 23, 10, 0x3ff, false, false},
		{0x7fefff, 23, 10, 0x3ff, true, false},
		{1 << 63, 65, 1, 0, true, false},
		{1<<63 + 1, 65, 1, 1, true, false},
		{1<<64 - 1, 64, 1, 0, true, true},
		{1<<64 - 1, 64, 0, 0, true, true},
		{1 << 63, 70, 1, 0, true, false},
		{1, 200, 10, 0, true, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, inexact, carry := RoundNearestEven(test.mant, test.from, test.to)
			a.Equal(test.res, res)
			a.Equal(test.inexact, inexact)
			a.Equal(test.carry, carry)
		})
	}
}

func TestRoundNearestEvenIsMonotonic(t *testing.T) {
	a := assert.New(t)
	prev := uint64(0)
	for m := uint64(0); m < 1<<12; m++ {
		res, _, carry := RoundNearestEven(m, 12, 5)
		if carry {
			res = 1 << 5
		}
		if !a.True(res >= prev, "%#x", m) {
			return
		}
		prev = res
	}
}
