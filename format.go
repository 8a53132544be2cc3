// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package binfloat converts IEEE-754 style binary floating-point encodings
// between formats of different exponent and mantissa widths.
// Every bit pattern is accepted: precision and range losses are reported
// as an Outcome next to the converted bits, never as an error.
//
// A format is described by its exponent width E and mantissa width M and is
// stored in the low 1+E+M bits of a uint64:
//	63         E+M    M                   0
//	___________|_|_____|__________________
//	0000...0000seeeeeeeemmmmmmmmmmmmmmmmmm
package binfloat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avdva/binfloat/internal/bitutil"
)

// Format describes one binary floating-point encoding.
// The zero value is not a valid format, use NewFormat.
type Format struct {
	expBits  uint
	mantBits uint
	bias     int
	maxExp   uint64

	signMask uint64
	expMask  uint64
	mantMask uint64
}

var (
	// Half is the IEEE-754 binary16 format.
	Half = MustFormat(5, 10)
	// Single is the IEEE-754 binary32 format.
	Single = MustFormat(8, 23)
	// Double is the IEEE-754 binary64 format.
	Double = MustFormat(11, 52)
	// BFloat16 is the brain floating-point format: Single with a truncated mantissa.
	BFloat16 = MustFormat(8, 7)

	formatNames = map[string]Format{
		"half":     Half,
		"single":   Single,
		"double":   Double,
		"bfloat16": BFloat16,
	}
)

// NewFormat returns a format for given exponent and mantissa widths.
// Both widths must be positive, and the sign, exponent and mantissa
// must fit 64 bits together.
func NewFormat(expBits, mantBits int) (Format, error) {
	switch {
	case expBits < 1:
		return Format{}, newConfigError(expBits, mantBits, "exponent width must be positive")
	case mantBits < 1:
		return Format{}, newConfigError(expBits, mantBits, "mantissa width must be positive")
	case 1+expBits+mantBits > bitutil.StorageBits:
		return Format{}, newConfigError(expBits, mantBits,
			fmt.Sprintf("%d bits do not fit %d-bit storage", 1+expBits+mantBits, bitutil.StorageBits))
	}
	e, m := uint(expBits), uint(mantBits)
	return Format{
		expBits:  e,
		mantBits: m,
		bias:     1<<(e-1) - 1,
		maxExp:   bitutil.Mask(e),
		signMask: 1 << (e + m),
		expMask:  bitutil.Mask(e) << m,
		mantMask: bitutil.Mask(m),
	}, nil
}

// MustFormat is like NewFormat, but panics on error.
func MustFormat(expBits, mantBits int) Format {
	f, err := NewFormat(expBits, mantBits)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseFormat parses either a format name (half, single, double, bfloat16),
// or a string in the form of "e<exponent bits>m<mantissa bits>", like "e5m10".
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if f, found := formatNames[s]; found {
		return f, nil
	}
	if !strings.HasPrefix(s, "e") {
		return Format{}, fmt.Errorf("unknown format %q", s)
	}
	pos := strings.IndexByte(s, 'm')
	if pos < 0 {
		return Format{}, fmt.Errorf("unknown format %q: missing mantissa width", s)
	}
	e, err := strconv.Atoi(s[1:pos])
	if err != nil {
		return Format{}, fmt.Errorf("bad exponent width in %q: %w", s, err)
	}
	m, err := strconv.Atoi(s[pos+1:])
	if err != nil {
		return Format{}, fmt.Errorf("bad mantissa width in %q: %w", s, err)
	}
	return NewFormat(e, m)
}

// ExpBits returns the width of the exponent field.
func (f Format) ExpBits() int { return int(f.expBits) }

// MantBits returns the width of the mantissa field, without the implicit bit.
func (f Format) MantBits() int { return int(f.mantBits) }

// TotalBits returns 1+ExpBits+MantBits.
func (f Format) TotalBits() int { return 1 + int(f.expBits+f.mantBits) }

// Bias returns 2^(E-1)-1.
func (f Format) Bias() int { return f.bias }

// MaxBiasedExponent returns 2^E-1, the exponent of infinities and NaNs.
func (f Format) MaxBiasedExponent() uint64 { return f.maxExp }

// SignMask returns the mask of the sign bit.
func (f Format) SignMask() uint64 { return f.signMask }

// ExpMask returns the mask of the exponent field.
func (f Format) ExpMask() uint64 { return f.expMask }

// MantMask returns the mask of the mantissa field.
func (f Format) MantMask() uint64 { return f.mantMask }

// QuietMask returns the mask of the mantissa bit, that tells quiet NaNs from signaling ones.
func (f Format) QuietMask() uint64 {
	if f.mantBits == 0 {
		return 0
	}
	return 1 << (f.mantBits - 1)
}

func (f Format) payloadBits() uint {
	return f.mantBits - 1
}

// Unpack splits bits into sign, biased exponent and mantissa fields.
// Bits above TotalBits are ignored.
func (f Format) Unpack(bits uint64) (neg bool, biasedExp, mant uint64) {
	return bits&f.signMask != 0, (bits & f.expMask) >> f.mantBits, bits & f.mantMask
}

// Pack assembles the fields into an encoding.
// Exponent and mantissa values wider than their fields are truncated.
func (f Format) Pack(neg bool, biasedExp, mant uint64) uint64 {
	result := (biasedExp<<f.mantBits)&f.expMask | mant&f.mantMask
	if neg {
		result |= f.signMask
	}
	return result
}

// String returns the format as "e<exponent bits>m<mantissa bits>".
func (f Format) String() string {
	return "e" + strconv.Itoa(int(f.expBits)) + "m" + strconv.Itoa(int(f.mantBits))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, see ParseFormat.
func (f *Format) UnmarshalText(data []byte) error {
	parsed, err := ParseFormat(string(data))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
