// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is matched by every error returned for an invalid Format.
	ErrConfig = errors.New("invalid format")
	// ErrNotFinite is returned when an exact value is requested for an infinity or a NaN.
	ErrNotFinite = errors.New("value is not finite")
)

// ConfigError describes why a (exponent, mantissa) pair can't form a Format.
type ConfigError struct {
	ExpBits  int
	MantBits int
	reason   string
}

func newConfigError(expBits, mantBits int, reason string) *ConfigError {
	return &ConfigError{ExpBits: expBits, MantBits: mantBits, reason: reason}
}

func (ce *ConfigError) Error() string {
	return ErrConfig.Error() + fmt.Sprintf(" e%dm%d: %s", ce.ExpBits, ce.MantBits, ce.reason)
}

// Unwrap allows errors.Is(err, ErrConfig).
func (ce *ConfigError) Unwrap() error {
	return ErrConfig
}
