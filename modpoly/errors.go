package modpoly

import "errors"

var (
	// ErrDomain is returned when the modulus is nil, zero or negative.
	ErrDomain = errors.New("modulus must be positive")

	// ErrRange is returned when the modulus exceeds the root search ceiling.
	ErrRange = errors.New("modulus exceeds root search range")

	// ErrPrecondition is returned when a divisor is not of the form x + c.
	ErrPrecondition = errors.New("divisor must be monic of degree one")
)
