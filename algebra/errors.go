package algebra

import "errors"

var (
	// ErrModulus is returned for a modulus below one.
	ErrModulus = errors.New("algebra: modulus must be positive")

	// ErrNotPrime is returned when a field is requested over a composite
	// modulus.
	ErrNotPrime = errors.New("algebra: modulus is not prime")
)
