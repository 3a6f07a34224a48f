package recurrence

import "errors"

var (
	// ErrNegativeIndex is returned for a negative index under RejectNegative.
	ErrNegativeIndex = errors.New("recurrence: negative index")

	// ErrNotSmaller is returned when a step requests an index that does not
	// precede the one being computed.
	ErrNotSmaller = errors.New("recurrence: requested index is not smaller")
)
