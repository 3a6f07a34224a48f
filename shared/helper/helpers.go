package helper

import (
	"fmt"
)

// ValueAs asserts a value handed back by the property engine to T.
// Returns an error if the assertion fails.
func ValueAs[T any](raw any) (T, error) {
	val, ok := raw.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected type: %T, want %T", raw, zero)
	}
	return val, nil
}

// ValuesAs converts every element of raw to T, stopping at the first mismatch.
func ValuesAs[T any](raw []any) ([]T, error) {
	out := make([]T, len(raw))
	for i, r := range raw {
		v, err := ValueAs[T](r)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
