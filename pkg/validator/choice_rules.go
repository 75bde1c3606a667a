package validator

import (
	"fmt"
	"slices"
)

// RequiredComparable validates that a comparable value is not its zero value.
func RequiredComparable[T comparable]() Validator[T] {
	var zero T
	return FromKey(func(value T) bool {
		return value != zero
	}, "field is required", "validation.required", nil)
}

// OneOf validates that the value is one of the allowed options.
func OneOf[T comparable](options ...T) Validator[T] {
	return FromKey(func(value T) bool {
		return slices.Contains(options, value)
	}, fmt.Sprintf("must be one of: %v", options), "validation.in_list", map[string]any{
		"allowed_values": options,
	})
}
