package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](min T) Validator[T] {
	return FromKey(func(value T) bool {
		return value >= min
	}, fmt.Sprintf("must be at least %v", min), "validation.min", map[string]any{
		"min": min,
	})
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](max T) Validator[T] {
	return FromKey(func(value T) bool {
		return value <= max
	}, fmt.Sprintf("must be at most %v", max), "validation.max", map[string]any{
		"max": max,
	})
}

// Between validates an inclusive range.
func Between[T Numeric](min, max T) Validator[T] {
	return FromKey(func(value T) bool {
		return value >= min && value <= max
	}, fmt.Sprintf("must be between %v and %v", min, max), "validation.between", map[string]any{
		"min": min,
		"max": max,
	})
}

func Positive[T Numeric]() Validator[T] {
	var zero T
	return FromKey(func(value T) bool {
		return value > zero
	}, "must be positive", "validation.positive", nil)
}
