package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required() Validator[string] {
	return FromKey(func(value string) bool {
		return strings.TrimSpace(value) != ""
	}, "field is required", "validation.required", nil)
}

// NotBlank is Required with a caller-supplied message.
func NotBlank(message string) Validator[string] {
	return FromKey(func(value string) bool {
		return strings.TrimSpace(value) != ""
	}, message, "", nil)
}

// MinLen counts runes, not bytes.
func MinLen(min int) Validator[string] {
	return FromKey(func(value string) bool {
		return utf8.RuneCountInString(value) >= min
	}, fmt.Sprintf("must be at least %d characters long", min), "validation.min_length", map[string]any{
		"min": min,
	})
}

func MaxLen(max int) Validator[string] {
	return FromKey(func(value string) bool {
		return utf8.RuneCountInString(value) <= max
	}, fmt.Sprintf("must be at most %d characters long", max), "validation.max_length", map[string]any{
		"max": max,
	})
}

func LenBetween(min, max int) Validator[string] {
	return FromKey(func(value string) bool {
		n := utf8.RuneCountInString(value)
		return n >= min && n <= max
	}, fmt.Sprintf("must be between %d and %d characters long", min, max), "validation.length_between", map[string]any{
		"min": min,
		"max": max,
	})
}
