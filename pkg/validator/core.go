package validator

import (
	"reflect"

	"github.com/dmitrymomot/databinder/pkg/result"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Validator checks a value and returns it unchanged on success.
type Validator[T any] func(value T) result.Result[T]

// Validate runs the validator. A nil validator accepts everything.
func (v Validator[T]) Validate(value T) result.Result[T] {
	if v == nil {
		return result.Ok(value)
	}
	return v(value)
}

// From builds a validator from a predicate and a fixed error message.
func From[T any](predicate func(T) bool, message string) Validator[T] {
	return FromKey(predicate, message, "", nil)
}

// FromKey builds a validator whose failure carries a translation key and values.
func FromKey[T any](predicate func(T) bool, message, key string, values map[string]any) Validator[T] {
	return func(value T) result.Result[T] {
		if predicate(value) {
			return result.Ok(value)
		}
		return result.Fail[T](result.Failure{
			Message:           message,
			TranslationKey:    key,
			TranslationValues: values,
		})
	}
}

// All runs validators in order and returns the first failure.
func All[T any](validators ...Validator[T]) Validator[T] {
	return func(value T) result.Result[T] {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if r := v(value); r.IsError() {
				return r
			}
		}
		return result.Ok(value)
	}
}

// Optional skips the wrapped validator when the value is the zero value of T.
func Optional[T any](v Validator[T]) Validator[T] {
	return func(value T) result.Result[T] {
		if isZero(value) {
			return result.Ok(value)
		}
		return v.Validate(value)
	}
}

func isZero[T any](value T) bool {
	rv := reflect.ValueOf(&value).Elem()
	return rv.IsZero()
}
