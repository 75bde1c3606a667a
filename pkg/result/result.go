package result

import "fmt"

// Failure describes why a conversion or validation step rejected a value.
// TranslationKey and TranslationValues let callers localize the message later
// without changing the error state.
type Failure struct {
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Result is either a successful value or a Failure.
// The zero value is a successful result holding the zero value of T.
type Result[T any] struct {
	value   T
	failure *Failure
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Error creates a failed result with a plain message.
func Error[T any](message string) Result[T] {
	return Result[T]{failure: &Failure{Message: message}}
}

// Errorf creates a failed result with a formatted message.
func Errorf[T any](format string, args ...any) Result[T] {
	return Error[T](fmt.Sprintf(format, args...))
}

// Fail creates a failed result from a complete Failure, keeping translation metadata.
func Fail[T any](f Failure) Result[T] {
	return Result[T]{failure: &f}
}

func (r Result[T]) IsError() bool {
	return r.failure != nil
}

func (r Result[T]) IsOk() bool {
	return r.failure == nil
}

// Value returns the successful value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	if r.failure != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Message returns the failure message, if any.
func (r Result[T]) Message() (string, bool) {
	if r.failure == nil {
		return "", false
	}
	return r.failure.Message, true
}

// Failure returns a copy of the failure payload, if any.
func (r Result[T]) Failure() (Failure, bool) {
	if r.failure == nil {
		return Failure{}, false
	}
	return *r.failure, true
}

// OrElse returns the value or fallback when the result failed.
func (r Result[T]) OrElse(fallback T) T {
	if r.failure != nil {
		return fallback
	}
	return r.value
}

// IfOk runs fn with the value when the result succeeded.
func (r Result[T]) IfOk(fn func(T)) {
	if r.failure == nil && fn != nil {
		fn(r.value)
	}
}

// IfError runs fn with the failure when the result failed.
func (r Result[T]) IfError(fn func(Failure)) {
	if r.failure != nil && fn != nil {
		fn(*r.failure)
	}
}

func (r Result[T]) String() string {
	if r.failure != nil {
		return fmt.Sprintf("Error(%s)", r.failure.Message)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
