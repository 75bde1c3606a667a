package result

// Map transforms the successful value and keeps a failure untouched.
func Map[T, R any](r Result[T], fn func(T) R) Result[R] {
	if r.failure != nil {
		return Result[R]{failure: r.failure}
	}
	return Ok(fn(r.value))
}

// FlatMap feeds the successful value into fn, short-circuiting on failure.
func FlatMap[T, R any](r Result[T], fn func(T) Result[R]) Result[R] {
	if r.failure != nil {
		return Result[R]{failure: r.failure}
	}
	return fn(r.value)
}

// Fold collapses a result into a single value by handling both outcomes.
// It is the usual way to decorate a raw result with caller context, for
// example which binding produced it.
func Fold[T, R any](r Result[T], onOk func(T) R, onError func(Failure) R) R {
	if r.failure != nil {
		return onError(*r.failure)
	}
	return onOk(r.value)
}

// Recast retypes a failed result. It panics on a successful result because
// there is no value of the target type to carry.
func Recast[R, T any](r Result[T]) Result[R] {
	if r.failure == nil {
		panic("result: Recast called on a successful result")
	}
	return Result[R]{failure: r.failure}
}
