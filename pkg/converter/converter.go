package converter

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/databinder/pkg/result"
	"github.com/dmitrymomot/databinder/pkg/validator"
)

// Converter converts between a presentation type P (what a field holds) and a
// model type M (what the bean property holds).
//
// ToModel may fail; ToPresentation is total. Both receive the locale the value
// is displayed in.
type Converter[P, M any] interface {
	ToModel(value P, locale language.Tag) result.Result[M]
	ToPresentation(value M, locale language.Tag) P
}

type funcConverter[P, M any] struct {
	toModel        func(P, language.Tag) result.Result[M]
	toPresentation func(M, language.Tag) P
}

func (c funcConverter[P, M]) ToModel(value P, locale language.Tag) result.Result[M] {
	return c.toModel(value, locale)
}

func (c funcConverter[P, M]) ToPresentation(value M, locale language.Tag) P {
	return c.toPresentation(value, locale)
}

// New builds a locale-aware converter from two functions.
func New[P, M any](toModel func(P, language.Tag) result.Result[M], toPresentation func(M, language.Tag) P) Converter[P, M] {
	return funcConverter[P, M]{toModel: toModel, toPresentation: toPresentation}
}

// From builds a converter from plain functions. An error returned by toModel
// becomes a failed result whose message is produced by onError; a nil onError
// uses err.Error().
func From[P, M any](toModel func(P) (M, error), toPresentation func(M) P, onError func(error) string) Converter[P, M] {
	if onError == nil {
		onError = func(err error) string { return err.Error() }
	}
	return funcConverter[P, M]{
		toModel: func(value P, _ language.Tag) result.Result[M] {
			m, err := toModel(value)
			if err != nil {
				return result.Error[M](onError(err))
			}
			return result.Ok(m)
		},
		toPresentation: func(value M, _ language.Tag) P {
			return toPresentation(value)
		},
	}
}

// FromMessage is From with a fixed error message.
func FromMessage[P, M any](toModel func(P) (M, error), toPresentation func(M) P, message string) Converter[P, M] {
	return From(toModel, toPresentation, func(error) string { return message })
}

type identity[T any] struct{}

func (identity[T]) ToModel(value T, _ language.Tag) result.Result[T] {
	return result.Ok(value)
}

func (identity[T]) ToPresentation(value T, _ language.Tag) T {
	return value
}

// Identity returns a converter that passes values through unchanged in both directions.
func Identity[T any]() Converter[T, T] {
	return identity[T]{}
}

type chained[P, M, N any] struct {
	first Converter[P, M]
	next  Converter[M, N]
}

func (c chained[P, M, N]) ToModel(value P, locale language.Tag) result.Result[N] {
	return result.FlatMap(c.first.ToModel(value, locale), func(m M) result.Result[N] {
		return c.next.ToModel(m, locale)
	})
}

func (c chained[P, M, N]) ToPresentation(value N, locale language.Tag) P {
	return c.first.ToPresentation(c.next.ToPresentation(value, locale), locale)
}

// Chain composes first and next into a single converter. ToModel stops at the
// first failing stage; ToPresentation applies next, then first.
// Chain is associative.
func Chain[P, M, N any](first Converter[P, M], next Converter[M, N]) Converter[P, N] {
	return chained[P, M, N]{first: first, next: next}
}

type validating[T any] struct {
	validator validator.Validator[T]
}

func (c validating[T]) ToModel(value T, _ language.Tag) result.Result[T] {
	r := c.validator.Validate(value)
	if f, failed := r.Failure(); failed {
		return result.Fail[T](f)
	}
	return result.Ok(value)
}

func (validating[T]) ToPresentation(value T, _ language.Tag) T {
	return value
}

// Validate adapts a validator into a converter so validators and converters
// can share one chain. The presentation direction is the identity.
func Validate[T any](v validator.Validator[T]) Converter[T, T] {
	return validating[T]{validator: v}
}
