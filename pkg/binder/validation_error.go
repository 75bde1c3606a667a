package binder

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one failed conversion or validation step.
// Field is the binding name; it is empty for bean-level failures.
type ValidationError struct {
	Field             string
	Value             any
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	BeanLevel         bool
}

func (e ValidationError) Error() string {
	if e.BeanLevel || e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is the error returned by Binder.Save. A single value holds
// either field-level or bean-level errors, never both.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, ve.Error())
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrValidationFailed) true for any ValidationErrors.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Has reports whether the named binding failed.
func (e ValidationErrors) Has(field string) bool {
	_, ok := e.Get(field)
	return ok
}

// Get returns the first error recorded for the named binding.
func (e ValidationErrors) Get(field string) (ValidationError, bool) {
	for _, ve := range e {
		if !ve.BeanLevel && ve.Field == field {
			return ve, true
		}
	}
	return ValidationError{}, false
}

// Fields lists the names of failed bindings in binding order without duplicates.
func (e ValidationErrors) Fields() []string {
	var names []string
	seen := make(map[string]struct{}, len(e))
	for _, ve := range e {
		if ve.BeanLevel {
			continue
		}
		if _, dup := seen[ve.Field]; dup {
			continue
		}
		seen[ve.Field] = struct{}{}
		names = append(names, ve.Field)
	}
	return names
}

func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

func (e ValidationErrors) FieldErrors() ValidationErrors {
	return e.filter(false)
}

func (e ValidationErrors) BeanErrors() ValidationErrors {
	return e.filter(true)
}

func (e ValidationErrors) filter(beanLevel bool) ValidationErrors {
	var out ValidationErrors
	for _, ve := range e {
		if ve.BeanLevel == beanLevel {
			out = append(out, ve)
		}
	}
	return out
}

// ExtractValidationErrors unwraps ValidationErrors from err, if present.
func ExtractValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}
