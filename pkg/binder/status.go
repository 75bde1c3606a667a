package binder

import (
	"github.com/dmitrymomot/databinder/pkg/field"
	"github.com/dmitrymomot/databinder/pkg/result"
)

// Status is the outcome of one validation step.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Handle is the type-erased view of a binding that status reporting works with.
type Handle interface {
	// Name identifies the binding in errors and logs.
	Name() string
	// FieldValue returns the current presentation value of the bound field.
	FieldValue() any
	// IsComplete reports whether Bind has been called.
	IsComplete() bool
}

// BindingResult is the outcome of one conversion chain or bean validator run
// as delivered to a StatusHandler. Binding is nil for bean-level results.
type BindingResult struct {
	Binding Handle
	Value   any
	failure *result.Failure
}

func (r BindingResult) IsError() bool {
	return r.failure != nil
}

// IsBeanLevel reports whether the result came from a bean validator.
func (r BindingResult) IsBeanLevel() bool {
	return r.Binding == nil
}

func (r BindingResult) Status() Status {
	if r.failure != nil {
		return StatusError
	}
	return StatusOK
}

// Message returns the (possibly localized) failure message.
func (r BindingResult) Message() (string, bool) {
	if r.failure == nil {
		return "", false
	}
	return r.failure.Message, true
}

// Failure returns the failure payload including its translation key.
func (r BindingResult) Failure() (result.Failure, bool) {
	if r.failure == nil {
		return result.Failure{}, false
	}
	return *r.failure, true
}

func (r BindingResult) validationError() ValidationError {
	ve := ValidationError{
		Value:             r.Value,
		Message:           r.failure.Message,
		TranslationKey:    r.failure.TranslationKey,
		TranslationValues: r.failure.TranslationValues,
		BeanLevel:         r.Binding == nil,
	}
	if r.Binding != nil {
		ve.Field = r.Binding.Name()
		ve.Value = r.Binding.FieldValue()
	}
	return ve
}

// StatusHandler receives every batch of results a binder produces: all
// bindings for Validate and Save, one binding for a field change, the bean
// validators for bean-level checks. Setting one replaces the default routing
// to binding handlers and the status label.
type StatusHandler func(results []BindingResult)

// StatusChangeEvent is delivered to a binding's StatusChangeHandler.
type StatusChangeEvent struct {
	Binding Handle
	// Field is the bound field, typically a field.Field[F].
	Field   any
	Status  Status
	Message string
}

// StatusChangeHandler reacts to a single binding's validation status.
type StatusChangeHandler func(event StatusChangeEvent)

// showComponentError is the default binding handler: the field's error
// indicator is cleared and set again when the status is an error.
func showComponentError(event StatusChangeEvent) {
	target, ok := event.Field.(field.ErrorDisplayable)
	if !ok {
		return
	}
	target.ClearComponentError()
	if event.Status == StatusError {
		target.SetComponentError(event.Message)
	}
}

// labelStatusHandler shows the binding's message in label, visible only on error.
func labelStatusHandler(label field.StatusLabel) StatusChangeHandler {
	return func(event StatusChangeEvent) {
		label.SetValue(event.Message)
		label.SetVisible(event.Status == StatusError)
	}
}
