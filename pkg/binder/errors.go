package binder

import "errors"

// Misuse errors. They are returned at the call that violates the binder
// contract and never reach status handlers.
var (
	ErrBindingAlreadyBound           = errors.New("cannot modify binding: already bound to a property")
	ErrStatusChangeHandlerAlreadySet = errors.New("a status change handler has already been set")
	ErrStatusLabelAlreadySet         = errors.New("status label has already been set")
	ErrStatusHandlerAlreadySet       = errors.New("status handler has already been set")

	ErrNilBean          = errors.New("bean cannot be nil")
	ErrNilField         = errors.New("field cannot be nil")
	ErrNilGetter        = errors.New("getter cannot be nil")
	ErrNilValidator     = errors.New("validator cannot be nil")
	ErrNilConverter     = errors.New("converter cannot be nil")
	ErrNilStatusHandler = errors.New("status handler cannot be nil")
	ErrNilStatusLabel   = errors.New("status label cannot be nil")
)

// ErrValidationFailed matches any ValidationErrors value with errors.Is.
var ErrValidationFailed = errors.New("validation failed")
