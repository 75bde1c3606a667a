package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteTransition = errors.New("incomplete transition: from, to and event are required")
	ErrActionFailed         = errors.New("transition action failed")
)

// ErrNoTransitionAvailable indicates no transition exists for the state/event pair.
type ErrNoTransitionAvailable struct {
	State string
	Event string
}

func (e *ErrNoTransitionAvailable) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.State, e.Event)
}

// ErrTransitionRejected indicates every candidate transition was blocked by a guard.
type ErrTransitionRejected struct {
	State string
	Event string
}

func (e *ErrTransitionRejected) Error() string {
	return fmt.Sprintf("transition from state '%s' for event '%s' was rejected by guards", e.State, e.Event)
}

func IsNoTransitionAvailable(err error) bool {
	var target *ErrNoTransitionAvailable
	return errors.As(err, &target)
}

func IsTransitionRejected(err error) bool {
	var target *ErrTransitionRejected
	return errors.As(err, &target)
}
