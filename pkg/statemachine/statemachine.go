package statemachine

import "fmt"

// Guard decides whether a transition may proceed.
type Guard[S, E comparable] func(from S, event E, data any) bool

// Action runs side effects before the state changes. Returning an error
// aborts the transition and leaves the current state untouched.
type Action[S, E comparable] func(from, to S, event E, data any) error

// Transition is a state change triggered by an event.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // all must pass
	Actions []Action[S, E] // run in order before the state changes
}

// Machine is an in-memory finite state machine over comparable state and
// event types. It is not safe for concurrent use.
type Machine[S, E comparable] struct {
	current     S
	transitions map[S]map[E][]Transition[S, E]
}

// New creates a machine in the initial state with no transitions.
func New[S, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		current:     initial,
		transitions: make(map[S]map[E][]Transition[S, E]),
	}
}

func (m *Machine[S, E]) Current() S {
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool {
	return m.current == s
}

// AddTransition registers a transition. Several transitions may share the same
// from/event pair; the first whose guards pass wins.
func (m *Machine[S, E]) AddTransition(t Transition[S, E]) {
	byEvent, ok := m.transitions[t.From]
	if !ok {
		byEvent = make(map[E][]Transition[S, E])
		m.transitions[t.From] = byEvent
	}
	byEvent[t.Event] = append(byEvent[t.Event], t)
}

// Fire applies event to the current state.
func (m *Machine[S, E]) Fire(event E, data any) error {
	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return &ErrNoTransitionAvailable{State: fmt.Sprint(m.current), Event: fmt.Sprint(event)}
	}

	t, ok := m.selectTransition(candidates, event, data)
	if !ok {
		return &ErrTransitionRejected{State: fmt.Sprint(m.current), Event: fmt.Sprint(event)}
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(m.current, t.To, event, data); err != nil {
			return fmt.Errorf("%w: %w", ErrActionFailed, err)
		}
	}

	m.current = t.To
	return nil
}

func (m *Machine[S, E]) selectTransition(candidates []Transition[S, E], event E, data any) (Transition[S, E], bool) {
	for _, t := range candidates {
		passed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(m.current, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t, true
		}
	}
	return Transition[S, E]{}, false
}
