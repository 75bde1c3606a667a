package statemachine

// Builder provides a fluent API for declaring transitions.
type Builder[S, E comparable] struct {
	machine *Machine[S, E]
	pending Transition[S, E]
	hasFrom bool
	hasTo   bool
	hasWhen bool
}

// NewBuilder creates a builder for a machine starting in initial.
func NewBuilder[S, E comparable](initial S) *Builder[S, E] {
	return &Builder[S, E]{machine: New[S, E](initial)}
}

// From starts a new transition declaration.
func (b *Builder[S, E]) From(state S) *Builder[S, E] {
	b.reset()
	b.pending.From = state
	b.hasFrom = true
	return b
}

func (b *Builder[S, E]) When(event E) *Builder[S, E] {
	b.pending.Event = event
	b.hasWhen = true
	return b
}

func (b *Builder[S, E]) To(state S) *Builder[S, E] {
	b.pending.To = state
	b.hasTo = true
	return b
}

func (b *Builder[S, E]) WithGuard(guard Guard[S, E]) *Builder[S, E] {
	b.pending.Guards = append(b.pending.Guards, guard)
	return b
}

func (b *Builder[S, E]) WithAction(action Action[S, E]) *Builder[S, E] {
	b.pending.Actions = append(b.pending.Actions, action)
	return b
}

// Add finalizes the pending transition. It fails when From, When or To was not set.
func (b *Builder[S, E]) Add() (*Builder[S, E], error) {
	if !b.hasFrom || !b.hasTo || !b.hasWhen {
		return b, ErrIncompleteTransition
	}
	b.machine.AddTransition(b.pending)
	b.reset()
	return b, nil
}

// Build returns the machine.
func (b *Builder[S, E]) Build() *Machine[S, E] {
	return b.machine
}

func (b *Builder[S, E]) reset() {
	b.pending = Transition[S, E]{}
	b.hasFrom, b.hasTo, b.hasWhen = false, false, false
}
