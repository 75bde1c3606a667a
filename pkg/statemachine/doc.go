// Package statemachine implements a small generic finite state machine with
// guards and actions.
//
// States and events are any comparable types, usually string-based named
// types. A Machine keeps its transitions in a nested map
// map[from][event][]Transition for O(1) lookup; when several transitions share
// a from/event pair the first one whose guards all pass is taken. Actions run
// before the state changes and can veto the transition by returning an error.
//
// The binder uses it to drive the one-way lifecycle of a binding from
// "incomplete" to "complete".
//
// # Usage
//
//	type state string
//	type event string
//
//	m, err := statemachine.NewBuilder[state, event]("draft").
//	    From("draft").When("submit").To("review").
//	    WithGuard(func(_ state, _ event, data any) bool { return data != nil }).
//	    Add()
//	if err != nil {
//	    return err
//	}
//	sm := m.Build()
//	if err := sm.Fire("submit", doc); err != nil {
//	    // statemachine.IsNoTransitionAvailable(err) / IsTransitionRejected(err)
//	}
//
// A Machine performs no locking; callers that share one between goroutines
// must synchronize access themselves.
package statemachine
