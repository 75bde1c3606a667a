package statemachine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/databinder/pkg/statemachine"
)

type state string
type event string

const (
	draft     state = "draft"
	review    state = "review"
	published state = "published"
	rejected  state = "rejected"

	submit  event = "submit"
	approve event = "approve"
	reject  event = "reject"
)

func TestMachine_Fire(t *testing.T) {
	t.Parallel()

	t.Run("basic transitions", func(t *testing.T) {
		m := statemachine.New[state, event](draft)
		m.AddTransition(statemachine.Transition[state, event]{From: draft, To: review, Event: submit})
		m.AddTransition(statemachine.Transition[state, event]{From: review, To: published, Event: approve})

		assert.Equal(t, draft, m.Current())
		require.NoError(t, m.Fire(submit, nil))
		assert.True(t, m.Is(review))
		require.NoError(t, m.Fire(approve, nil))
		assert.Equal(t, published, m.Current())
	})

	t.Run("no transition available", func(t *testing.T) {
		m := statemachine.New[state, event](draft)
		err := m.Fire(approve, nil)
		require.Error(t, err)
		assert.True(t, statemachine.IsNoTransitionAvailable(err))
		assert.Equal(t, "no transition available from state 'draft' for event 'approve'", err.Error())
	})

	t.Run("guards select the first passing transition", func(t *testing.T) {
		newMachine := func() *statemachine.Machine[state, event] {
			m := statemachine.New[state, event](review)
			m.AddTransition(statemachine.Transition[state, event]{
				From: review, To: published, Event: approve,
				Guards: []statemachine.Guard[state, event]{
					func(_ state, _ event, data any) bool { return data == "ok" },
				},
			})
			m.AddTransition(statemachine.Transition[state, event]{From: review, To: rejected, Event: approve})
			return m
		}

		m := newMachine()
		require.NoError(t, m.Fire(approve, "not ok"))
		assert.Equal(t, rejected, m.Current())

		m = newMachine()
		require.NoError(t, m.Fire(approve, "ok"))
		assert.Equal(t, published, m.Current())
	})

	t.Run("rejected by guards", func(t *testing.T) {
		m := statemachine.New[state, event](draft)
		m.AddTransition(statemachine.Transition[state, event]{
			From: draft, To: review, Event: submit,
			Guards: []statemachine.Guard[state, event]{
				func(state, event, any) bool { return false },
			},
		})

		err := m.Fire(submit, nil)
		assert.True(t, statemachine.IsTransitionRejected(err))
		assert.Equal(t, draft, m.Current())
	})

	t.Run("failing action aborts the transition", func(t *testing.T) {
		boom := errors.New("boom")
		var order []string
		m := statemachine.New[state, event](draft)
		m.AddTransition(statemachine.Transition[state, event]{
			From: draft, To: review, Event: submit,
			Actions: []statemachine.Action[state, event]{
				func(from, to state, _ event, _ any) error {
					order = append(order, string(from)+"->"+string(to))
					return nil
				},
				func(state, state, event, any) error { return boom },
			},
		})

		err := m.Fire(submit, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, statemachine.ErrActionFailed)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, draft, m.Current())
		assert.Equal(t, []string{"draft->review"}, order)
	})
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	t.Run("builds transitions", func(t *testing.T) {
		acted := false
		b, err := statemachine.NewBuilder[state, event](draft).
			From(draft).When(submit).To(review).
			WithGuard(func(state, event, any) bool { return true }).
			WithAction(func(state, state, event, any) error {
				acted = true
				return nil
			}).
			Add()
		require.NoError(t, err)

		_, err = b.From(review).When(reject).To(rejected).Add()
		require.NoError(t, err)

		m := b.Build()
		require.NoError(t, m.Fire(submit, nil))
		require.NoError(t, m.Fire(reject, nil))
		assert.True(t, acted)
		assert.Equal(t, rejected, m.Current())
	})

	t.Run("incomplete transition", func(t *testing.T) {
		_, err := statemachine.NewBuilder[state, event](draft).From(draft).To(review).Add()
		assert.ErrorIs(t, err, statemachine.ErrIncompleteTransition)
	})
}
