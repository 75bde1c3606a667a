package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/databinder/pkg/field"
)

func TestInput_SetValue(t *testing.T) {
	t.Parallel()

	t.Run("notifies listeners with old and new value", func(t *testing.T) {
		in := field.NewInput("name", "Ann")

		var events []field.ValueChangeEvent[string]
		in.AddValueChangeListener(func(e field.ValueChangeEvent[string]) {
			events = append(events, e)
		})

		in.SetValue("Bob")

		require.Len(t, events, 1)
		assert.Equal(t, "Ann", events[0].OldValue)
		assert.Equal(t, "Bob", events[0].Value)
		assert.Same(t, in, events[0].Source)
		assert.Equal(t, "Bob", in.Value())
	})

	t.Run("equal value fires nothing", func(t *testing.T) {
		in := field.NewInput("name", "Ann")
		fired := 0
		in.AddValueChangeListener(func(field.ValueChangeEvent[string]) { fired++ })

		in.SetValue("Ann")
		assert.Zero(t, fired)
	})

	t.Run("compares structs with unexported fields", func(t *testing.T) {
		type money struct {
			amount   int
			currency string
		}
		in := field.NewInput("price", money{1, "EUR"})
		fired := 0
		in.AddValueChangeListener(func(field.ValueChangeEvent[money]) { fired++ })

		in.SetValue(money{1, "EUR"})
		in.SetValue(money{2, "EUR"})
		assert.Equal(t, 1, fired)
	})
}

func TestInput_Registration(t *testing.T) {
	t.Parallel()

	in := field.NewInput("age", 0)
	fired := 0
	reg := in.AddValueChangeListener(func(field.ValueChangeEvent[int]) { fired++ })
	assert.Equal(t, 1, in.ListenerCount())

	in.SetValue(1)
	reg.Remove()
	reg.Remove()
	in.SetValue(2)

	assert.Equal(t, 1, fired)
	assert.Zero(t, in.ListenerCount())

	nilReg := in.AddValueChangeListener(nil)
	assert.NotPanics(t, nilReg.Remove)
	assert.Zero(t, in.ListenerCount())
}

func TestInput_ListenerRemovesItself(t *testing.T) {
	t.Parallel()

	in := field.NewInput("name", "")
	var reg field.Registration
	calls := 0
	reg = in.AddValueChangeListener(func(field.ValueChangeEvent[string]) {
		calls++
		reg.Remove()
	})
	other := 0
	in.AddValueChangeListener(func(field.ValueChangeEvent[string]) { other++ })

	in.SetValue("a")
	in.SetValue("b")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestInput_Capabilities(t *testing.T) {
	t.Parallel()

	in := field.NewInput("email", "")
	var _ field.LocaleAware = in
	var _ field.ErrorDisplayable = in
	var _ field.Named = in

	assert.Equal(t, "email", in.Name())
	assert.Equal(t, language.Und, in.Locale())
	in.SetLocale(language.German)
	assert.Equal(t, language.German, in.Locale())

	_, has := in.ComponentError()
	assert.False(t, has)
	in.SetComponentError("bad")
	msg, has := in.ComponentError()
	assert.True(t, has)
	assert.Equal(t, "bad", msg)
	in.ClearComponentError()
	_, has = in.ComponentError()
	assert.False(t, has)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	l := field.NewLabel()
	var _ field.StatusLabel = l

	assert.True(t, l.Visible())
	assert.Empty(t, l.Value())

	l.SetValue("saved")
	l.SetVisible(false)
	assert.Equal(t, "saved", l.Value())
	assert.False(t, l.Visible())
}
