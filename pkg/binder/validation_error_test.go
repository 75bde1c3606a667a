package binder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/databinder/pkg/binder"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := binder.ValidationErrors{
		{Field: "name", Message: "field is required"},
		{Field: "balance", Message: "must be a whole number", Value: "abc"},
		{Field: "name", Message: "too short"},
	}

	assert.Equal(t, "validation failed: name: field is required; balance: must be a whole number; name: too short", errs.Error())
	assert.True(t, errs.Has("name"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, []string{"name", "balance"}, errs.Fields())
	assert.False(t, errs.IsEmpty())

	first, ok := errs.Get("name")
	require.True(t, ok)
	assert.Equal(t, "field is required", first.Message)

	_, ok = errs.Get("email")
	assert.False(t, ok)

	t.Run("bean level", func(t *testing.T) {
		bean := binder.ValidationErrors{{Message: "balance exceeds the limit", BeanLevel: true}}
		assert.Equal(t, "balance exceeds the limit", bean[0].Error())
		assert.Empty(t, bean.Fields())
		assert.False(t, bean.Has(""))
		assert.Len(t, bean.BeanErrors(), 1)
		assert.Empty(t, bean.FieldErrors())
	})

	t.Run("empty", func(t *testing.T) {
		var none binder.ValidationErrors
		assert.True(t, none.IsEmpty())
		assert.Equal(t, "validation failed", none.Error())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	errs := binder.ValidationErrors{{Field: "name", Message: "field is required"}}
	wrapped := fmt.Errorf("saving account: %w", errs)

	assert.True(t, binder.IsValidationError(wrapped))
	assert.ErrorIs(t, wrapped, binder.ErrValidationFailed)

	got, ok := binder.ExtractValidationErrors(wrapped)
	require.True(t, ok)
	assert.Equal(t, errs, got)

	_, ok = binder.ExtractValidationErrors(errors.New("other"))
	assert.False(t, ok)
	assert.False(t, binder.IsValidationError(binder.ErrNilBean))
}
