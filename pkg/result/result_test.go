package result_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/databinder/pkg/result"
)

func TestOk(t *testing.T) {
	t.Parallel()

	r := result.Ok("value")
	assert.False(t, r.IsError())
	assert.True(t, r.IsOk())

	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, "value", v)

	_, hasMsg := r.Message()
	assert.False(t, hasMsg)
	assert.Equal(t, "Ok(value)", r.String())
}

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("plain message", func(t *testing.T) {
		r := result.Error[int]("boom")
		assert.True(t, r.IsError())

		v, ok := r.Value()
		assert.False(t, ok)
		assert.Zero(t, v)

		msg, ok := r.Message()
		require.True(t, ok)
		assert.Equal(t, "boom", msg)
		assert.Equal(t, "Error(boom)", r.String())
	})

	t.Run("formatted message", func(t *testing.T) {
		r := result.Errorf[int]("must be at least %d", 3)
		msg, _ := r.Message()
		assert.Equal(t, "must be at least 3", msg)
	})

	t.Run("failure keeps translation metadata", func(t *testing.T) {
		r := result.Fail[string](result.Failure{
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"min": 1},
		})
		f, ok := r.Failure()
		require.True(t, ok)
		assert.Equal(t, "validation.required", f.TranslationKey)
		assert.Equal(t, 1, f.TranslationValues["min"])
	})
}

func TestResult_Callbacks(t *testing.T) {
	t.Parallel()

	var gotValue int
	var gotFailure result.Failure

	result.Ok(7).IfOk(func(v int) { gotValue = v })
	result.Ok(7).IfError(func(result.Failure) { t.Fatal("IfError called on Ok") })
	result.Error[int]("bad").IfError(func(f result.Failure) { gotFailure = f })
	result.Error[int]("bad").IfOk(func(int) { t.Fatal("IfOk called on Error") })

	assert.Equal(t, 7, gotValue)
	assert.Equal(t, "bad", gotFailure.Message)
	assert.Equal(t, 3, result.Error[int]("bad").OrElse(3))
	assert.Equal(t, 7, result.Ok(7).OrElse(3))
}

func TestMap(t *testing.T) {
	t.Parallel()

	r := result.Map(result.Ok(21), func(v int) string { return strconv.Itoa(v * 2) })
	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, "42", v)

	failed := result.Map(result.Error[int]("nope"), func(v int) string {
		t.Fatal("mapper must not run on failure")
		return ""
	})
	msg, _ := failed.Message()
	assert.Equal(t, "nope", msg)
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	parse := func(s string) result.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return result.Error[int]("not a number")
		}
		return result.Ok(n)
	}

	ok := result.FlatMap(result.Ok("12"), parse)
	v, _ := ok.Value()
	assert.Equal(t, 12, v)

	bad := result.FlatMap(result.Ok("x"), parse)
	assert.True(t, bad.IsError())

	first := result.FlatMap(result.Error[string]("first"), parse)
	msg, _ := first.Message()
	assert.Equal(t, "first", msg)
}

func TestFold(t *testing.T) {
	t.Parallel()

	describe := func(r result.Result[int]) string {
		return result.Fold(r,
			func(v int) string { return "ok:" + strconv.Itoa(v) },
			func(f result.Failure) string { return "error:" + f.Message },
		)
	}

	assert.Equal(t, "ok:1", describe(result.Ok(1)))
	assert.Equal(t, "error:bad", describe(result.Error[int]("bad")))
}

func TestRecast(t *testing.T) {
	t.Parallel()

	r := result.Recast[string](result.Error[int]("bad"))
	msg, ok := r.Message()
	require.True(t, ok)
	assert.Equal(t, "bad", msg)

	assert.Panics(t, func() { result.Recast[string](result.Ok(1)) })
}
