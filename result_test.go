package loadable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loadable"
)

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("Ok", func(t *testing.T) {
		t.Parallel()
		r := loadable.Ok[int, string](42)

		assert.True(t, r.IsOK())
		v, ok := r.Value()
		require.True(t, ok)
		assert.Equal(t, 42, v)
		_, failed := r.Error()
		assert.False(t, failed)
	})

	t.Run("Err", func(t *testing.T) {
		t.Parallel()
		r := loadable.Err[int, string]("boom")

		assert.False(t, r.IsOK())
		_, ok := r.Value()
		assert.False(t, ok)
		e, failed := r.Error()
		require.True(t, failed)
		assert.Equal(t, "boom", e)
	})

	t.Run("Unwrap", func(t *testing.T) {
		t.Parallel()
		v, _, ok := loadable.Ok[int, string](42).Unwrap()
		assert.True(t, ok)
		assert.Equal(t, 42, v)

		_, e, ok := loadable.Err[int, string]("boom").Unwrap()
		assert.False(t, ok)
		assert.Equal(t, "boom", e)
	})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil error yields success", func(t *testing.T) {
		t.Parallel()
		r := loadable.Wrap(42, nil)
		assert.Equal(t, loadable.Ok[int, error](42), r)
	})

	t.Run("non-nil error yields failure", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("fetch failed")
		r := loadable.Wrap(42, cause)
		assert.False(t, r.IsOK())
		e, failed := r.Error()
		require.True(t, failed)
		assert.Same(t, cause, e)
		// Content is dropped on failure; a Result is a sum, not a pair.
		_, ok := r.Value()
		assert.False(t, ok)
	})
}

func TestWithResult(t *testing.T) {
	t.Parallel()

	t.Run("success yields ready", func(t *testing.T) {
		t.Parallel()
		s := loadable.Loading[int, string]().WithResult(loadable.Ok[int, string](42))
		assert.Equal(t, loadable.Ready[int, string](42), s)
	})

	t.Run("failure keeps stale content", func(t *testing.T) {
		t.Parallel()
		s := loadable.Ready[int, string](5).WithResult(loadable.Err[int, string]("boom"))
		assert.Equal(t, loadable.FailedWith("boom", 5), s)
	})

	t.Run("failure without prior content", func(t *testing.T) {
		t.Parallel()
		s := loadable.Loading[int, string]().WithResult(loadable.Err[int, string]("boom"))
		assert.Equal(t, loadable.Failed[int, string]("boom"), s)
	})

	t.Run("SetResult agrees with WithResult", func(t *testing.T) {
		t.Parallel()
		s := loadable.Ready[int, string](5)
		s.SetResult(loadable.Err[int, string]("boom"))
		assert.Equal(t, loadable.FailedWith("boom", 5), s)

		s.SetResult(loadable.Ok[int, string](6))
		assert.Equal(t, loadable.Ready[int, string](6), s)
	})
}
