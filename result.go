package loadable

// Result is the outcome of a single load operation: exactly one of success
// with content or failure with an error. It is the binary-outcome value that
// State.WithResult and State.SetResult dispatch on.
//
// Like State, Result is a plain value type and is comparable with == when C
// and E are.
type Result[C, E any] struct {
	content C
	err     E
	ok      bool
}

// Ok returns a successful result holding content.
func Ok[C, E any](content C) Result[C, E] {
	return Result[C, E]{content: content, ok: true}
}

// Err returns a failed result holding err.
func Err[C, E any](err E) Result[C, E] {
	return Result[C, E]{err: err}
}

// Wrap adapts Go's native (value, error) pair into a Result: a non-nil err
// yields a failed result, otherwise a successful one holding content.
func Wrap[C any](content C, err error) Result[C, error] {
	if err != nil {
		return Err[C, error](err)
	}
	return Ok[C, error](content)
}

// IsOK reports whether the result is a success.
func (r Result[C, E]) IsOK() bool { return r.ok }

// Value returns the content if the result is a success.
func (r Result[C, E]) Value() (C, bool) {
	if !r.ok {
		var zero C
		return zero, false
	}
	return r.content, true
}

// Error returns the error if the result is a failure.
func (r Result[C, E]) Error() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the content, the error, and whether the result is a success.
// Only one of the two payloads is meaningful, selected by ok.
func (r Result[C, E]) Unwrap() (C, E, bool) {
	return r.content, r.err, r.ok
}

// WithResult folds an operation outcome into the state: success yields a
// ready state with the result's content, failure yields a failed state with
// the result's error, carrying the current content forward as stale.
func (s State[C, E]) WithResult(r Result[C, E]) State[C, E] {
	if err, failed := r.Error(); failed {
		return s.WithError(err)
	}
	content, _ := r.Value()
	return s.WithContent(content)
}

// SetResult is the in-place form of WithResult.
func (s *State[C, E]) SetResult(r Result[C, E]) { *s = s.WithResult(r) }
