package loadable

// variant is the closed set of lifecycle phases. The zero value is
// variantLoading so that the zero State is a contentless loading state.
type variant uint8

const (
	variantLoading variant = iota
	variantFailed
	variantReady
)

// State represents the lifecycle of an asynchronously loaded value: it is
// loading (optionally holding the last known-good content), has failed
// (holding an error and optionally the last known-good content), or holds
// fresh content.
//
// State is a plain value type. The zero value is a contentless loading state.
// When C and E are comparable, two states can be compared with ==; absent
// content is always normalized to the zero value of C, so structural equality
// holds across independently built states.
type State[C, E any] struct {
	variant    variant
	content    C
	hasContent bool
	err        E
}

// Loading returns a loading state with no content.
func Loading[C, E any]() State[C, E] {
	return State[C, E]{}
}

// LoadingWith returns a loading state that retains content as the last
// known-good value while a new operation is in flight.
func LoadingWith[C, E any](content C) State[C, E] {
	return State[C, E]{variant: variantLoading, content: content, hasContent: true}
}

// Ready returns a ready state holding fresh content.
func Ready[C, E any](content C) State[C, E] {
	return State[C, E]{variant: variantReady, content: content, hasContent: true}
}

// Failed returns a failed state with no stale content.
func Failed[C, E any](err E) State[C, E] {
	return State[C, E]{variant: variantFailed, err: err}
}

// FailedWith returns a failed state that retains content as the last
// known-good value observed before the failure.
func FailedWith[C, E any](err E, content C) State[C, E] {
	return State[C, E]{variant: variantFailed, err: err, content: content, hasContent: true}
}

// New resolves a pair of optional content and optional error into a state:
// a non-nil err wins and yields a failed state (retaining content if given);
// otherwise non-nil content yields a ready state; otherwise the result is a
// contentless loading state. This constructor never produces a loading state
// with stale content; stale content only arises from transitions such as
// Reloading.
func New[C, E any](content *C, err *E) State[C, E] {
	switch {
	case err != nil:
		if content != nil {
			return FailedWith(*err, *content)
		}
		return Failed[C, E](*err)
	case content != nil:
		return Ready[C, E](*content)
	default:
		return Loading[C, E]()
	}
}

// Content returns the payload content from whichever variant carries one.
// ok is false only when no content has been observed yet.
func (s State[C, E]) Content() (C, bool) {
	return s.content, s.hasContent
}

// Error returns the error if the state is failed.
func (s State[C, E]) Error() (E, bool) {
	if s.variant != variantFailed {
		var zero E
		return zero, false
	}
	return s.err, true
}

// IsLoading reports whether an operation is in flight.
func (s State[C, E]) IsLoading() bool { return s.variant == variantLoading }

// IsReady reports whether the most recent operation succeeded.
func (s State[C, E]) IsReady() bool { return s.variant == variantReady }

// IsFailed reports whether the most recent operation failed.
func (s State[C, E]) IsFailed() bool { return s.variant == variantFailed }

// String returns the variant name.
func (s State[C, E]) String() string {
	switch s.variant {
	case variantReady:
		return "ready"
	case variantFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Reloading returns a loading state that carries the current content forward,
// signalling that a new operation is in flight while the last known-good
// value remains available. Any error is dropped.
func (s State[C, E]) Reloading() State[C, E] {
	next := State[C, E]{variant: variantLoading}
	next.content, next.hasContent = s.content, s.hasContent
	return next
}

// WithContent returns a ready state holding content, discarding any previous
// error.
func (s State[C, E]) WithContent(content C) State[C, E] {
	return Ready[C, E](content)
}

// WithError returns a failed state holding err, carrying the current content
// forward as the last known-good value.
func (s State[C, E]) WithError(err E) State[C, E] {
	next := State[C, E]{variant: variantFailed, err: err}
	next.content, next.hasContent = s.content, s.hasContent
	return next
}

// Purged returns a contentless loading state, discarding both content and
// error unconditionally. This is the hard reset; use Reloading to keep stale
// content across a reload.
func (s State[C, E]) Purged() State[C, E] {
	return State[C, E]{}
}

// SetLoading is the in-place form of Reloading.
func (s *State[C, E]) SetLoading() { *s = s.Reloading() }

// SetContent is the in-place form of WithContent.
func (s *State[C, E]) SetContent(content C) { *s = s.WithContent(content) }

// SetError is the in-place form of WithError.
func (s *State[C, E]) SetError(err E) { *s = s.WithError(err) }

// Purge is the in-place form of Purged.
func (s *State[C, E]) Purge() { *s = State[C, E]{} }

// Map applies transform to the content when one is present, preserving the
// variant and any error. For contentless states the transform is not invoked
// and the result remains contentless.
func Map[C, E, N any](s State[C, E], transform func(C) N) State[N, E] {
	next := State[N, E]{variant: s.variant, err: s.err}
	if s.hasContent {
		next.content = transform(s.content)
		next.hasContent = true
	}
	return next
}

// CompactMap applies transform to the optional content of every variant,
// including contentless ones, and always yields present content of the new
// type. The transform receives the content together with its presence flag.
// The variant and any error are preserved.
func CompactMap[C, E, N any](s State[C, E], transform func(C, bool) N) State[N, E] {
	return State[N, E]{
		variant:    s.variant,
		content:    transform(s.content, s.hasContent),
		hasContent: true,
		err:        s.err,
	}
}

// MapError applies transform to the error when the state is failed; other
// variants pass through with content unchanged and no error.
func MapError[C, E, N any](s State[C, E], transform func(E) N) State[C, N] {
	next := State[C, N]{variant: s.variant}
	next.content, next.hasContent = s.content, s.hasContent
	if s.variant == variantFailed {
		next.err = transform(s.err)
	}
	return next
}
