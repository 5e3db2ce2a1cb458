// Package loadable models the lifecycle of an asynchronously loaded value as
// a small generic container.
//
// The package is centred around the generic type State that is always in
// exactly one of three phases: loading (optionally holding the last
// known-good content while a new operation is in flight), failed (holding an
// error and optionally the last known-good content), or ready (holding fresh
// content). Illegal combinations, such as a ready state carrying an error,
// are unrepresentable through the public API.
//
// States are built with Loading, LoadingWith, Ready, Failed, FailedWith, or
// the resolving constructor New, and inspected with Content, Error and the
// Is* predicates. Transitions come in two equivalent forms: value-receiver
// methods that return the next state (Reloading, WithContent, WithError,
// WithResult, Purged) and pointer-receiver methods that update the receiver
// in place (SetLoading, SetContent, SetError, SetResult, Purge). Reloading
// and WithError carry the current content forward as stale, so callers can
// keep showing the last known-good value while revalidating; Purged is the
// hard reset that drops everything.
//
// The free functions Map, CompactMap and MapError transform the content or
// error type of a state while preserving its phase. They are package-level
// rather than methods because Go methods cannot introduce type parameters.
//
// Result is the companion binary-outcome type (success with content or
// failure with an error); WithResult folds one into a state. The Decode
// helpers run a fallible decoder over a byte slice and fold the outcome into
// the state, translating the decode fault into the state's error type —
// DecodeJSON and DecodeYAML cover the common case where the error type is
// Go's native error.
//
// # Usage
//
//	import "github.com/dmitrymomot/loadable"
//
//	type Profile struct {
//	    Name string `json:"name"`
//	}
//
//	state := loadable.Loading[Profile, error]()
//
//	// A fetch completed; fold its outcome in.
//	state = state.WithResult(loadable.Wrap(fetchProfile()))
//
//	// Revalidate while keeping the stale profile visible.
//	state = state.Reloading()
//	state = loadable.DecodeJSON(state, body)
//
//	if profile, ok := state.Content(); ok {
//	    render(profile, state.IsLoading())
//	}
//
// # Error Handling
//
// Accessors and transforms are total and never fail. The only fallible path
// is decoding, where the fault is caught locally, translated by a
// caller-supplied function, and stored in the failed state — it never
// propagates as a returned error. Retry policy is entirely the caller's
// concern, expressed by choosing when to call Reloading, WithContent or
// WithError.
//
// # Concurrency
//
// State is a plain immutable-by-default value with no internal
// synchronization. If a state is shared across goroutines, the caller must
// synchronize access to whatever slot holds it (mutex, channel ownership, or
// single-writer discipline).
//
// # Performance Considerations
//
// A State is a small struct copied by value; transitions and transforms
// allocate nothing beyond what the transform callbacks themselves allocate.
//
// See the individual function-level comments for additional details and
// behaviour guarantees.
package loadable
