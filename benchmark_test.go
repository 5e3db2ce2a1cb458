package loadable_test

import (
	"strconv"
	"testing"

	"github.com/dmitrymomot/loadable"
)

// BenchmarkTransitions measures the full lifecycle loop on a single slot.
func BenchmarkTransitions(b *testing.B) {
	s := loadable.Loading[int, string]()

	for b.Loop() {
		s.SetContent(5)
		s.SetLoading()
		s.SetError("timeout")
		s.Purge()
	}
}

// BenchmarkMap measures content transformation on a ready state.
func BenchmarkMap(b *testing.B) {
	s := loadable.Ready[int, string](42)

	for b.Loop() {
		_ = loadable.Map(s, strconv.Itoa)
	}
}

// BenchmarkWithResult measures folding operation outcomes into a state.
func BenchmarkWithResult(b *testing.B) {
	s := loadable.Ready[int, string](42)
	ok := loadable.Ok[int, string](7)
	fail := loadable.Err[int, string]("timeout")

	for b.Loop() {
		_ = s.WithResult(ok)
		_ = s.WithResult(fail)
	}
}

// BenchmarkDecodeJSON measures the JSON decode convenience end to end.
func BenchmarkDecodeJSON(b *testing.B) {
	s := loadable.Loading[map[string]int, error]()
	payload := []byte(`{"a":1,"b":2}`)

	for b.Loop() {
		_ = loadable.DecodeJSON(s, payload)
	}
}
