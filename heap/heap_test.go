package heap

import (
	"testing"

	"github.com/reusee/delegate/values"
)

func must[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return v
	}
}

func expect(t *testing.T, got values.Value, want any) {
	t.Helper()
	if !got.Equal(values.Of(want)) {
		t.Fatalf("got %v (%v), want %v", got, got.Kind(), want)
	}
}
