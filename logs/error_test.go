package logs

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestWrapSpan(t *testing.T) {
	errFoo := errors.New("foo")
	ctx := context.Background()
	if WrapSpan(ctx, errFoo) != errFoo {
		t.Fatal()
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
	ctx = context.WithValue(ctx, SpanKey, Span("abc"))
	err := WrapSpan(ctx, errFoo)
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span abc") {
		t.Fatalf("got %v", err)
	}
}
