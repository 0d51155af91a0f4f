package debugs

import (
	"testing"

	"github.com/reusee/delegate/heap"
	"github.com/reusee/delegate/values"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func TestBindings(t *testing.T) {
	h := heap.New(heap.Options{})
	if err := h.Declare(h.Global(), "x", values.StrOf("global")); err != nil {
		t.Fatal(err)
	}
	if err := h.Declare(h.Global(), "y", values.IntOf(1)); err != nil {
		t.Fatal(err)
	}
	frame, err := h.NewFrame(h.Global())
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Declare(frame, "x", values.StrOf("local")); err != nil {
		t.Fatal(err)
	}

	bindings, err := Bindings(h, frame)
	if err != nil {
		t.Fatal(err)
	}
	if len(bindings) != 2 {
		t.Fatalf("got %v", bindings)
	}
	if bindings["x"] != starlark.String("local") {
		t.Fatalf("got %v", bindings["x"])
	}
	if eq, err := starlark.Equal(bindings["y"], starlark.MakeInt(1)); err != nil || !eq {
		t.Fatalf("got %v", bindings["y"])
	}
}

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		h := heap.New(heap.Options{})
		if err := h.Declare(h.Global(), "foo", values.IntOf(42)); err != nil {
			t.Fatal(err)
		}
		if err := tap(t.Context(), "test", h, h.Global()); err != nil {
			t.Fatal(err)
		}
	})
}
