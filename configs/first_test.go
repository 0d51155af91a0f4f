package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	depth := First[int](loader, "heap.max_call_depth")
	if depth != 100 {
		t.Fatalf("got %v", depth)
	}

	verify, ok := Find[bool](loader, "heap.verify_collect")
	if ok || verify {
		t.Fatalf("got %v %v", verify, ok)
	}
}
