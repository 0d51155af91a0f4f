package cmds

import (
	"slices"
	"testing"
)

func TestVar(t *testing.T) {
	depth := Var[int]("TestVar.depth")
	name := Var[string]("TestVar.name")
	GlobalExecutor.MustExecute([]string{
		"TestVar.depth", "42",
		"TestVar.name", "bar",
	})
	if *depth != 42 {
		t.Fatalf("got %v", *depth)
	}
	if *name != "bar" {
		t.Fatalf("got %v", *name)
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar.depth.",
	})
	if *depth != 0 {
		t.Fatalf("got %v", *depth)
	}
}

func TestOptional(t *testing.T) {
	opt := Optional[int]("TestOptional")
	if _, ok := opt.Get(); ok {
		t.Fatal("should not be given")
	}
	GlobalExecutor.MustExecute([]string{
		"TestOptional", "0",
	})
	if v, ok := opt.Get(); !ok || v != 0 {
		t.Fatalf("got %v %v", v, ok)
	}
	GlobalExecutor.MustExecute([]string{
		"TestOptional", "7",
	})
	if v, ok := opt.Get(); !ok || v != 7 {
		t.Fatalf("got %v %v", v, ok)
	}
	GlobalExecutor.MustExecute([]string{
		"TestOptional.",
	})
	if _, ok := opt.Get(); ok {
		t.Fatal("should be reset")
	}
}

func TestSwitch(t *testing.T) {
	on := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*on {
		t.Fatal("should be on")
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *on {
		t.Fatal("should be off")
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if !slices.Equal(*list, []string{"a", "b"}) {
		t.Fatalf("got %v", *list)
	}
}

func TestTypedVar(t *testing.T) {
	type Name string
	v := Var[Name]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatalf("got %v", *v)
	}
}
