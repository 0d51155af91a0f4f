package main

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/reusee/delegate/heap"
	"github.com/reusee/delegate/values"
)

type demo func(ctx context.Context, h *heap.Heap) error

var demos = map[string]demo{
	"prototype": demoPrototype,
	"scopes":    demoScopes,
	"closures":  demoClosures,
	"this":      demoThis,
	"new":       demoNew,
	"gc":        demoGC,
}

func demoNames() string {
	return strings.Join(slices.Sorted(maps.Keys(demos)), ", ")
}

// bodies of the named functions demos leave on the global object.
var bodies = map[string]heap.Body{
	"plusAll":  plusAll,
	"add":      add,
	"square":   square,
	"describe": describe,
	"Point":    point,
}

func plusAll(c *heap.Call) (values.Value, error) {
	return values.Fold(c.Args...)
}

func add(c *heap.Call) (values.Value, error) {
	a, err := c.ThisGet("a")
	if err != nil {
		return values.Absent, err
	}
	b, err := c.ThisGet("b")
	if err != nil {
		return values.Absent, err
	}
	sum, err := values.Sum(a, b, c.Arg(0), c.Arg(1))
	if err != nil {
		return values.Absent, err
	}
	return values.IntOf(sum), nil
}

func square(c *heap.Call) (values.Value, error) {
	n, err := c.Arg(0).Int()
	if err != nil {
		return values.Absent, err
	}
	return values.IntOf(n * n), nil
}

func describe(c *heap.Call) (values.Value, error) {
	x, err := c.ThisGet("x")
	if err != nil {
		return values.Absent, err
	}
	y, err := c.ThisGet("y")
	if err != nil {
		return values.Absent, err
	}
	ret := values.StrOf("(")
	for _, v := range []values.Value{x, values.StrOf(", "), y, values.StrOf(")")} {
		ret, err = values.Plus(ret, v)
		if err != nil {
			return values.Absent, err
		}
	}
	return ret, nil
}

func point(c *heap.Call) (values.Value, error) {
	if err := c.ThisSet("x", c.Arg(0)); err != nil {
		return values.Absent, err
	}
	return values.Absent, c.ThisSet("y", c.Arg(1))
}

func show(label string, v values.Value, err error) error {
	if err != nil {
		return err
	}
	pt("%s: %v\n", label, v)
	return nil
}

func demoPrototype(ctx context.Context, h *heap.Heap) error {
	o1, err := h.MakeObject(heap.P("a", 1))
	if err != nil {
		return err
	}
	o2, err := h.MakeObjectWith(o1, heap.P("b", 2))
	if err != nil {
		return err
	}

	for _, key := range []string{"a", "b", "c"} {
		v, err := h.Get(o2, key)
		if err := show("o2."+key, v, err); err != nil {
			return err
		}
	}

	if err := h.Set(o2, "a", values.IntOf(3)); err != nil {
		return err
	}
	v, err := h.Get(o1, "a")
	if err := show("o1.a after o2.a = 3", v, err); err != nil {
		return err
	}
	v, err = h.Get(o2, "a")
	if err := show("o2.a after o2.a = 3", v, err); err != nil {
		return err
	}

	return h.Declare(h.Global(), "o2", values.ObjOf(o2))
}

func demoScopes(ctx context.Context, h *heap.Heap) error {
	outer, err := h.NewFrame(h.Global())
	if err != nil {
		return err
	}
	if err := h.Declare(outer, "greeting", values.StrOf("xyz")); err != nil {
		return err
	}
	if err := h.Declare(outer, "local", values.BoolOf(true)); err != nil {
		return err
	}
	inner, err := h.NewFrame(outer)
	if err != nil {
		return err
	}
	if err := h.Declare(inner, "counter", values.IntOf(123)); err != nil {
		return err
	}

	if err := h.Assign(inner, "local", values.BoolOf(false)); err != nil {
		return err
	}
	if err := h.Assign(inner, "greeting", values.StrOf("abc")); err != nil {
		return err
	}

	for _, name := range []string{"greeting", "local", "counter"} {
		v, err := h.Lookup(outer, name)
		if err := show("outer "+name, v, err); err != nil {
			return err
		}
	}
	return nil
}

func demoClosures(ctx context.Context, h *heap.Heap) error {
	out := new(strings.Builder)
	record := func(c *heap.Call) (values.Value, error) {
		v, err := c.Captured("i")
		if err != nil {
			return values.Absent, err
		}
		out.WriteString(v.String())
		return values.Absent, nil
	}
	run := func(label string, fns []values.Handle) error {
		out.Reset()
		for _, fn := range fns {
			if _, err := h.Call(fn, values.Absent); err != nil {
				return err
			}
		}
		pt("%s: %s\n", label, out.String())
		return nil
	}

	var byValue, byRef, perIteration []values.Handle
	shared, err := h.NewCell(values.IntOf(0))
	if err != nil {
		return err
	}
	for i := range 5 {
		fn, err := h.MakeClosure(record, heap.ByValue("i", i))
		if err != nil {
			return err
		}
		byValue = append(byValue, fn)

		fn, err = h.MakeClosure(record, heap.ByRef("i", shared))
		if err != nil {
			return err
		}
		byRef = append(byRef, fn)

		cell, err := h.NewCell(values.IntOf(int64(i)))
		if err != nil {
			return err
		}
		fn, err = h.MakeClosure(record, heap.ByRef("i", cell))
		if err != nil {
			return err
		}
		perIteration = append(perIteration, fn)

		if err := h.Store(shared, values.IntOf(int64(i+1))); err != nil {
			return err
		}
	}

	if err := run("by value", byValue); err != nil {
		return err
	}
	if err := run("by shared cell", byRef); err != nil {
		return err
	}
	return run("by per-iteration cell", perIteration)
}

func demoThis(ctx context.Context, h *heap.Heap) error {
	addFn, err := h.MakeFunc("add", add)
	if err != nil {
		return err
	}
	o, err := h.MakeObject(heap.P("a", 1), heap.P("b", 3), heap.P("add", values.FnOf(addFn)))
	if err != nil {
		return err
	}
	v, err := h.CallMethod(o, "add", values.IntOf(5), values.IntOf(7))
	if err := show("o.add(5, 7)", v, err); err != nil {
		return err
	}

	plusAllFn, err := h.MakeFunc("plusAll", plusAll)
	if err != nil {
		return err
	}
	v, err = h.Call(plusAllFn, values.Absent, values.ParseAll("4", "8", "!", "15", "16", "23", "42")...)
	if err := show("plusAll(4, 8, \"!\", 15, 16, 23, 42)", v, err); err != nil {
		return err
	}

	squareFn, err := h.MakeFunc("square", square)
	if err != nil {
		return err
	}
	if err := h.Set(squareFn, "make", values.StrOf("Ford")); err != nil {
		return err
	}
	v, err = h.Call(squareFn, values.Absent, values.IntOf(4))
	if err := show("square(4)", v, err); err != nil {
		return err
	}
	v, err = h.Get(squareFn, "make")
	if err := show("square.make", v, err); err != nil {
		return err
	}

	for name, handle := range map[string]values.Handle{
		"o":       o,
		"plusAll": plusAllFn,
		"square":  squareFn,
	} {
		v, err := h.ValueOf(handle)
		if err != nil {
			return err
		}
		if err := h.Declare(h.Global(), name, v); err != nil {
			return err
		}
	}
	return nil
}

func demoNew(ctx context.Context, h *heap.Heap) error {
	ctor, err := h.MakeFunc("Point", point)
	if err != nil {
		return err
	}
	describeFn, err := h.MakeFunc("describe", describe)
	if err != nil {
		return err
	}
	proto, err := h.MakeObject(heap.P("describe", values.FnOf(describeFn)))
	if err != nil {
		return err
	}
	if err := h.Set(ctor, "prototype", values.ObjOf(proto)); err != nil {
		return err
	}

	p, err := h.New(ctor, values.IntOf(42), values.FloatOf(3.14))
	if err != nil {
		return err
	}
	handle, err := p.Obj()
	if err != nil {
		return err
	}
	v, err := h.CallMethod(handle, "describe")
	if err := show("new Point(42, 3.14).describe()", v, err); err != nil {
		return err
	}
	return h.Declare(h.Global(), "Point", values.FnOf(ctor))
}

func demoGC(ctx context.Context, h *heap.Heap) error {
	b, err := h.MakeObject()
	if err != nil {
		return err
	}
	a, err := h.MakeObjectWith(b)
	if err != nil {
		return err
	}
	if err := h.Set(b, "back", values.ObjOf(a)); err != nil {
		return err
	}
	c, err := h.MakeObject(heap.P("kept", true))
	if err != nil {
		return err
	}

	pt("live before: %d\n", h.Live())
	stats := h.Collect(c)
	pt("collect: %v\n", stats)

	if _, err := h.Get(a, "back"); !errors.Is(err, heap.ErrDanglingReference) {
		return errors.Join(errors.New("cycle not reclaimed"), err)
	}
	pt("a reclaimed: %v\n", !h.Contains(a))
	v, err := h.Get(c, "kept")
	return show("c.kept", v, err)
}
