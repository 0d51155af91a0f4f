package debugs

import (
	"context"

	"github.com/reusee/delegate/heap"
	"github.com/reusee/delegate/logs"
	"github.com/reusee/delegate/values"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a REPL over the bindings visible from frame.
type Tap func(ctx context.Context, what string, h *heap.Heap, frame values.Handle) error

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, h *heap.Heap, frame values.Handle) error {
		globals, err := Bindings(h, frame)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "tap: "+what,
			"globals", globals.Keys(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		globals["collect"] = starlarkutil.MakeFunc("collect", func() string {
			return h.Collect(frame).String()
		})
		globals["live"] = starlarkutil.MakeFunc("live", func() int {
			return h.Live()
		})

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals)
		return nil
	}
}

// Bindings converts every name visible from frame. Inner frames shadow
// outer ones.
func Bindings(h *heap.Heap, frame values.Handle) (starlark.StringDict, error) {
	ret := make(starlark.StringDict)
	for f := frame; f != 0; {
		keys, err := h.Keys(f)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			if _, ok := ret[key]; ok {
				continue
			}
			value, _, err := h.GetOwn(f, key)
			if err != nil {
				return nil, err
			}
			converted, err := ToStarlark(h, value)
			if err != nil {
				return nil, err
			}
			ret[key] = converted
		}
		f, err = h.Prototype(f)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}
