package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/reusee/delegate/cmds"
	"github.com/reusee/delegate/debugs"
	"github.com/reusee/delegate/heap"
	"github.com/reusee/delegate/logs"
	"github.com/reusee/delegate/modes"
	"github.com/reusee/delegate/procs"
	"github.com/reusee/delegate/values"
	"github.com/reusee/dscope"
)

type action struct {
	what string
	run  func(ctx context.Context, h *heap.Heap, tap debugs.Tap) error
}

var (
	act action

	snapshotPath = cmds.Var[string]("-snapshot")
	restorePath  = cmds.Var[string]("-restore")
	dropNames    = cmds.Collect[string]("-drop")
)

func init() {
	cmds.Define("fold", cmds.Func(func(args ...values.Value) {
		act = action{
			what: "fold",
			run: func(_ context.Context, _ *heap.Heap, _ debugs.Tap) error {
				ret, err := values.Fold(args...)
				if err != nil {
					return err
				}
				pt("%s\n", ret)
				return nil
			},
		}
	}).Desc("add arguments from left to right, starting from 0"))

	cmds.Define("sum", cmds.Func(func(args ...values.Value) {
		act = action{
			what: "sum",
			run: func(_ context.Context, _ *heap.Heap, _ debugs.Tap) error {
				ret, err := values.Sum(args...)
				if err != nil {
					return err
				}
				pt("%d\n", ret)
				return nil
			},
		}
	}).Desc("sum integer arguments"))

	cmds.Define("demo", cmds.Func(func(names ...string) error {
		if len(names) == 0 {
			names = slices.Sorted(maps.Keys(demos))
		}
		for _, name := range names {
			if _, ok := demos[name]; !ok {
				return fmt.Errorf("unknown demo: %s, available: %s", name, demoNames())
			}
		}
		act = action{
			what: "demo " + strings.Join(names, " "),
			run: func(ctx context.Context, h *heap.Heap, _ debugs.Tap) error {
				var steps procs.Procs[context.Context]
				for _, name := range names {
					steps = append(steps, procs.Step(func(ctx context.Context) error {
						pt("== %s\n", name)
						if err := demos[name](ctx, h); err != nil {
							return fmt.Errorf("demo %s: %w", name, err)
						}
						return nil
					}))
				}
				return procs.RunAll[context.Context](ctx, steps)
			},
		}
		return nil
	}).Desc("run demos, all when none named: "+demoNames()))

	cmds.Define("repl", cmds.Func(func() {
		act = action{
			what: "repl",
			run: func(ctx context.Context, h *heap.Heap, tap debugs.Tap) error {
				return tap(ctx, "repl", h, h.Global())
			},
		}
	}).Desc("inspect the global object in a starlark repl"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if act.run == nil {
		cmds.GlobalExecutor.PrintUsage()
		return
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		shared *heap.Shared,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "", act.what)
		err = shared.Do(func(h *heap.Heap) error {
			if *restorePath != "" {
				if err := restore(h, *restorePath); err != nil {
					return err
				}
				logger.InfoContext(ctx, "restored",
					"path", *restorePath,
					"live", h.Live(),
				)
			}
			if err := act.run(ctx, h, tap); err != nil {
				return err
			}
			if len(*dropNames) > 0 {
				stats, err := drop(h, *dropNames)
				if err != nil {
					return err
				}
				logger.InfoContext(ctx, "drop",
					"names", *dropNames,
					"stats", stats.String(),
				)
			}
			if *snapshotPath != "" {
				if err := snapshot(h, *snapshotPath); err != nil {
					return err
				}
				logger.InfoContext(ctx, "snapshot",
					"path", *snapshotPath,
					"live", h.Live(),
				)
			}
			return nil
		})
		err = logs.WrapSpan(ctx, err)
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// drop unbinds names from the global object and collects what they kept alive.
func drop(h *heap.Heap, names []string) (heap.Stats, error) {
	for _, name := range names {
		ok, err := h.Delete(h.Global(), name)
		if err != nil {
			return heap.Stats{}, err
		}
		if !ok {
			return heap.Stats{}, fmt.Errorf("no global named %s", name)
		}
	}
	return h.Collect(), nil
}

func snapshot(h *heap.Heap, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return wrap(err)
	}
	if err := h.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return wrap(err)
	}
	return nil
}

func restore(h *heap.Heap, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return wrap(err)
	}
	defer f.Close()
	return h.Restore(f, bodies)
}
