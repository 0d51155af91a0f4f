package delconfigs

import (
	"testing"

	"github.com/reusee/delegate/cmds"
	"github.com/reusee/delegate/configs"
	"github.com/reusee/delegate/modes"
	"github.com/reusee/dscope"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, Schema)
		},
	).Call(func(
		depth MaxCallDepth,
		capacity Capacity,
		verify VerifyCollect,
	) {
		if depth != defaultMaxCallDepth {
			t.Fatalf("got %v", depth)
		}
		if capacity != 64 {
			t.Fatalf("got %v", capacity)
		}
		if !verify {
			t.Fatal("should verify in development mode")
		}
	})
}

func TestFromConfig(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() configs.Loader {
			return configs.NewSourceLoader([]string{`
			heap: {
				max_call_depth: 32
				capacity: 1024
				verify_collect: true
			}
			`}, Schema)
		},
	).Call(func(
		depth MaxCallDepth,
		capacity Capacity,
		verify VerifyCollect,
	) {
		if depth != 32 {
			t.Fatalf("got %v", depth)
		}
		if capacity != 1024 {
			t.Fatalf("got %v", capacity)
		}
		if !verify {
			t.Fatal()
		}
	})
}

func TestZeroCallDepth(t *testing.T) {
	resolve := func(loader configs.Loader) (ret MaxCallDepth) {
		dscope.New(
			new(Module),
			modes.ForProduction(),
		).Fork(
			func() configs.Loader {
				return loader
			},
		).Call(func(
			depth MaxCallDepth,
		) {
			ret = depth
		})
		return
	}

	// zero in a file means no limit
	fromFile := configs.NewSourceLoader([]string{`heap: max_call_depth: 0`}, Schema)
	if depth := resolve(fromFile); depth != 0 {
		t.Fatalf("got %v", depth)
	}

	// so does zero on the command line, which wins over files
	cmds.GlobalExecutor.MustExecute([]string{"-max-call-depth", "0"})
	defer cmds.GlobalExecutor.MustExecute([]string{"-max-call-depth."})
	fromConfig := configs.NewSourceLoader([]string{`heap: max_call_depth: 32`}, Schema)
	if depth := resolve(fromConfig); depth != 0 {
		t.Fatalf("got %v", depth)
	}
	cmds.GlobalExecutor.MustExecute([]string{"-max-call-depth", "5"})
	if depth := resolve(fromConfig); depth != 5 {
		t.Fatalf("got %v", depth)
	}
}

func TestProductionDefault(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, Schema)
		},
	).Call(func(
		verify VerifyCollect,
	) {
		if verify {
			t.Fatal("should not verify in production by default")
		}
	})
}

func TestBadConfig(t *testing.T) {
	loader := configs.NewSourceLoader([]string{`heap: max_call_depth: -1`}, Schema)
	if err := loader.AssignFirst("heap.max_call_depth", new(int)); err == nil {
		t.Fatal("should error")
	}
}
