package heap

import (
	"github.com/reusee/delegate/delconfigs"
	"github.com/reusee/delegate/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs delconfigs.Module
}

func (Module) Heap(
	logger logs.Logger,
	maxCallDepth delconfigs.MaxCallDepth,
	capacity delconfigs.Capacity,
	verify delconfigs.VerifyCollect,
) *Heap {
	return New(Options{
		Logger:       logger.With("component", "heap"),
		MaxCallDepth: int(maxCallDepth),
		Capacity:     int(capacity),
		Verify:       bool(verify),
	})
}

func (Module) Shared(
	h *Heap,
) *Shared {
	return NewShared(h)
}
