package delconfigs

import (
	"github.com/reusee/delegate/cmds"
	"github.com/reusee/delegate/configs"
)

// MaxCallDepth bounds nested closure invocation. Zero means no limit.
type MaxCallDepth int

const defaultMaxCallDepth = 10000

var maxCallDepthFlag = cmds.Optional[int]("-max-call-depth")

func (Module) MaxCallDepth(
	loader configs.Loader,
) MaxCallDepth {
	if depth, ok := maxCallDepthFlag.Get(); ok {
		return MaxCallDepth(depth)
	}
	if depth, ok := configs.Find[int](loader, "heap.max_call_depth"); ok {
		return MaxCallDepth(depth)
	}
	return defaultMaxCallDepth
}
