package delconfigs

import (
	"cmp"

	"github.com/reusee/delegate/cmds"
	"github.com/reusee/delegate/configs"
)

// Capacity is the initial arena size.
type Capacity int

var capacityFlag = cmds.Var[int]("-heap-capacity")

func (Module) Capacity(
	loader configs.Loader,
) Capacity {
	return Capacity(cmp.Or(
		*capacityFlag,
		configs.First[int](loader, "heap.capacity"),
		64,
	))
}
