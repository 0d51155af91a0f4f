package delconfigs

import (
	"github.com/reusee/delegate/cmds"
	"github.com/reusee/delegate/configs"
	"github.com/reusee/delegate/modes"
)

// VerifyCollect turns on reference integrity checks after each collection.
type VerifyCollect bool

var verifyCollectFlag = cmds.Switch("-verify-collect")

func (Module) VerifyCollect(
	loader configs.Loader,
	mode modes.Mode,
) VerifyCollect {
	if *verifyCollectFlag {
		return true
	}
	if verify, ok := configs.Find[bool](loader, "heap.verify_collect"); ok {
		return VerifyCollect(verify)
	}
	return VerifyCollect(mode.Strict())
}
