package heap

import (
	"errors"
	"fmt"

	"github.com/reusee/delegate/values"
)

var (
	ErrDanglingReference = errors.New("dangling reference")
	ErrNotObject         = errors.New("not an object")
	ErrNotCallable       = errors.New("not callable")
	ErrNotCell           = errors.New("not a cell")
	ErrPrototypeCycle    = errors.New("cyclic prototype chain")
	ErrMissingArgument   = errors.New("missing argument")
	ErrUnknownCapture    = errors.New("unknown capture")
	ErrImmutableCapture  = errors.New("capture is immutable")
	ErrCallDepthExceeded = errors.New("call depth exceeded")
	ErrMissingBody       = errors.New("function body is missing")
)

func dangling(handle values.Handle) error {
	return fmt.Errorf("%w: #%d", ErrDanglingReference, handle)
}
