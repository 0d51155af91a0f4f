package heap

import (
	"fmt"
	"iter"

	"github.com/reusee/delegate/values"
)

// Body is the computation of a callable object.
type Body func(call *Call) (values.Value, error)

type CaptureKind uint8

const (
	CaptureByValue CaptureKind = iota + 1
	CaptureByRef
)

// Capture binds an outer variable into a closure when the closure is made.
// A by-value capture holds a snapshot; a by-reference capture holds a cell
// shared with every other closure capturing it.
type Capture struct {
	Name  string
	Kind  CaptureKind
	Value values.Value
	Cell  values.Handle
}

func ByValue(name string, value any) Capture {
	return Capture{
		Name:  name,
		Kind:  CaptureByValue,
		Value: values.Of(value),
	}
}

func ByRef(name string, cell values.Handle) Capture {
	return Capture{
		Name: name,
		Kind: CaptureByRef,
		Cell: cell,
	}
}

func (c Capture) refs() iter.Seq[values.Handle] {
	return func(yield func(values.Handle) bool) {
		switch c.Kind {
		case CaptureByValue:
			if h, ok := c.Value.Handle(); ok {
				yield(h)
			}
		case CaptureByRef:
			yield(c.Cell)
		}
	}
}

func (h *Heap) MakeClosure(body Body, captures ...Capture) (values.Handle, error) {
	return h.MakeFunc("", body, captures...)
}

// MakeFunc allocates a named callable object. The name is how the body is
// found again after Restore.
func (h *Heap) MakeFunc(name string, body Body, captures ...Capture) (values.Handle, error) {
	for _, capture := range captures {
		switch capture.Kind {
		case CaptureByValue:
			if err := h.checkValue(capture.Value); err != nil {
				return 0, err
			}
		case CaptureByRef:
			if _, err := h.cell(capture.Cell); err != nil {
				return 0, err
			}
		default:
			return 0, fmt.Errorf("bad capture kind %d for %s", capture.Kind, capture.Name)
		}
	}
	e := newObjectEntity(0)
	e.kind = KindFunction
	e.fn = &funcPart{
		name:     name,
		body:     body,
		captures: append([]Capture(nil), captures...),
	}
	return h.alloc(e), nil
}

func (h *Heap) function(handle values.Handle) (*entity, error) {
	e, err := h.lookup(handle)
	if err != nil {
		return nil, err
	}
	if e.kind != KindFunction {
		return nil, fmt.Errorf("%w: #%d is a %v", ErrNotCallable, handle, e.kind)
	}
	return e, nil
}

// FuncName returns the name given to MakeFunc.
func (h *Heap) FuncName(fn values.Handle) (string, error) {
	e, err := h.function(fn)
	if err != nil {
		return "", err
	}
	return e.fn.name, nil
}
