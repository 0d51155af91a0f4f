package heap

import (
	"fmt"

	"github.com/reusee/delegate/values"
)

// NewCell allocates a shared mutable box, the target of by-reference captures.
func (h *Heap) NewCell(value values.Value) (values.Handle, error) {
	if err := h.checkValue(value); err != nil {
		return 0, err
	}
	return h.alloc(&entity{
		kind: KindCell,
		cell: value,
	}), nil
}

func (h *Heap) cell(handle values.Handle) (*entity, error) {
	e, err := h.lookup(handle)
	if err != nil {
		return nil, err
	}
	if e.kind != KindCell {
		return nil, fmt.Errorf("%w: #%d is a %v", ErrNotCell, handle, e.kind)
	}
	return e, nil
}

func (h *Heap) Load(cell values.Handle) (values.Value, error) {
	e, err := h.cell(cell)
	if err != nil {
		return values.Absent, err
	}
	return e.cell, nil
}

func (h *Heap) Store(cell values.Handle, value values.Value) error {
	e, err := h.cell(cell)
	if err != nil {
		return err
	}
	if err := h.checkValue(value); err != nil {
		return err
	}
	e.cell = value
	return nil
}
