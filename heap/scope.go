package heap

import "github.com/reusee/delegate/values"

// Scope frames are objects whose prototype is the enclosing frame, so
// variable lookup is prototype lookup.

func (h *Heap) NewFrame(parent values.Handle) (values.Handle, error) {
	return h.MakeObjectWith(parent)
}

// Declare binds name in frame itself, shadowing enclosing frames.
func (h *Heap) Declare(frame values.Handle, name string, value values.Value) error {
	return h.Set(frame, name, value)
}

func (h *Heap) Lookup(frame values.Handle, name string) (values.Value, error) {
	return h.Get(frame, name)
}

// Assign updates the nearest frame in the chain binding name. When no frame
// binds it, name is declared in frame.
func (h *Heap) Assign(frame values.Handle, name string, value values.Value) error {
	if err := h.checkValue(value); err != nil {
		return err
	}
	for f := frame; f != 0; {
		e, err := h.object(f)
		if err != nil {
			return err
		}
		if _, ok := e.props[name]; ok {
			e.props[name] = value
			return nil
		}
		f = e.proto
	}
	return h.Declare(frame, name, value)
}
