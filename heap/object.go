package heap

import (
	"fmt"
	"slices"

	"github.com/reusee/delegate/values"
)

type Prop struct {
	Key   string
	Value values.Value
}

// P builds a property from a host literal or a values.Value.
func P(key string, value any) Prop {
	return Prop{
		Key:   key,
		Value: values.Of(value),
	}
}

func (h *Heap) MakeObject(props ...Prop) (values.Handle, error) {
	return h.MakeObjectWith(0, props...)
}

// MakeObjectWith allocates an object delegating to proto, 0 for none.
func (h *Heap) MakeObjectWith(proto values.Handle, props ...Prop) (values.Handle, error) {
	if proto != 0 {
		if _, err := h.object(proto); err != nil {
			return 0, err
		}
	}
	for _, prop := range props {
		if err := h.checkValue(prop.Value); err != nil {
			return 0, err
		}
	}
	e := newObjectEntity(proto)
	for _, prop := range props {
		e.setOwn(prop.Key, prop.Value)
	}
	return h.alloc(e), nil
}

// Get reads key from the object or, when absent, from its prototype chain.
// A key missing from the whole chain yields Absent.
func (h *Heap) Get(obj values.Handle, key string) (values.Value, error) {
	e, err := h.object(obj)
	if err != nil {
		return values.Absent, err
	}
	for {
		if v, ok := e.props[key]; ok {
			return v, nil
		}
		if e.proto == 0 {
			return values.Absent, nil
		}
		e, err = h.object(e.proto)
		if err != nil {
			return values.Absent, err
		}
	}
}

// Set always writes an own property of obj. Prototypes are never written.
func (h *Heap) Set(obj values.Handle, key string, value values.Value) error {
	e, err := h.object(obj)
	if err != nil {
		return err
	}
	if err := h.checkValue(value); err != nil {
		return err
	}
	e.setOwn(key, value)
	return nil
}

func (h *Heap) GetOwn(obj values.Handle, key string) (values.Value, bool, error) {
	e, err := h.object(obj)
	if err != nil {
		return values.Absent, false, err
	}
	v, ok := e.props[key]
	return v, ok, nil
}

func (h *Heap) HasOwn(obj values.Handle, key string) (bool, error) {
	_, ok, err := h.GetOwn(obj, key)
	return ok, err
}

// Delete removes an own property, reporting whether it existed.
func (h *Heap) Delete(obj values.Handle, key string) (bool, error) {
	e, err := h.object(obj)
	if err != nil {
		return false, err
	}
	return e.deleteOwn(key), nil
}

// Keys returns own keys in insertion order.
func (h *Heap) Keys(obj values.Handle) ([]string, error) {
	e, err := h.object(obj)
	if err != nil {
		return nil, err
	}
	return slices.Clone(e.keys), nil
}

func (h *Heap) Prototype(obj values.Handle) (values.Handle, error) {
	e, err := h.object(obj)
	if err != nil {
		return 0, err
	}
	return e.proto, nil
}

// SetPrototype links obj to parent, 0 clears the link.
// Links that would make the chain loop back to obj are rejected.
func (h *Heap) SetPrototype(obj values.Handle, parent values.Handle) error {
	e, err := h.object(obj)
	if err != nil {
		return err
	}
	for p := parent; p != 0; {
		if p == obj {
			return fmt.Errorf("%w: #%d -> #%d", ErrPrototypeCycle, obj, parent)
		}
		pe, err := h.object(p)
		if err != nil {
			return err
		}
		p = pe.proto
	}
	e.proto = parent
	return nil
}
