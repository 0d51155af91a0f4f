package heap

import (
	"fmt"
	"log/slog"

	"github.com/reusee/delegate/values"
)

type Options struct {
	Logger       *slog.Logger
	MaxCallDepth int
	Capacity     int
	Verify       bool
}

// Heap owns every object, function and cell. Handles are never reused.
// A Heap is not safe for concurrent use, see Shared.
type Heap struct {
	entities     map[values.Handle]*entity
	next         values.Handle
	global       values.Handle
	logger       *slog.Logger
	maxCallDepth int
	verify       bool
	depth        int
	collections  int
}

func New(opts Options) *Heap {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Heap{
		entities:     make(map[values.Handle]*entity, max(opts.Capacity, 0)),
		logger:       logger,
		maxCallDepth: opts.MaxCallDepth,
		verify:       opts.Verify,
	}
	h.global = h.alloc(newObjectEntity(0))
	return h
}

func (h *Heap) alloc(e *entity) values.Handle {
	h.next++
	h.entities[h.next] = e
	return h.next
}

func (h *Heap) lookup(handle values.Handle) (*entity, error) {
	e, ok := h.entities[handle]
	if !ok {
		return nil, dangling(handle)
	}
	return e, nil
}

func (h *Heap) object(handle values.Handle) (*entity, error) {
	e, err := h.lookup(handle)
	if err != nil {
		return nil, err
	}
	if !e.isObject() {
		return nil, fmt.Errorf("%w: #%d is a %v", ErrNotObject, handle, e.kind)
	}
	return e, nil
}

// checkValue rejects values pointing at handles this heap does not hold.
func (h *Heap) checkValue(v values.Value) error {
	handle, ok := v.Handle()
	if !ok {
		return nil
	}
	e, err := h.lookup(handle)
	if err != nil {
		return err
	}
	if !e.isObject() {
		return fmt.Errorf("%w: #%d is a %v", ErrNotObject, handle, e.kind)
	}
	if (v.Kind() == values.KindFn) != (e.kind == KindFunction) {
		return fmt.Errorf("%w: #%d is a %v", values.ErrTypeMismatch, handle, e.kind)
	}
	return nil
}

// Global returns the global frame, also the receiver of unbound calls.
// It is always a collection root.
func (h *Heap) Global() values.Handle {
	return h.global
}

func (h *Heap) Live() int {
	return len(h.entities)
}

func (h *Heap) Contains(handle values.Handle) bool {
	_, ok := h.entities[handle]
	return ok
}

func (h *Heap) Kind(handle values.Handle) EntityKind {
	e, ok := h.entities[handle]
	if !ok {
		return KindNone
	}
	return e.kind
}

// ValueOf returns the Obj or Fn value referencing handle.
func (h *Heap) ValueOf(handle values.Handle) (values.Value, error) {
	e, err := h.object(handle)
	if err != nil {
		return values.Absent, err
	}
	return e.value(handle), nil
}
