package heap

import (
	"fmt"
	"slices"

	"github.com/reusee/delegate/values"
)

type Stats struct {
	Roots  int
	Marked int
	Swept  int
	Live   int
}

func (s Stats) String() string {
	return fmt.Sprintf("roots=%d marked=%d swept=%d live=%d", s.Roots, s.Marked, s.Swept, s.Live)
}

// RootsOf returns the handles referenced by vs, for passing to Collect.
func RootsOf(vs ...values.Value) []values.Handle {
	var ret []values.Handle
	for _, v := range vs {
		if h, ok := v.Handle(); ok {
			ret = append(ret, h)
		}
	}
	return ret
}

// Collect reclaims every entity not reachable from roots or the global
// object. Reference cycles with no path from a root are reclaimed too.
// Unknown root handles are ignored.
func (h *Heap) Collect(roots ...values.Handle) Stats {
	h.collections++

	marked := make(map[values.Handle]struct{}, len(h.entities))
	queue := make([]values.Handle, 0, len(roots)+1)
	queue = append(queue, h.global)
	queue = append(queue, roots...)

	for len(queue) > 0 {
		handle := queue[0]
		queue = queue[1:]
		if _, seen := marked[handle]; seen {
			continue
		}
		e, ok := h.entities[handle]
		if !ok {
			continue
		}
		marked[handle] = struct{}{}
		for ref := range e.refs() {
			if _, seen := marked[ref]; !seen {
				queue = append(queue, ref)
			}
		}
	}

	var garbage []values.Handle
	for handle := range h.entities {
		if _, keep := marked[handle]; !keep {
			garbage = append(garbage, handle)
		}
	}
	slices.Sort(garbage)
	for _, handle := range garbage {
		delete(h.entities, handle)
	}

	stats := Stats{
		Roots:  len(roots),
		Marked: len(marked),
		Swept:  len(garbage),
		Live:   len(h.entities),
	}
	h.logger.Debug("collect",
		"cycle", h.collections,
		"roots", stats.Roots,
		"marked", stats.Marked,
		"swept", stats.Swept,
		"live", stats.Live,
	)

	if h.verify {
		if err := h.Verify(); err != nil {
			panic(err)
		}
	}

	return stats
}

// Verify checks the invariants every mutation keeps: references resolve to
// entities of the matching kind, by-reference captures hold cells, and
// prototype chains end.
func (h *Heap) Verify() error {
	return verifyEntities(h.entities)
}

func verifyEntities(entities map[values.Handle]*entity) error {
	for handle, e := range entities {
		switch e.kind {
		case KindObject, KindCell:
		case KindFunction:
			if e.fn == nil {
				return fmt.Errorf("function #%d has no function part", handle)
			}
		default:
			return fmt.Errorf("entity #%d has bad kind %v", handle, e.kind)
		}

		if e.proto != 0 {
			pe, ok := entities[e.proto]
			if !ok {
				return fmt.Errorf("%w: prototype #%d of #%d", ErrDanglingReference, e.proto, handle)
			}
			if !pe.isObject() {
				return fmt.Errorf("%w: prototype #%d of #%d is a %v", ErrNotObject, e.proto, handle, pe.kind)
			}
		}
		for _, key := range e.keys {
			if err := verifyRef(entities, handle, e.props[key]); err != nil {
				return err
			}
		}
		if e.fn != nil {
			for _, capture := range e.fn.captures {
				switch capture.Kind {
				case CaptureByValue:
					if err := verifyRef(entities, handle, capture.Value); err != nil {
						return err
					}
				case CaptureByRef:
					cell, ok := entities[capture.Cell]
					if !ok {
						return fmt.Errorf("%w: #%d referenced by #%d", ErrDanglingReference, capture.Cell, handle)
					}
					if cell.kind != KindCell {
						return fmt.Errorf("%w: #%d captured by #%d is a %v", ErrNotCell, capture.Cell, handle, cell.kind)
					}
				default:
					return fmt.Errorf("bad capture kind %d for %s in #%d", capture.Kind, capture.Name, handle)
				}
			}
		}
		if err := verifyRef(entities, handle, e.cell); err != nil {
			return err
		}
	}

	// every chain must reach 0 without revisiting a handle
	ends := make(map[values.Handle]bool, len(entities))
	for handle := range entities {
		chain := make(map[values.Handle]bool)
		for p := handle; p != 0 && !ends[p]; p = entities[p].proto {
			if chain[p] {
				return fmt.Errorf("%w: through #%d", ErrPrototypeCycle, p)
			}
			chain[p] = true
		}
		for p := range chain {
			ends[p] = true
		}
	}

	return nil
}

// verifyRef checks what checkValue checks on writes.
func verifyRef(entities map[values.Handle]*entity, owner values.Handle, v values.Value) error {
	handle, ok := v.Handle()
	if !ok {
		return nil
	}
	e, ok := entities[handle]
	if !ok {
		return fmt.Errorf("%w: #%d referenced by #%d", ErrDanglingReference, handle, owner)
	}
	if !e.isObject() {
		return fmt.Errorf("%w: #%d referenced by #%d is a %v", ErrNotObject, handle, owner, e.kind)
	}
	if (v.Kind() == values.KindFn) != (e.kind == KindFunction) {
		return fmt.Errorf("%w: #%d referenced by #%d as %v is a %v", values.ErrTypeMismatch, handle, owner, v.Kind(), e.kind)
	}
	return nil
}
