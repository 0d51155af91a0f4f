package heap

import (
	"encoding/gob"
	"fmt"
	"io"
	"slices"

	"github.com/reusee/delegate/values"
)

type snapshotEntity struct {
	Handle   values.Handle
	Kind     EntityKind
	Keys     []string
	Props    []values.Value
	Proto    values.Handle
	FuncName string
	Captures []Capture
	Cell     values.Value
}

type snapshot struct {
	Next     values.Handle
	Global   values.Handle
	Entities []snapshotEntity
}

// Snapshot writes the whole arena. Function bodies are recorded by name only.
func (h *Heap) Snapshot(w io.Writer) error {
	handles := make([]values.Handle, 0, len(h.entities))
	for handle := range h.entities {
		handles = append(handles, handle)
	}
	slices.Sort(handles)

	snap := snapshot{
		Next:   h.next,
		Global: h.global,
	}
	for _, handle := range handles {
		e := h.entities[handle]
		se := snapshotEntity{
			Handle: handle,
			Kind:   e.kind,
			Keys:   slices.Clone(e.keys),
			Proto:  e.proto,
			Cell:   e.cell,
		}
		for _, key := range e.keys {
			se.Props = append(se.Props, e.props[key])
		}
		if e.fn != nil {
			se.FuncName = e.fn.name
			se.Captures = e.fn.captures
		}
		snap.Entities = append(snap.Entities, se)
	}

	if err := gob.NewEncoder(w).Encode(snap); err != nil {
		return wrap(err)
	}
	return nil
}

// Restore replaces the arena with a snapshot. Function bodies are looked up
// in bodies by name; functions without a match fail with ErrMissingBody when
// called.
func (h *Heap) Restore(r io.Reader, bodies map[string]Body) error {
	var snap snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return wrap(err)
	}

	entities := make(map[values.Handle]*entity, len(snap.Entities))
	var maxHandle values.Handle
	for _, se := range snap.Entities {
		if se.Handle == 0 {
			return fmt.Errorf("bad snapshot: entity with null handle")
		}
		if _, ok := entities[se.Handle]; ok {
			return fmt.Errorf("bad snapshot: duplicated entity #%d", se.Handle)
		}
		maxHandle = max(maxHandle, se.Handle)
		if len(se.Keys) != len(se.Props) {
			return fmt.Errorf("bad snapshot entity #%d: %d keys, %d values", se.Handle, len(se.Keys), len(se.Props))
		}
		e := &entity{
			kind:  se.Kind,
			proto: se.Proto,
			cell:  se.Cell,
		}
		switch se.Kind {
		case KindObject, KindFunction:
			e.props = make(map[string]values.Value, len(se.Keys))
			for i, key := range se.Keys {
				e.setOwn(key, se.Props[i])
			}
			if len(e.keys) != len(se.Keys) {
				return fmt.Errorf("bad snapshot entity #%d: duplicated keys", se.Handle)
			}
		case KindCell:
			if len(se.Keys) > 0 || se.Proto != 0 {
				return fmt.Errorf("bad snapshot entity #%d: cell with properties", se.Handle)
			}
		}
		if se.Kind == KindFunction {
			e.fn = &funcPart{
				name:     se.FuncName,
				captures: se.Captures,
			}
			if se.FuncName != "" {
				e.fn.body = bodies[se.FuncName]
			}
		}
		entities[se.Handle] = e
	}
	if snap.Next < maxHandle {
		return fmt.Errorf("bad snapshot: next handle #%d not above #%d", snap.Next, maxHandle)
	}
	global, ok := entities[snap.Global]
	if !ok {
		return fmt.Errorf("bad snapshot: %w", dangling(snap.Global))
	}
	if global.kind != KindObject {
		return fmt.Errorf("bad snapshot: %w: global #%d is a %v", ErrNotObject, snap.Global, global.kind)
	}
	if err := verifyEntities(entities); err != nil {
		return fmt.Errorf("bad snapshot: %w", err)
	}

	h.entities = entities
	h.next = snap.Next
	h.global = snap.Global
	h.depth = 0
	h.logger.Debug("restore",
		"live", len(entities),
	)
	return nil
}
