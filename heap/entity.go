package heap

import (
	"iter"

	"github.com/reusee/delegate/values"
)

type EntityKind uint8

const (
	KindNone EntityKind = iota
	KindObject
	KindFunction
	KindCell
)

func (k EntityKind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	case KindCell:
		return "cell"
	}
	return "none"
}

type entity struct {
	kind  EntityKind
	props map[string]values.Value
	keys  []string
	proto values.Handle
	fn    *funcPart
	cell  values.Value
}

type funcPart struct {
	name     string
	body     Body
	captures []Capture
}

func newObjectEntity(proto values.Handle) *entity {
	return &entity{
		kind:  KindObject,
		props: make(map[string]values.Value),
		proto: proto,
	}
}

func (e *entity) isObject() bool {
	return e.kind == KindObject || e.kind == KindFunction
}

func (e *entity) value(handle values.Handle) values.Value {
	if e.kind == KindFunction {
		return values.FnOf(handle)
	}
	return values.ObjOf(handle)
}

func (e *entity) setOwn(key string, value values.Value) {
	if _, ok := e.props[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.props[key] = value
}

func (e *entity) deleteOwn(key string) bool {
	if _, ok := e.props[key]; !ok {
		return false
	}
	delete(e.props, key)
	for i, k := range e.keys {
		if k == key {
			e.keys = append(e.keys[:i], e.keys[i+1:]...)
			break
		}
	}
	return true
}

// refs yields every handle this entity keeps alive.
func (e *entity) refs() iter.Seq[values.Handle] {
	return func(yield func(values.Handle) bool) {
		if e.proto != 0 {
			if !yield(e.proto) {
				return
			}
		}
		for _, key := range e.keys {
			if h, ok := e.props[key].Handle(); ok {
				if !yield(h) {
					return
				}
			}
		}
		if e.fn != nil {
			for _, capture := range e.fn.captures {
				for h := range capture.refs() {
					if !yield(h) {
						return
					}
				}
			}
		}
		if h, ok := e.cell.Handle(); ok {
			if !yield(h) {
				return
			}
		}
	}
}
