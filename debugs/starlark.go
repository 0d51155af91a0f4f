package debugs

import (
	"fmt"

	"github.com/reusee/delegate/heap"
	"github.com/reusee/delegate/values"
	"go.starlark.net/starlark"
)

const protoKey = "__proto__"

// ToStarlark converts v for inspection. Objects become dicts of their own
// properties, with the prototype under __proto__. Functions become Function
// values calling back into h.
func ToStarlark(h *heap.Heap, v values.Value) (starlark.Value, error) {
	return toStarlark(h, v, make(map[values.Handle]bool))
}

func toStarlark(h *heap.Heap, v values.Value, visiting map[values.Handle]bool) (starlark.Value, error) {
	switch v.Kind() {

	case values.KindAbsent:
		return starlark.None, nil

	case values.KindBool:
		return starlark.Bool(values.MustAs[bool](v)), nil

	case values.KindInt:
		return starlark.MakeInt64(values.MustAs[int64](v)), nil

	case values.KindFloat:
		return starlark.Float(values.MustAs[float64](v)), nil

	case values.KindStr:
		return starlark.String(values.MustAs[string](v)), nil

	case values.KindObj:
		handle := values.MustAs[values.Handle](v)
		if visiting[handle] {
			// back reference
			return starlark.String(v.String()), nil
		}
		visiting[handle] = true
		defer delete(visiting, handle)

		keys, err := h.Keys(handle)
		if err != nil {
			return nil, err
		}
		d := starlark.NewDict(len(keys) + 1)
		for _, key := range keys {
			prop, _, err := h.GetOwn(handle, key)
			if err != nil {
				return nil, err
			}
			value, err := toStarlark(h, prop, visiting)
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(starlark.String(key), value); err != nil {
				return nil, err
			}
		}
		proto, err := h.Prototype(handle)
		if err != nil {
			return nil, err
		}
		if proto != 0 {
			value, err := toStarlark(h, values.ObjOf(proto), visiting)
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(starlark.String(protoKey), value); err != nil {
				return nil, err
			}
		}
		return d, nil

	case values.KindFn:
		handle := values.MustAs[values.Handle](v)
		name, err := h.FuncName(handle)
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = v.String()
		}
		attrs := make(starlark.StringDict)
		if !visiting[handle] {
			visiting[handle] = true
			defer delete(visiting, handle)
			keys, err := h.Keys(handle)
			if err != nil {
				return nil, err
			}
			for _, key := range keys {
				prop, _, err := h.GetOwn(handle, key)
				if err != nil {
					return nil, err
				}
				attrs[key], err = toStarlark(h, prop, visiting)
				if err != nil {
					return nil, err
				}
			}
		}
		return &Function{
			heap:   h,
			handle: handle,
			name:   name,
			attrs:  attrs,
		}, nil

	}

	return nil, fmt.Errorf("unsupported value: %v", v)
}

// Function is a callable heap object. Its own properties are attributes.
type Function struct {
	heap   *heap.Heap
	handle values.Handle
	name   string
	attrs  starlark.StringDict
}

var _ starlark.Callable = new(Function)

var _ starlark.HasAttrs = new(Function)

func (f *Function) String() string {
	return "<function " + f.name + ">"
}

func (f *Function) Type() string {
	return "function"
}

func (f *Function) Freeze() {
	f.attrs.Freeze()
}

func (f *Function) Truth() starlark.Bool {
	return starlark.True
}

func (f *Function) Hash() (uint32, error) {
	return uint32(f.handle), nil
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) Attr(name string) (starlark.Value, error) {
	// nil, nil reports a missing attribute
	return f.attrs[name], nil
}

func (f *Function) AttrNames() []string {
	return f.attrs.Keys()
}

func (f *Function) CallInternal(
	thread *starlark.Thread,
	args starlark.Tuple,
	kwargs []starlark.Tuple,
) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: keyword arguments not supported", f.name)
	}
	callArgs := make([]values.Value, 0, len(args))
	for _, arg := range args {
		value, err := FromStarlark(arg)
		if err != nil {
			return nil, err
		}
		callArgs = append(callArgs, value)
	}
	ret, err := f.heap.Call(f.handle, values.Absent, callArgs...)
	if err != nil {
		return nil, err
	}
	return ToStarlark(f.heap, ret)
}

// FromStarlark converts a scalar starlark value.
func FromStarlark(v starlark.Value) (values.Value, error) {
	switch v := v.(type) {

	case starlark.NoneType:
		return values.Absent, nil

	case starlark.Bool:
		return values.BoolOf(bool(v)), nil

	case starlark.Int:
		i, ok := v.Int64()
		if !ok {
			return values.Absent, fmt.Errorf("int out of range: %v", v)
		}
		return values.IntOf(i), nil

	case starlark.Float:
		return values.FloatOf(float64(v)), nil

	case starlark.String:
		return values.StrOf(string(v)), nil

	}

	return values.Absent, fmt.Errorf("unsupported starlark type: %s", v.Type())
}
