package heap

import (
	"fmt"

	"github.com/reusee/delegate/values"
)

// Call is what a Body sees of its invocation.
type Call struct {
	Heap   *Heap
	Callee values.Handle
	This   values.Value
	Args   []values.Value
	fn     *funcPart
}

func (c *Call) Len() int {
	return len(c.Args)
}

// Arg returns the i-th argument, Absent when fewer were passed.
func (c *Call) Arg(i int) values.Value {
	if i < 0 || i >= len(c.Args) {
		return values.Absent
	}
	return c.Args[i]
}

// MustArg is Arg for bodies that treat a short argument list as an error.
func (c *Call) MustArg(i int) (values.Value, error) {
	if i < 0 || i >= len(c.Args) {
		return values.Absent, fmt.Errorf("%w: index %d, got %d arguments", ErrMissingArgument, i, len(c.Args))
	}
	return c.Args[i], nil
}

func (c *Call) capture(name string) (*Capture, error) {
	for i := range c.fn.captures {
		if c.fn.captures[i].Name == name {
			return &c.fn.captures[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCapture, name)
}

// Captured reads a captured variable: the snapshot for by-value captures,
// the current cell content for by-reference ones.
func (c *Call) Captured(name string) (values.Value, error) {
	capture, err := c.capture(name)
	if err != nil {
		return values.Absent, err
	}
	if capture.Kind == CaptureByRef {
		return c.Heap.Load(capture.Cell)
	}
	return capture.Value, nil
}

// Assign writes through a by-reference capture.
func (c *Call) Assign(name string, value values.Value) error {
	capture, err := c.capture(name)
	if err != nil {
		return err
	}
	if capture.Kind != CaptureByRef {
		return fmt.Errorf("%w: %s", ErrImmutableCapture, name)
	}
	return c.Heap.Store(capture.Cell, value)
}

func (c *Call) thisHandle() (values.Handle, error) {
	return values.As[values.Handle](c.This)
}

// ThisGet reads a property of the receiver.
func (c *Call) ThisGet(key string) (values.Value, error) {
	this, err := c.thisHandle()
	if err != nil {
		return values.Absent, err
	}
	return c.Heap.Get(this, key)
}

func (c *Call) ThisSet(key string, value values.Value) error {
	this, err := c.thisHandle()
	if err != nil {
		return err
	}
	return c.Heap.Set(this, key, value)
}

// Call invokes fn with the given receiver and arguments. An Absent receiver
// is replaced by the global object. Any number of arguments is accepted.
func (h *Heap) Call(fn values.Handle, this values.Value, args ...values.Value) (values.Value, error) {
	e, err := h.function(fn)
	if err != nil {
		return values.Absent, err
	}
	if e.fn.body == nil {
		return values.Absent, fmt.Errorf("%w: %q", ErrMissingBody, e.fn.name)
	}
	if this.IsAbsent() {
		this = values.ObjOf(h.global)
	}
	if h.maxCallDepth > 0 && h.depth >= h.maxCallDepth {
		return values.Absent, fmt.Errorf("%w: %d", ErrCallDepthExceeded, h.maxCallDepth)
	}
	h.depth++
	defer func() {
		h.depth--
	}()
	return e.fn.body(&Call{
		Heap:   h,
		Callee: fn,
		This:   this,
		Args:   args,
		fn:     e.fn,
	})
}

// CallValue calls a function value, as read from a property.
func (h *Heap) CallValue(fn values.Value, this values.Value, args ...values.Value) (values.Value, error) {
	handle, err := fn.Fn()
	if err != nil {
		return values.Absent, fmt.Errorf("%w: %v", ErrNotCallable, fn)
	}
	return h.Call(handle, this, args...)
}

// CallMethod evaluates obj.key(args...), passing obj as the receiver.
func (h *Heap) CallMethod(obj values.Handle, key string, args ...values.Value) (values.Value, error) {
	method, err := h.Get(obj, key)
	if err != nil {
		return values.Absent, err
	}
	receiver, err := h.ValueOf(obj)
	if err != nil {
		return values.Absent, err
	}
	ret, err := h.CallValue(method, receiver, args...)
	if err != nil {
		return values.Absent, fmt.Errorf("call %s: %w", key, err)
	}
	return ret, nil
}

// New allocates an object delegating to constructor.prototype and runs the
// constructor with it as the receiver. An object returned by the constructor
// replaces the allocated one.
func (h *Heap) New(constructor values.Handle, args ...values.Value) (values.Value, error) {
	if _, err := h.function(constructor); err != nil {
		return values.Absent, err
	}
	protoValue, err := h.Get(constructor, "prototype")
	if err != nil {
		return values.Absent, err
	}
	proto, ok := protoValue.Handle()
	if !ok {
		proto = 0
	}
	obj, err := h.MakeObjectWith(proto)
	if err != nil {
		return values.Absent, err
	}
	this := values.ObjOf(obj)
	ret, err := h.Call(constructor, this, args...)
	if err != nil {
		return values.Absent, err
	}
	if _, ok := ret.Handle(); ok {
		return ret, nil
	}
	return this, nil
}
