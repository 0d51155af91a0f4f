package values

import (
	"fmt"
	"math"
	"strconv"
)

type Kind uint8

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindObj
	KindFn
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "string"
	case KindObj:
		return "object"
	case KindFn:
		return "function"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Handle identifies an object owned by a heap. Zero is the null handle.
type Handle uint64

// Value is the dynamic value. The zero Value is Absent.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	h    Handle
}

var Absent = Value{}

func BoolOf(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func IntOf(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func FloatOf(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func StrOf(s string) Value {
	return Value{kind: KindStr, s: s}
}

func ObjOf(h Handle) Value {
	return Value{kind: KindObj, h: h}
}

func FnOf(h Handle) Value {
	return Value{kind: KindFn, h: h}
}

// Of converts host literals. Values pass through unchanged.
func Of(v any) Value {
	switch v := v.(type) {
	case nil:
		return Absent
	case Value:
		return v
	case bool:
		return BoolOf(v)
	case int:
		return IntOf(int64(v))
	case int8:
		return IntOf(int64(v))
	case int16:
		return IntOf(int64(v))
	case int32:
		return IntOf(int64(v))
	case int64:
		return IntOf(v)
	case uint:
		return uintOf(uint64(v))
	case uint8:
		return IntOf(int64(v))
	case uint16:
		return IntOf(int64(v))
	case uint32:
		return IntOf(int64(v))
	case uint64:
		return uintOf(v)
	case float32:
		return FloatOf(float64(v))
	case float64:
		return FloatOf(v)
	case string:
		return StrOf(v)
	}
	panic(fmt.Errorf("no dynamic value for %T", v))
}

func uintOf(u uint64) Value {
	if u > math.MaxInt64 {
		panic(fmt.Errorf("%d overflows int64", u))
	}
	return IntOf(int64(u))
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

func (v Value) IsNumber() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// Handle returns the referenced object for Obj and Fn values.
func (v Value) Handle() (Handle, bool) {
	if v.kind == KindObj || v.kind == KindFn {
		return v.h, true
	}
	return 0, false
}

func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindStr:
		return v.s == other.s
	case KindObj, KindFn:
		return v.h == other.h
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "undefined"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindStr:
		return v.s
	case KindObj:
		return fmt.Sprintf("[object #%d]", v.h)
	case KindFn:
		return fmt.Sprintf("[function #%d]", v.h)
	}
	return "<invalid>"
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
