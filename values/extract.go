package values

import (
	"errors"
	"fmt"
)

var ErrTypeMismatch = errors.New("type mismatch")

type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: want %v, got %v", e.Want, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func mismatch(want Kind, v Value) error {
	return &TypeMismatchError{
		Want: want,
		Got:  v.kind,
	}
}

func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, mismatch(KindBool, v)
	}
	return v.b, nil
}

func (v Value) Int() (int64, error) {
	if v.kind != KindInt {
		return 0, mismatch(KindInt, v)
	}
	return v.i, nil
}

func (v Value) Float() (float64, error) {
	if v.kind != KindFloat {
		return 0, mismatch(KindFloat, v)
	}
	return v.f, nil
}

func (v Value) Str() (string, error) {
	if v.kind != KindStr {
		return "", mismatch(KindStr, v)
	}
	return v.s, nil
}

func (v Value) Obj() (Handle, error) {
	if v.kind != KindObj {
		return 0, mismatch(KindObj, v)
	}
	return v.h, nil
}

func (v Value) Fn() (Handle, error) {
	if v.kind != KindFn {
		return 0, mismatch(KindFn, v)
	}
	return v.h, nil
}

// As extracts the held Go value. Handle extraction accepts both Obj and Fn.
func As[T bool | int64 | float64 | string | Handle](v Value) (ret T, err error) {
	var x any
	switch any(ret).(type) {
	case bool:
		x, err = v.Bool()
	case int64:
		x, err = v.Int()
	case float64:
		x, err = v.Float()
	case string:
		x, err = v.Str()
	case Handle:
		h, ok := v.Handle()
		if !ok {
			return ret, mismatch(KindObj, v)
		}
		x = h
	}
	if err != nil {
		return
	}
	return x.(T), nil
}

func MustAs[T bool | int64 | float64 | string | Handle](v Value) T {
	ret, err := As[T](v)
	if err != nil {
		panic(err)
	}
	return ret
}
