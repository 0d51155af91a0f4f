package values

import (
	"bytes"
	"encoding/gob"
)

var _ gob.GobEncoder = Value{}

var _ gob.GobDecoder = new(Value)

type gobValue struct {
	Kind   Kind
	Bool   bool
	Int    int64
	Float  float64
	Str    string
	Handle Handle
}

func (v Value) GobEncode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(gobValue{
		Kind:   v.kind,
		Bool:   v.b,
		Int:    v.i,
		Float:  v.f,
		Str:    v.s,
		Handle: v.h,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) GobDecode(data []byte) error {
	var g gobValue
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return err
	}
	*v = Value{
		kind: g.Kind,
		b:    g.Bool,
		i:    g.Int,
		f:    g.Float,
		s:    g.Str,
		h:    g.Handle,
	}
	return nil
}
