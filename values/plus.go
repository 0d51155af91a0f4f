package values

// Plus applies the + operator: concatenation when either side is a string,
// numeric addition otherwise. Int+Int stays Int, a Float operand widens.
func Plus(l, r Value) (Value, error) {
	if l.kind == KindStr || r.kind == KindStr {
		return StrOf(l.String() + r.String()), nil
	}
	if !l.IsNumber() {
		return Absent, mismatch(KindInt, l)
	}
	if !r.IsNumber() {
		return Absent, mismatch(KindInt, r)
	}
	if l.kind == KindInt && r.kind == KindInt {
		return IntOf(l.i + r.i), nil
	}
	return FloatOf(l.toFloat() + r.toFloat()), nil
}

func (v Value) toFloat() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Fold reduces args left to right with Plus, seeded with integer zero.
// The point where addition turns into concatenation depends on the order.
func Fold(args ...Value) (Value, error) {
	acc := IntOf(0)
	for _, arg := range args {
		var err error
		acc, err = Plus(acc, arg)
		if err != nil {
			return Absent, err
		}
	}
	return acc, nil
}

// Sum adds integers only.
func Sum(args ...Value) (int64, error) {
	var sum int64
	for _, arg := range args {
		i, err := arg.Int()
		if err != nil {
			return 0, err
		}
		sum += i
	}
	return sum, nil
}
