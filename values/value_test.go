package values

import (
	"errors"
	"math"
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestOf(t *testing.T) {
	cases := []struct {
		in   any
		kind Kind
		str  string
	}{
		{nil, KindAbsent, "undefined"},
		{true, KindBool, "true"},
		{42, KindInt, "42"},
		{int64(-7), KindInt, "-7"},
		{uint8(3), KindInt, "3"},
		{3.14, KindFloat, "3.14"},
		{float32(0.5), KindFloat, "0.5"},
		{"Ford", KindStr, "Ford"},
		{IntOf(1969), KindInt, "1969"},
	}
	for _, c := range cases {
		v := Of(c.in)
		if v.Kind() != c.kind {
			t.Fatalf("%v: got kind %v", c.in, v.Kind())
		}
		if v.String() != c.str {
			t.Fatalf("%v: got %q", c.in, v.String())
		}
	}
}

func TestOfUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	Of(make(chan int))
}

func TestOfUnsignedOverflow(t *testing.T) {
	if v := Of(uint64(math.MaxInt64)); !v.Equal(IntOf(math.MaxInt64)) {
		t.Fatalf("got %v", v)
	}
	if v := Of(uint32(math.MaxUint32)); !v.Equal(IntOf(math.MaxUint32)) {
		t.Fatalf("got %v", v)
	}
	for _, u := range []any{
		uint64(math.MaxInt64) + 1,
		uint64(math.MaxUint64),
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%v should panic", u)
				}
			}()
			Of(u)
		}()
	}
}

func TestZeroIsAbsent(t *testing.T) {
	var v Value
	if !v.IsAbsent() {
		t.Fatal()
	}
	if !v.Equal(Absent) {
		t.Fatal()
	}
}

func TestExtract(t *testing.T) {
	b, err := BoolOf(true).Bool()
	if err != nil || !b {
		t.Fatalf("got %v %v", b, err)
	}
	i, err := As[int64](IntOf(42))
	if err != nil || i != 42 {
		t.Fatalf("got %v %v", i, err)
	}
	s, err := As[string](StrOf("Hello"))
	if err != nil || s != "Hello" {
		t.Fatalf("got %v %v", s, err)
	}
	h, err := As[Handle](FnOf(3))
	if err != nil || h != 3 {
		t.Fatalf("got %v %v", h, err)
	}
	if MustAs[float64](FloatOf(3.14)) != 3.14 {
		t.Fatal()
	}
}

func TestExtractMismatch(t *testing.T) {
	_, err := As[int64](StrOf("42"))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %T", err)
	}
	if mismatch.Want != KindInt || mismatch.Got != KindStr {
		t.Fatalf("got %+v", mismatch)
	}

	// no widening between numeric kinds
	if _, err := IntOf(1).Float(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
	if _, err := FloatOf(1).Int(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
	if _, err := As[Handle](IntOf(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
	if _, err := ObjOf(1).Fn(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	MustAs[bool](Absent)
}

func TestEqual(t *testing.T) {
	if IntOf(1).Equal(FloatOf(1)) {
		t.Fatal("equality is per kind")
	}
	if !StrOf("a").Equal(StrOf("a")) {
		t.Fatal()
	}
	if ObjOf(1).Equal(FnOf(1)) {
		t.Fatal()
	}
	if !ObjOf(2).Equal(ObjOf(2)) {
		t.Fatal()
	}
}

func TestFloatString(t *testing.T) {
	cases := map[float64]string{
		1e21:         "1000000000000000000000",
		0.1:          "0.1",
		-2:           "-2",
		math.NaN():   "NaN",
		math.Inf(1):  "Infinity",
		math.Inf(-1): "-Infinity",
		123456.789e3: "123456789",
		1.0 / 1024.0: "0.0009765625",
	}
	for f, want := range cases {
		if got := FloatOf(f).String(); got != want {
			t.Fatalf("%v: got %q", f, got)
		}
	}
}

func TestPlus(t *testing.T) {
	v, err := Plus(IntOf(4), IntOf(8))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(IntOf(12)) {
		t.Fatalf("got %v", v)
	}

	v, err = Plus(StrOf("a"), BoolOf(true))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(StrOf("atrue")) {
		t.Fatalf("got %v", v)
	}

	v, err = Plus(Absent, StrOf("!"))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(StrOf("undefined!")) {
		t.Fatalf("got %v", v)
	}

	if _, err := Plus(BoolOf(true), IntOf(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
	if _, err := Plus(IntOf(1), ObjOf(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestFold(t *testing.T) {
	content, err := os.ReadFile("testdata/plus.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var cases []struct {
		Name string `yaml:"name"`
		Args []any  `yaml:"args"`
		Want string `yaml:"want"`
		Kind string `yaml:"kind"`
	}
	if err := yaml.Unmarshal(content, &cases); err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no cases")
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			args := make([]Value, 0, len(c.Args))
			for _, arg := range c.Args {
				args = append(args, Of(arg))
			}
			res, err := Fold(args...)
			if err != nil {
				t.Fatal(err)
			}
			if res.String() != c.Want {
				t.Fatalf("got %q", res.String())
			}
			if res.Kind().String() != c.Kind {
				t.Fatalf("got kind %v", res.Kind())
			}
		})
	}
}

func TestFoldOrder(t *testing.T) {
	res, err := Fold(Of(4), Of(8), Of("!"), Of(15), Of(16), Of(23), Of(42))
	if err != nil {
		t.Fatal(err)
	}
	s, err := res.Str()
	if err != nil {
		t.Fatal(err)
	}
	if s != "12!15162342" {
		t.Fatalf("got %q", s)
	}

	if _, err := Fold(Of(1), Of(true)); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestSum(t *testing.T) {
	sum, err := Sum(ParseAll("4", "8", "15", "16", "23", "42")...)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 108 {
		t.Fatalf("got %v", sum)
	}
	if _, err := Sum(Of(4), Of("!")); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{"42", IntOf(42)},
		{"-3", IntOf(-3)},
		{"3.14", FloatOf(3.14)},
		{"true", BoolOf(true)},
		{"No", BoolOf(false)},
		{"undefined", Absent},
		{"!", StrOf("!")},
		{"", StrOf("")},
	}
	for _, c := range cases {
		if got := Parse(c.in); !got.Equal(c.want) {
			t.Fatalf("%q: got %v (%v)", c.in, got, got.Kind())
		}
	}
}

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "T", "yes", "y", "1"} {
		if !StrToBool(s) {
			t.Fatalf("%s", s)
		}
	}
	for _, s := range []string{"false", "n", "", "foo"} {
		if StrToBool(s) {
			t.Fatalf("%s", s)
		}
	}
}
