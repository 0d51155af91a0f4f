package procs

import (
	"errors"
	"testing"
)

func TestProcs(t *testing.T) {
	var got []int
	record := func(i int) Proc[*[]int] {
		return Step(func(out *[]int) error {
			*out = append(*out, i)
			return nil
		})
	}
	twice := Func[*[]int](func(out *[]int) (Proc[*[]int], error) {
		*out = append(*out, 10)
		return record(11), nil
	})

	procs := Procs[*[]int]{record(1), twice, record(2)}
	if err := RunAll(&got, procs); err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 || got[0] != 1 || got[1] != 10 || got[2] != 11 || got[3] != 2 {
		t.Fatalf("got %v", got)
	}

	// procs itself is not modified
	got = got[:0]
	if err := RunAll(&got, procs); err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("got %v", got)
	}
}

func TestProcsError(t *testing.T) {
	errStop := errors.New("stop")
	ran := false
	procs := Procs[int]{
		Step(func(int) error {
			return errStop
		}),
		Step(func(int) error {
			ran = true
			return nil
		}),
	}
	if err := RunAll(0, procs); !errors.Is(err, errStop) {
		t.Fatalf("got %v", err)
	}
	if ran {
		t.Fatal("should stop at the first error")
	}
	if err := RunAll[int](0, nil); err != nil {
		t.Fatal(err)
	}
}
