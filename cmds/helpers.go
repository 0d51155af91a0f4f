package cmds

// Var defines name to set the returned value, and name+"." to reset it.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Opt is a command line value that records whether it was given.
type Opt[T any] struct {
	Value T
	Given bool
}

// Get returns the value and whether it was given.
func (o *Opt[T]) Get() (T, bool) {
	return o.Value, o.Given
}

// Optional is Var for values whose zero is meaningful.
func Optional[T any](name string) *Opt[T] {
	opt := new(Opt[T])

	Define(name, Func(func(v T) {
		opt.Value = v
		opt.Given = true
	}))

	Define(name+".", Func(func() {
		*opt = Opt[T]{}
	}))

	return opt
}

// Switch defines name to turn the returned flag on and "!"+name to turn it off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))

	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

// Collect defines name to append one value each time it is given.
func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	return &value
}
