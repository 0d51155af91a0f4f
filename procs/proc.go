package procs

// Proc is one step of a sequence. Run returns the step to run next, nil when
// this step is done.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

// Func adapts a function to Proc.
type Func[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}

// Step is a Func that finishes after one call.
func Step[C any](fn func(ctx C) error) Proc[C] {
	return Func[C](func(ctx C) (Proc[C], error) {
		return nil, fn(ctx)
	})
}

// RunAll drives proc until it finishes or fails.
func RunAll[C any](ctx C, proc Proc[C]) error {
	for proc != nil {
		var err error
		proc, err = proc.Run(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
