package procs

// Procs runs its elements in order.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	if len(p) == 0 {
		return nil, nil
	}
	next, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	if len(p) == 1 && next == nil {
		return nil, nil
	}
	rest := make(Procs[C], 0, len(p))
	if next != nil {
		rest = append(rest, next)
	}
	return append(rest, p[1:]...), nil
}
