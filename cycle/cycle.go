package cycle

import "fmt"

// Detect applies step to seed repeatedly until the key of a produced state
// matches the key of an earlier one. key must identify states by value:
// two states with equal keys are treated as the same configuration.
// step must not mutate its argument in place, since every state is kept.
func Detect[S any, K comparable](seed S, step func(S) S, key func(S) K, opts ...Option) (*Result[S], error) {
	if step == nil || key == nil {
		return nil, ErrNilStep
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	seen := map[K]int{key(seed): 0}
	res := &Result[S]{States: []S{seed}}
	cur := seed
	for i := 1; ; i++ {
		if o.MaxSteps > 0 && i > o.MaxSteps {
			return nil, fmt.Errorf("%w: %d steps", ErrNoCycle, o.MaxSteps)
		}
		cur = step(cur)
		k := key(cur)
		if first, ok := seen[k]; ok {
			res.Offset = first
			res.Period = i - first
			return res, nil
		}
		seen[k] = i
		res.States = append(res.States, cur)
	}
}
