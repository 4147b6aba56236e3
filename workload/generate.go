package workload

import (
	"fmt"
	"math/rand"
	"time"
)

// Target is the slice of the disjoint-set surface a stream needs.
// Both *dsu.Static and *dsu.Dynamic[int] satisfy it.
type Target interface {
	Find(x int) (int, error)
	Union(a, b int) error
}

func checkRatio(s Scenario) error {
	if s.UnionRatio < 0 || s.UnionRatio > 1 {
		return fmt.Errorf("%w: scenario %q union ratio %v outside [0, 1]", ErrInvalidConfig, s.Name, s.UnionRatio)
	}

	return nil
}

// Generate returns total operations over elements [0, n): int(total·UnionRatio)
// unions on random pairs and finds for the remainder, shuffled together.
func Generate(s Scenario, n, total int, rng *rand.Rand) ([]Op, error) {
	switch {
	case n <= 0:
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidConfig, n)
	case total < 0:
		return nil, fmt.Errorf("%w: total must not be negative, got %d", ErrInvalidConfig, total)
	case rng == nil:
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if err := checkRatio(s); err != nil {
		return nil, err
	}

	unions := int(float64(total) * s.UnionRatio)
	ops := make([]Op, 0, total)
	for i := 0; i < unions; i++ {
		ops = append(ops, Op{Kind: OpUnion, A: rng.Intn(n), B: rng.Intn(n)})
	}
	for i := unions; i < total; i++ {
		ops = append(ops, Op{Kind: OpFind, A: rng.Intn(n)})
	}
	rng.Shuffle(len(ops), func(i, j int) { ops[i], ops[j] = ops[j], ops[i] })

	return ops, nil
}

// Run applies ops to t in order and returns the time spent. The first failing
// operation aborts the run; its index is included in the error.
func Run(t Target, ops []Op) (time.Duration, error) {
	start := time.Now()
	for i, op := range ops {
		var err error
		if op.Kind == OpUnion {
			err = t.Union(op.A, op.B)
		} else {
			_, err = t.Find(op.A)
		}
		if err != nil {
			return time.Since(start), fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
	}

	return time.Since(start), nil
}
