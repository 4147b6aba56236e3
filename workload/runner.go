package workload

import (
	"cmp"
	"context"
	"fmt"
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/disjointset"
	"github.com/katalvlaran/disjointset/dsu"
	"github.com/katalvlaran/disjointset/unionfind"
)

// Runner sweeps the benchmark matrix described by a Config.
type Runner struct {
	cfg Config
	log logrus.FieldLogger
}

// NewRunner validates cfg and returns a Runner that reports progress to log.
// A nil log discards output.
func NewRunner(cfg Config, log logrus.FieldLogger) (*Runner, error) {
	if err := cfg.CheckAndSetDefaults(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}

	return &Runner{cfg: cfg, log: log}, nil
}

// Config returns the effective configuration, defaults included.
func (r *Runner) Config() Config {
	return r.cfg
}

// newTarget builds a fresh set of the given form.
func (r *Runner) newTarget(form Form, s unionfind.Strategy) (dsu.Set[int], error) {
	size := disjointset.Unsized
	opts := []dsu.Option{dsu.WithStrategy(s)}
	if form == Static {
		size = disjointset.Sized(r.cfg.Size)
	} else {
		opts = append(opts, dsu.WithCapacity(r.cfg.Size))
	}

	return disjointset.New(size, opts...)
}

// Run executes every scenario × form × strategy cell. Every cell of a scenario replays
// the same stream. Within one scenario and form, all strategies must end with the same
// partition; a mismatch returns ErrDiverged. ctx is checked between cells.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	rng := rand.New(rand.NewSource(r.cfg.Seed))
	results := make([]Result, 0, len(r.cfg.Scenarios)*len(r.cfg.Forms)*len(r.cfg.Strategies))

	for _, sc := range r.cfg.Scenarios {
		ops, err := Generate(sc, r.cfg.Size, r.cfg.Ops, rng)
		if err != nil {
			return nil, err
		}

		for _, form := range r.cfg.Forms {
			var (
				want [][]int
				ref  unionfind.Strategy
			)
			for i, strat := range r.cfg.Strategies {
				if err := ctx.Err(); err != nil {
					return results, err
				}

				res, sets, err := r.runCell(sc, form, strat, ops)
				if err != nil {
					return results, err
				}
				got := canonical(sets)
				if i == 0 {
					want, ref = got, strat
				} else if !samePartition(want, got) {
					return results, fmt.Errorf("%w: scenario %q form %s: %s gave %d groups, %s gave %d",
						ErrDiverged, sc.Name, form, ref, len(want), strat, len(got))
				}
				results = append(results, res)
			}
		}
	}

	return results, nil
}

// runCell replays ops on a fresh set and returns the timing and the final partition.
func (r *Runner) runCell(sc Scenario, form Form, strat unionfind.Strategy, ops []Op) (Result, [][]int, error) {
	log := r.log.WithFields(logrus.Fields{
		"scenario": sc.Name,
		"form":     form,
		"strategy": strat.String(),
	})

	set, err := r.newTarget(form, strat)
	if err != nil {
		return Result{}, nil, err
	}

	log.WithField("ops", len(ops)).Debug("Running workload.")
	elapsed, err := Run(set, ops)
	if err != nil {
		log.WithError(err).Warn("Workload failed.")
		return Result{}, nil, err
	}
	sets := set.Sets()

	res := Result{
		Scenario: sc.Name,
		Form:     form,
		Strategy: strat,
		Ops:      len(ops),
		Elapsed:  elapsed,
		Sets:     len(sets),
	}
	log.WithFields(logrus.Fields{
		"elapsed": elapsed,
		"sets":    res.Sets,
	}).Info("Workload done.")

	return res, sets, nil
}

// canonical sorts every group and then orders groups by their smallest member,
// so equal partitions compare equal regardless of representative choice.
func canonical(sets [][]int) [][]int {
	out := make([][]int, len(sets))
	for i, g := range sets {
		g = slices.Clone(g)
		slices.Sort(g)
		out[i] = g
	}
	slices.SortFunc(out, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })

	return out
}

// samePartition reports whether two canonical partitions are identical.
func samePartition(a, b [][]int) bool {
	return slices.EqualFunc(a, b, func(x, y []int) bool { return slices.Equal(x, y) })
}
