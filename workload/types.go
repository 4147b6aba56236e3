package workload

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/disjointset/unionfind"
)

var (
	// ErrInvalidConfig indicates a size, operation count, ratio or option that cannot be used.
	ErrInvalidConfig = errors.New("workload: invalid configuration")

	// ErrDiverged indicates two compression strategies produced different partitions
	// for the same stream.
	ErrDiverged = errors.New("workload: strategies produced different partitions")
)

// Kind distinguishes the two operations of a stream.
type Kind int

const (
	// OpUnion merges the sets of A and B.
	OpUnion Kind = iota
	// OpFind looks up the representative of A.
	OpFind
)

// String returns "union" or "find".
func (k Kind) String() string {
	if k == OpUnion {
		return "union"
	}

	return "find"
}

// Op is a single operation. B is unused for OpFind.
type Op struct {
	Kind Kind
	A, B int
}

// Scenario names a union/find mix.
type Scenario struct {
	Name string
	// UnionRatio is the fraction of operations that are unions, in [0, 1].
	UnionRatio float64
}

// DefaultScenarios returns the five standard mixes, from union-heavy to find-heavy.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Union Heavy", UnionRatio: 0.999},
		{Name: "Union Bias", UnionRatio: 0.9},
		{Name: "Mixed", UnionRatio: 0.5},
		{Name: "Find Bias", UnionRatio: 0.1},
		{Name: "Find Heavy", UnionRatio: 0.001},
	}
}

// Form selects which disjoint-set form a run targets.
type Form string

const (
	// Static targets dsu.Static over [0, Size).
	Static Form = "static"
	// Dynamic targets dsu.Dynamic[int], registering keys as the stream references them.
	Dynamic Form = "dynamic"
)

// ParseForm accepts "static" or "dynamic".
func ParseForm(s string) (Form, error) {
	switch Form(s) {
	case Static, Dynamic:
		return Form(s), nil
	default:
		return "", fmt.Errorf("%w: unknown form %q", ErrInvalidConfig, s)
	}
}

// Config describes a benchmark matrix.
type Config struct {
	// Size is the number of distinct elements operations draw from.
	Size int
	// Ops is the length of each generated stream.
	Ops int
	// Seed makes the streams reproducible.
	Seed int64
	// Scenarios, Forms and Strategies span the matrix. Empty slices fall back to
	// DefaultScenarios, both forms, and every strategy respectively.
	Scenarios  []Scenario
	Forms      []Form
	Strategies []unionfind.Strategy
}

// CheckAndSetDefaults validates c and fills empty matrix axes.
// Every scenario ratio must lie in [0, 1] and every form must be Static or Dynamic.
func (c *Config) CheckAndSetDefaults() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Ops < 0 {
		return fmt.Errorf("%w: ops must not be negative, got %d", ErrInvalidConfig, c.Ops)
	}
	if len(c.Scenarios) == 0 {
		c.Scenarios = DefaultScenarios()
	}
	if len(c.Forms) == 0 {
		c.Forms = []Form{Static, Dynamic}
	}
	if len(c.Strategies) == 0 {
		c.Strategies = unionfind.Strategies()
	}
	for _, s := range c.Scenarios {
		if err := checkRatio(s); err != nil {
			return err
		}
	}
	for _, f := range c.Forms {
		if _, err := ParseForm(string(f)); err != nil {
			return err
		}
	}

	return nil
}

// Result is the outcome of one cell of the matrix.
type Result struct {
	Scenario string
	Form     Form
	Strategy unionfind.Strategy
	Ops      int
	Elapsed  time.Duration
	// Sets is the number of groups after the stream, as reported by Sets().
	Sets int
}

// OpsPerSecond returns the throughput of the run, or 0 when nothing was timed.
func (r Result) OpsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Ops) / r.Elapsed.Seconds()
}
