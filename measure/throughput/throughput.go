package throughput

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-bench/memscan"
)

// Errors returned by throughput functions.
var (
	ErrNoHarness     = errors.New("throughput: harness must not be nil")
	ErrInvalidPasses = errors.New("throughput: passes must be positive")
	ErrInvalidWarmup = errors.New("throughput: warmup must not be negative")
	ErrUnknownKind   = errors.New("throughput: unknown buffer kind")
)

// Config holds measurement parameters.
type Config struct {
	Passes int            // timed passes per kind
	Warmup int            // untimed passes before timing starts
	Kinds  []memscan.Kind // nil means all kinds in canonical order
}

// Validate checks that the Config parameters are valid.
func (c *Config) Validate() error {
	if c.Passes <= 0 {
		return ErrInvalidPasses
	}

	if c.Warmup < 0 {
		return ErrInvalidWarmup
	}

	for _, k := range c.Kinds {
		if !k.Valid() {
			return fmt.Errorf("%w: %s", ErrUnknownKind, k)
		}
	}

	return nil
}

// kinds returns the configured kind list, defaulting to the canonical order.
func (c *Config) kinds() []memscan.Kind {
	if len(c.Kinds) == 0 {
		return memscan.Kinds()
	}
	return c.Kinds
}

// Result summarizes the timed passes for one buffer kind.
type Result struct {
	Kind      memscan.Kind
	ElemBytes int
	Passes    int

	PerPass []time.Duration // one entry per timed pass, in run order
	Total   time.Duration
	Fastest time.Duration
	Slowest time.Duration
	Mean    time.Duration
	StdDev  time.Duration

	// Rates are derived from the fastest pass over Items elements.
	ElemsPerSec float64
	BytesPerSec float64
}

// Runner times memscan passes against a single harness.
//
// A Runner is not safe for concurrent use; it shares the harness
// single-owner contract.
type Runner struct {
	harness *memscan.Harness
	cfg     Config
}

// NewRunner returns a Runner bound to the given harness.
func NewRunner(h *memscan.Harness, cfg Config) (*Runner, error) {
	if h == nil {
		return nil, ErrNoHarness
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Runner{harness: h, cfg: cfg}, nil
}

// Run measures every configured kind in order and returns one Result each.
func (r *Runner) Run() ([]Result, error) {
	kinds := r.cfg.kinds()
	results := make([]Result, 0, len(kinds))

	for _, k := range kinds {
		res, err := r.RunKind(k)
		if err != nil {
			return nil, fmt.Errorf("throughput: kind %s: %w", k, err)
		}
		results = append(results, res)
	}

	return results, nil
}

// RunKind measures a single kind: Warmup untimed passes, then Passes timed
// ones. Buffer contents at return reflect all passes; call
// [memscan.Harness.Reset] for a fresh start.
func (r *Runner) RunKind(k memscan.Kind) (Result, error) {
	if !k.Valid() {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}

	for i := 0; i < r.cfg.Warmup; i++ {
		if err := r.harness.Process(k); err != nil {
			return Result{}, err
		}
	}

	perPass := make([]time.Duration, r.cfg.Passes)
	for i := range perPass {
		start := time.Now()
		if err := r.harness.Process(k); err != nil {
			return Result{}, err
		}
		perPass[i] = time.Since(start)
	}

	res := Result{
		Kind:      k,
		ElemBytes: k.ElemBytes(),
		Passes:    r.cfg.Passes,
		PerPass:   perPass,
	}
	res.summarize()

	return res, nil
}

// summarize fills the aggregate fields from PerPass.
func (res *Result) summarize() {
	st := summarizeDurations(res.PerPass)

	res.Total = st.total
	res.Fastest = st.min
	res.Slowest = st.max
	res.Mean = st.mean
	res.StdDev = st.stdDev

	if st.min > 0 {
		elems := float64(memscan.Items)
		secs := st.min.Seconds()
		res.ElemsPerSec = elems / secs
		res.BytesPerSec = elems * float64(res.ElemBytes) / secs
	}
}
