package solver

import (
	"context"
	"fmt"
)

// Defaults for Options. MaxSolutions = 2 makes Solve a uniqueness proof;
// MaxBacktracks bounds pathological searches; CancelEvery is how many
// branch points pass between context probes.
const (
	DefaultMaxSolutions  = 2
	DefaultMaxBacktracks = 500
	DefaultCancelEvery   = 32
)

// Option configures solving via functional arguments. An invalid Option
// (e.g. a non-positive budget) is recorded internally and surfaced as
// ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds per-invocation solver parameters. There are no process
// globals: independent puzzles may run concurrently with different
// budgets.
type Options struct {
	// Ctx allows the caller to abort mid-search (wall-clock timeouts are
	// the caller's responsibility). Probed every CancelEvery branch points.
	Ctx context.Context

	// MaxSolutions stops the search once this many complete solutions are
	// found. 2 suffices to prove non-uniqueness.
	MaxSolutions int

	// MaxBacktracks is the total branch-point budget for one search tree.
	// Exceeding it aborts with Result.ExceededBudget — a soft rejection,
	// not a proof of unsolvability.
	MaxBacktracks int

	// CancelEvery is the branch-point interval between context probes.
	CancelEvery int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - MaxSolutions = 2 (uniqueness proof)
//   - MaxBacktracks = 500
//   - CancelEvery = 32
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxSolutions:  DefaultMaxSolutions,
		MaxBacktracks: DefaultMaxBacktracks,
		CancelEvery:   DefaultCancelEvery,
		err:           nil,
	}
}

// NewOptions builds Options from DefaultOptions plus the given setters.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSolutions caps the number of solutions searched for.
//
//	n ≥ 1: stop after n solutions
//	n < 1: invalid option → ErrOptionViolation
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSolutions must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSolutions = n
	}
}

// WithMaxBacktracks sets the branch-point budget.
//
//	n ≥ 0: allow n branch points (0 forbids guessing entirely)
//	n < 0: invalid option → ErrOptionViolation
func WithMaxBacktracks(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxBacktracks cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxBacktracks = n
	}
}

// WithCancelEvery sets how many branch points pass between context
// probes. Smaller is more responsive, larger is cheaper.
//
//	n ≥ 1: probe every n branch points
//	n < 1: invalid option → ErrOptionViolation
func WithCancelEvery(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: CancelEvery must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.CancelEvery = n
	}
}
