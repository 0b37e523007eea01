// SPDX-License-Identifier: MIT

// Package gauss: functional configuration for Solve.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package gauss

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/pargauss/parallel"
)

// Mode selects the execution strategy.
type Mode int

const (
	// ModeParallel runs forward rows and back-substitution reductions on a worker pool.
	ModeParallel Mode = iota
	// ModeSerial runs both phases on the caller's goroutine.
	ModeSerial
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeParallel:
		return "parallel"
	case ModeSerial:
		return "serial"
	default:
		return "unknown"
	}
}

// Pivoting selects the row-exchange strategy.
type Pivoting int

const (
	// PivotNone eliminates with A[k][k] as found.
	PivotNone Pivoting = iota
	// PivotPartial swaps the row with the largest |A[i][k]|, i >= k, into position k.
	PivotPartial
)

// String implements fmt.Stringer.
func (p Pivoting) String() string {
	switch p {
	case PivotNone:
		return "none"
	case PivotPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the pivot magnitude at or below which a matrix is singular.
	DefaultEpsilon = 1e-12

	// DefaultGrain is the minimum number of rows per forward-elimination task.
	DefaultGrain = 16

	// DefaultReduceGrain is the minimum number of terms per back-substitution task.
	// Rows of a few hundred terms already split across workers.
	DefaultReduceGrain = 128

	// DefaultMode runs in parallel.
	DefaultMode = ModeParallel

	// DefaultPivoting performs no row exchanges.
	DefaultPivoting = PivotNone
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "gauss: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid  = "gauss: WithWorkers: workers must be >= 0"
	panicGrainInvalid    = "gauss: WithGrain: grain must be >= 1"
	panicModeInvalid     = "gauss: WithMode: unknown mode"
	panicPivotingInvalid = "gauss: WithPivoting: unknown pivoting"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	mode          Mode
	pivoting      Pivoting
	workers       int     // 0 ⇒ parallel.DefaultWorkers()
	grain         int     // rows per forward task
	reduceGrain   int     // terms per reduction task
	eps           float64 // singularity threshold
	singularCheck bool
	logger        *slog.Logger
}

// WithMode selects serial or parallel execution.
// Panics on values other than ModeParallel/ModeSerial.
func WithMode(m Mode) Option {
	if m != ModeParallel && m != ModeSerial {
		panic(panicModeInvalid)
	}
	return func(o *Options) { o.mode = m }
}

// WithPivoting selects the row-exchange strategy.
// Panics on values other than PivotNone/PivotPartial.
func WithPivoting(p Pivoting) Option {
	if p != PivotNone && p != PivotPartial {
		panic(panicPivotingInvalid)
	}
	return func(o *Options) { o.pivoting = p }
}

// WithWorkers bounds the number of concurrent tasks per step.
// 0 selects runtime.GOMAXPROCS(0). Negative values panic.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithGrain sets the minimum rows per forward task. Steps with fewer than
// 2*grain rows below the pivot run inline.
func WithGrain(rows int) Option {
	if rows < 1 {
		panic(panicGrainInvalid)
	}
	return func(o *Options) { o.grain = rows }
}

// WithReduceGrain sets the minimum terms per back-substitution task.
func WithReduceGrain(terms int) Option {
	if terms < 1 {
		panic(panicGrainInvalid)
	}
	return func(o *Options) { o.reduceGrain = terms }
}

// WithEpsilon sets the singularity threshold: |pivot| <= eps fails.
// eps = 0 rejects exact zeros only.
//
// AI-Hints:
//   - The check is absolute; scale eps to the magnitude of your coefficients.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

// WithNoSingularCheck disables the pivot check; a zero pivot then yields Inf/NaN
// in the solution instead of an error.
func WithNoSingularCheck() Option {
	return func(o *Options) { o.singularCheck = false }
}

// WithLogger routes per-solve debug records to l. nil restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// defaultOptions returns the zero-config policy.
func defaultOptions() Options {
	return Options{
		mode:          DefaultMode,
		pivoting:      DefaultPivoting,
		workers:       0,
		grain:         DefaultGrain,
		reduceGrain:   DefaultReduceGrain,
		eps:           DefaultEpsilon,
		singularCheck: true,
		logger:        discardLogger(),
	}
}

// gatherOptions applies opts over the defaults and resolves the worker count.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers == 0 {
		o.workers = parallel.DefaultWorkers()
	}
	if o.mode == ModeSerial {
		o.workers = 1
	}

	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
