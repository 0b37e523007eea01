// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pargauss/gauss"
	"github.com/katalvlaran/pargauss/randsys"
)

// DefaultSize is the number of unknowns generated when nothing else is given.
const DefaultSize = 1500

// Run is the resolved configuration of one `gauss solve` invocation.
type Run struct {
	Size        int
	Seed        int64 // 0: seed from the clock
	Min, Max    int
	Workers     int // 0: GOMAXPROCS
	Grain       int // rows per forward task
	ReduceGrain int // terms per back-substitution task
	Mode        gauss.Mode
	Pivoting    gauss.Pivoting
	Epsilon     float64
	Input       string
	Verify      bool
	Quiet       bool
}

// DefaultRun returns the settings that reproduce the classic console program.
func DefaultRun() Run {
	return Run{
		Size:        DefaultSize,
		Min:         randsys.DefaultMin,
		Max:         randsys.DefaultMax,
		Grain:       gauss.DefaultGrain,
		ReduceGrain: gauss.DefaultReduceGrain,
		Mode:        gauss.DefaultMode,
		Pivoting:    gauss.DefaultPivoting,
		Epsilon:     gauss.DefaultEpsilon,
	}
}

// Options converts r into solver options.
func (r Run) Options() []gauss.Option {
	return []gauss.Option{
		gauss.WithMode(r.Mode),
		gauss.WithPivoting(r.Pivoting),
		gauss.WithWorkers(r.Workers),
		gauss.WithGrain(r.Grain),
		gauss.WithReduceGrain(r.ReduceGrain),
		gauss.WithEpsilon(r.Epsilon),
	}
}

// Validate checks cross-field constraints that single flags cannot express.
func (r Run) Validate() error {
	const op = "config.validate_run"
	if r.Input == "" && r.Size < 1 {
		return invalidField(op, "", "size", "size must be >= 1")
	}
	if r.Min > r.Max {
		return invalidField(op, "", "min", fmt.Sprintf("min %d > max %d", r.Min, r.Max))
	}
	if r.Workers < 0 {
		return invalidField(op, "", "workers", "workers must be >= 0")
	}
	if r.Grain < 1 {
		return invalidField(op, "", "grain", "grain must be >= 1")
	}
	if math.IsNaN(r.Epsilon) || math.IsInf(r.Epsilon, 0) || r.Epsilon < 0 {
		return invalidField(op, "", "epsilon", fmt.Sprintf("epsilon must be finite and >= 0, got %g", r.Epsilon))
	}
	if r.ReduceGrain < 1 {
		return invalidField(op, "", "reduce_grain", "reduce_grain must be >= 1")
	}
	return nil
}

// MapRun overlays the fields present in y onto base. A relative input path is
// resolved against the directory of the run file.
func MapRun(path string, y YAMLRun, base Run) (Run, error) {
	const op = "config.load_run"
	out := base
	if y.Size != nil {
		out.Size = *y.Size
	}
	if y.Seed != nil {
		out.Seed = *y.Seed
	}
	if y.Min != nil {
		out.Min = *y.Min
	}
	if y.Max != nil {
		out.Max = *y.Max
	}
	if y.Workers != nil {
		out.Workers = *y.Workers
	}
	if y.Grain != nil {
		out.Grain = *y.Grain
	}
	if y.ReduceGrain != nil {
		out.ReduceGrain = *y.ReduceGrain
	}
	if y.Epsilon != nil {
		out.Epsilon = *y.Epsilon
	}
	if y.Verify != nil {
		out.Verify = *y.Verify
	}
	if y.Quiet != nil {
		out.Quiet = *y.Quiet
	}
	if strings.TrimSpace(y.Mode) != "" {
		m, err := ParseMode(y.Mode)
		if err != nil {
			return Run{}, invalidField(op, path, "mode", err.Error())
		}
		out.Mode = m
	}
	if strings.TrimSpace(y.Pivot) != "" {
		p, err := ParsePivoting(y.Pivot)
		if err != nil {
			return Run{}, invalidField(op, path, "pivot", err.Error())
		}
		out.Pivoting = p
	}
	if y.Input != "" {
		out.Input = y.Input
		if !filepath.IsAbs(out.Input) && path != "" {
			out.Input = filepath.Join(filepath.Dir(path), out.Input)
		}
	}

	if err := out.Validate(); err != nil {
		if oe, ok := err.(*OpError); ok {
			oe.Op, oe.Path = op, path
		}
		return Run{}, err
	}
	return out, nil
}

// ParseMode accepts "parallel" or "serial", case-insensitively.
func ParseMode(s string) (gauss.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case gauss.ModeParallel.String():
		return gauss.ModeParallel, nil
	case gauss.ModeSerial.String():
		return gauss.ModeSerial, nil
	}
	return 0, fmt.Errorf("unsupported mode %q (expected parallel|serial)", s)
}

// ParsePivoting accepts "none" or "partial", case-insensitively.
func ParsePivoting(s string) (gauss.Pivoting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case gauss.PivotNone.String():
		return gauss.PivotNone, nil
	case gauss.PivotPartial.String():
		return gauss.PivotPartial, nil
	}
	return 0, fmt.Errorf("unsupported pivot %q (expected none|partial)", s)
}
