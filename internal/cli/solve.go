// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pargauss/gauss"
	"github.com/katalvlaran/pargauss/internal/config"
	"github.com/katalvlaran/pargauss/internal/logger"
	"github.com/katalvlaran/pargauss/matrix"
	"github.com/katalvlaran/pargauss/randsys"
)

// DefaultTolerance bounds the relative residual accepted by --verify.
const DefaultTolerance = 1e-6

func solveCmd() *cobra.Command {
	var (
		flags   = config.DefaultRun()
		cfgPath string
		serial  bool
		pivot   string
		noCheck bool
		tol     float64
	)

	c := &cobra.Command{
		Use:   "solve",
		Short: "Solve a random or file-based system and print x(i) and the elimination time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			run := config.DefaultRun()
			if cfgPath != "" {
				var err error
				if run, err = config.LoadRun(cfgPath, run); err != nil {
					return err
				}
			}
			if err := overlayFlags(cmd.Flags(), &run, flags, serial, pivot); err != nil {
				return err
			}
			if err := run.Validate(); err != nil {
				return err
			}

			n, a, err := loadOrGenerate(run)
			if err != nil {
				return err
			}

			opts := append(run.Options(), gauss.WithLogger(logger.L()))
			if noCheck {
				opts = append(opts, gauss.WithNoSingularCheck())
			}
			res, err := gauss.Solve(cmd.Context(), n, a, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !run.Quiet {
				printSolution(out, res.X)
			}
			fmt.Fprintf(out, "Time: %.10f\n", res.ForwardElapsed.Seconds())

			if run.Verify {
				rel, err := gauss.RelativeResidual(a, res.X)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Residual: %g\n", rel)
				return gauss.Verify(a, res.X, tol)
			}
			return nil
		},
	}

	f := c.Flags()
	f.IntVarP(&flags.Size, "size", "n", flags.Size, "number of unknowns of the generated system")
	f.Int64Var(&flags.Seed, "seed", 0, "random seed (0: seed from the clock)")
	f.IntVar(&flags.Min, "min", flags.Min, "smallest generated value")
	f.IntVar(&flags.Max, "max", flags.Max, "largest generated value")
	f.IntVarP(&flags.Workers, "workers", "j", 0, "concurrent tasks per step (0: GOMAXPROCS)")
	f.IntVar(&flags.Grain, "grain", flags.Grain, "minimum rows per forward-elimination task")
	f.IntVar(&flags.ReduceGrain, "reduce-grain", flags.ReduceGrain, "minimum terms per back-substitution task")
	f.BoolVar(&serial, "serial", false, "run both phases on one goroutine")
	f.StringVar(&pivot, "pivot", gauss.DefaultPivoting.String(), "pivoting: none|partial")
	f.Float64Var(&flags.Epsilon, "epsilon", flags.Epsilon, "pivot magnitude at or below which the system is singular")
	f.BoolVar(&noCheck, "no-singular-check", false, "let zero pivots propagate Inf/NaN instead of failing")
	f.StringVarP(&flags.Input, "input", "i", "", "read the system from a YAML file instead of generating it")
	f.StringVarP(&cfgPath, "config", "c", "", "YAML run file; explicit flags override it")
	f.BoolVar(&flags.Verify, "verify", false, "print the relative residual and fail above --tol")
	f.Float64Var(&tol, "tol", DefaultTolerance, "relative residual tolerance for --verify")
	f.BoolVarP(&flags.Quiet, "quiet", "q", false, "print only the timing line")

	return c
}

// overlayFlags copies every explicitly set flag from src into dst.
func overlayFlags(fs *pflag.FlagSet, dst *config.Run, src config.Run, serial bool, pivot string) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "size":
			dst.Size = src.Size
		case "seed":
			dst.Seed = src.Seed
		case "min":
			dst.Min = src.Min
		case "max":
			dst.Max = src.Max
		case "workers":
			dst.Workers = src.Workers
		case "grain":
			dst.Grain = src.Grain
		case "reduce-grain":
			dst.ReduceGrain = src.ReduceGrain
		case "epsilon":
			dst.Epsilon = src.Epsilon
		case "input":
			dst.Input = src.Input
		case "verify":
			dst.Verify = src.Verify
		case "quiet":
			dst.Quiet = src.Quiet
		case "serial":
			dst.Mode = gauss.ModeParallel
			if serial {
				dst.Mode = gauss.ModeSerial
			}
		case "pivot":
			dst.Pivoting, err = config.ParsePivoting(pivot)
		}
	})
	return err
}

func loadOrGenerate(run config.Run) (int, *matrix.Dense, error) {
	if run.Input != "" {
		return config.LoadSystem(run.Input)
	}
	seed := run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.L().Debug("solve.generate", "n", run.Size, "seed", seed, "min", run.Min, "max", run.Max)
	a, err := randsys.Uniform(run.Size, seed, run.Min, run.Max)
	if err != nil {
		return 0, nil, err
	}
	return run.Size, a, nil
}

func printSolution(w io.Writer, x []float64) {
	fmt.Fprintln(w, "Solution:")
	for i, v := range x {
		fmt.Fprintf(w, "x(%d) = %.6g\n", i, v)
	}
}
