// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargauss/internal/config"
	"github.com/katalvlaran/pargauss/internal/logger"
	"github.com/katalvlaran/pargauss/matrix"
	"github.com/katalvlaran/pargauss/randsys"
)

func generateCmd() *cobra.Command {
	var (
		size     int
		seed     int64
		lo, hi   int
		dominant bool
		out      string
	)

	c := &cobra.Command{
		Use:   "generate",
		Short: "Write a random system to a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			var (
				a   *matrix.Dense
				err error
			)
			if dominant {
				a, err = randsys.DiagonallyDominant(size, seed)
			} else {
				a, err = randsys.Uniform(size, seed, lo, hi)
			}
			if err != nil {
				return err
			}
			if err := config.SaveSystem(out, a); err != nil {
				return err
			}
			logger.L().Debug("generate.saved", "path", out, "n", size, "seed", seed)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %dx%d system to %s (seed=%d)\n", size, size+1, out, seed)
			return nil
		},
	}

	c.Flags().IntVarP(&size, "size", "n", 8, "number of unknowns")
	c.Flags().Int64Var(&seed, "seed", 0, "random seed (0: seed from the clock)")
	c.Flags().IntVar(&lo, "min", randsys.DefaultMin, "smallest generated value")
	c.Flags().IntVar(&hi, "max", randsys.DefaultMax, "largest generated value")
	c.Flags().BoolVar(&dominant, "dominant", false, "generate a diagonally dominant system instead")
	c.Flags().StringVarP(&out, "output", "o", "", "output YAML file (required)")

	_ = c.MarkFlagRequired("output")
	return c
}
