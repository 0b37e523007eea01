// SPDX-License-Identifier: MIT

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargauss/internal/logger"
)

// Execute runs the gauss command tree and exits 1 on any error.
func Execute() {
	cmd, closeLog := newRootCmd()
	err := cmd.Execute()
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The returned func releases the logger
// installed by the pre-run hook and must run whether or not Execute failed.
func newRootCmd() (*cobra.Command, func() error) {
	var debug bool
	var logFile string
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "gauss",
		Short:        "Parallel Gaussian elimination for dense linear systems",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := logger.Setup(logger.Config{
				Path:   logFile,
				Writer: cmd.ErrOrStderr(),
				Debug:  debug,
			})
			if err != nil {
				return err
			}
			cleanup = c
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file instead of stderr")

	cmd.AddCommand(solveCmd(), generateCmd(), versionCmd())

	closeLog := func() error {
		if cleanup == nil {
			return nil
		}
		c := cleanup
		cleanup = nil
		return c()
	}
	return cmd, closeLog
}
