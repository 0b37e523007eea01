// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"runtime"
	"unsafe"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/pargauss/internal/buildinfo"
	"github.com/katalvlaran/pargauss/parallel"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and CPU information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, buildinfo.String())
			printCPU(out)
		},
	}
}

func printCPU(w io.Writer) {
	fmt.Fprintf(w, "cpu: workers=%d cacheline=%dB", parallel.DefaultWorkers(), unsafe.Sizeof(cpu.CacheLinePad{}))
	switch runtime.GOARCH {
	case "amd64", "386":
		fmt.Fprintf(w, " avx=%t avx2=%t fma=%t avx512f=%t", cpu.X86.HasAVX, cpu.X86.HasAVX2, cpu.X86.HasFMA, cpu.X86.HasAVX512F)
	case "arm64":
		fmt.Fprintf(w, " neon=%t fphp=%t", cpu.ARM64.HasASIMD, cpu.ARM64.HasFPHP)
	}
	fmt.Fprintln(w)
}
