// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/pargauss/internal/cli"

func main() {
	cli.Execute()
}
