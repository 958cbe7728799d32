// SPDX-License-Identifier: MIT

// Command numlab runs the resonance, mesh-current and thermistor exercises
// and prints their results.
package main

import (
	"os"

	"github.com/katalvlaran/numlab/cmd/numlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
