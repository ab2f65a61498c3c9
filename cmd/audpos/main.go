// SPDX-License-Identifier: EPL-2.0

// Command audpos renders audio files through the positional effect engine.
//
// Usage:
//
//	audpos [flags] <command> [args]
//
// Commands:
//
//	render   - Render an input file to WAV through a scene
//	formats  - List input decoders and device sample formats
//	gains    - Print the room angle and speaker gains for a layout and angle
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audpos/cmd/audpos/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
