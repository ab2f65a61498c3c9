// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audpos"
	"github.com/ik5/audpos/pcm"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List input decoders and device sample formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "inputs:  %s\n", strings.Join(audpos.NewRegistry().Formats(), " "))

		var names []string
		for _, f := range pcm.SupportedFormats() {
			names = append(names, f.String())
		}
		fmt.Fprintf(w, "devices: %s\n", strings.Join(names, " "))

		if verbose {
			for _, f := range pcm.SupportedFormats() {
				fmt.Fprintf(w, "  %-6s code %#04x, %d bytes\n", f, f.Code(), f.BytesPerSample())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
