// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	// logger is set up before every command runs.
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "audpos",
	Short: "Positional audio effects for PCM devices",
	Long: `audpos - render audio through a simulated output device with
positional effects (room rotation, per speaker gain, distance, panning).

Examples:
  # Place a voice at 90 degrees on a quad device
  audpos render voice.wav out.wav --channels 4 --angle 90 --distance 40

  # Use a scene file and override the device format
  audpos render music.mp3 out.wav -s scene.yaml --format u8

  # Inspect the gains used for a 5.1 device at 200 degrees
  audpos gains 6 200`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}
