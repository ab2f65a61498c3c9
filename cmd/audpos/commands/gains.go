// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ik5/audpos/effect"
)

var slotNames = [...]string{"FL", "FR", "RL", "RR", "C", "LFE"}

var gainsCmd = &cobra.Command{
	Use:   "gains <channels> <angle>",
	Short: "Print the room angle and speaker gains for a layout and angle",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		channels, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("channels: %w", err)
		}
		angle, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("angle: %w", err)
		}
		switch channels {
		case 1, 2, 4, 6:
		default:
			return fmt.Errorf("%w: %d channels", effect.ErrUnsupportedFeature, channels)
		}

		angle = max(0, min(359, angle))
		room := effect.NewRoomAngle(channels, angle)
		gains := effect.Gains(channels, angle, room)

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "room angle: %d\n", room)
		for i, g := range gains {
			fmt.Fprintf(w, "%-3s %3d\n", slotNames[i], g)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gainsCmd)
}
