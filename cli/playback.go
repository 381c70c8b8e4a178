package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/b0bbywan/go-mpris-cli/mpris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start playback",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.Play(busName)
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.Pause(busName)
	},
}

var toggleCmd = &cobra.Command{
	Use:     "toggle",
	Aliases: []string{"play-pause"},
	Short:   "Toggle between playing and paused",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.PlayPause(busName)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop playback",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.Stop(busName)
	},
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Skip to the next track",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.Next(busName)
	},
}

var prevCmd = &cobra.Command{
	Use:     "prev",
	Aliases: []string{"previous"},
	Short:   "Skip to the previous track",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.Previous(busName)
	},
}

var seekCmd = &cobra.Command{
	Use:   "seek OFFSET",
	Short: "Seek by a relative offset in seconds",
	Long: `Seek forward (positive) or backward (negative) by OFFSET seconds.
Fractions are accepted; "seek -- -5" seeks five seconds back.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, err := parseSeconds(args[0])
		if err != nil {
			return &mpris.ValidationError{Field: "offset", Message: err.Error()}
		}
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.Seek(busName, offset)
	},
}

var positionCmd = &cobra.Command{
	Use:     "position [SECONDS]",
	Aliases: []string{"set-position"},
	Short:   "Show or set the playback position",
	Long: `Without an argument, print the current playback position. With one,
jump to that absolute position in seconds within the current track.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			c, busName, err := resolvePlayer(cmd)
			if err != nil {
				return err
			}
			pos, err := c.Position(busName)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]int64{"position": pos})
			}
			fmt.Println(mpris.FormatLength(pos))
			return nil
		}

		target, err := parseSeconds(args[0])
		if err != nil {
			return &mpris.ValidationError{Field: "position", Message: err.Error()}
		}
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.SeekTo(busName, target)
	},
}

var openCmd = &cobra.Command{
	Use:     "open URI",
	Aliases: []string{"open-uri"},
	Short:   "Open media from URI and start playback",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("opening %s\n", args[0])
		return c.OpenUri(busName, args[0])
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(seekCmd)
	rootCmd.AddCommand(positionCmd)
	rootCmd.AddCommand(openCmd)
}
