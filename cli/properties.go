package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/b0bbywan/go-mpris-cli/mpris"
)

var volumeCmd = &cobra.Command{
	Use:   "volume [VALUE]",
	Short: "Show or set the player volume",
	Long: `Without an argument, print the current volume. With one, set it.
The value is handed to the player untouched; 1.0 is nominal full volume.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			vol, err := c.Volume(busName)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]float64{"volume": vol})
			}
			fmt.Printf("%g\n", vol)
			return nil
		}

		vol, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return &mpris.ValidationError{Field: "volume", Message: "not a number: " + args[0]}
		}
		return c.SetVolume(busName, vol)
	},
}

var loopCmd = &cobra.Command{
	Use:   "loop [None|Track|Playlist]",
	Short: "Show or set the loop mode",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			status, err := c.LoopStatus(busName)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]mpris.LoopStatus{"loop": status})
			}
			fmt.Println(status)
			return nil
		}
		return c.SetLoopStatus(busName, mpris.LoopStatus(args[0]))
	},
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle [on|off]",
	Short: "Show or set shuffle mode",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			on, err := c.Shuffle(busName)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]bool{"shuffle": on})
			}
			if on {
				fmt.Println("on")
			} else {
				fmt.Println("off")
			}
			return nil
		}

		on, err := parseOnOff(args[0])
		if err != nil {
			return &mpris.ValidationError{Field: "shuffle", Message: err.Error()}
		}
		return c.SetShuffle(busName, on)
	},
}

var rateCmd = &cobra.Command{
	Use:   "rate [VALUE]",
	Short: "Show or set the playback rate",
	Long: `Without an argument, print the current playback rate. With one, set
it. The value is handed to the player untouched; 1.0 is normal speed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			rate, err := c.Rate(busName)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]float64{"rate": rate})
			}
			fmt.Printf("%g\n", rate)
			return nil
		}

		rate, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return &mpris.ValidationError{Field: "rate", Message: "not a number: " + args[0]}
		}
		return c.SetRate(busName, rate)
	},
}

func init() {
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(loopCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(rateCmd)
}
