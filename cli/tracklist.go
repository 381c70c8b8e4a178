package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addAfterTrack string
	addSetCurrent bool
)

var tracksCmd = &cobra.Command{
	Use:     "tracks",
	Aliases: []string{"list-tracks"},
	Short:   "List the player's track list",
	Long: `List the track IDs of the player's track list in playback order.
With --verbose, each track's title is printed alongside its ID. Only
players implementing the optional TrackList interface support this.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}

		ids, err := c.Tracks(busName)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(ids)
		}

		if verbose && len(ids) > 0 {
			records, err := c.TracksMetadata(busName, ids)
			if err == nil && len(records) == len(ids) {
				for i, id := range ids {
					fmt.Printf("%d: %s\t%s\n", i, id, records[i].Title)
				}
				return nil
			}
		}
		for i, id := range ids {
			fmt.Printf("%d: %s\n", i, id)
		}
		return nil
	},
}

var trackAddCmd = &cobra.Command{
	Use:   "track-add URI",
	Short: "Add a track to the player's track list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.AddTrack(busName, args[0], addAfterTrack, addSetCurrent)
	},
}

var trackRemoveCmd = &cobra.Command{
	Use:   "track-remove TRACKID",
	Short: "Remove a track from the player's track list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.RemoveTrack(busName, args[0])
	},
}

var goToCmd = &cobra.Command{
	Use:   "go-to TRACKID",
	Short: "Skip to a track in the player's track list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.GoToTrack(busName, args[0])
	},
}

func init() {
	trackAddCmd.Flags().StringVar(&addAfterTrack, "after", "",
		"track ID to insert after (default: start of the list)")
	trackAddCmd.Flags().BoolVar(&addSetCurrent, "current", false,
		"make the added track the current one")

	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(trackAddCmd)
	rootCmd.AddCommand(trackRemoveCmd)
	rootCmd.AddCommand(goToCmd)
}
