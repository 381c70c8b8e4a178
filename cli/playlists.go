package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	playlistsIndex   uint32
	playlistsMax     uint32
	playlistsOrder   string
	playlistsReverse bool
)

var playlistsCmd = &cobra.Command{
	Use:     "playlists",
	Aliases: []string{"list-playlists"},
	Short:   "List the player's playlists",
	Long: `List the player's playlists. Only players implementing the optional
Playlists interface support this. The ordering must be one the player
advertises; Alphabetical is always available.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}

		playlists, err := c.PlaylistsRange(busName, playlistsIndex, playlistsMax, playlistsOrder, playlistsReverse)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(playlists)
		}

		for i, pl := range playlists {
			fmt.Printf("%d: %s\t%s\n", i, pl.Name, pl.ID)
		}
		return nil
	},
}

var playlistActivateCmd = &cobra.Command{
	Use:     "playlist-activate PLAYLISTID",
	Aliases: []string{"activate-playlist"},
	Short:   "Start playing a playlist",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.ActivatePlaylist(busName, args[0])
	},
}

var playlistCountCmd = &cobra.Command{
	Use:   "playlist-count",
	Short: "Show how many playlists the player has",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}

		count, err := c.PlaylistCount(busName)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(map[string]uint32{"count": count})
		}
		fmt.Println(count)
		return nil
	},
}

func init() {
	playlistsCmd.Flags().Uint32Var(&playlistsIndex, "index", 0,
		"index of the first playlist to fetch")
	playlistsCmd.Flags().Uint32Var(&playlistsMax, "max", 100,
		"maximum number of playlists to fetch")
	playlistsCmd.Flags().StringVar(&playlistsOrder, "order", "Alphabetical",
		"playlist ordering to request")
	playlistsCmd.Flags().BoolVar(&playlistsReverse, "reverse", false,
		"fetch in reverse order")

	rootCmd.AddCommand(playlistsCmd)
	rootCmd.AddCommand(playlistActivateCmd)
	rootCmd.AddCommand(playlistCountCmd)
}
