package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/b0bbywan/go-mpris-cli/logger"
	"github.com/b0bbywan/go-mpris-cli/mpris"
)

// runStatus backs both the status subcommand and the bare root command.
func runStatus(cmd *cobra.Command, args []string) error {
	c, busName, err := resolvePlayer(cmd)
	if err != nil {
		return err
	}

	st, err := c.Status(busName)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(st)
	}
	fmt.Println(statusLine(st))
	return nil
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the player is doing",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Show the current track metadata",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}

		rec, err := c.Metadata(busName)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(rec)
		}
		printMetadata(rec)
		return nil
	},
}

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Show what the player allows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}

		caps, err := c.Capabilities(busName)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(caps)
		}
		fmt.Printf("play:\t\t%v\n", caps.CanPlay)
		fmt.Printf("pause:\t\t%v\n", caps.CanPause)
		fmt.Printf("next:\t\t%v\n", caps.CanGoNext)
		fmt.Printf("previous:\t%v\n", caps.CanGoPrevious)
		fmt.Printf("seek:\t\t%v\n", caps.CanSeek)
		fmt.Printf("control:\t%v\n", caps.CanControl)
		return nil
	},
}

var playersCmd = &cobra.Command{
	Use:     "players",
	Aliases: []string{"services"},
	Short:   "List running MPRIS players",
	Long: `List the MPRIS players currently on the session bus, one per line,
numbered the way the --player flag accepts as an index.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}

		players, err := c.ListPlayers()
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(players)
		}

		for i, p := range players {
			fmt.Printf("%d: %s\n", i, p.BusName)
			if !verbose {
				continue
			}
			if p.Identity != "" {
				fmt.Printf("  identity:\t%s\n", p.Identity)
			}
			if caps, err := c.Probe(p.BusName); err == nil {
				fmt.Printf("  playlists support:\t%s\n", caps.Interface(mpris.MPRIS_PLAYLISTS_IFACE))
				fmt.Printf("  tracklist support:\t%s\n", caps.Interface(mpris.MPRIS_TRACKLIST_IFACE))
			}
			if props, err := c.RootProperties(p.BusName); err == nil {
				fmt.Print(spew.Sdump(props))
			} else {
				logger.Debug("[cli] no root properties for %s: %v", p.BusName, err)
			}
		}
		return nil
	},
}

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Show the player's human-readable name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}

		identity, err := c.Identity(busName)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(map[string]string{"identity": identity})
		}
		fmt.Println(identity)
		return nil
	},
}

var raiseCmd = &cobra.Command{
	Use:   "raise",
	Short: "Bring the player's user interface to the front",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.Raise(busName)
	},
}

var quitCmd = &cobra.Command{
	Use:   "quit",
	Short: "Ask the player to exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, busName, err := resolvePlayer(cmd)
		if err != nil {
			return err
		}
		return c.Quit(busName)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(capabilitiesCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(raiseCmd)
	rootCmd.AddCommand(quitCmd)
}
