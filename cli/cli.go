// Package cli implements the command surface of mpris-cli. Each subcommand
// maps to one library operation against the selected player; the root
// command without a subcommand shows the player status.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/b0bbywan/go-mpris-cli/config"
	idbus "github.com/b0bbywan/go-mpris-cli/internal/dbus"
	"github.com/b0bbywan/go-mpris-cli/logger"
	"github.com/b0bbywan/go-mpris-cli/mpris"
)

var (
	cfg *config.Config

	bus    *idbus.Bus
	client *mpris.Client

	playerFlag   string
	jsonOut      bool
	verbose      bool
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "Control MPRIS2 media players from the command line",
	Long: config.AppName + ` controls MPRIS2-capable media players over the D-Bus
session bus.

Without a subcommand it prints the status of the selected player. Use
--player to pick a player by short name, full bus name, or the index the
players command prints; without it the first player found is used.`,
	Version: config.AppVersion,
	RunE:    runStatus,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevelFlag != "" {
			level, err := logger.ParseLevel(logLevelFlag)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&playerFlag, "player", "p", "",
		"player to control, by name, bus name or index (default: first found)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"also print the raw properties of the player being addressed")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false,
		"print results as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"log level (debug, info, warn, error)")
}

// Execute runs one command line against the given configuration and returns
// the process exit code.
func Execute(ctx context.Context, conf *config.Config) int {
	cfg = conf

	// Config seeds the flag values; an explicit flag still wins since
	// parsing only touches flags that were actually passed.
	playerFlag = cfg.MPRIS.Player
	jsonOut = cfg.Output.JSON
	verbose = cfg.Output.Verbose

	defer func() {
		if bus != nil {
			bus.Close()
		}
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return exitCode(err)
	}
	return exitOK
}

// connect opens the session bus on first use. Help and usage paths never
// reach it, so they work without a bus.
func connect(cmd *cobra.Command) (*mpris.Client, error) {
	if client != nil {
		return client, nil
	}
	b, err := idbus.Connect(cmd.Context(), cfg.MPRIS.Timeout)
	if err != nil {
		return nil, err
	}
	bus = b
	client = mpris.New(b, cfg.MPRIS.CacheTTL)
	return client, nil
}

// resolvePlayer connects and resolves the selected player to a bus name.
// With --verbose it also dumps the player's raw view first.
func resolvePlayer(cmd *cobra.Command) (*mpris.Client, string, error) {
	c, err := connect(cmd)
	if err != nil {
		return nil, "", err
	}
	busName, err := c.Resolve(playerFlag)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("[cli] selected %s", busName)
	if verbose {
		dumpPlayer(c, busName)
	}
	return c, busName, nil
}
