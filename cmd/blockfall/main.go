// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play           - Start a game
//	blockfall scores         - Show the score history
//	blockfall serve          - Start SSH server for remote play
//	blockfall version        - Print the version
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible piece order
//	--db <path>      - Override the scores database path
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "blockfall - falling blocks in your terminal",
	Long: `blockfall is a terminal falling-block puzzle game.

Stack the pieces, clear full lines, and keep up as gravity speeds up.
Games can be saved mid-run and resumed later, and finished games are
recorded in a local score history.

Examples:
  blockfall play
  blockfall play --columns 12 --lines 24
  blockfall scores --interactive
  blockfall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the effective configuration from the config file
// search order plus command-line overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}
	return cfg
}
