package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagColumns  int
	flagLines    int
	flagSaveFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Left/A, Right/D  - Move piece
  Up/W             - Rotate
  Down/S           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  Ctrl+S / Ctrl+L  - Save / load game
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play --columns 12 --lines 24
  blockfall play --seed 42
  blockfall play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagColumns, "columns", 0, "Board width in columns (default from config)")
	playCmd.Flags().IntVar(&flagLines, "lines", 0, "Board height in lines (default from config)")
	playCmd.Flags().StringVar(&flagSaveFile, "save", "", "Path to the save file (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagColumns > 0 {
		cfg.Board.Columns = flagColumns
	}
	if flagLines > 0 {
		cfg.Board.Lines = flagLines
	}
	if flagSaveFile != "" {
		cfg.Paths.SaveFile = flagSaveFile
	}

	// Get terminal size for the drawing surface
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
