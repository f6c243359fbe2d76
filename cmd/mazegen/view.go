package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/platform/tui"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse generated levels interactively",
	Long: `Open a full-screen viewer that builds levels to fit the terminal.

Controls:
  N/Right    - Next level
  P/Left     - Previous level
  R          - Reroll with a new seed
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  ?          - Toggle full help
  Q/Ctrl+C   - Quit

With --difficulty fixed the level never changes; use R to reroll.
Every build shown is recorded in the journal.

Examples:
  mazegen view
  mazegen view --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func runView(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := terminalSize(cfg.Screen.Width, cfg.Screen.Height)
	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    resolveSeed(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open build journal: %v\n", err)
		// Continue without storage - the viewer still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunViewer(cfg, store, rc, newLogger("viewer"))
}
