// mazegen builds procedural maze levels and previews them in the terminal.
//
// Usage:
//
//	mazegen build [level]    - Build one level and print a preview
//	mazegen profile          - Show the difficulty profile of every level
//	mazegen view             - Browse levels interactively
//	mazegen serve            - Start SSH server for remote browsing
//	mazegen history          - Show recently journaled builds
//	mazegen config           - Print the default config YAML
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible maps
//	--db <path>           - Set journal path (default: ~/.arcade/maze.db)
//	--config <path>       - Use a custom maze YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-arcade/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazegen",
	Short: "Procedural maze level generator",
	Long: `mazegen turns a difficulty level into a tile map with walls,
collectible goals and an enclosing border.

Available commands:
  build    - Build one level and print it
  profile  - Show difficulty profiles per level
  view     - Interactive level browser
  serve    - Start SSH server for remote browsing
  history  - Show the build journal
  config   - Print or check the maze config

Examples:
  mazegen build 7 --seed 42
  mazegen profile
  mazegen view --difficulty hard
  mazegen serve --ssh :2222
  mazegen history --level 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/maze.db", "Path to build journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log build diagnostics")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig loads the maze config and applies the difficulty preset.
func loadConfig() (config.MazeConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.MazeConfig{}, err
	}
	cfg, err := config.LoadMaze(flagConfig)
	if err != nil {
		return config.MazeConfig{}, err
	}
	config.ApplyMazePreset(&cfg, preset)
	return cfg, nil
}

// newLogger returns the CLI logger.
func newLogger(prefix string) *log.Logger {
	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: prefix,
		Level:  level,
	})
}

// resolveSeed returns the seed flag, or a time-based seed when unset.
// The seed is always concrete so it can be printed and journaled.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// terminalSize returns the size of stdout, or the fallback when stdout
// is not a terminal.
func terminalSize(fallbackW, fallbackH int) (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return fallbackW, fallbackH
}
