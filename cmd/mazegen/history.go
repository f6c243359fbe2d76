package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/platform/tui"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

var (
	flagHistoryLevel int
	flagHistoryLimit int
	flagHistoryStats bool
	flagHistoryTUI   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the build journal",
	Long: `List recently journaled builds, newest first.

Each row carries the seed, so any build can be reproduced with
'mazegen build <level> --seed <seed>'.

Examples:
  mazegen history
  mazegen history --level 4 --limit 5
  mazegen history --stats
  mazegen history --browse`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLevel, "level", 0, "Only show builds of this level")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of rows")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show per-level aggregates instead of rows")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "browse", false, "Open the interactive journal browser")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete every journaled build")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening build journal: %w", err)
	}
	defer store.Close()

	w := cmd.OutOrStdout()

	switch {
	case flagHistoryClear:
		if err := store.ClearBuilds(); err != nil {
			return err
		}
		fmt.Fprintln(w, "Journal cleared.")
		return nil

	case flagHistoryTUI:
		rc := core.DefaultConfig()
		width, height := terminalSize(rc.ScreenW, rc.ScreenH)
		return tui.RunJournal(store, width, height)

	case flagHistoryStats:
		stats, err := store.GetLevelStats()
		if err != nil {
			return err
		}
		printStats(w, stats)
		return nil
	}

	var builds []storage.BuildRecord
	if flagHistoryLevel > 0 {
		builds, err = store.BuildsForLevel(flagHistoryLevel, flagHistoryLimit)
	} else {
		builds, err = store.RecentBuilds(flagHistoryLimit)
	}
	if err != nil {
		return err
	}
	printBuilds(w, builds)
	return nil
}

// printBuilds writes journal rows as a table.
func printBuilds(w io.Writer, builds []storage.BuildRecord) {
	if len(builds) == 0 {
		fmt.Fprintln(w, "No builds recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'mazegen build' to generate a level.")
		return
	}

	fmt.Fprintf(w, "  %-5s  %-20s  %-7s  %-6s  %-7s  %s\n", "Level", "Seed", "Grid", "Walls", "Goals", "Date")
	fmt.Fprintf(w, "  %-5s  %-20s  %-7s  %-6s  %-7s  %s\n", "-----", "----", "----", "-----", "-----", "----")
	for _, b := range builds {
		fmt.Fprintf(w, "  %-5d  %-20d  %-7s  %-6d  %-7s  %s\n",
			b.Level, b.Seed,
			fmt.Sprintf("%dx%d", b.TilesX, b.TilesY),
			b.Walls,
			fmt.Sprintf("%d/%d", b.Goals, b.GoalTarget),
			b.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printStats writes per-level aggregates ordered by level.
func printStats(w io.Writer, stats map[int]*storage.LevelStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No builds recorded yet.")
		return
	}

	levels := make([]int, 0, len(stats))
	for lvl := range stats {
		levels = append(levels, lvl)
	}
	slices.Sort(levels)

	fmt.Fprintf(w, "  %-5s  %-6s  %-9s  %-9s  %s\n", "Level", "Builds", "Avg walls", "Avg goals", "Short")
	fmt.Fprintf(w, "  %-5s  %-6s  %-9s  %-9s  %s\n", "-----", "------", "---------", "---------", "-----")
	for _, lvl := range levels {
		st := stats[lvl]
		fmt.Fprintf(w, "  %-5d  %-6d  %-9.1f  %-9.1f  %d\n",
			st.Level, st.Builds, st.AvgWalls, st.AvgGoals, st.Shortfalls)
	}
}
