package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/maze"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the difficulty profile of every level",
	Long: `Print the generation profile computed for each level from 1 to the
configured maximum. Even levels get the bonus empty chance and one extra goal.

Examples:
  mazegen profile
  mazegen profile --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

func runProfile(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "  %-5s  %-4s  %-6s  %-7s  %-5s  %-6s  %s\n",
		"Level", "Tier", "Margin", "Spacing", "Empty", "Radius", "Goals")
	fmt.Fprintf(w, "  %-5s  %-4s  %-6s  %-7s  %-5s  %-6s  %s\n",
		"-----", "----", "------", "-------", "-----", "------", "-----")

	for _, p := range maze.ProfileTable(cfg.Difficulty) {
		marker := " "
		if p.Level == cfg.Difficulty.StartLevel {
			marker = ">"
		}
		fmt.Fprintf(w, "%s %-5d  %-4d  %-6d  %-7d  %-5.2f  %-6d  %d\n",
			marker, p.Level, p.Tier, p.SafeMargin, p.LaneSpacing, p.EmptyChance, p.SpawnRadius, p.GoalCount)
	}
	return nil
}
