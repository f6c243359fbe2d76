package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default maze config",
	Long: `Print the embedded default maze configuration as YAML.

Save it to ~/.arcade/configs/maze.yaml or ./configs/maze.yaml to override
the defaults, or pass any file with --config. Keys left out of a file keep
their default values.

Examples:
  mazegen config > ~/.arcade/configs/maze.yaml
  mazegen config --check --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagConfigCheck bool

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the active config instead of printing defaults")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if !flagConfigCheck {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config ok: %d levels, tiers of %d, %d wall and %d goal variants\n",
		cfg.Difficulty.MaxLevel, cfg.Difficulty.TierSize, len(cfg.Palette.Walls), len(cfg.Palette.Goals))
	return nil
}
