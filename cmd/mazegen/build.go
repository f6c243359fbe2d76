package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/maze"
	"github.com/vovakirdan/maze-arcade/internal/platform/tui"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

var (
	flagWidth   int
	flagHeight  int
	flagFitTerm bool
	flagPlain   bool
	flagNoSave  bool
)

var buildCmd = &cobra.Command{
	Use:   "build [level]",
	Short: "Build one level and print a preview",
	Long: `Build a single level and print the map followed by a summary.

Without a level argument the configured start level is used (see
--difficulty). The screen size comes from the config unless --width,
--height or --fit are given.

The build is recorded in the journal together with its seed, so
'mazegen build <level> --seed <seed>' reproduces it.

Examples:
  mazegen build
  mazegen build 12 --seed 42
  mazegen build 3 --fit
  mazegen build 3 --width 120 --height 40 --plain > level3.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().IntVar(&flagWidth, "width", 0, "Screen width in cells (0 = from config)")
	buildCmd.Flags().IntVar(&flagHeight, "height", 0, "Screen height in cells (0 = from config)")
	buildCmd.Flags().BoolVar(&flagFitTerm, "fit", false, "Size the map to the current terminal")
	buildCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors")
	buildCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the build in the journal")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.Difficulty.StartLevel
	if len(args) == 1 {
		level, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[0], err)
		}
	}

	screen := cfg.Screen
	if flagFitTerm {
		screen.Width, screen.Height = terminalSize(screen.Width, screen.Height)
		// Leave room for the summary below the map.
		screen.Height = max(screen.Height-summaryLines, 0)
	}
	if flagWidth > 0 {
		screen.Width = flagWidth
	}
	if flagHeight > 0 {
		screen.Height = flagHeight
	}

	seed := resolveSeed()
	director, err := maze.NewDirector(cfg, maze.WithSeed(seed), maze.WithLogger(newLogger("build")))
	if err != nil {
		return err
	}

	res, err := director.BuildMap(maze.BuildRequest{Level: level, Screen: screen})
	if err != nil {
		return err
	}

	printBuild(cmd.OutOrStdout(), director.Config().Palette, screen, res, seed, !flagPlain)

	if flagNoSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open build journal: %v\n", err)
		return nil
	}
	defer store.Close()

	if _, err := store.SaveBuild(storage.NewBuildRecord(res, seed)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not journal build: %v\n", err)
	}
	return nil
}

// summaryLines is how many lines printBuild writes after the map.
const summaryLines = 6

// printBuild writes the map preview and a short summary.
func printBuild(w io.Writer, palette config.PaletteConfig, screen config.ScreenConfig, res *maze.MapBuildResult, seed int64, color bool) {
	h := &maze.Holders{}
	h.Commit(res)
	out := tui.NewPreview(palette, screen.Width, screen.Height).Draw(h)

	if color {
		fmt.Fprintln(w, tui.RenderScreen(out))
	} else {
		fmt.Fprintln(w, out.String())
	}

	p := res.Profile
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.HUDLine(p, len(res.Walls), len(res.Goals), seed))
	frame := res.Border.Frame()
	fmt.Fprintf(w, "  grid %dx%d tiles at (%d,%d), border %dx%d tiles framing %dx%d at (%d,%d)\n",
		res.TilesX, res.TilesY, res.Interior.X, res.Interior.Y,
		res.Border.Columns, res.Border.Rows, frame.W, frame.H, frame.X, frame.Y)
	fmt.Fprintf(w, "  margin %d  spacing %d  empty %.2f  spawn radius %d\n",
		p.SafeMargin, p.LaneSpacing, p.EmptyChance, p.SpawnRadius)
	fmt.Fprintf(w, "  goal draws %d for %d/%d goals\n",
		res.Report.Attempts, res.Report.Placed, res.Report.Requested)
}
