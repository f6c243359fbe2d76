package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/maze"
)

func buildHolders(t *testing.T, level int, seed int64) (*maze.Holders, config.MazeConfig) {
	t.Helper()
	cfg := config.DefaultMazeConfig()
	d, err := maze.NewDirector(cfg, maze.WithSeed(seed), maze.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("NewDirector() failed: %v", err)
	}
	h := &maze.Holders{}
	if err := d.BuildInto(maze.BuildRequest{Level: level}, h); err != nil {
		t.Fatalf("BuildInto() failed: %v", err)
	}
	return h, cfg
}

func TestPreviewRedrawsOnlyOnRecache(t *testing.T) {
	h, cfg := buildHolders(t, 1, 3)
	p := NewPreview(cfg.Palette, cfg.Screen.Width, cfg.Screen.Height)

	p.Draw(h)
	p.Draw(h)
	p.Draw(h)

	if p.BorderDraws != 1 || p.MapDraws != 1 {
		t.Errorf("layer draws = border %d map %d, expected 1 each", p.BorderDraws, p.MapDraws)
	}

	h.Commit(&maze.MapBuildResult{Recache: maze.Recache{Map: true}})
	p.Draw(h)
	if p.BorderDraws != 1 || p.MapDraws != 2 {
		t.Errorf("after map recache: border %d map %d", p.BorderDraws, p.MapDraws)
	}
}

func TestPreviewDrawsBorderGlyphs(t *testing.T) {
	h, cfg := buildHolders(t, 2, 5)
	p := NewPreview(cfg.Palette, cfg.Screen.Width, cfg.Screen.Height)
	s := p.Draw(h)

	border := []rune(cfg.Palette.Border.Glyph)[0]
	borderColor, _ := core.ParseColor(cfg.Palette.Border.Color)
	for _, tile := range h.Border {
		c := s.GetCell(tile.X, tile.Y)
		if c.Rune != border || c.Color != borderColor {
			t.Fatalf("border tile at (%d,%d) drawn as %q/%d", tile.X, tile.Y, c.Rune, c.Color)
		}
	}
}

func TestPreviewGoalsDrawnOverWalls(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	h := &maze.Holders{}
	h.Commit(&maze.MapBuildResult{
		Walls:   []maze.WorldObject{{Kind: maze.KindWall, X: 4, Y: 4, W: 2, H: 1}},
		Goals:   []maze.WorldObject{{Kind: maze.KindGoal, Variant: 1, X: 5, Y: 4, W: 1, H: 1}},
		Recache: maze.Recache{Border: true, Map: true},
	})

	p := NewPreview(cfg.Palette, 10, 10)
	s := p.Draw(h)

	wall := []rune(cfg.Palette.Walls[0].Glyph)[0]
	goal := []rune(cfg.Palette.Goals[1].Glyph)[0]
	if got := s.Get(4, 4); got != wall {
		t.Errorf("Get(4,4) = %q, expected wall %q", got, wall)
	}
	if got := s.Get(5, 4); got != goal {
		t.Errorf("Get(5,4) = %q, expected goal %q", got, goal)
	}
}

func TestPreviewCullsOffScreenObjects(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	h := &maze.Holders{}
	h.Commit(&maze.MapBuildResult{
		Walls: []maze.WorldObject{
			{Kind: maze.KindWall, X: 9, Y: 2, W: 2, H: 1},  // straddles the right edge
			{Kind: maze.KindWall, X: 12, Y: 2, W: 2, H: 1}, // past the right edge
			{Kind: maze.KindWall, X: 0, Y: -1, W: 2, H: 1}, // above the top row
		},
		Recache: maze.Recache{Map: true},
	})

	p := NewPreview(cfg.Palette, 10, 5)
	s := p.Draw(h)

	if p.Culled != 2 {
		t.Errorf("Culled = %d, expected 2", p.Culled)
	}
	if got := s.Get(9, 2); got != []rune(cfg.Palette.Walls[0].Glyph)[0] {
		t.Errorf("Get(9,2) = %q, expected the clipped wall", got)
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0,0) = %q, expected blank", got)
	}
}

func TestPreviewUnknownVariant(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	h := &maze.Holders{}
	h.Commit(&maze.MapBuildResult{
		Walls:   []maze.WorldObject{{Kind: maze.KindWall, Variant: 99, X: 0, Y: 0, W: 1, H: 1}},
		Recache: maze.Recache{Map: true},
	})

	s := NewPreview(cfg.Palette, 3, 3).Draw(h)
	if got := s.Get(0, 0); got != '?' {
		t.Errorf("unknown variant drawn as %q, expected '?'", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '#', core.ColorBlue)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "#") {
		t.Errorf("RenderScreen() lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestHUDLine(t *testing.T) {
	p := maze.Profile{Level: 4, Tier: 0, GoalCount: 6}
	line := HUDLine(p, 120, 5, 42)
	for _, want := range []string{"Level 4", "walls 120", "goals 5/6", "seed 42"} {
		if !strings.Contains(line, want) {
			t.Errorf("HUDLine() = %q, missing %q", line, want)
		}
	}
	if !strings.Contains(RenderHUD(p, 120, 5, 42), "1 slots empty") {
		t.Error("RenderHUD() should flag unfilled goal slots")
	}
}
