package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/maze"
)

// swatch is a resolved palette entry.
type swatch struct {
	glyph rune
	color core.Color
}

func resolveVariant(v config.Variant) swatch {
	r, _ := utf8.DecodeRuneInString(v.Glyph)
	if r == utf8.RuneError {
		r = '?'
	}
	c, _ := core.ParseColor(v.Color)
	return swatch{glyph: r, color: c}
}

func resolveVariants(vs []config.Variant) []swatch {
	out := make([]swatch, len(vs))
	for i, v := range vs {
		out[i] = resolveVariant(v)
	}
	return out
}

// Preview draws committed maps onto a character screen.
//
// Border tiles and walls are static for the lifetime of a build, so they are
// kept in their own layers and only redrawn when the holders report the
// matching recache flag. Goals are drawn on every frame.
type Preview struct {
	walls  []swatch
	goals  []swatch
	border swatch

	borderLayer *core.Screen
	mapLayer    *core.Screen
	out         *core.Screen

	// Layer redraw counters.
	BorderDraws int
	MapDraws    int
	Culled      int // Objects skipped for lying wholly off screen
}

// NewPreview creates a preview of the given size using the palette.
func NewPreview(palette config.PaletteConfig, width, height int) *Preview {
	return &Preview{
		walls:       resolveVariants(palette.Walls),
		goals:       resolveVariants(palette.Goals),
		border:      resolveVariant(palette.Border),
		borderLayer: core.NewScreen(width, height),
		mapLayer:    core.NewScreen(width, height),
		out:         core.NewScreen(width, height),
	}
}

// Resize changes the preview size. Layers are cleared, so the caller
// must commit a fresh build before the next Draw.
func (p *Preview) Resize(width, height int) {
	p.borderLayer.Resize(width, height)
	p.mapLayer.Resize(width, height)
	p.out.Resize(width, height)
}

// Screen returns the composed output of the last Draw.
func (p *Preview) Screen() *core.Screen {
	return p.out
}

// Draw consumes the recache flags of h and composes the output screen.
func (p *Preview) Draw(h *maze.Holders) *core.Screen {
	recache := h.TakeRecache()

	if recache.Border {
		p.borderLayer.Clear()
		for _, t := range h.Border {
			p.fill(p.borderLayer, t, p.border)
		}
		p.BorderDraws++
	}
	if recache.Map {
		p.mapLayer.Clear()
		for _, w := range h.Walls {
			p.fill(p.mapLayer, w, p.pick(p.walls, w.Variant))
		}
		p.MapDraws++
	}

	p.out.Clear()
	overlay(p.out, p.borderLayer)
	overlay(p.out, p.mapLayer)
	for _, g := range h.Goals {
		p.fill(p.out, g, p.pick(p.goals, g.Variant))
	}
	return p.out
}

func (p *Preview) pick(set []swatch, i int) swatch {
	if i < 0 || i >= len(set) {
		return swatch{glyph: '?'}
	}
	return set[i]
}

// fill paints the part of the object's rectangle that lies on the screen.
func (p *Preview) fill(s *core.Screen, o maze.WorldObject, sw swatch) {
	b := o.Bounds()
	if !b.Intersects(s.Bounds()) {
		p.Culled++
		return
	}
	for y := b.Y; y < b.Bottom(); y++ {
		for x := b.X; x < b.Right(); x++ {
			s.SetColored(x, y, sw.glyph, sw.color)
		}
	}
}

// overlay copies every non-blank cell of src onto dst.
func overlay(dst, src *core.Screen) {
	for y := range src.Height() {
		for x := range src.Width() {
			c := src.GetCell(x, y)
			if c.Rune != ' ' {
				dst.SetColored(x, y, c.Rune, c.Color)
			}
		}
	}
}
