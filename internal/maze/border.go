package maze

import (
	"fmt"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Border is the rectangular frame drawn around the playfield.
type Border struct {
	OffsetX   int // Horizontal centring offset
	OffsetY   int // Vertical centring offset below the HUD band
	HUDHeight int
	Columns   int // Tiles per horizontal side, always even
	Rows      int // Tiles per vertical side, always even
	TileW     int
	TileH     int
	Tiles     []WorldObject
}

// Frame returns the world rectangle enclosed by the outer edge of the border.
func (b Border) Frame() core.Rect {
	return core.NewRect(b.OffsetX, b.HUDHeight+b.OffsetY, b.Columns*b.TileW, b.Rows*b.TileH)
}

// BuildBorder computes a symmetric frame of border tiles for the screen.
//
// Both side counts are forced even. The frame is centred horizontally and
// in the space below the HUD band. Top and bottom rows hold Columns tiles
// each, left and right columns hold Rows tiles each.
func BuildBorder(screen config.ScreenConfig) (Border, error) {
	if screen.TileWidth <= 0 || screen.TileHeight <= 0 {
		return Border{}, fmt.Errorf("tile size must be positive, got %dx%d", screen.TileWidth, screen.TileHeight)
	}

	// playH is floor(H - H*hud), so playH/TileHeight equals
	// floor((H - H*hud)/TileHeight) for integer tile sizes.
	playH := screen.PlayHeight()
	hud := screen.HUDHeight()

	cols := screen.Width / screen.TileWidth
	rows := playH / screen.TileHeight
	if cols%2 != 0 {
		cols--
	}
	if rows%2 != 0 {
		rows--
	}
	if cols < 2 || rows < 2 {
		return Border{}, fmt.Errorf("screen %dx%d too small for a border of %dx%d tiles",
			screen.Width, screen.Height, screen.TileWidth, screen.TileHeight)
	}

	b := Border{
		OffsetX:   (screen.Width - cols*screen.TileWidth) / 2,
		OffsetY:   (playH - rows*screen.TileHeight) / 2,
		HUDHeight: hud,
		Columns:   cols,
		Rows:      rows,
		TileW:     screen.TileWidth,
		TileH:     screen.TileHeight,
		Tiles:     make([]WorldObject, 0, 2*cols+2*rows),
	}

	top := hud + b.OffsetY
	bottom := top + (rows-1)*screen.TileHeight
	left := b.OffsetX
	right := left + (cols-1)*screen.TileWidth

	tile := func(x, y int) WorldObject {
		return WorldObject{Kind: KindBorder, X: x, Y: y, W: screen.TileWidth, H: screen.TileHeight}
	}

	for i := range cols {
		b.Tiles = append(b.Tiles, tile(left+i*screen.TileWidth, top))
	}
	for i := range cols {
		b.Tiles = append(b.Tiles, tile(left+i*screen.TileWidth, bottom))
	}
	for j := range rows {
		b.Tiles = append(b.Tiles, tile(left, top+j*screen.TileHeight))
	}
	for j := range rows {
		b.Tiles = append(b.Tiles, tile(right, top+j*screen.TileHeight))
	}

	return b, nil
}
