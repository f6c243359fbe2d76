package maze

import "github.com/vovakirdan/maze-arcade/internal/core"

// Kind tags what a WorldObject represents.
type Kind uint8

const (
	KindWall Kind = iota
	KindGoal
	KindBorder
	KindEnemy
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindGoal:
		return "goal"
	case KindBorder:
		return "border"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// WorldObject is a positioned map element handed to the caller's holders.
// X and Y are the top-left corner in world units.
type WorldObject struct {
	Kind    Kind
	Variant int // Index into the palette for Kind
	X, Y    int
	W, H    int
}

// Bounds returns the object's world rectangle.
func (o WorldObject) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}
