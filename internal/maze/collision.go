package maze

import "github.com/vovakirdan/maze-arcade/internal/core"

// CollisionProbe answers whether a candidate overlaps anything in a collection.
type CollisionProbe interface {
	OverlapsAny(candidate WorldObject, collection []WorldObject) bool
}

// AABBProbe tests axis-aligned boxes built from centre ± half extents.
type AABBProbe struct{}

// OverlapsAny implements CollisionProbe.
func (AABBProbe) OverlapsAny(candidate WorldObject, collection []WorldObject) bool {
	box := core.BoxOf(candidate.Bounds())
	for _, o := range collection {
		if box.Overlaps(core.BoxOf(o.Bounds())) {
			return true
		}
	}
	return false
}

var _ CollisionProbe = AABBProbe{}
