package maze

// Holders keeps the most recently committed map per category, together
// with the recache flags a static-tile renderer consumes.
type Holders struct {
	Profile Profile
	Walls   []WorldObject
	Goals   []WorldObject
	Border  []WorldObject

	BorderOffsetX int
	BorderOffsetY int

	borderNeedsRecache bool
	mapNeedsRecache    bool
}

// Commit implements Sink.
func (h *Holders) Commit(result *MapBuildResult) {
	h.Profile = result.Profile
	h.Walls = result.Walls
	h.Goals = result.Goals
	h.Border = result.Border.Tiles
	h.BorderOffsetX = result.Border.OffsetX
	h.BorderOffsetY = result.Border.OffsetY

	h.borderNeedsRecache = h.borderNeedsRecache || result.Recache.Border
	h.mapNeedsRecache = h.mapNeedsRecache || result.Recache.Map
}

// NeedsRecache reports the pending flags without clearing them.
func (h *Holders) NeedsRecache() Recache {
	return Recache{Border: h.borderNeedsRecache, Map: h.mapNeedsRecache}
}

// TakeRecache returns the pending flags and clears them.
func (h *Holders) TakeRecache() Recache {
	r := h.NeedsRecache()
	h.borderNeedsRecache = false
	h.mapNeedsRecache = false
	return r
}

var _ Sink = (*Holders)(nil)
