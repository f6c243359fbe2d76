package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"same tile", NewRect(0, 0, 2, 1), NewRect(0, 0, 2, 1), true},
		{"neighbouring tiles touch", NewRect(0, 0, 2, 1), NewRect(2, 0, 2, 1), false},
		{"row below touches", NewRect(0, 0, 2, 1), NewRect(0, 1, 2, 1), false},
		{"half overlap", NewRect(0, 0, 2, 2), NewRect(1, 1, 2, 2), true},
		{"goal inside tile", NewRect(0, 0, 10, 10), NewRect(4, 4, 1, 1), true},
		{"corner cell", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"far apart", NewRect(0, 0, 1, 1), NewRect(50, 50, 1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := BoxOf(tc.a), BoxOf(tc.b)
			if got := a.Overlaps(b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := b.Overlaps(a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
			// The integer form used for screen culling must agree.
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOf(t *testing.T) {
	b := BoxOf(NewRect(4, 2, 2, 1))
	if b.CX != 5 || b.CY != 2.5 || b.HalfW != 1 || b.HalfH != 0.5 {
		t.Errorf("BoxOf() = %+v", b)
	}
}

func TestRectContainsScreenCells(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{79, 23, true},
		{80, 0, false},
		{0, 24, false},
		{-1, 5, false},
	}

	for _, tc := range tests {
		if got := screen.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
	if screen.Right() != 80 || screen.Bottom() != 24 {
		t.Errorf("edges = (%d, %d), expected (80, 24)", screen.Right(), screen.Bottom())
	}
}

func TestClampLevelAndChance(t *testing.T) {
	for _, tc := range []struct{ level, expected int }{{0, 1}, {7, 7}, {25, 20}} {
		if got := Clamp(tc.level, 1, 20); got != tc.expected {
			t.Errorf("Clamp(%d, 1, 20) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
	if got := ClampF(0.9, 0.1, 0.6); got != 0.6 {
		t.Errorf("ClampF(0.9) = %g, expected 0.6", got)
	}
	if got := ClampF(-0.2, 0.1, 0.6); got != 0.1 {
		t.Errorf("ClampF(-0.2) = %g, expected 0.1", got)
	}
	if Abs(-3) != 3 || Abs(3) != 3 {
		t.Error("Abs should drop the sign")
	}
}
