package components

import "testing"

func TestCollisionBounds(t *testing.T) {
	col := &CollisionComponent{Width: 6, Height: 6, OffsetX: 1}
	l, top, r, b := col.Bounds(&PositionComponent{X: 50, Y: 20})

	if l != 51 || top != 20 || r != 57 || b != 26 {
		t.Errorf("Bounds: got (%v, %v, %v, %v), want (51, 20, 57, 26)", l, top, r, b)
	}
}
