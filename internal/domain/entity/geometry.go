// Package entity contains domain entities for the split layout core.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// Rect is an axis-aligned rectangle in screen-cell units.
// Used by the layout solver to position views and containers.
type Rect struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// NewRect creates a rectangle from its four fields.
func NewRect(x, y, width, height uint16) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() uint16 { return r.X }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() uint16 { return r.Y }

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() uint16 { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() uint16 { return r.Y + r.Height }

// IsZero reports whether the rectangle covers no cells.
func (r Rect) IsZero() bool { return r.Width == 0 || r.Height == 0 }
