package layout

// Rect is a rectangle in absolute canvas coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Intersects reports whether r and o overlap. Degenerate rectangles with
// zero width or height never intersect anything.
func (r Rect) Intersects(o Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || o.Width <= 0 || o.Height <= 0 {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
