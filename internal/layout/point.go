package layout

// Point is a cell coordinate. Depending on context it is either relative to
// a control's content (column, line) or absolute on the screen.
type Point struct {
	X, Y int
}

// Add returns p offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// In reports whether the point lies inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}
