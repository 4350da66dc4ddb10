// layout.go re-exports geometry and dimension types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package panes

import "github.com/grindlemire/go-panes/internal/layout"

// Rect is a screen region in cells.
type Rect = layout.Rect

// Edges holds one value per side of a box.
type Edges = layout.Edges

// Point is a cell coordinate.
type Point = layout.Point

// Dimension is a size request along one axis (min, max, preferred, weight).
type Dimension = layout.Dimension

// Allocation is the result of [Distribute].
type Allocation = layout.Allocation

// Unbounded is the Max of a dimension without an upper limit.
const Unbounded = layout.Unbounded

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// D builds a normalised dimension. A negative max means unbounded.
func D(minSize, maxSize, preferred, weight int) Dimension {
	return layout.NewDimension(minSize, maxSize, preferred, weight)
}

// Exact is a dimension of exactly n cells.
func Exact(n int) Dimension {
	return layout.Exact(n)
}

// Weighted is an unbounded dimension with the given weight.
func Weighted(weight int) Dimension {
	return layout.Weighted(weight)
}

// PreferredSize is an unbounded, weight 1 dimension that prefers n cells.
func PreferredSize(n int) Dimension {
	return layout.Preferred(n)
}

// SumDimensions combines dimensions stacked along one axis.
func SumDimensions(dims []Dimension) Dimension {
	return layout.SumDimensions(dims)
}

// MaxDimensions combines dimensions sharing the cross axis.
func MaxDimensions(dims []Dimension) Dimension {
	return layout.MaxDimensions(dims)
}

// Distribute splits total cells among children; see layout.Distribute.
func Distribute(dims []Dimension, total int) Allocation {
	return layout.Distribute(dims, total)
}
