// Package layout implements the size negotiation used by go-panes containers.
//
// A container asks each child for a [Dimension] along an axis, combines them
// with [SumDimensions] (stacking axis) or [MaxDimensions] (cross axis), and
// splits the space it was given with [Distribute]. The geometry types ([Rect],
// [Edges], [Point]) are shared by the whole render pass. Types are re-exported
// through the root panes package for public consumption.
package layout
