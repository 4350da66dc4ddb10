package layout

import "fmt"

// Unbounded is the Max of a dimension that can grow without limit.
// It is kept well below math.MaxInt so sums never overflow.
const Unbounded = 1 << 30

// Dimension is a size request along one axis. A container combines the
// requests of its children and then hands each child a concrete size.
//
// The zero value is the dimension of something that wants no space at all.
type Dimension struct {
	Min       int
	Max       int
	Preferred int
	Weight    int
}

// NewDimension builds a dimension and normalises it so that
// 0 <= Min <= Preferred <= Max and Weight >= 0. A negative max means
// unbounded; a negative preferred defaults to Min.
func NewDimension(minSize, maxSize, preferred, weight int) Dimension {
	minSize = max(0, minSize)
	if maxSize < 0 || maxSize > Unbounded {
		maxSize = Unbounded
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	if preferred < 0 {
		preferred = minSize
	}
	preferred = min(max(preferred, minSize), maxSize)
	return Dimension{Min: minSize, Max: maxSize, Preferred: preferred, Weight: max(0, weight)}
}

// Exact is a dimension that accepts exactly n cells.
func Exact(n int) Dimension {
	return NewDimension(n, n, n, 1)
}

// Zero is a dimension that takes no space and never grows.
func Zero() Dimension {
	return Dimension{}
}

// Weighted is an unbounded dimension that grows with the given weight.
func Weighted(weight int) Dimension {
	return NewDimension(0, -1, 0, weight)
}

// Preferred is an unbounded dimension with weight 1 that prefers n cells.
func Preferred(n int) Dimension {
	return NewDimension(0, -1, n, 1)
}

// Flexible is the default dimension of content that has no opinion about
// its size: no minimum, no maximum, weight 1.
func Flexible() Dimension {
	return Weighted(1)
}

// IsZero reports whether the dimension requests no space and never grows.
func (d Dimension) IsZero() bool {
	return d.Max == 0 && d.Preferred == 0
}

// IsUnbounded reports whether the dimension has no upper limit.
func (d Dimension) IsUnbounded() bool {
	return d.Max >= Unbounded
}

// WithWeight returns a copy of d with the given weight.
func (d Dimension) WithWeight(weight int) Dimension {
	d.Weight = max(0, weight)
	return d
}

// WithMax returns a copy of d capped at n cells.
func (d Dimension) WithMax(n int) Dimension {
	return NewDimension(d.Min, n, d.Preferred, d.Weight)
}

func (d Dimension) String() string {
	maxStr := fmt.Sprint(d.Max)
	if d.IsUnbounded() {
		maxStr = "inf"
	}
	return fmt.Sprintf("D(min=%d, max=%s, preferred=%d, weight=%d)", d.Min, maxStr, d.Preferred, d.Weight)
}

// SumDimensions combines dimensions stacked along the same axis. Mins and
// preferreds are summed. Maxes are summed for children that can grow; a
// zero-weight child never receives leftover space, so it contributes its
// min instead.
func SumDimensions(dims []Dimension) Dimension {
	var out Dimension
	for _, d := range dims {
		out.Min = addClamped(out.Min, d.Min)
		out.Preferred = addClamped(out.Preferred, d.Preferred)
		if d.Weight > 0 {
			out.Max = addClamped(out.Max, d.Max)
		} else {
			out.Max = addClamped(out.Max, d.Min)
		}
		out.Weight += d.Weight
	}
	return NewDimension(out.Min, out.Max, out.Preferred, out.Weight)
}

// MaxDimensions combines dimensions that share the cross axis: the result
// must satisfy the largest of every field. Zero dimensions (hidden children)
// are ignored.
func MaxDimensions(dims []Dimension) Dimension {
	var out Dimension
	seen := false
	for _, d := range dims {
		if d.IsZero() {
			continue
		}
		seen = true
		out.Min = max(out.Min, d.Min)
		out.Max = max(out.Max, d.Max)
		out.Preferred = max(out.Preferred, d.Preferred)
		out.Weight = max(out.Weight, d.Weight)
	}
	if !seen {
		return Zero()
	}
	return NewDimension(out.Min, out.Max, out.Preferred, out.Weight)
}

func addClamped(a, b int) int {
	if a >= Unbounded-b {
		return Unbounded
	}
	return a + b
}
