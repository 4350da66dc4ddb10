package layout

// Allocation is the outcome of splitting space among children.
type Allocation struct {
	// Sizes holds one size per input dimension, in input order.
	Sizes []int

	// Deficit counts the cells the children's minimums asked for beyond the
	// available space. Non-zero means later children were truncated.
	Deficit int

	// Leftover counts cells no child could take because every child with
	// a positive weight reached its max. Containers place it by alignment.
	Leftover int
}

// Total returns the number of cells handed out.
func (a Allocation) Total() int {
	n := 0
	for _, s := range a.Sizes {
		n += s
	}
	return n
}

// Distribute splits total cells among children described by dims.
//
// Every child first receives its Min. When the minimums do not fit, the
// earliest children keep theirs and later children are truncated; the
// shortfall is reported as Deficit. Otherwise the remaining cells are
// water-filled: split in proportion to Weight among children below their
// Max, capping any child that would overflow and repeating with the rest.
// Cells lost to integer division go one at a time to the earliest children
// that can still grow. Zero-weight children never grow past Min.
func Distribute(dims []Dimension, total int) Allocation {
	total = max(0, total)
	sizes := make([]int, len(dims))

	sumMin := 0
	for i, d := range dims {
		sizes[i] = d.Min
		sumMin = addClamped(sumMin, d.Min)
	}

	if sumMin > total {
		remaining := total
		for i, d := range dims {
			sizes[i] = min(d.Min, remaining)
			remaining -= sizes[i]
		}
		return Allocation{Sizes: sizes, Deficit: sumMin - total}
	}

	leftover := total - sumMin
	active := make([]int, 0, len(dims))
	for i, d := range dims {
		if d.Weight > 0 && sizes[i] < d.Max {
			active = append(active, i)
		}
	}

	for leftover > 0 && len(active) > 0 {
		totalWeight := 0
		for _, i := range active {
			totalWeight += dims[i].Weight
		}

		// Cap every child whose proportional share would reach its max.
		// Capping only raises the others' shares, so all of them can be
		// settled in the same pass.
		next := active[:0:0]
		given := 0
		for _, i := range active {
			room := dims[i].Max - sizes[i]
			if leftover*dims[i].Weight >= room*totalWeight {
				sizes[i] += room
				given += room
				continue
			}
			next = append(next, i)
		}
		if given > 0 {
			leftover -= given
			active = next
			continue
		}

		// Nobody saturates: hand out floored shares, then the remainder in
		// index order.
		given = 0
		for _, i := range active {
			share := leftover * dims[i].Weight / totalWeight
			sizes[i] += share
			given += share
		}
		remainder := leftover - given
		for _, i := range active {
			if remainder == 0 {
				break
			}
			if sizes[i] < dims[i].Max {
				sizes[i]++
				remainder--
			}
		}
		leftover = remainder
		if leftover > 0 {
			active = growable(dims, sizes, active)
		}
	}

	return Allocation{Sizes: sizes, Leftover: leftover}
}

func growable(dims []Dimension, sizes []int, candidates []int) []int {
	out := candidates[:0:0]
	for _, i := range candidates {
		if sizes[i] < dims[i].Max {
			out = append(out, i)
		}
	}
	return out
}
