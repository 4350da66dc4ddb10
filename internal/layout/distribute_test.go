package layout

import (
	"math/rand"
	"slices"
	"testing"
)

func TestDistribute(t *testing.T) {
	type tc struct {
		dims     []Dimension
		total    int
		sizes    []int
		deficit  int
		leftover int
	}

	tests := map[string]tc{
		"weights 1 and 2 split 30 evenly": {
			dims:  []Dimension{Weighted(1), Weighted(2)},
			total: 30,
			sizes: []int{10, 20},
		},
		"three fixed rows and one weighted row": {
			dims:  []Dimension{Exact(1), Exact(1), Exact(1), Weighted(1)},
			total: 10,
			sizes: []int{1, 1, 1, 7},
		},
		"remainder goes to earliest children": {
			dims:  []Dimension{Weighted(1), Weighted(1), Weighted(1)},
			total: 11,
			sizes: []int{4, 4, 3},
		},
		"single unbounded child takes everything": {
			dims:  []Dimension{NewDimension(3, -1, 5, 1)},
			total: 80,
			sizes: []int{80},
		},
		"capped child releases space to siblings": {
			dims:  []Dimension{NewDimension(0, 5, 0, 1), Weighted(1)},
			total: 30,
			sizes: []int{5, 25},
		},
		"cascading caps": {
			dims:  []Dimension{NewDimension(0, 2, 0, 1), NewDimension(0, 6, 0, 1), Weighted(1)},
			total: 20,
			sizes: []int{2, 6, 12},
		},
		"zero weight child stays at min": {
			dims:  []Dimension{NewDimension(2, -1, 2, 0), Weighted(1)},
			total: 10,
			sizes: []int{2, 8},
		},
		"all saturated leaves leftover": {
			dims:     []Dimension{Exact(3), Exact(4)},
			total:    10,
			sizes:    []int{3, 4},
			leftover: 3,
		},
		"only zero weights leaves leftover": {
			dims:     []Dimension{NewDimension(1, -1, 1, 0)},
			total:    5,
			sizes:    []int{1},
			leftover: 4,
		},
		"mins overflow truncates later children": {
			dims:    []Dimension{Exact(4), Exact(4), Exact(4)},
			total:   6,
			sizes:   []int{4, 2, 0},
			deficit: 6,
		},
		"zero space": {
			dims:    []Dimension{Exact(1), Weighted(1)},
			total:   0,
			sizes:   []int{0, 0},
			deficit: 1,
		},
		"negative space is treated as zero": {
			dims:  []Dimension{Weighted(1)},
			total: -4,
			sizes: []int{0},
		},
		"no children": {
			dims:     nil,
			total:    7,
			sizes:    []int{},
			leftover: 7,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Distribute(tt.dims, tt.total)
			if !slices.Equal(got.Sizes, tt.sizes) {
				t.Errorf("Sizes = %v, want %v", got.Sizes, tt.sizes)
			}
			if got.Deficit != tt.deficit {
				t.Errorf("Deficit = %d, want %d", got.Deficit, tt.deficit)
			}
			if got.Leftover != tt.leftover {
				t.Errorf("Leftover = %d, want %d", got.Leftover, tt.leftover)
			}
		})
	}
}

func randomDims(r *rand.Rand) []Dimension {
	n := 1 + r.Intn(6)
	dims := make([]Dimension, n)
	for i := range dims {
		minSize := r.Intn(5)
		maxSize := -1
		if r.Intn(3) > 0 {
			maxSize = minSize + r.Intn(15)
		}
		dims[i] = NewDimension(minSize, maxSize, minSize+r.Intn(4), r.Intn(4))
	}
	return dims
}

func TestDistribute_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for iter := 0; iter < 2000; iter++ {
		dims := randomDims(r)
		sumMin, capacity := 0, 0
		for _, d := range dims {
			sumMin += d.Min
			if d.Weight > 0 {
				capacity = addClamped(capacity, d.Max)
			} else {
				capacity += d.Min
			}
		}
		total := r.Intn(60)
		got := Distribute(dims, total)

		if len(got.Sizes) != len(dims) {
			t.Fatalf("len(Sizes) = %d, want %d", len(got.Sizes), len(dims))
		}
		for i, s := range got.Sizes {
			if s < 0 {
				t.Fatalf("dims=%v total=%d: size[%d] = %d is negative", dims, total, i, s)
			}
			if s > dims[i].Max {
				t.Fatalf("dims=%v total=%d: size[%d] = %d above max %d", dims, total, i, s, dims[i].Max)
			}
		}

		if total < sumMin {
			if got.Deficit != sumMin-total {
				t.Fatalf("dims=%v total=%d: Deficit = %d, want %d", dims, total, got.Deficit, sumMin-total)
			}
			if got.Total() != total {
				t.Fatalf("dims=%v total=%d: handed out %d", dims, total, got.Total())
			}
			continue
		}

		for i, s := range got.Sizes {
			if s < dims[i].Min {
				t.Fatalf("dims=%v total=%d: size[%d] = %d below min %d", dims, total, i, s, dims[i].Min)
			}
		}
		if got.Total()+got.Leftover != total {
			t.Fatalf("dims=%v total=%d: handed out %d plus leftover %d", dims, total, got.Total(), got.Leftover)
		}
		if total <= capacity && got.Total() != total {
			t.Fatalf("dims=%v total=%d: handed out %d, want exactly total", dims, total, got.Total())
		}
	}
}

func TestDistribute_Deterministic(t *testing.T) {
	dims := []Dimension{Weighted(3), NewDimension(1, 4, 2, 2), Weighted(1)}
	first := Distribute(dims, 23)
	for i := 0; i < 10; i++ {
		again := Distribute(dims, 23)
		if !slices.Equal(first.Sizes, again.Sizes) {
			t.Fatalf("Distribute not deterministic: %v vs %v", first.Sizes, again.Sizes)
		}
	}
}
