package layout

import "testing"

func TestNewDimension_Normalises(t *testing.T) {
	type tc struct {
		minSize, maxSize, preferred, weight int
		want                                Dimension
	}

	tests := map[string]tc{
		"already valid": {
			minSize: 1, maxSize: 10, preferred: 4, weight: 2,
			want: Dimension{Min: 1, Max: 10, Preferred: 4, Weight: 2},
		},
		"negative max is unbounded": {
			minSize: 0, maxSize: -1, preferred: 3, weight: 1,
			want: Dimension{Min: 0, Max: Unbounded, Preferred: 3, Weight: 1},
		},
		"max below min is raised": {
			minSize: 5, maxSize: 2, preferred: 0, weight: 1,
			want: Dimension{Min: 5, Max: 5, Preferred: 5, Weight: 1},
		},
		"preferred clamped to max": {
			minSize: 0, maxSize: 4, preferred: 9, weight: 1,
			want: Dimension{Min: 0, Max: 4, Preferred: 4, Weight: 1},
		},
		"negative preferred defaults to min": {
			minSize: 2, maxSize: 8, preferred: -1, weight: 1,
			want: Dimension{Min: 2, Max: 8, Preferred: 2, Weight: 1},
		},
		"negative weight becomes zero": {
			minSize: 0, maxSize: 3, preferred: 1, weight: -3,
			want: Dimension{Min: 0, Max: 3, Preferred: 1, Weight: 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := NewDimension(tt.minSize, tt.maxSize, tt.preferred, tt.weight)
			if got != tt.want {
				t.Errorf("NewDimension() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSumDimensions(t *testing.T) {
	type tc struct {
		dims []Dimension
		want Dimension
	}

	tests := map[string]tc{
		"exact rows": {
			dims: []Dimension{Exact(1), Exact(2), Exact(3)},
			want: Dimension{Min: 6, Max: 6, Preferred: 6, Weight: 3},
		},
		"any unbounded child makes the sum unbounded": {
			dims: []Dimension{Exact(1), Preferred(4)},
			want: Dimension{Min: 1, Max: Unbounded, Preferred: 5, Weight: 2},
		},
		"zero weight child contributes its min to max": {
			dims: []Dimension{NewDimension(2, 9, 3, 0), Exact(1)},
			want: Dimension{Min: 3, Max: 3, Preferred: 3, Weight: 1},
		},
		"empty": {
			dims: nil,
			want: Dimension{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := SumDimensions(tt.dims); got != tt.want {
				t.Errorf("SumDimensions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxDimensions(t *testing.T) {
	type tc struct {
		dims []Dimension
		want Dimension
	}

	tests := map[string]tc{
		"takes the largest of each field": {
			dims: []Dimension{NewDimension(1, 5, 2, 1), NewDimension(3, 4, 4, 2)},
			want: Dimension{Min: 3, Max: 5, Preferred: 4, Weight: 2},
		},
		"zero dimensions are ignored": {
			dims: []Dimension{Zero(), Exact(2)},
			want: Exact(2),
		},
		"all zero": {
			dims: []Dimension{Zero(), Zero()},
			want: Zero(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := MaxDimensions(tt.dims); got != tt.want {
				t.Errorf("MaxDimensions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDimension_String(t *testing.T) {
	if got := Weighted(2).String(); got != "D(min=0, max=inf, preferred=0, weight=2)" {
		t.Errorf("String() = %q", got)
	}
	if got := Exact(3).String(); got != "D(min=3, max=3, preferred=3, weight=1)" {
		t.Errorf("String() = %q", got)
	}
}
