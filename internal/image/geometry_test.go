package imagepkg

import "testing"

func TestCenterPosition(t *testing.T) {
	tests := []struct {
		name  string
		width int
		box   BBox
		want  int
	}{
		{"fits", 2400, BBox{0, 0, 400, 10}, 1000},
		{"offset left edge", 2400, BBox{5, 0, 105, 0}, 1150},
		{"odd remainder floors", 101, BBox{0, 0, 10, 0}, 45},
		{"zero width", 2400, BBox{12, 3, 12, 3}, 1200},
		{"wider than canvas", 100, BBox{0, 0, 201, 5}, -51},
		{"exactly twice as wide", 100, BBox{0, 0, 200, 5}, -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterPosition(tt.width, tt.box); got != tt.want {
				t.Errorf("CenterPosition(%d, %+v) = %d, want %d", tt.width, tt.box, got, tt.want)
			}
		})
	}
}

func TestUnionBBox(t *testing.T) {
	a := BBox{2, 30, 302, 130}
	b := BBox{1, 20, 151, 140}
	c := BBox{-4, 50, 90, 60}

	want := BBox{1, 20, 302, 140}
	if got := UnionBBox(a, b); got != want {
		t.Errorf("UnionBBox(a, b) = %+v, want %+v", got, want)
	}
	if UnionBBox(a, b) != UnionBBox(b, a) {
		t.Error("UnionBBox is not commutative")
	}
	if UnionBBox(UnionBBox(a, b), c) != UnionBBox(a, UnionBBox(b, c)) {
		t.Error("UnionBBox is not associative")
	}
	for _, box := range []BBox{a, b, c} {
		if got := UnionBBox(box, box); got != box {
			t.Errorf("UnionBBox(%+v, itself) = %+v", box, got)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-8, 2, -4},
		{0, 4, 0},
		{-1, 4, -1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFloorDivFloat(t *testing.T) {
	tests := []struct{ a, b, want float64 }{
		{13, 1.3, 9},
		{260, 1.3, 199},
		{450, 1.3, 346},
		{450, 3, 150},
		{451, 3, 150},
		{-7, 2, -4},
		{0, 1.3, 0},
	}
	for _, tt := range tests {
		if got := floorDivFloat(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDivFloat(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
