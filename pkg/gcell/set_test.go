package gcell

import "testing"

func TestSetDirtyQueriesFail(t *testing.T) {
	var s Set
	s.Push(GCell{1, 1})
	if _, err := s.PrevCell(GCell{0, 0}); err != ErrDirty {
		t.Errorf("PrevCell on dirty set: got %v, want ErrDirty", err)
	}
	if _, err := s.NextCell(GCell{0, 0}); err != ErrDirty {
		t.Errorf("NextCell on dirty set: got %v, want ErrDirty", err)
	}
	if _, err := s.PrevY(0); err != ErrDirty {
		t.Errorf("PrevY on dirty set: got %v, want ErrDirty", err)
	}
	if _, err := s.NextY(0); err != ErrDirty {
		t.Errorf("NextY on dirty set: got %v, want ErrDirty", err)
	}
}

func TestSetSortDedups(t *testing.T) {
	var s Set
	s.Push(GCell{3, 0})
	s.Push(GCell{1, 0})
	s.Push(GCell{1, 0})
	s.Push(GCell{2, 0})
	s.Sort()
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	want := []GCell{{1, 0}, {2, 0}, {3, 0}}
	for i, c := range s.Cells() {
		if c != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, c, want[i])
		}
	}
}

func TestSetPrevNextCell(t *testing.T) {
	var s Set
	for _, c := range []GCell{{0, 0}, {5, 0}, {0, 3}, {2, 3}} {
		s.Push(c)
	}
	s.Sort()

	cases := []struct {
		name string
		c    GCell
		want GCell
		fn   func(GCell) (GCell, error)
	}{
		{"prev of (2,0)", GCell{2, 0}, GCell{0, 0}, s.PrevCell},
		{"prev of (0,0)", GCell{0, 0}, NoCell, s.PrevCell},
		{"next of (1,0)", GCell{1, 0}, GCell{5, 0}, s.NextCell},
		{"next of (2,3)", GCell{2, 3}, NoCell, s.NextCell},
		{"prev of (0,3)", GCell{0, 3}, GCell{5, 0}, s.PrevCell},
		{"next of (5,0)", GCell{5, 0}, GCell{0, 3}, s.NextCell},
	}
	for _, tc := range cases {
		got, err := tc.fn(tc.c)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSetPrevNextY(t *testing.T) {
	var s Set
	for _, c := range []GCell{{0, 0}, {5, 0}, {0, 3}, {2, 7}} {
		s.Push(c)
	}
	s.Sort()

	if y, _ := s.PrevY(3); y != 0 {
		t.Errorf("PrevY(3) = %d, want 0", y)
	}
	if y, _ := s.PrevY(0); y != -1 {
		t.Errorf("PrevY(0) = %d, want -1", y)
	}
	if y, _ := s.NextY(3); y != 7 {
		t.Errorf("NextY(3) = %d, want 7", y)
	}
	if y, _ := s.NextY(7); y != -1 {
		t.Errorf("NextY(7) = %d, want -1", y)
	}
}

func TestBoundingBoxExtend(t *testing.T) {
	b := NewBoundingBox()
	b.Extend(GCell{3, 2})
	b.Extend(GCell{-1, 5})
	if b.X0 != -1 || b.Y0 != 2 || b.X1 != 3 || b.Y1 != 5 {
		t.Errorf("box = %+v, want {-1 2 3 5}", b)
	}
	if !b.Contains(GCell{0, 3}) {
		t.Error("box should contain (0,3)")
	}
	if b.Contains(GCell{4, 3}) {
		t.Error("box should not contain (4,3)")
	}
}

func TestGCellMDist(t *testing.T) {
	if d := (GCell{0, 0}).MDist(GCell{3, -4}); d != 7 {
		t.Errorf("MDist = %d, want 7", d)
	}
}
