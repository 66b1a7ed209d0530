package screengrid

import "testing"

func TestAreaBelowCursorExcludingCurrent(t *testing.T) {
	a := AreaBelowCursorRows(false)
	r := a.resolve(Coords{X: 0, Y: 1}, NewRegion(0, 0, 4, 5))
	want := NewRegion(0, 2, 4, 3)
	if r != want {
		t.Fatalf("region = %+v, want %+v", r, want)
	}
}

func TestAreaBelowCursorIncludingCurrent(t *testing.T) {
	a := AreaBelowCursorRows(true)
	r := a.resolve(Coords{X: 0, Y: 1}, NewRegion(0, 0, 4, 5))
	want := NewRegion(0, 1, 4, 4)
	if r != want {
		t.Fatalf("region = %+v, want %+v", r, want)
	}
}

func TestAreaCursorBound(t *testing.T) {
	a := AreaCursorBoundAt(Coords{X: 1, Y: 1})
	r := a.resolve(Coords{X: 3, Y: 3}, NewRegion(0, 0, 10, 10))
	want := Region{Left: 1, Top: 1, Right: 4, Bottom: 4}
	if r != want {
		t.Fatalf("region = %+v, want %+v", r, want)
	}
}

func TestAreaRowAndColumn(t *testing.T) {
	r := AreaRowAt(2).resolve(Coords{}, NewRegion(0, 0, 5, 5))
	if r != (NewRegion(0, 2, 5, 1)) {
		t.Fatalf("row region = %+v", r)
	}
	c := AreaColumnAt(3).resolve(Coords{}, NewRegion(0, 0, 5, 5))
	if c != (NewRegion(3, 0, 1, 5)) {
		t.Fatalf("column region = %+v", c)
	}
}

func TestCoordsIterForward(t *testing.T) {
	it := NewCoordsIter(NewRegion(0, 0, 2, 2))
	var got []Coords
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		got = append(got, c)
	}
	want := []Coords{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d coords, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCoordsIterReverseIsForwardReversed(t *testing.T) {
	region := NewRegion(0, 0, 2, 2)
	forward := NewCoordsIter(region)
	var fwd []Coords
	for c, ok := forward.Next(); ok; c, ok = forward.Next() {
		fwd = append(fwd, c)
	}
	reverse := NewReverseCoordsIter(region)
	var rev []Coords
	for c, ok := reverse.Next(); ok; c, ok = reverse.Next() {
		rev = append(rev, c)
	}
	if len(fwd) != len(rev) {
		t.Fatalf("forward/reverse length mismatch: %d vs %d", len(fwd), len(rev))
	}
	for i := range fwd {
		if fwd[i] != rev[len(rev)-1-i] {
			t.Fatalf("reverse iterator is not forward reversed at %d: %v vs %v", i, fwd[i], rev[len(rev)-1-i])
		}
	}
}

func TestCoordsIterEmptyRegion(t *testing.T) {
	it := NewCoordsIter(Region{})
	if _, ok := it.Next(); ok {
		t.Fatal("an empty region should yield no coordinates")
	}
}
