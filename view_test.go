package screengrid

import "testing"

func TestMoveableViewKeepWithinSlidesRight(t *testing.T) {
	v := NewMoveableView(5, 3)
	v.KeepWithin(Coords{X: 10, Y: 1})
	if v.Region.Left != 6 || v.Region.Right != 11 {
		t.Fatalf("region = %+v, want left=6 right=11", v.Region)
	}
}

func TestMoveableViewKeepWithinNoOpWhenAlreadyVisible(t *testing.T) {
	v := NewMoveableView(5, 3)
	before := v.Region
	v.KeepWithin(Coords{X: 2, Y: 1})
	if v.Region != before {
		t.Fatalf("region changed from %+v to %+v for an already-visible point", before, v.Region)
	}
}

func TestReflowableViewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a Reflowable view to panic")
		}
	}()
	v := NewReflowableView(5, 3)
	v.Translate(1, 0)
}

func TestViewToGrid(t *testing.T) {
	v := NewMoveableView(5, 3)
	v.Translate(2, 1)
	got := v.ToGrid(Coords{X: 1, Y: 1})
	if got != (Coords{X: 3, Y: 2}) {
		t.Fatalf("got %v, want (3,2)", got)
	}
}
