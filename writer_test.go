package screengrid

import "testing"

func newUnboundedGrid() *charGridFacade {
	return newCharGridFacade(NewDataGrid[Cell](nil, nil))
}

func TestWriteCharNarrow(t *testing.T) {
	g := newUnboundedGrid()
	final := WriteChar(g, Coords{X: 2, Y: 3}, 'a', DefaultUseStyles())
	if final != (Coords{X: 2, Y: 3}) {
		t.Fatalf("final = %v, want (2,3)", final)
	}
	cell := g.grid.GetMut(Coords{X: 2, Y: 3})
	if cell.Content.Kind != ContentChar || cell.Content.Char != 'a' {
		t.Fatalf("cell content = %+v", cell.Content)
	}
}

func TestWriteCharWideFansOutExtensions(t *testing.T) {
	g := newUnboundedGrid()
	final := WriteChar(g, Coords{X: 0, Y: 0}, '学', DefaultUseStyles())
	if final != (Coords{X: 1, Y: 0}) {
		t.Fatalf("final = %v, want (1,0) for a 2-wide glyph", final)
	}
	anchor := g.grid.GetMut(Coords{X: 0, Y: 0})
	if anchor.Content.Kind != ContentChar {
		t.Fatalf("anchor kind = %v", anchor.Content.Kind)
	}
	ext := g.grid.GetMut(Coords{X: 1, Y: 0})
	a, ok := ext.ExtensionOf()
	if !ok || a != (Coords{X: 0, Y: 0}) {
		t.Fatalf("extension cell should back-reference (0,0), got %v, %v", a, ok)
	}
}

func TestWriteCombiningMarkExtendsPriorCell(t *testing.T) {
	g := newUnboundedGrid()
	WriteChar(g, Coords{X: 0, Y: 0}, 'e', DefaultUseStyles())
	// Window always calls a writer at the cursor's current coordinates; after
	// writing 'e' at (0,0) and advancing, that's (1,0) — one past 'e'.
	final := WriteCombiningMark(g, Coords{X: 1, Y: 0}, combiningAcute, DefaultUseStyles())
	if final != (Coords{X: 0, Y: 0}) {
		t.Fatalf("final = %v, want (0,0): the extended cell's own coordinates", final)
	}
	anchor := g.grid.GetMut(Coords{X: 0, Y: 0})
	if anchor.Content.Kind != ContentGrapheme {
		t.Fatalf("expected (0,0) to become a Grapheme cell, got %+v", anchor.Content)
	}
}

func TestFindCellToExtendStopsAtFirstUnextendableCell(t *testing.T) {
	g := newUnboundedGrid()
	g.grid.FillTo(Coords{X: 3, Y: 0})
	WriteChar(g, Coords{X: 0, Y: 0}, 'Q', DefaultUseStyles())
	*g.grid.GetMut(Coords{X: 1, Y: 0}) = Cell{Styles: DefaultUseStyles(), Content: ExtensionContent(Coords{X: 0, Y: 0})}

	if anchor, ok := g.FindCellToExtend(Coords{X: 0, Y: 0}); !ok || anchor != (Coords{X: 0, Y: 0}) {
		t.Fatalf("FindCellToExtend(0,0) = %v, %v, want (0,0), true", anchor, ok)
	}
	if anchor, ok := g.FindCellToExtend(Coords{X: 1, Y: 0}); !ok || anchor != (Coords{X: 0, Y: 0}) {
		t.Fatalf("FindCellToExtend(1,0) = %v, %v, want (0,0), true: hops via the back-reference", anchor, ok)
	}
	if _, ok := g.FindCellToExtend(Coords{X: 2, Y: 0}); ok {
		t.Fatal("FindCellToExtend(2,0) should fail: the cell is Empty, and the search never walks further back")
	}
	if _, ok := g.FindCellToExtend(Coords{X: 3, Y: 0}); ok {
		t.Fatal("FindCellToExtend(3,0) should fail: the cell is Empty")
	}
}

func TestWriteCombiningMarkDegradesAtOrigin(t *testing.T) {
	g := newUnboundedGrid()
	final := WriteCombiningMark(g, Coords{X: 0, Y: 0}, combiningAcute, DefaultUseStyles())
	if final != (Coords{X: 0, Y: 0}) {
		t.Fatalf("final = %v, want (0,0)", final)
	}
	cell := g.grid.GetMut(Coords{X: 0, Y: 0})
	if cell.Content.Kind != ContentChar || cell.Content.Char != combiningAcute {
		t.Fatalf("expected a degraded plain-char write, got %+v", cell.Content)
	}
}

func TestWriteImageFansOutRectangle(t *testing.T) {
	g := newUnboundedGrid()
	data := NewImageBytes([]byte{1, 2, 3, 4})
	final := WriteImage(g, Coords{X: 0, Y: 0}, data, "image/png", PositionFill, 3, 2, DefaultUseStyles())
	if final != (Coords{X: 2, Y: 0}) {
		t.Fatalf("final = %v, want (2,0): anchor + (width-1, 0)", final)
	}
	anchor := g.grid.GetMut(Coords{X: 0, Y: 0})
	if anchor.Content.Kind != ContentImage || anchor.Content.Image != data {
		t.Fatalf("anchor should hold the shared image handle, got %+v", anchor.Content)
	}
	for y := uint32(0); y < 2; y++ {
		for x := uint32(0); x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			cell := g.grid.GetMut(Coords{X: x, Y: y})
			back, ok := cell.ExtensionOf()
			if !ok || back != (Coords{X: 0, Y: 0}) {
				t.Fatalf("cell (%d,%d) should extend the image anchor, got %v, %v", x, y, back, ok)
			}
		}
	}
}

func TestBestFitForRegionShiftsWithinCappedAxis(t *testing.T) {
	width := uint32(5)
	g := newCharGridFacade(NewDataGrid[Cell](&width, nil))
	g.grid.FillTo(Coords{X: 4, Y: 0})
	anchor := g.BestFitForRegion(NewRegion(4, 0, 2, 1))
	if anchor != (Coords{X: 3, Y: 0}) {
		t.Fatalf("anchor = %v, want (3,0): shifted left by the 1-cell overshoot", anchor)
	}
}
