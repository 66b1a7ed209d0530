package screengrid

// WritableGrid is the capability surface content writers consume. It lets a
// writer place content without knowing whether the underlying grid is
// bounded, unbounded, or mid-scrollback.
type WritableGrid interface {
	// Writable lazily grows the grid to include c and returns a pointer to
	// it. It returns nil when c lies beyond an axis whose cap the grid has
	// already reached.
	Writable(c Coords) *Cell
	// BestFitForRegion shifts a rectangle's anchor left/up just enough
	// that the whole rectangle fits when an axis is capped; it is the
	// identity when the relevant axis is unbounded.
	BestFitForRegion(r Region) Coords
	// FindCellToExtend examines the cell at c directly, hopping a single
	// Extension back-link to its anchor when c itself is a non-leading
	// slot, to find the nearest extendable Char/Grapheme anchor. It does
	// not walk further than that: an Empty or absent cell at c ends the
	// search with false, even if an extendable cell sits further back in
	// the row. Callers that mean "the cell behind the cursor" must apply
	// CoordsBefore themselves before calling this.
	FindCellToExtend(c Coords) (Coords, bool)
	// Width reports the grid's current width, needed by callers that
	// compute a row-major predecessor coordinate (see CoordsBefore).
	Width() uint32
}

// charGridFacade adapts a *DataGrid[Cell] to the WritableGrid interface.
type charGridFacade struct {
	grid *DataGrid[Cell]
}

func newCharGridFacade(g *DataGrid[Cell]) *charGridFacade {
	return &charGridFacade{grid: g}
}

func (f *charGridFacade) Writable(c Coords) *Cell {
	f.grid.FillTo(c)
	return f.grid.GetMut(c)
}

// maxWidth/maxHeight report the axis cap (current size + remaining budget),
// or false if the axis is unbounded.
func (f *charGridFacade) maxWidth() (uint32, bool) {
	if f.grid.remX == nil {
		return 0, false
	}
	return f.grid.width + *f.grid.remX, true
}

func (f *charGridFacade) maxHeight() (uint32, bool) {
	if f.grid.remY == nil {
		return 0, false
	}
	return f.grid.height + *f.grid.remY, true
}

// BestFitForRegion mirrors notty's best_fit_for_region: the rightward
// overshoot, when an axis is capped, is subtracted from both edges of that
// axis so the whole rectangle still fits.
func (f *charGridFacade) BestFitForRegion(r Region) Coords {
	var xOffset, yOffset uint32
	if maxW, ok := f.maxWidth(); ok {
		xOffset = satSub(r.Right, maxW)
	}
	if maxH, ok := f.maxHeight(); ok {
		yOffset = satSub(r.Bottom, maxH)
	}
	return Coords{X: satSub(r.Left, xOffset), Y: satSub(r.Top, yOffset)}
}

// CoordsBefore returns the previous coordinate in row-major order, wrapping
// to the last column of the previous row when c.X is 0 (mirrors notty's
// data/mod.rs coords_before). Exported for writer.go's combining-mark
// dispatch, which must look one cell behind the cursor before searching for
// an extendable anchor.
func CoordsBefore(c Coords, width uint32) Coords {
	switch {
	case c.X == 0 && c.Y == 0:
		return c
	case c.X == 0:
		return Coords{X: width - 1, Y: c.Y - 1}
	default:
		return Coords{X: c.X - 1, Y: c.Y}
	}
}

func (f *charGridFacade) Width() uint32 { return f.grid.Width() }

// FindCellToExtend checks the cell at c directly: if it is itself
// extendable, c is the answer; if it is an Extension, its anchor is the
// answer when that anchor is itself extendable (the anchor is guaranteed by
// invariant to be Char/Grapheme/Image, never another Extension, so a single
// hop suffices; an Image anchor ends the search with false); any other
// content — most commonly Empty — ends the search with false. It
// deliberately does not keep walking backwards past that: a cell one
// further step back that happens to be extendable is not reachable from
// here, matching the behavior notty's own find_cell_to_extend exhibits.
func (f *charGridFacade) FindCellToExtend(c Coords) (Coords, bool) {
	cell, ok := f.grid.Get(c)
	if !ok {
		return Coords{}, false
	}
	if cell.IsExtendable() {
		return c, true
	}
	if anchor, isExt := cell.ExtensionOf(); isExt {
		anchorCell, ok := f.grid.Get(anchor)
		if ok && anchorCell.IsExtendable() {
			return anchor, true
		}
		return Coords{}, false
	}
	return Coords{}, false
}
