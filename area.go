package screengrid

// AreaKind tags the Area variant: the vocabulary Window's erase/style ops
// accept for naming a region of the grid relative to the cursor or the
// view.
type AreaKind int

const (
	// AreaCursorTo spans from the cursor to wherever Movement would land.
	AreaCursorTo AreaKind = iota
	// AreaBelowCursor spans every row below the cursor's row, optionally
	// including the cursor's own row.
	AreaBelowCursor
	// AreaCursorBound spans from the cursor to an absolute coordinate.
	AreaCursorBound
	// AreaRow spans one full row of the view.
	AreaRow
	// AreaColumn spans one full column of the view.
	AreaColumn
	// AreaWhole spans the entire view.
	AreaWhole
)

// Area names a region of the viewport without requiring the caller to
// compute coordinates directly.
type Area struct {
	Kind           AreaKind
	Movement       Movement
	IncludeCurrent bool
	Bound          Coords
	Index          uint32
}

// AreaCursorToMovement builds an AreaCursorTo.
func AreaCursorToMovement(m Movement) Area {
	return Area{Kind: AreaCursorTo, Movement: m}
}

// AreaBelowCursorRows builds an AreaBelowCursor.
func AreaBelowCursorRows(includeCurrent bool) Area {
	return Area{Kind: AreaBelowCursor, IncludeCurrent: includeCurrent}
}

// AreaCursorBoundAt builds an AreaCursorBound.
func AreaCursorBoundAt(c Coords) Area {
	return Area{Kind: AreaCursorBound, Bound: c}
}

// AreaRowAt builds an AreaRow.
func AreaRowAt(y uint32) Area {
	return Area{Kind: AreaRow, Index: y}
}

// AreaColumnAt builds an AreaColumn.
func AreaColumnAt(x uint32) Area {
	return Area{Kind: AreaColumn, Index: x}
}

// AreaWholeView builds an AreaWhole.
func AreaWholeView() Area {
	return Area{Kind: AreaWhole}
}

// resolve turns an Area into a concrete Region, given the cursor's current
// position and the view's current bounds (grid coordinates, not necessarily
// anchored at the grid's origin once scrollback has slid the view down).
func (a Area) resolve(cursor Coords, bounds Region) Region {
	switch a.Kind {
	case AreaCursorTo:
		target := a.Movement.apply(cursor, bounds)
		return orderedRegion(cursor, target)
	case AreaBelowCursor:
		top := cursor.Y
		if !a.IncludeCurrent {
			top++
		}
		if top > bounds.Bottom {
			top = bounds.Bottom
		}
		if top < bounds.Top {
			top = bounds.Top
		}
		return Region{Left: bounds.Left, Top: top, Right: bounds.Right, Bottom: bounds.Bottom}
	case AreaCursorBound:
		return orderedRegion(cursor, a.Bound)
	case AreaRow:
		return Region{Left: bounds.Left, Top: a.Index, Right: bounds.Right, Bottom: a.Index + 1}
	case AreaColumn:
		return Region{Left: a.Index, Top: bounds.Top, Right: a.Index + 1, Bottom: bounds.Bottom}
	case AreaWhole:
		return bounds
	default:
		return Region{}
	}
}

func orderedRegion(a, b Coords) Region {
	left, right := a.X, b.X
	if left > right {
		left, right = right, left
	}
	top, bottom := a.Y, b.Y
	if top > bottom {
		top, bottom = bottom, top
	}
	return Region{Left: left, Top: top, Right: right + 1, Bottom: bottom + 1}
}

// CoordsIter walks a Region in row-major order. It is finite, deterministic,
// and can run in either direction: the Window insert operations (row and
// column insert) depend on iterating back to front so a Moveover-based
// shift never overwrites a cell before it has been read.
type CoordsIter struct {
	region  Region
	reverse bool
	x, y    uint32
	done    bool
}

// NewCoordsIter builds a forward iterator over r.
func NewCoordsIter(r Region) *CoordsIter {
	it := &CoordsIter{region: r}
	it.reset()
	return it
}

// NewReverseCoordsIter builds an iterator over r that yields coordinates
// back to front.
func NewReverseCoordsIter(r Region) *CoordsIter {
	it := &CoordsIter{region: r, reverse: true}
	it.reset()
	return it
}

func (it *CoordsIter) reset() {
	if it.region.Empty() {
		it.done = true
		return
	}
	if it.reverse {
		it.x, it.y = it.region.Right-1, it.region.Bottom-1
	} else {
		it.x, it.y = it.region.Left, it.region.Top
	}
	it.done = false
}

// Next returns the next coordinate and true, or a zero value and false once
// the region is exhausted.
func (it *CoordsIter) Next() (Coords, bool) {
	if it.done {
		return Coords{}, false
	}
	c := Coords{X: it.x, Y: it.y}
	if it.reverse {
		if it.x > it.region.Left {
			it.x--
		} else if it.y > it.region.Top {
			it.y--
			it.x = it.region.Right - 1
		} else {
			it.done = true
		}
	} else {
		if it.x+1 < it.region.Right {
			it.x++
		} else if it.y+1 < it.region.Bottom {
			it.y++
			it.x = it.region.Left
		} else {
			it.done = true
		}
	}
	return c, true
}
