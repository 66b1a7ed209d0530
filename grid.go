package screengrid

// DataGrid is a resizable 2-D container of cells, with an optional maximum
// width and/or maximum height. Unifying bounded and unbounded axes under a
// single growth-budget counter per axis lets the same Scroll implementation
// drive both a fixed-size screen and an unbounded scrollback grid (grounded
// on notty's char_grid/grid.rs Grid<T>).
//
// remX/remY hold the remaining growth budget for that axis: nil means
// unbounded, a pointer to 0 means the axis is already at its cap. They are
// not the same as "maximum width/height" — GuaranteeWidth/GuaranteeHeight
// only ever raise the budget, never the current size.
type DataGrid[T any] struct {
	width, height uint32
	cells         []T
	remX, remY    *uint32
}

// NewDataGrid builds an empty grid. A nil cap means that axis is unbounded.
func NewDataGrid[T any](maxWidth, maxHeight *uint32) *DataGrid[T] {
	g := &DataGrid[T]{}
	if maxWidth != nil {
		w := *maxWidth
		g.remX = &w
	}
	if maxHeight != nil {
		h := *maxHeight
		g.remY = &h
	}
	return g
}

// Width returns the current width.
func (g *DataGrid[T]) Width() uint32 { return g.width }

// Height returns the current height.
func (g *DataGrid[T]) Height() uint32 { return g.height }

// Bounds reports the grid's extent, or false if either dimension is zero:
// a grid with any zero dimension holds no cells.
func (g *DataGrid[T]) Bounds() (Region, bool) {
	if g.width == 0 || g.height == 0 {
		return Region{}, false
	}
	return NewRegion(0, 0, g.width, g.height), true
}

func linearize(width uint32, c Coords) int {
	return int(c.Y)*int(width) + int(c.X)
}

// Get returns the cell at c, or false if c is outside the current bounds.
func (g *DataGrid[T]) Get(c Coords) (T, bool) {
	bounds, ok := g.Bounds()
	if !ok || !bounds.Contains(c) {
		var zero T
		return zero, false
	}
	return g.cells[linearize(g.width, c)], true
}

// GetMut returns a pointer to the cell at c, or nil if c is out of bounds.
func (g *DataGrid[T]) GetMut(c Coords) *T {
	bounds, ok := g.Bounds()
	if !ok || !bounds.Contains(c) {
		return nil
	}
	return &g.cells[linearize(g.width, c)]
}

// GuaranteeWidth raises the grid's maximum width so it can grow to reach w,
// without changing the current width. It is a no-op if the axis is already
// unbounded or the budget already reaches w: repeated or shrinking calls
// never lower a budget already raised.
func (g *DataGrid[T]) GuaranteeWidth(w uint32) {
	if g.remX == nil {
		return
	}
	newRem := satSub(w, g.width)
	if newRem > *g.remX {
		*g.remX = newRem
	}
}

// GuaranteeHeight is GuaranteeWidth's vertical counterpart.
func (g *DataGrid[T]) GuaranteeHeight(h uint32) {
	if g.remY == nil {
		return
	}
	newRem := satSub(h, g.height)
	if newRem > *g.remY {
		*g.remY = newRem
	}
}

// FillTo grows the grid right and/or down so that c becomes in-bounds.
// Growth saturates against each axis's remaining budget rather than
// failing.
func (g *DataGrid[T]) FillTo(c Coords) {
	if c.X+1 > g.width {
		g.extendRight(c.X + 1 - g.width)
	}
	if c.Y+1 > g.height {
		g.extendDown(c.Y + 1 - g.height)
	}
}

// Scroll moves visible content by n cells in dir. If there is growth budget
// remaining in that direction, the grid extends (retaining existing
// content, introducing defaults on the receding side); otherwise it shifts,
// losing the off-edge content. If n is at least the grid's extent along
// dir, the whole grid is cleared.
func (g *DataGrid[T]) Scroll(n uint32, dir Direction) {
	switch dir {
	case Up:
		switch {
		case g.remY == nil || *g.remY != 0:
			g.extendUp(n)
		case n >= g.height:
			g.clear()
		default:
			g.shiftUp(n)
		}
	case Down:
		switch {
		case g.remY == nil || *g.remY != 0:
			g.extendDown(n)
		case n >= g.height:
			g.clear()
		default:
			g.shiftDown(n)
		}
	case Left:
		switch {
		case g.remX == nil || *g.remX != 0:
			g.extendLeft(n)
		case n >= g.width:
			g.clear()
		default:
			g.shiftLeft(n)
		}
	case Right:
		switch {
		case g.remX == nil || *g.remX != 0:
			g.extendRight(n)
		case n >= g.width:
			g.clear()
		default:
			g.shiftRight(n)
		}
	}
}

// Moveover relocates the cell value from "from" to "to", leaving "from"
// default. A no-op if "from" is out of bounds; if "to" is out of bounds
// the value is simply dropped, matching notty's Grid::moveover.
func (g *DataGrid[T]) Moveover(from, to Coords) {
	src := g.GetMut(from)
	if src == nil {
		return
	}
	var zero T
	val := *src
	*src = zero
	if dst := g.GetMut(to); dst != nil {
		*dst = val
	}
}

func (g *DataGrid[T]) clear() {
	for i := range g.cells {
		var zero T
		g.cells[i] = zero
	}
}

func satSub(a, b uint32) uint32 {
	if a < b {
		return 0
	}
	return a - b
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func (g *DataGrid[T]) extendUp(n uint32) {
	remOrN := n
	if g.remY != nil {
		remOrN = minU32(*g.remY, n)
	}
	if remOrN > 0 {
		blank := make([]T, remOrN*g.width)
		g.cells = append(blank, g.cells...)
		g.height += remOrN
	}
	if g.remY != nil && n > *g.remY {
		rem := n - *g.remY
		*g.remY = 0
		g.shiftUp(rem)
	} else if g.remY != nil {
		*g.remY -= n
	}
}

func (g *DataGrid[T]) extendDown(n uint32) {
	remOrN := n
	if g.remY != nil {
		remOrN = minU32(*g.remY, n)
	}
	if remOrN > 0 {
		g.cells = append(g.cells, make([]T, remOrN*g.width)...)
		g.height += remOrN
	}
	if g.remY != nil && n > *g.remY {
		rem := n - *g.remY
		*g.remY = 0
		g.shiftDown(rem)
	} else if g.remY != nil {
		*g.remY -= n
	}
}

func (g *DataGrid[T]) extendLeft(n uint32) {
	remOrN := n
	if g.remX != nil {
		remOrN = minU32(*g.remX, n)
	}
	if remOrN > 0 {
		g.insertColumns(0, remOrN)
	}
	if g.remX != nil && n > *g.remX {
		rem := n - *g.remX
		*g.remX = 0
		g.shiftLeft(rem)
	} else if g.remX != nil {
		*g.remX -= n
	}
}

func (g *DataGrid[T]) extendRight(n uint32) {
	remOrN := n
	if g.remX != nil {
		remOrN = minU32(*g.remX, n)
	}
	if remOrN > 0 {
		g.insertColumns(g.width, remOrN)
	}
	if g.remX != nil && n > *g.remX {
		rem := n - *g.remX
		*g.remX = 0
		g.shiftRight(rem)
	} else if g.remX != nil {
		*g.remX -= n
	}
}

// insertColumns inserts n default columns before column index `at`
// (0 <= at <= g.width), rebuilding the row-major array at the new width.
func (g *DataGrid[T]) insertColumns(at, n uint32) {
	newWidth := g.width + n
	out := make([]T, newWidth*g.height)
	for y := uint32(0); y < g.height; y++ {
		srcRow := g.cells[y*g.width : (y+1)*g.width]
		dstRow := out[y*newWidth : (y+1)*newWidth]
		copy(dstRow[:at], srcRow[:at])
		copy(dstRow[at+n:], srcRow[at:])
	}
	g.cells = out
	g.width = newWidth
}

func (g *DataGrid[T]) shiftUp(n uint32) {
	if n == 0 || g.width == 0 {
		return
	}
	cut := n * g.width
	if int(cut) > len(g.cells) {
		cut = uint32(len(g.cells))
	}
	blank := make([]T, cut)
	g.cells = append(blank, g.cells[:uint32(len(g.cells))-cut]...)
}

func (g *DataGrid[T]) shiftDown(n uint32) {
	if n == 0 || g.width == 0 {
		return
	}
	cut := n * g.width
	if int(cut) > len(g.cells) {
		cut = uint32(len(g.cells))
	}
	blank := make([]T, cut)
	g.cells = append(g.cells[cut:], blank...)
}

func (g *DataGrid[T]) shiftLeft(n uint32) {
	if n == 0 || g.width == 0 {
		return
	}
	if n > g.width {
		n = g.width
	}
	for y := uint32(0); y < g.height; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		copy(row[n:], row[:g.width-n])
		var zero T
		for x := uint32(0); x < n; x++ {
			row[x] = zero
		}
	}
}

func (g *DataGrid[T]) shiftRight(n uint32) {
	if n == 0 || g.width == 0 {
		return
	}
	if n > g.width {
		n = g.width
	}
	for y := uint32(0); y < g.height; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		copy(row[:g.width-n], row[n:])
		var zero T
		for x := g.width - n; x < g.width; x++ {
			row[x] = zero
		}
	}
}
