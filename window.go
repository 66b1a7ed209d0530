package screengrid

// Window is the high-level command surface: a backing grid, a Moveable
// view onto it, a cursor, and the tooltip annotations (addressed by
// view-local coordinates, stored at the grid coordinates those translate
// to) (grounded on notty's char_grid/mod.rs CharGrid and
// char_grid/window.rs Window, merged into one type since this package has
// no separate multi-pane Screen above it).
type Window struct {
	grid     *DataGrid[Cell]
	facade   *charGridFacade
	tooltips *TooltipMap
	cursor   *Cursor
	view     *View
}

// NewWindow builds a Window of the given viewport size. retainOffscreenState
// mirrors CharGrid::new's three-way choice: when false, the backing grid is
// capped to exactly the viewport (no history). When true, the package's
// Scrollback tunable decides the backing grid's height budget: positive N
// caps height at min(N, height) with width capped at the viewport width;
// zero retains nothing beyond the viewport, the same as the non-retaining
// case; negative leaves both axes unbounded. The view starts Moveable,
// anchored at the grid's origin, and slides down as cursor moves run past
// its bottom edge (MoveCursor calls View.KeepWithin after each relocation;
// Write does not, and clamps the cursor to the view instead). The cursor's text style seeds from the package-wide
// DefaultTextStyles, which a loaded Settings.Apply installs — this is how
// a configured default style reaches the Window the spec's
// Window::new(..., settings) describes.
func NewWindow(width, height uint32, retainOffscreenState bool) *Window {
	var grid *DataGrid[Cell]
	switch {
	case !retainOffscreenState:
		grid = NewDataGrid[Cell](&width, &height)
	case Scrollback() > 0:
		cap := minU32(uint32(Scrollback()), height)
		grid = NewDataGrid[Cell](&width, &cap)
	case Scrollback() == 0:
		grid = NewDataGrid[Cell](&width, &height)
	default:
		grid = NewDataGrid[Cell](nil, nil)
	}
	cursor := NewCursor()
	if ds := DefaultTextStyles(); ds != (Styles{}) {
		cursor.SetTextStyle(ds)
	}
	return &Window{
		grid:     grid,
		facade:   newCharGridFacade(grid),
		tooltips: NewTooltipMap(),
		cursor:   cursor,
		view:     NewMoveableView(width, height),
	}
}

// Width returns the viewport width.
func (w *Window) Width() uint32 { return w.view.Width() }

// Height returns the viewport height.
func (w *Window) Height() uint32 { return w.view.Height() }

// ViewBounds returns the view's current rectangle in grid coordinates.
func (w *Window) ViewBounds() Region { return w.view.Region }

// ResizeWidth changes the viewport width, guaranteeing the backing grid can
// grow to match.
func (w *Window) ResizeWidth(width uint32) {
	w.view.ResizeWidth(width)
	w.grid.GuaranteeWidth(width)
}

// ResizeHeight changes the viewport height, guaranteeing the backing grid
// can grow to match.
func (w *Window) ResizeHeight(height uint32) {
	w.view.ResizeHeight(height)
	w.grid.GuaranteeHeight(height)
}

// CursorPosition returns the cursor's current grid coordinates.
func (w *Window) CursorPosition() Coords { return w.cursor.Coords }

// CursorTextStyle returns the style newly written content at the cursor
// will take on.
func (w *Window) CursorTextStyle() UseStyles { return w.cursor.TextStyle }

// CursorGlyphStyle returns the style the cursor glyph itself renders with.
func (w *Window) CursorGlyphStyle() UseStyles { return w.cursor.Style }

// SetStyle merges s into the style applied to content written from now on.
func (w *Window) SetStyle(s Styles) { w.cursor.SetTextStyle(s) }

// ResetStyles reverts the cursor's write style to inherit default.
func (w *Window) ResetStyles() { w.cursor.ResetTextStyle() }

// SetCursorStyle merges s into the cursor glyph's own rendering style.
func (w *Window) SetCursorStyle(s Styles) { w.cursor.SetStyle(s) }

// ResetCursorStyles reverts the cursor glyph's style to inherit default.
func (w *Window) ResetCursorStyles() { w.cursor.ResetStyle() }

// CellAt returns the cell at c, or the shared empty cell if c is out of the
// backing grid's current bounds (grounded on CharGrid's Index impl, which
// falls back to DEFAULT_CELL rather than panicking).
func (w *Window) CellAt(c Coords) Cell {
	if cell, ok := w.grid.Get(c); ok {
		return cell
	}
	return EmptyCell
}

// Coords iterates every cell position currently in the view, row-major.
func (w *Window) Coords() *CoordsIter {
	return NewCoordsIter(w.view.Region)
}

// Write places payload content at the cursor and advances the cursor past
// it, wrapping to the next row when the glyph would overrun the view's
// right edge, clamped to the view's current bottom edge. Only MoveCursor
// slides the view to follow the cursor past that edge, per spec.
func (w *Window) Write(p Payload) {
	switch p.Kind {
	case PayloadChar:
		final := WriteChar(w.facade, w.cursor.Coords, p.Char, w.cursor.TextStyle)
		w.advanceCursorAfter(final)
	case PayloadExtensionChar:
		final := WriteCombiningMark(w.facade, w.cursor.Coords, p.Char, w.cursor.TextStyle)
		w.advanceCursorAfter(final)
	case PayloadImage:
		final := WriteImage(w.facade, w.cursor.Coords, p.Image, p.Mime, p.Position, p.Width, p.Height, w.cursor.TextStyle)
		w.advanceCursorAfter(final)
	}
}

func (w *Window) advanceCursorAfter(final Coords) {
	b := w.view.Region
	next := Coords{X: final.X + 1, Y: final.Y}
	if b.Width() > 0 && next.X >= b.Right {
		if next.Y+1 < b.Bottom {
			next = Coords{X: b.Left, Y: next.Y + 1}
		} else {
			next.X = b.Right - 1
		}
	}
	w.cursor.MoveTo(next)
}

// MoveCursor relocates the cursor per m, then walks it clear of any
// Extension cell it might have landed inside (grounded on CharGrid's
// move_out_of_extension: a cursor must always rest on a cell that owns its
// own content, never on a back-reference slot), and finally slides the view
// to keep the new position visible.
func (w *Window) MoveCursor(m Movement) {
	target := m.apply(w.cursor.Coords, w.view.Region)
	dir := m.Direction
	if m.Kind == MovementPosition || m.Kind == MovementNextLine || m.Kind == MovementToBeginning {
		dir = Right
	}
	resolved := w.moveOutOfExtension(target, dir)
	// The grid must contain the cursor's new cell even when nothing has
	// been written there yet, the same way a newline grows scrollback
	// before any character lands on the new line.
	w.grid.FillTo(resolved)
	w.cursor.MoveTo(resolved)
	w.view.KeepWithin(resolved)
}

func (w *Window) moveOutOfExtension(c Coords, dir Direction) Coords {
	for {
		cell, ok := w.grid.Get(c)
		if !ok || !cell.IsExtension() {
			return c
		}
		stepped, ok := stepDirection(c, dir)
		if !ok {
			return c
		}
		c = stepped
	}
}

func stepDirection(c Coords, dir Direction) (Coords, bool) {
	switch dir {
	case Up:
		if c.Y == 0 {
			return c, false
		}
		return Coords{X: c.X, Y: c.Y - 1}, true
	case Down:
		return Coords{X: c.X, Y: c.Y + 1}, true
	case Left:
		if c.X == 0 {
			return c, false
		}
		return Coords{X: c.X - 1, Y: c.Y}, true
	case Right:
		return Coords{X: c.X + 1, Y: c.Y}, true
	default:
		return c, false
	}
}

// Erase clears every cell in area to the shared empty content, leaving
// styles at their default (grounded on CharGrid::erase).
func (w *Window) Erase(area Area) {
	it := NewCoordsIter(area.resolve(w.cursor.Coords, w.view.Region))
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if cell := w.grid.GetMut(c); cell != nil {
			*cell = EmptyCell
		}
	}
}

// SetStyleInArea merges s into every cell's style within area.
func (w *Window) SetStyleInArea(area Area, s Styles) {
	it := NewCoordsIter(area.resolve(w.cursor.Coords, w.view.Region))
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		cell := w.facade.Writable(c)
		cell.Styles.Update(s)
	}
}

// ResetStylesInArea reverts every cell's style within area to default.
func (w *Window) ResetStylesInArea(area Area) {
	it := NewCoordsIter(area.resolve(w.cursor.Coords, w.view.Region))
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		cell := w.facade.Writable(c)
		cell.Styles = DefaultUseStyles()
	}
}

// InsertBlankAt opens up n blank cells at the cursor's row, starting at the
// cursor's column, shifting the rest of the row right and dropping content
// that runs past the viewport's edge. Iterating back-to-front keeps a cell
// from being overwritten before its own value has been read.
func (w *Window) InsertBlankAt(n uint32) {
	b := w.view.Region
	if n == 0 || b.Width() == 0 {
		return
	}
	row := w.cursor.Coords.Y
	start := w.cursor.Coords.X
	it := NewReverseCoordsIter(Region{Left: start, Top: row, Right: b.Right, Bottom: row + 1})
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		dst := Coords{X: c.X + n, Y: row}
		if dst.X < b.Right {
			w.grid.Moveover(c, dst)
		} else if cell := w.grid.GetMut(c); cell != nil {
			*cell = EmptyCell
		}
	}
	gapEnd := minU32(start+n, b.Right)
	for x := start; x < gapEnd; x++ {
		*w.facade.Writable(Coords{X: x, Y: row}) = EmptyCell
	}
}

// RemoveAt closes up n cells at the cursor's row, starting at the cursor's
// column, shifting the remainder of the row left and blanking the row's
// tail.
func (w *Window) RemoveAt(n uint32) {
	b := w.view.Region
	if n == 0 || b.Width() == 0 {
		return
	}
	row := w.cursor.Coords.Y
	start := w.cursor.Coords.X
	srcStart := start + n
	it := NewCoordsIter(Region{Left: srcStart, Top: row, Right: b.Right, Bottom: row + 1})
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		w.grid.Moveover(c, Coords{X: c.X - n, Y: row})
	}
	clearStart := satSub(b.Right, n)
	if clearStart < start {
		clearStart = start
	}
	for x := clearStart; x < b.Right; x++ {
		if cell := w.grid.GetMut(Coords{X: x, Y: row}); cell != nil {
			*cell = EmptyCell
		}
	}
}

// InsertRowsAt opens up n blank rows at or below the cursor's row —
// including the cursor's own row when includeCurrent is set, otherwise
// starting just below it — shifting the rest of the view down and dropping
// rows that run past its bottom edge.
func (w *Window) InsertRowsAt(n uint32, includeCurrent bool) {
	if n == 0 {
		return
	}
	b := w.view.Region
	startY := w.cursor.Coords.Y
	if !includeCurrent {
		startY++
	}
	if startY >= b.Bottom {
		return
	}
	it := NewReverseCoordsIter(Region{Left: b.Left, Top: startY, Right: b.Right, Bottom: b.Bottom})
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		dst := Coords{X: c.X, Y: c.Y + n}
		if dst.Y < b.Bottom {
			w.grid.Moveover(c, dst)
		} else if cell := w.grid.GetMut(c); cell != nil {
			*cell = EmptyCell
		}
	}
	clearEnd := minU32(startY+n, b.Bottom)
	for y := startY; y < clearEnd; y++ {
		for x := b.Left; x < b.Right; x++ {
			*w.facade.Writable(Coords{X: x, Y: y}) = EmptyCell
		}
	}
}

// RemoveRowsAt closes up n rows at or below the cursor's row, shifting the
// rest of the view up and blanking the rows uncovered at the bottom.
func (w *Window) RemoveRowsAt(n uint32, includeCurrent bool) {
	if n == 0 {
		return
	}
	b := w.view.Region
	startY := w.cursor.Coords.Y
	if !includeCurrent {
		startY++
	}
	if startY >= b.Bottom {
		return
	}
	srcStart := startY + n
	it := NewCoordsIter(Region{Left: b.Left, Top: srcStart, Right: b.Right, Bottom: b.Bottom})
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		w.grid.Moveover(c, Coords{X: c.X, Y: c.Y - n})
	}
	clearStart := satSub(b.Bottom, n)
	if clearStart < startY {
		clearStart = startY
	}
	for y := clearStart; y < b.Bottom; y++ {
		for x := b.Left; x < b.Right; x++ {
			if cell := w.grid.GetMut(Coords{X: x, Y: y}); cell != nil {
				*cell = EmptyCell
			}
		}
	}
}

// Scroll moves the backing grid's content by n cells in dir (grounded on
// CharGrid::scroll).
func (w *Window) Scroll(n uint32, dir Direction) {
	w.grid.Scroll(n, dir)
}

// AddTooltip anchors a plain-text tooltip at c, a viewport-local coordinate
// translated through the view to grid space. A tooltip is not re-anchored
// when the view later slides or rows/columns shift underneath it.
func (w *Window) AddTooltip(c Coords, text string) {
	w.tooltips.Insert(w.view.ToGrid(c), NewBasicTooltip(text))
}

// AddDropDown anchors a menu tooltip at c (viewport-local) with no option
// selected yet.
func (w *Window) AddDropDown(c Coords, options []string) {
	w.tooltips.Insert(w.view.ToGrid(c), NewMenuTooltip(options))
}

// RemoveTooltip removes whatever tooltip is anchored at c (viewport-local),
// if any.
func (w *Window) RemoveTooltip(c Coords) {
	w.tooltips.Remove(w.view.ToGrid(c))
}

// TooltipAt returns the tooltip anchored at c (viewport-local), if any.
func (w *Window) TooltipAt(c Coords) (Tooltip, bool) {
	return w.tooltips.Lookup(w.view.ToGrid(c))
}

// UpdateTooltip applies update to the tooltip anchored at c (viewport-local)
// and writes the result back, reporting whether one was found. This stands
// in for returning a mutable reference into the tooltip map, which Go's map
// semantics don't allow.
func (w *Window) UpdateTooltip(c Coords, update func(t *Tooltip)) bool {
	gc := w.view.ToGrid(c)
	t, ok := w.tooltips.Lookup(gc)
	if !ok {
		return false
	}
	update(&t)
	w.tooltips.Insert(gc, t)
	return true
}
