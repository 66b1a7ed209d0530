package screengrid

// ViewKind tags the View variant.
type ViewKind int

const (
	// ViewMoveable is a fixed-size viewport that slides over the backing
	// grid to keep a target point (ordinarily the cursor) visible.
	ViewMoveable ViewKind = iota
	// ViewReflowable re-wraps backing content to the viewport's width on
	// resize. Upstream never finished this mode (notty's window/view.rs
	// panics on it too) and nothing in this tree invents reflow semantics
	// to replace it.
	ViewReflowable
)

// View is the window's viewport onto the backing grid.
type View struct {
	Kind   ViewKind
	Region Region
}

// NewMoveableView builds a Moveable viewport of the given size, anchored at
// the grid's origin.
func NewMoveableView(width, height uint32) *View {
	return &View{Kind: ViewMoveable, Region: NewRegion(0, 0, width, height)}
}

// NewReflowableView builds a Reflowable viewport. Translate, KeepWithin,
// ResizeWidth and ResizeHeight panic on it; Width, Height and ToGrid only
// read its region and do not. NewWindow never builds one: it exists so the
// variant can be named without the View package pretending reflow is
// implemented.
func NewReflowableView(width, height uint32) *View {
	return &View{Kind: ViewReflowable, Region: NewRegion(0, 0, width, height)}
}

// Width returns the viewport's current width.
func (v *View) Width() uint32 { return v.Region.Width() }

// Height returns the viewport's current height.
func (v *View) Height() uint32 { return v.Region.Height() }

// Translate moves the viewport by (dx, dy) in grid coordinates, for a
// Moveable view. Reflowable views panic: reflow has no notion of a
// translatable viewport, only a re-wrap.
func (v *View) Translate(dx, dy int64) {
	switch v.Kind {
	case ViewMoveable:
		v.Region.Left = translateAxis(v.Region.Left, dx)
		v.Region.Right = translateAxis(v.Region.Right, dx)
		v.Region.Top = translateAxis(v.Region.Top, dy)
		v.Region.Bottom = translateAxis(v.Region.Bottom, dy)
	case ViewReflowable:
		panic("screengrid: Reflowable view is not implemented")
	}
}

func translateAxis(v uint32, d int64) uint32 {
	shifted := int64(v) + d
	if shifted < 0 {
		return 0
	}
	return uint32(shifted)
}

// KeepWithin slides a Moveable viewport by the smallest amount that brings p
// (the cursor, typically) back inside it. A no-op if p is already visible.
func (v *View) KeepWithin(p Coords) {
	switch v.Kind {
	case ViewMoveable:
		v.Region = v.Region.MoveToContain(p)
	case ViewReflowable:
		panic("screengrid: Reflowable view is not implemented")
	}
}

// ResizeWidth changes the viewport's width in place, anchored at its current
// left edge.
func (v *View) ResizeWidth(width uint32) {
	switch v.Kind {
	case ViewMoveable:
		v.Region.Right = v.Region.Left + width
	case ViewReflowable:
		panic("screengrid: Reflowable view is not implemented")
	}
}

// ResizeHeight changes the viewport's height in place, anchored at its
// current top edge.
func (v *View) ResizeHeight(height uint32) {
	switch v.Kind {
	case ViewMoveable:
		v.Region.Bottom = v.Region.Top + height
	case ViewReflowable:
		panic("screengrid: Reflowable view is not implemented")
	}
}

// ToGrid translates a point from viewport-local coordinates to backing-grid
// coordinates.
func (v *View) ToGrid(local Coords) Coords {
	return Coords{X: v.Region.Left + local.X, Y: v.Region.Top + local.Y}
}
