package screengrid

// Cursor tracks the write position and the two style slots that apply to
// it: the style that will be stamped onto the cell content the cursor sits
// over, and the style used when rendering the cursor glyph itself (grounded
// on notty's window/cursor.rs Cursor).
type Cursor struct {
	Coords    Coords
	Style     UseStyles
	TextStyle UseStyles
}

// NewCursor builds a cursor at the grid origin with default styling in both
// slots.
func NewCursor() *Cursor {
	return &Cursor{
		Coords:    Coords{X: 0, Y: 0},
		Style:     DefaultUseStyles(),
		TextStyle: DefaultUseStyles(),
	}
}

// MoveTo relocates the cursor without touching its styles.
func (c *Cursor) MoveTo(coords Coords) {
	c.Coords = coords
}

// SetStyle merges s into the cursor glyph's own style.
func (c *Cursor) SetStyle(s Styles) {
	c.Style.Update(s)
}

// ResetStyle reverts the cursor glyph's style to inherit default.
func (c *Cursor) ResetStyle() {
	c.Style = DefaultUseStyles()
}

// SetTextStyle merges s into the style that will be applied to content the
// cursor writes.
func (c *Cursor) SetTextStyle(s Styles) {
	c.TextStyle.Update(s)
}

// ResetTextStyle reverts the text style to inherit default.
func (c *Cursor) ResetTextStyle() {
	c.TextStyle = DefaultUseStyles()
}
