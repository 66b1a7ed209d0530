package screengrid

import "sync/atomic"

// ContentKind tags the CellContent variant.
type ContentKind int

const (
	ContentEmpty ContentKind = iota
	ContentChar
	ContentGrapheme
	ContentExtension
	ContentImage
)

// ImageBytes is the reference-counted payload behind a ContentImage cell.
// Copying a Cell that holds an ImageBytes never copies the pixel data: the
// handle is shared, only the *ImageBytes pointer is copied. refs tracks
// outstanding holders so a future eviction policy could free Data once it
// drops to zero; nothing in this package currently does, but Retain/Release
// keep the count honest for that purpose.
type ImageBytes struct {
	Data []byte
	refs int32
}

// NewImageBytes wraps data in a reference-counted handle with one holder.
func NewImageBytes(data []byte) *ImageBytes {
	return &ImageBytes{Data: data, refs: 1}
}

// Retain records an additional holder of the same image bytes.
func (b *ImageBytes) Retain() {
	atomic.AddInt32(&b.refs, 1)
}

// Release records that a holder is done with the image bytes.
func (b *ImageBytes) Release() {
	atomic.AddInt32(&b.refs, -1)
}

// MediaPosition describes how image content is anchored relative to its
// declared cell rectangle (distinct from the grid anchor, which is always
// the rectangle's top-left cell).
type MediaPosition int

const (
	PositionFill MediaPosition = iota
	PositionFit
	PositionStretch
)

// CellContent is the closed set of things a cell can hold.
type CellContent struct {
	Kind ContentKind

	Char rune // ContentChar: the base codepoint

	Grapheme string // ContentGrapheme: base + combining marks, in order

	Anchor Coords // ContentExtension: coordinates of the cell that owns this slot

	// ContentImage fields.
	Image    *ImageBytes
	Mime     string
	Position MediaPosition
	Width    uint32
	Height   uint32
}

// EmptyContent is the zero-value CellContent.
var EmptyContent = CellContent{Kind: ContentEmpty}

// CharContent builds a single-codepoint cell content.
func CharContent(c rune) CellContent {
	return CellContent{Kind: ContentChar, Char: c}
}

// GraphemeContent builds a base+combining-marks cell content.
func GraphemeContent(s string) CellContent {
	return CellContent{Kind: ContentGrapheme, Grapheme: s}
}

// ExtensionContent builds a back-reference to anchor.
func ExtensionContent(anchor Coords) CellContent {
	return CellContent{Kind: ContentExtension, Anchor: anchor}
}

// ImageContent builds image cell content sharing the given byte handle.
func ImageContent(data *ImageBytes, mime string, pos MediaPosition, width, height uint32) CellContent {
	return CellContent{
		Kind: ContentImage, Image: data, Mime: mime,
		Position: pos, Width: width, Height: height,
	}
}

// String returns the cell's textual representation: the base rune plus any
// combining marks for Char/Grapheme, and the empty string otherwise.
func (c CellContent) String() string {
	switch c.Kind {
	case ContentChar:
		return string(c.Char)
	case ContentGrapheme:
		return c.Grapheme
	default:
		return ""
	}
}

// Cell is one screen position: content variant plus a style reference.
type Cell struct {
	Styles  UseStyles
	Content CellContent
}

// EmptyCell is the shared, comparable zero-value cell: Empty content with
// default styles. Window.CellAt returns a copy of it for out-of-bounds
// reads.
var EmptyCell = Cell{Styles: DefaultUseStyles(), Content: EmptyContent}

// IsExtension reports whether this cell is a non-leading slot of a
// multi-cell item.
func (c Cell) IsExtension() bool {
	return c.Content.Kind == ContentExtension
}

// IsExtendable reports whether Extend can append a combining mark to this
// cell's content in place: only Char and Grapheme cells accept combining
// marks, even though Image cells can also anchor a multi-cell item.
func (c Cell) IsExtendable() bool {
	return c.Content.Kind == ContentChar || c.Content.Kind == ContentGrapheme
}

// ExtensionOf returns the anchor this cell refers back to, if it is an
// Extension cell.
func (c Cell) ExtensionOf() (Coords, bool) {
	if c.Content.Kind == ContentExtension {
		return c.Content.Anchor, true
	}
	return Coords{}, false
}

// Write replaces this cell's content and style outright. This is the plain
// write modifier: it never looks at the cell's prior content.
func (c *Cell) Write(content CellContent, styles UseStyles) {
	c.Content = content
	c.Styles = styles
}

// Extend appends a combining mark to this cell in place: a Char becomes a
// Grapheme, a Grapheme gets the mark appended. On any other content, the
// extender degrades to writing the codepoint as a plain Char.
func (c *Cell) Extend(mark rune, styles UseStyles) {
	switch c.Content.Kind {
	case ContentChar:
		c.Content = GraphemeContent(string(c.Content.Char) + string(mark))
		c.Styles = styles
	case ContentGrapheme:
		c.Content.Grapheme += string(mark)
		c.Styles = styles
	default:
		c.Write(CharContent(mark), styles)
	}
}

// IsCombiningMark reports whether r is a Unicode combining character —
// diacritics, vowel points, and similar marks that attach to a preceding
// base character rather than occupying their own cell.
func IsCombiningMark(r rune) bool {
	switch {
	case r >= 0x0300 && r <= 0x036F: // Combining Diacritical Marks
		return true
	case r >= 0x1AB0 && r <= 0x1AFF: // Combining Diacritical Marks Extended
		return true
	case r >= 0x1DC0 && r <= 0x1DFF: // Combining Diacritical Marks Supplement
		return true
	case r >= 0x20D0 && r <= 0x20FF: // Combining Diacritical Marks for Symbols
		return true
	case r >= 0xFE20 && r <= 0xFE2F: // Combining Half Marks
		return true
	case r >= 0x0591 && r <= 0x05BD, r == 0x05BF, r == 0x05C1, r == 0x05C2,
		r == 0x05C4, r == 0x05C5, r == 0x05C7: // Hebrew points and marks
		return true
	case r >= 0x0610 && r <= 0x061A, r >= 0x064B && r <= 0x065F, r == 0x0670,
		r >= 0x06D6 && r <= 0x06DC, r >= 0x06DF && r <= 0x06E4,
		r >= 0x06E7 && r <= 0x06E8, r >= 0x06EA && r <= 0x06ED: // Arabic marks
		return true
	default:
		return false
	}
}
