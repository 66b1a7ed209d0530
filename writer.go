package screengrid

import "github.com/mattn/go-runewidth"

// WriteChar places a single base character at or near at, accounting for its
// display width. Wide characters (CJK, emoji) anchor the glyph and fan the
// remaining columns out as Extension cells pointing back at the anchor
// (grounded on notty's data/character.rs Char and WideChar CharData impls).
// The returned coordinates are the last cell the glyph occupies, matching
// the convention used for image writes.
func WriteChar(g WritableGrid, at Coords, r rune, styles UseStyles) Coords {
	width := uint32(runewidth.RuneWidth(r))
	if width == 0 {
		width = 1
	}
	anchor := g.BestFitForRegion(NewRegion(at.X, at.Y, width, 1))
	cell := g.Writable(anchor)
	cell.Write(CharContent(r), styles)
	for i := uint32(1); i < width; i++ {
		ext := Coords{X: anchor.X + i, Y: anchor.Y}
		g.Writable(ext).Write(ExtensionContent(anchor), styles)
	}
	return Coords{X: anchor.X + width - 1, Y: anchor.Y}
}

// WriteCombiningMark appends a combining mark to the nearest extendable cell
// behind at. Window always calls writers with the cursor's current
// coordinates, which for a combining mark sits one cell past the base
// character it should attach to, so CoordsBefore steps back one row-major
// position before searching. If no such cell exists — at the very start of
// a grid, or after an Image — the mark degrades to a plain Char write at at,
// per Cell.Extend's own fallback (grounded on notty's writer.rs
// find_cell_to_extend dispatch). Window advances the cursor one column past
// whatever coordinates are returned here, same as every other writer.
func WriteCombiningMark(g WritableGrid, at Coords, mark rune, styles UseStyles) Coords {
	target := CoordsBefore(at, g.Width())
	anchor, ok := g.FindCellToExtend(target)
	if !ok {
		return WriteChar(g, at, mark, styles)
	}
	g.Writable(anchor).Extend(mark, styles)
	return anchor
}

// WriteImage places image content in a width x height rectangle anchored at
// or near at, filling the remaining cells with Extension back-references
// so the extension cells always form a contiguous rectangle. data is
// retained, not copied, by the cell that takes ownership of the payload
// (grounded on notty's data/image.rs Image CharData impl). The returned
// coordinates are anchor + (width-1, 0); upstream's own image writer left
// this case unimplemented, so this mirrors the wide-character writer's
// convention instead.
func WriteImage(g WritableGrid, at Coords, data *ImageBytes, mime string, pos MediaPosition, width, height uint32, styles UseStyles) Coords {
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	anchor := g.BestFitForRegion(NewRegion(at.X, at.Y, width, height))
	content := ImageContent(data, mime, pos, width, height)
	g.Writable(anchor).Write(content, styles)
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			if x == 0 && y == 0 {
				continue
			}
			ext := Coords{X: anchor.X + x, Y: anchor.Y + y}
			g.Writable(ext).Write(ExtensionContent(anchor), styles)
		}
	}
	return Coords{X: anchor.X + width - 1, Y: anchor.Y}
}
