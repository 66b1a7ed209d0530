package screengrid

// TooltipKind tags the Tooltip variant.
type TooltipKind int

const (
	TooltipBasic TooltipKind = iota
	TooltipMenu
)

// Tooltip is a sparse per-cell annotation: a plain text hint, or a menu of
// options with an optional current selection.
type Tooltip struct {
	Kind TooltipKind

	Text string // TooltipBasic

	Options  []string // TooltipMenu
	Position *int     // TooltipMenu: nil means no selection, distinct from index 0
}

// NewBasicTooltip builds a plain-text tooltip.
func NewBasicTooltip(text string) Tooltip {
	return Tooltip{Kind: TooltipBasic, Text: text}
}

// NewMenuTooltip builds a drop-down tooltip with no selection yet.
func NewMenuTooltip(options []string) Tooltip {
	return Tooltip{Kind: TooltipMenu, Options: options}
}

// TooltipMap is a sparse mapping from cell coordinates to annotations.
// Tooltips are addressed by their anchor coordinates; they are not
// automatically updated when surrounding cells move — callers (Window)
// must remove or reinsert a tooltip on relocation. This is a deliberate
// simplification rather than tracking anchors through every shift.
type TooltipMap struct {
	entries map[Coords]Tooltip
}

// NewTooltipMap builds an empty tooltip map.
func NewTooltipMap() *TooltipMap {
	return &TooltipMap{entries: make(map[Coords]Tooltip)}
}

// Insert adds or replaces the tooltip anchored at c.
func (m *TooltipMap) Insert(c Coords, t Tooltip) {
	m.entries[c] = t
}

// Lookup returns the tooltip anchored at c, if any.
func (m *TooltipMap) Lookup(c Coords) (Tooltip, bool) {
	t, ok := m.entries[c]
	return t, ok
}

// Remove deletes the tooltip anchored at c, if any.
func (m *TooltipMap) Remove(c Coords) {
	delete(m.entries, c)
}
