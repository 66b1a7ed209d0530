package screengrid

// PayloadKind tags the Payload variant.
type PayloadKind int

const (
	// PayloadChar is a single base codepoint, occupying one or more cells
	// depending on its display width.
	PayloadChar PayloadKind = iota
	// PayloadExtensionChar is a combining mark meant to attach to
	// whatever content precedes the cursor.
	PayloadExtensionChar
	// PayloadImage is inline image content.
	PayloadImage
)

// Payload is the inbound content a Write command carries. Image bytes are
// taken over by the cell the writer places them in, not copied.
type Payload struct {
	Kind PayloadKind

	Char rune // PayloadChar, PayloadExtensionChar

	Image    *ImageBytes // PayloadImage
	Mime     string
	Position MediaPosition
	Width    uint32
	Height   uint32
}

// CharPayload builds a PayloadChar.
func CharPayload(r rune) Payload {
	return Payload{Kind: PayloadChar, Char: r}
}

// ExtensionCharPayload builds a PayloadExtensionChar. Callers are expected
// to have already classified r as a combining mark (IsCombiningMark);
// WriteCombiningMark degrades gracefully if it hasn't one to attach to, but
// it does not itself re-check that r is combining.
func ExtensionCharPayload(r rune) Payload {
	return Payload{Kind: PayloadExtensionChar, Char: r}
}

// ImagePayload builds a PayloadImage.
func ImagePayload(data *ImageBytes, mime string, pos MediaPosition, width, height uint32) Payload {
	return Payload{Kind: PayloadImage, Image: data, Mime: mime, Position: pos, Width: width, Height: height}
}

// CommandKind tags the Command variant: the full set of inbound operations
// a Window accepts, gathered into one closed sum so a decoder sitting in
// front of a Window (translating some wire protocol into these) has a
// single type to produce.
type CommandKind int

const (
	CommandWrite CommandKind = iota
	CommandMoveCursor
	CommandSetStyle
	CommandResetStyles
	CommandSetCursorStyle
	CommandResetCursorStyles
	CommandErase
	CommandInsertBlank
	CommandRemoveAt
	CommandInsertRows
	CommandRemoveRows
	CommandSetStyleIn
	CommandResetStylesIn
	CommandScroll
	CommandAddTooltip
	CommandAddDropDown
	CommandRemoveTooltip
	CommandResize
)

// Command is one inbound instruction to a Window.
type Command struct {
	Kind CommandKind

	Payload        Payload
	Movement       Movement
	Style          Styles
	Area           Area
	N              uint32
	IncludeCurrent bool
	Direction      Direction
	Coords         Coords
	Text           string
	Options        []string
	Width, Height  uint32
}

// WriteCommand builds a CommandWrite.
func WriteCommand(p Payload) Command { return Command{Kind: CommandWrite, Payload: p} }

// MoveCursorCommand builds a CommandMoveCursor.
func MoveCursorCommand(m Movement) Command { return Command{Kind: CommandMoveCursor, Movement: m} }

// SetStyleCommand builds a CommandSetStyle.
func SetStyleCommand(s Styles) Command { return Command{Kind: CommandSetStyle, Style: s} }

// ResetStylesCommand builds a CommandResetStyles.
func ResetStylesCommand() Command { return Command{Kind: CommandResetStyles} }

// SetCursorStyleCommand builds a CommandSetCursorStyle.
func SetCursorStyleCommand(s Styles) Command { return Command{Kind: CommandSetCursorStyle, Style: s} }

// ResetCursorStylesCommand builds a CommandResetCursorStyles.
func ResetCursorStylesCommand() Command { return Command{Kind: CommandResetCursorStyles} }

// EraseCommand builds a CommandErase.
func EraseCommand(a Area) Command { return Command{Kind: CommandErase, Area: a} }

// InsertBlankCommand builds a CommandInsertBlank.
func InsertBlankCommand(n uint32) Command { return Command{Kind: CommandInsertBlank, N: n} }

// RemoveAtCommand builds a CommandRemoveAt.
func RemoveAtCommand(n uint32) Command { return Command{Kind: CommandRemoveAt, N: n} }

// InsertRowsCommand builds a CommandInsertRows.
func InsertRowsCommand(n uint32, includeCurrent bool) Command {
	return Command{Kind: CommandInsertRows, N: n, IncludeCurrent: includeCurrent}
}

// RemoveRowsCommand builds a CommandRemoveRows.
func RemoveRowsCommand(n uint32, includeCurrent bool) Command {
	return Command{Kind: CommandRemoveRows, N: n, IncludeCurrent: includeCurrent}
}

// SetStyleInCommand builds a CommandSetStyleIn.
func SetStyleInCommand(a Area, s Styles) Command {
	return Command{Kind: CommandSetStyleIn, Area: a, Style: s}
}

// ResetStylesInCommand builds a CommandResetStylesIn.
func ResetStylesInCommand(a Area) Command { return Command{Kind: CommandResetStylesIn, Area: a} }

// ScrollCommand builds a CommandScroll.
func ScrollCommand(n uint32, dir Direction) Command {
	return Command{Kind: CommandScroll, N: n, Direction: dir}
}

// AddTooltipCommand builds a CommandAddTooltip.
func AddTooltipCommand(c Coords, text string) Command {
	return Command{Kind: CommandAddTooltip, Coords: c, Text: text}
}

// AddDropDownCommand builds a CommandAddDropDown.
func AddDropDownCommand(c Coords, options []string) Command {
	return Command{Kind: CommandAddDropDown, Coords: c, Options: options}
}

// RemoveTooltipCommand builds a CommandRemoveTooltip.
func RemoveTooltipCommand(c Coords) Command {
	return Command{Kind: CommandRemoveTooltip, Coords: c}
}

// ResizeCommand builds a CommandResize.
func ResizeCommand(width, height uint32) Command {
	return Command{Kind: CommandResize, Width: width, Height: height}
}

// Apply dispatches cmd to the matching Window method. It is the single
// entry point a front end (a protocol decoder, a test harness) needs once
// it has turned its own input into a Command.
func (w *Window) Apply(cmd Command) {
	switch cmd.Kind {
	case CommandWrite:
		w.Write(cmd.Payload)
	case CommandMoveCursor:
		w.MoveCursor(cmd.Movement)
	case CommandSetStyle:
		w.SetStyle(cmd.Style)
	case CommandResetStyles:
		w.ResetStyles()
	case CommandSetCursorStyle:
		w.SetCursorStyle(cmd.Style)
	case CommandResetCursorStyles:
		w.ResetCursorStyles()
	case CommandErase:
		w.Erase(cmd.Area)
	case CommandInsertBlank:
		w.InsertBlankAt(cmd.N)
	case CommandRemoveAt:
		w.RemoveAt(cmd.N)
	case CommandInsertRows:
		w.InsertRowsAt(cmd.N, cmd.IncludeCurrent)
	case CommandRemoveRows:
		w.RemoveRowsAt(cmd.N, cmd.IncludeCurrent)
	case CommandSetStyleIn:
		w.SetStyleInArea(cmd.Area, cmd.Style)
	case CommandResetStylesIn:
		w.ResetStylesInArea(cmd.Area)
	case CommandScroll:
		w.Scroll(cmd.N, cmd.Direction)
	case CommandAddTooltip:
		w.AddTooltip(cmd.Coords, cmd.Text)
	case CommandAddDropDown:
		w.AddDropDown(cmd.Coords, cmd.Options)
	case CommandRemoveTooltip:
		w.RemoveTooltip(cmd.Coords)
	case CommandResize:
		w.ResizeWidth(cmd.Width)
		w.ResizeHeight(cmd.Height)
	}
}
