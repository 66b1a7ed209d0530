// Package decoder turns a raw byte stream from a PTY into the Command
// vocabulary github.com/corvusline/screengrid's Window accepts. It is
// deliberately thin: full escape-sequence interpretation is a named
// external collaborator (spec §1/§6) this package does not implement,
// the same way purfecterm keeps its own VT100 parser.go outside the grid
// core and texelterm keeps apps/texelterm/parser outside texel's core
// package. The one exception is SGR (colors/attributes): it's the only
// escape sequence with a direct Window command behind it, so readEscape
// recognizes that subset and leaves every other CSI swallowed.
package decoder

import (
	"bufio"
	"io"

	"github.com/corvusline/screengrid"
)

// Decoder reads runes from an io.Reader and turns each one into zero or
// more Commands. It holds no state of its own beyond the buffered reader:
// each call to Next decodes independently of earlier calls (an escape
// sequence is consumed whole within one call), so a decoder can be discarded and
// recreated across reconnects without losing anything but buffered bytes.
type Decoder struct {
	r *bufio.Reader
}

// New wraps r for rune-at-a-time decoding.
func New(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next reads and decodes the next rune, returning the Commands it produces.
// Most runes produce exactly one Command; control characters recognized
// below may produce none. An ESC is looked ahead past Decode's single-rune
// view to recognize a minimal SGR (colors/attributes) subset, since that's
// the one escape sequence with a direct Window command behind it; io.EOF
// (or any read error) is returned unwrapped so the caller's read loop can
// stop cleanly.
func (d *Decoder) Next() ([]screengrid.Command, error) {
	r, _, err := d.r.ReadRune()
	if err != nil {
		return nil, err
	}
	if r == 0x1b {
		return d.readEscape()
	}
	return Decode(r), nil
}

// readEscape consumes whatever follows an ESC already read by Next. It
// recognizes only CSI SGR sequences (ESC '[' params 'm'); every other CSI
// (cursor movement, erase, anything else) is swallowed rune-by-rune up to
// its own final byte, matching Decode's "escape sequences are the external
// collaborator's job" stance for everything but color/attribute SGR.
func (d *Decoder) readEscape() ([]screengrid.Command, error) {
	r, _, err := d.r.ReadRune()
	if err != nil {
		return nil, err
	}
	if r != '[' {
		return nil, nil
	}
	var params []int
	cur, haveDigit := 0, false
	notSGR := false
	for {
		r, _, err = d.r.ReadRune()
		if err != nil {
			return nil, err
		}
		switch {
		case r >= '0' && r <= '9':
			cur = cur*10 + int(r-'0')
			haveDigit = true
		case r == ';':
			params = append(params, cur)
			cur, haveDigit = 0, false
		case r == 'm':
			if notSGR {
				return nil, nil
			}
			if haveDigit || len(params) > 0 {
				params = append(params, cur)
			}
			return sgrCommands(params), nil
		case r >= 0x40 && r <= 0x7e:
			// Final byte of some other CSI sequence; not ours to interpret.
			return nil, nil
		default:
			// A parameter or intermediate byte outside the SGR subset ('?',
			// ':', '>', ...): keep swallowing up to the final byte.
			notSGR = true
		}
	}
}

// sgrCommands translates a parsed SGR parameter list into the Commands it
// drives: a bare or zero parameter resets styles, 30-37/40-47 and their
// 90-97/100-107 bright counterparts select a standard 16-color foreground
// or background (screengrid.StandardColor), 38;5;N/48;5;N select a
// 256-color palette entry (screengrid.PaletteColor), and 38;2;r;g;b/
// 48;2;r;g;b select a 24-bit color (screengrid.TrueColor). Unrecognized
// parameters are skipped rather than aborting the whole sequence.
func sgrCommands(params []int) []screengrid.Command {
	if len(params) == 0 {
		params = []int{0}
	}
	var s screengrid.Styles
	changed := false
	for i := 0; i < len(params); i++ {
		switch p := params[i]; {
		case p == 0:
			return []screengrid.Command{screengrid.ResetStylesCommand()}
		case p >= 30 && p <= 37:
			c := screengrid.StandardColor(p - 30)
			s.Foreground, changed = &c, true
		case p >= 40 && p <= 47:
			c := screengrid.StandardColor(p - 40)
			s.Background, changed = &c, true
		case p >= 90 && p <= 97:
			c := screengrid.StandardColor(p - 90 + 8)
			s.Foreground, changed = &c, true
		case p >= 100 && p <= 107:
			c := screengrid.StandardColor(p - 100 + 8)
			s.Background, changed = &c, true
		case p == 38 && i+2 < len(params) && params[i+1] == 5:
			c := screengrid.PaletteColor(params[i+2])
			s.Foreground, changed = &c, true
			i += 2
		case p == 48 && i+2 < len(params) && params[i+1] == 5:
			c := screengrid.PaletteColor(params[i+2])
			s.Background, changed = &c, true
			i += 2
		case p == 38 && i+4 < len(params) && params[i+1] == 2:
			c := screengrid.TrueColor(byte(params[i+2]), byte(params[i+3]), byte(params[i+4]))
			s.Foreground, changed = &c, true
			i += 4
		case p == 48 && i+4 < len(params) && params[i+1] == 2:
			c := screengrid.TrueColor(byte(params[i+2]), byte(params[i+3]), byte(params[i+4]))
			s.Background, changed = &c, true
			i += 4
		}
	}
	if !changed {
		return nil
	}
	return []screengrid.Command{screengrid.SetStyleCommand(s)}
}

// Decode translates a single rune already read from the stream into the
// Commands it drives. Exported separately from Next so callers that already
// have their own reader (tests, in-memory replays) can decode without an
// io.Reader round-trip.
func Decode(r rune) []screengrid.Command {
	switch r {
	case '\n':
		return []screengrid.Command{screengrid.MoveCursorCommand(screengrid.MoveNextLine(1))}
	case '\r':
		return []screengrid.Command{screengrid.MoveCursorCommand(screengrid.MoveToEdge(screengrid.Left))}
	case '\t':
		return []screengrid.Command{screengrid.MoveCursorCommand(screengrid.MoveTab(screengrid.Right, 1, true))}
	case '\b', 0x7f:
		return []screengrid.Command{screengrid.MoveCursorCommand(screengrid.MoveTo(screengrid.Left, 1, false))}
	case 0x07: // BEL — no visual effect on the grid, swallowed
		return nil
	case 0x1b: // bare ESC with no lookahead: Next's readEscape handles SGR
		return nil
	}
	if r < 0x20 {
		return nil
	}
	if screengrid.IsCombiningMark(r) {
		return []screengrid.Command{screengrid.WriteCommand(screengrid.ExtensionCharPayload(r))}
	}
	return []screengrid.Command{screengrid.WriteCommand(screengrid.CharPayload(r))}
}
