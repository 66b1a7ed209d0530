package decoder

import (
	"strings"
	"testing"

	"github.com/corvusline/screengrid"
)

func TestDecodePrintableRuneWritesChar(t *testing.T) {
	cmds := Decode('a')
	if len(cmds) != 1 || cmds[0].Kind != screengrid.CommandWrite || cmds[0].Payload.Char != 'a' {
		t.Fatalf("Decode('a') = %+v, want a single CommandWrite", cmds)
	}
}

func TestDecodeCombiningMarkWritesExtension(t *testing.T) {
	const acute = '́'
	cmds := Decode(acute)
	if len(cmds) != 1 || cmds[0].Kind != screengrid.CommandWrite || cmds[0].Payload.Kind != screengrid.PayloadExtensionChar {
		t.Fatalf("Decode(acute) = %+v, want a single extension-char write", cmds)
	}
}

func TestDecodeNewlineMovesNextLine(t *testing.T) {
	cmds := Decode('\n')
	if len(cmds) != 1 || cmds[0].Kind != screengrid.CommandMoveCursor || cmds[0].Movement.Kind != screengrid.MovementNextLine {
		t.Fatalf("Decode('\\n') = %+v, want a single NextLine move", cmds)
	}
}

func TestDecodeCarriageReturnMovesToLineStart(t *testing.T) {
	cmds := Decode('\r')
	if len(cmds) != 1 || cmds[0].Kind != screengrid.CommandMoveCursor || cmds[0].Movement.Kind != screengrid.MovementToEdge {
		t.Fatalf("Decode('\\r') = %+v, want a single ToEdge move", cmds)
	}
	if cmds[0].Movement.Direction != screengrid.Left {
		t.Fatalf("carriage return should move to the left edge, got direction %v", cmds[0].Movement.Direction)
	}
}

func TestDecodeEscapeProducesNoCommand(t *testing.T) {
	if cmds := Decode(0x1b); cmds != nil {
		t.Fatalf("Decode(ESC) = %+v, want nil: a bare ESC is left to Next's lookahead", cmds)
	}
}

func TestNextRecognizesStandardForegroundSGR(t *testing.T) {
	d := New(strings.NewReader("\x1b[31mx"))

	cmds, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(cmds) != 1 || cmds[0].Kind != screengrid.CommandSetStyle {
		t.Fatalf("Next() after SGR = %+v, want a single SetStyle command", cmds)
	}
	fg := cmds[0].Style.Foreground
	want := screengrid.StandardColor(1) // 31 = red, standard index 1
	if fg == nil || *fg != want {
		t.Fatalf("Style.Foreground = %+v, want %+v", fg, want)
	}

	cmds, err = d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(cmds) != 1 || cmds[0].Payload.Char != 'x' {
		t.Fatalf("Next() after the SGR prefix = %+v, want a write of 'x'", cmds)
	}
}

func TestNextRecognizes256PaletteBackgroundSGR(t *testing.T) {
	d := New(strings.NewReader("\x1b[48;5;202m"))

	cmds, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(cmds) != 1 || cmds[0].Kind != screengrid.CommandSetStyle {
		t.Fatalf("Next() after palette SGR = %+v, want a single SetStyle command", cmds)
	}
	bg := cmds[0].Style.Background
	want := screengrid.PaletteColor(202)
	if bg == nil || *bg != want {
		t.Fatalf("Style.Background = %+v, want %+v", bg, want)
	}
}

func TestNextRecognizesSGRReset(t *testing.T) {
	d := New(strings.NewReader("\x1b[0m"))

	cmds, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(cmds) != 1 || cmds[0].Kind != screengrid.CommandResetStyles {
		t.Fatalf("Next() after SGR reset = %+v, want a single ResetStyles command", cmds)
	}
}

func TestNextSwallowsNonSGREscapeSequence(t *testing.T) {
	d := New(strings.NewReader("\x1b[2Jx"))

	cmds, err := d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if cmds != nil {
		t.Fatalf("Next() for a non-SGR CSI = %+v, want nil", cmds)
	}

	cmds, err = d.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(cmds) != 1 || cmds[0].Payload.Char != 'x' {
		t.Fatalf("Next() after the swallowed CSI = %+v, want a write of 'x'", cmds)
	}
}

func TestNextAppliesToAWindow(t *testing.T) {
	w := screengrid.NewWindow(10, 2, false)
	d := New(strings.NewReader("hi\n"))
	for {
		cmds, err := d.Next()
		for _, c := range cmds {
			w.Apply(c)
		}
		if err != nil {
			break
		}
	}
	if cell := w.CellAt(screengrid.Coords{X: 0, Y: 0}); cell.Content.Char != 'h' {
		t.Fatalf("cell (0,0) = %+v, want 'h'", cell.Content)
	}
	if cell := w.CellAt(screengrid.Coords{X: 1, Y: 0}); cell.Content.Char != 'i' {
		t.Fatalf("cell (1,0) = %+v, want 'i'", cell.Content)
	}
	if got := w.CursorPosition(); got != (screengrid.Coords{X: 0, Y: 1}) {
		t.Fatalf("cursor = %v, want (0,1) after the trailing newline", got)
	}
}
