// Command screendemo is a thin, runnable front end for the screengrid
// package: it spawns a shell behind a pseudo-terminal, decodes its output
// into Window commands, and renders the resulting grid with tcell. It
// exists to give the rendering/PTY/command-parsing collaborators named by
// the core package a concrete home, the way purfecterm's cli package and
// texelation's apps/texelterm sit outside their own cores.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"

	"github.com/corvusline/screengrid"
	"github.com/corvusline/screengrid/internal/decoder"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screendemo: creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screendemo: initializing screen: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	win := screengrid.NewWindow(uint32(cols), uint32(rows), true)

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return fmt.Errorf("screendemo: starting pty: %w", err)
	}
	defer ptmx.Close()

	refresh := make(chan struct{}, 1)
	requestRefresh := func() {
		select {
		case refresh <- struct{}{}:
		default:
		}
	}

	quit := make(chan struct{})

	go readPTYLoop(ptmx, win, requestRefresh, quit)
	go pollEventLoop(screen, ptmx, win, requestRefresh, quit)

	renderLoop(screen, win, refresh, quit)

	cmd.Wait()
	return nil
}

// readPTYLoop decodes the child process's output into Window commands until
// the pty closes, then signals quit.
func readPTYLoop(ptmx *os.File, win *screengrid.Window, requestRefresh func(), quit chan struct{}) {
	d := decoder.New(ptmx)
	for {
		cmds, err := d.Next()
		for _, c := range cmds {
			win.Apply(c)
		}
		if err != nil {
			close(quit)
			return
		}
		requestRefresh()
	}
}

// pollEventLoop forwards tcell input and resize events to the pty/Window
// until quit is closed.
func pollEventLoop(screen tcell.Screen, ptmx *os.File, win *screengrid.Window, requestRefresh func(), quit chan struct{}) {
	for {
		select {
		case <-quit:
			return
		default:
		}
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			cols, rows := screen.Size()
			win.ResizeWidth(uint32(cols))
			win.ResizeHeight(uint32(rows))
			pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
			screen.Sync()
			requestRefresh()
		case *tcell.EventKey:
			ptmx.Write(keyToBytes(ev))
		case nil:
			return
		}
	}
}

// keyToBytes converts a tcell key event to the byte sequence a shell
// expects on its stdin, grounded on the handful of control sequences every
// pack terminal front end maps the same way (cursor keys, editing keys,
// function keys).
func keyToBytes(ev *tcell.EventKey) []byte {
	switch ev.Key() {
	case tcell.KeyUp:
		return []byte("\x1b[A")
	case tcell.KeyDown:
		return []byte("\x1b[B")
	case tcell.KeyRight:
		return []byte("\x1b[C")
	case tcell.KeyLeft:
		return []byte("\x1b[D")
	case tcell.KeyHome:
		return []byte("\x1b[H")
	case tcell.KeyEnd:
		return []byte("\x1b[F")
	case tcell.KeyPgUp:
		return []byte("\x1b[5~")
	case tcell.KeyPgDn:
		return []byte("\x1b[6~")
	case tcell.KeyDelete:
		return []byte("\x1b[3~")
	case tcell.KeyEnter:
		return []byte("\r")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x7f}
	case tcell.KeyTab:
		return []byte("\t")
	case tcell.KeyEsc:
		return []byte{0x1b}
	default:
		return []byte(string(ev.Rune()))
	}
}

// renderLoop redraws the screen whenever a refresh is pending, at most once
// per 16ms tick (about 60 times a second), until quit is closed.
func renderLoop(screen tcell.Screen, win *screengrid.Window, refresh chan struct{}, quit chan struct{}) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			select {
			case <-refresh:
				draw(screen, win)
			default:
			}
		}
	}
}

func draw(screen tcell.Screen, win *screengrid.Window) {
	it := win.Coords()
	bounds := win.ViewBounds()
	cursor := win.CursorPosition()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		cell := win.CellAt(c)
		local := applyStyles(tcell.StyleDefault, cell.Styles)
		if c == cursor {
			local = local.Reverse(true)
		}
		x := int(c.X - bounds.Left)
		y := int(c.Y - bounds.Top)
		switch cell.Content.Kind {
		case screengrid.ContentChar:
			screen.SetContent(x, y, cell.Content.Char, nil, local)
		case screengrid.ContentGrapheme:
			runes := []rune(cell.Content.Grapheme)
			if len(runes) == 0 {
				screen.SetContent(x, y, ' ', nil, local)
				continue
			}
			screen.SetContent(x, y, runes[0], runes[1:], local)
		case screengrid.ContentExtension:
			// continuation cell of a wide char/grapheme/image: nothing to draw
		case screengrid.ContentImage:
			screen.SetContent(x, y, '▦', nil, local)
		default:
			screen.SetContent(x, y, ' ', nil, local)
		}
	}
	screen.Show()
}

// applyStyles folds a cell's UseStyles onto a base tcell.Style. Unset
// fields in a Custom Styles value (nil pointers) leave the base untouched,
// mirroring the way screengrid.Styles.Update only overwrites fields the
// caller actually set.
func applyStyles(base tcell.Style, use screengrid.UseStyles) tcell.Style {
	if use.Kind == screengrid.UseDefault {
		return base
	}
	s := use.Custom
	if s.Foreground != nil {
		base = base.Foreground(toTcellColor(*s.Foreground))
	}
	if s.Background != nil {
		base = base.Background(toTcellColor(*s.Background))
	}
	if s.Bold != nil {
		base = base.Bold(*s.Bold)
	}
	if s.Italic != nil {
		base = base.Italic(*s.Italic)
	}
	if s.Underline != nil {
		base = base.Underline(*s.Underline != screengrid.UnderlineNone)
	}
	if s.Reverse != nil {
		base = base.Reverse(*s.Reverse)
	}
	if s.Blink != nil {
		base = base.Blink(*s.Blink)
	}
	if s.Strikethrough != nil {
		base = base.StrikeThrough(*s.Strikethrough)
	}
	return base
}

func toTcellColor(c screengrid.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
