package screengrid

// MovementKind tags the Movement variant: the vocabulary Window.MoveCursor
// accepts for relocating the cursor.
type MovementKind int

const (
	// MovementTo moves n cells in a direction, optionally wrapping to the
	// next/previous row when it would run off the view's edge.
	MovementTo MovementKind = iota
	// MovementToEdge jumps straight to the view's edge in a direction.
	MovementToEdge
	// MovementTab moves to the next or previous tab stop in a direction,
	// optionally wrapping rows the same way MovementTo does.
	MovementTab
	// MovementNextLine moves down n rows and resets the column to the view's
	// left edge, carriage-return-then-linefeed style.
	MovementNextLine
	// MovementPosition moves directly to an absolute coordinate.
	MovementPosition
	// MovementToBeginning moves to the view's top-left corner.
	MovementToBeginning
)

// Movement describes a single cursor relocation request.
type Movement struct {
	Kind      MovementKind
	Direction Direction
	N         uint32
	Wrap      bool
	Coords    Coords
}

// MoveTo builds a MovementTo.
func MoveTo(dir Direction, n uint32, wrap bool) Movement {
	return Movement{Kind: MovementTo, Direction: dir, N: n, Wrap: wrap}
}

// MoveToEdge builds a MovementToEdge.
func MoveToEdge(dir Direction) Movement {
	return Movement{Kind: MovementToEdge, Direction: dir}
}

// MoveTab builds a MovementTab.
func MoveTab(dir Direction, n uint32, wrap bool) Movement {
	return Movement{Kind: MovementTab, Direction: dir, N: n, Wrap: wrap}
}

// MoveNextLine builds a MovementNextLine.
func MoveNextLine(n uint32) Movement {
	return Movement{Kind: MovementNextLine, N: n}
}

// MovePosition builds a MovementPosition.
func MovePosition(c Coords) Movement {
	return Movement{Kind: MovementPosition, Coords: c}
}

// MoveToBeginning builds a MovementToBeginning.
func MoveToBeginning() Movement {
	return Movement{Kind: MovementToBeginning}
}

// apply resolves m against a cursor sitting at `from` inside bounds (the
// view's current rectangle in grid coordinates), returning the new
// coordinates clamped to that rectangle, except for MovementNextLine, whose
// row is not clamped (see below) (grounded on notty's mod.rs
// move_within and its tab-stop walk). bounds need not be anchored at the
// grid's origin: a Moveable view slides down as scrollback grows, and
// movement is always resolved against its current position.
func (m Movement) apply(from Coords, bounds Region) Coords {
	switch m.Kind {
	case MovementTo:
		return moveBy(from, m.Direction, m.N, m.Wrap, bounds)
	case MovementToEdge:
		return moveToEdge(from, m.Direction, bounds)
	case MovementTab:
		return moveTab(from, m.Direction, m.N, m.Wrap, bounds)
	case MovementNextLine:
		// Unlike MovementTo/ToEdge/Tab (screen-relative cursor steps, which
		// stop at the view's current bottom margin), NextLine models a
		// literal carriage-return-then-linefeed: it is allowed to run past
		// the view's current bounds so MoveCursor's keep_cursor_within call
		// can slide a Moveable view to follow, the same way a real terminal
		// grows its scrollback on a newline at the bottom margin instead of
		// refusing to advance.
		return Coords{X: bounds.Left, Y: from.Y + m.N}
	case MovementPosition:
		return clampToViewport(m.Coords, bounds)
	case MovementToBeginning:
		return Coords{X: bounds.Left, Y: bounds.Top}
	default:
		return from
	}
}

func clampToViewport(c Coords, bounds Region) Coords {
	if bounds.Width() > 0 {
		if c.X < bounds.Left {
			c.X = bounds.Left
		} else if c.X >= bounds.Right {
			c.X = bounds.Right - 1
		}
	}
	if bounds.Height() > 0 {
		if c.Y < bounds.Top {
			c.Y = bounds.Top
		} else if c.Y >= bounds.Bottom {
			c.Y = bounds.Bottom - 1
		}
	}
	return c
}

func moveBy(from Coords, dir Direction, n uint32, wrap bool, bounds Region) Coords {
	c := from
	for i := uint32(0); i < n; i++ {
		switch dir {
		case Left:
			if c.X > bounds.Left {
				c.X--
			} else if wrap && c.Y > bounds.Top {
				c.Y--
				c.X = satSub(bounds.Right, 1)
			}
		case Right:
			if bounds.Width() == 0 || c.X < bounds.Right-1 {
				c.X++
			} else if wrap && c.Y+1 < bounds.Bottom {
				c.Y++
				c.X = bounds.Left
			}
		case Up:
			if c.Y > bounds.Top {
				c.Y--
			}
		case Down:
			if bounds.Height() == 0 || c.Y < bounds.Bottom-1 {
				c.Y++
			}
		}
	}
	return c
}

func moveToEdge(from Coords, dir Direction, bounds Region) Coords {
	c := from
	switch dir {
	case Left:
		c.X = bounds.Left
	case Right:
		c.X = satSub(bounds.Right, 1)
	case Up:
		c.Y = bounds.Top
	case Down:
		c.Y = satSub(bounds.Bottom, 1)
	}
	return c
}

// moveTab walks to the next (Right) or previous (Left) multiple of the
// configured tab stop, n times, wrapping rows on request the same way
// moveBy does. Up/Down are not meaningful tab directions and are treated as
// a no-op step.
func moveTab(from Coords, dir Direction, n uint32, wrap bool, bounds Region) Coords {
	stop := TabStop()
	if stop == 0 {
		stop = 1
	}
	c := from
	for i := uint32(0); i < n; i++ {
		switch dir {
		case Right:
			next := (c.X/stop + 1) * stop
			if bounds.Width() == 0 || next < bounds.Right {
				c.X = next
			} else if wrap && c.Y+1 < bounds.Bottom {
				c.Y++
				c.X = bounds.Left
			} else {
				c.X = satSub(bounds.Right, 1)
			}
		case Left:
			if c.X <= bounds.Left {
				if wrap && c.Y > bounds.Top {
					c.Y--
					c.X = satSub(bounds.Right, 1)
				}
				continue
			}
			prev := uint32(0)
			if c.X%stop == 0 {
				prev = c.X - stop
			} else {
				prev = (c.X / stop) * stop
			}
			c.X = prev
		}
	}
	return c
}
