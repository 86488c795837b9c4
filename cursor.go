package vtterm

// Cursor state bits.
const (
	// StateWrapNext latches that the next printable character must first
	// wrap to the start of the next line.
	StateWrapNext uint8 = 1 << iota
	// StateOrigin makes y-addressing relative to the scroll region.
	StateOrigin
)

// CursorPos is the externally visible cursor position, returned by
// Terminal.Cursor().
type CursorPos struct {
	X, Y int
}

// Cursor is the screen model's cursor: position, current attribute
// template, and the WRAPNEXT/ORIGIN state bits. Grounded on headlessterm's
// own cursor.go, stripped of CursorStyle (no renderer in this library
// consumes a rendering style) and of the charset fields SavedCursor used
// to bundle (character-set state belongs to vtparse.Parser in this
// design, see DESIGN.md).
type Cursor struct {
	X, Y  int
	Attr  uint32
	State uint8
}

// NewCursor returns a cursor at (0,0) with the default attribute and no
// state bits set.
func NewCursor() Cursor {
	return Cursor{Attr: defaultAttr}
}

// HasState reports whether every bit in mask is set.
func (c Cursor) HasState(mask uint8) bool { return c.State&mask == mask }

// SetState returns c with mask bits set.
func (c Cursor) SetState(mask uint8) Cursor { c.State |= mask; return c }

// ClearState returns c with mask bits cleared.
func (c Cursor) ClearState(mask uint8) Cursor { c.State &^= mask; return c }

// SavedCursor is the DECSC/ANSI.SYS-save snapshot: position, attribute,
// and state only.
type SavedCursor struct {
	X, Y  int
	Attr  uint32
	State uint8
}

// Save captures c as a SavedCursor.
func (c Cursor) Save() SavedCursor {
	return SavedCursor{X: c.X, Y: c.Y, Attr: c.Attr, State: c.State}
}

// Restore returns the cursor described by s.
func (s SavedCursor) Restore() Cursor {
	return Cursor{X: s.X, Y: s.Y, Attr: s.Attr, State: s.State}
}
