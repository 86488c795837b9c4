package vtterm

import (
	"github.com/dgvt/vtterm/vtparse"
)

// Screen is the spec §4.D Screen Model: it implements vtparse.Handler,
// mutating a Buffer, Cursor, Modes, scroll region, tab stops, and
// alternate-screen slot, and tracks a dirty range for the Terminal facade
// to turn into a refresh notification once per input chunk.
type Screen struct {
	buf    *Buffer
	cur    Cursor
	modes  Modes
	scroll scrollRegion
	tabs   Tabs
	alt    altScreenSlot
	notify *notifier

	clipboard map[byte][]byte
	title     string

	allowWidthChange bool

	dirty   bool
	dirtyY0 int
	dirtyY1 int

	saved SavedCursor
}

// NewScreen creates a screen at the given geometry, hard-reset state.
func NewScreen(cols, rows int, n *notifier) *Screen {
	s := &Screen{notify: n, clipboard: make(map[byte][]byte), allowWidthChange: true}
	s.hardReset(cols, rows)
	// A freshly constructed screen has nothing to repaint yet; only later
	// mutations (including an explicit RIS) mark rows dirty.
	s.dirty = false
	return s
}

func (s *Screen) hardReset(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.buf = NewBuffer(cols, rows)
	s.cur = NewCursor()
	s.modes = ModeWrap | ModeEcho
	s.scroll = fullRegion(rows)
	s.tabs = NewTabs(cols)
	s.alt = altScreenSlot{}
	s.clipboard = make(map[byte][]byte)
	s.title = ""
	s.markAllDirty()
}

// --- dirty tracking ---

func (s *Screen) markDirty(absRow int) {
	if !s.dirty {
		s.dirty = true
		s.dirtyY0 = absRow
		s.dirtyY1 = absRow
		return
	}
	if absRow < s.dirtyY0 {
		s.dirtyY0 = absRow
	}
	if absRow > s.dirtyY1 {
		s.dirtyY1 = absRow
	}
}

func (s *Screen) markAllDirty() {
	s.markDirty(s.buf.base)
	s.markDirty(s.buf.base + s.buf.rows - 1)
}

func (s *Screen) absRow(screenY int) int { return s.buf.base + screenY }

// Flush emits a single refresh notification if anything changed since the
// last Flush, then clears the dirty range (spec §4.D "refresh ... after
// each input chunk, if anything changed"; §5 "refresh is emitted at most
// once per input chunk").
func (s *Screen) Flush() {
	if !s.dirty {
		return
	}
	y0, y1 := s.dirtyY0, s.dirtyY1
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= s.buf.Len() {
		y1 = s.buf.Len() - 1
	}
	slice := append([]Line(nil), s.buf.lines[y0:y1+1]...)
	s.notify.emitRefresh([2]int{y0, y1}, slice, CursorPos{X: s.cur.X, Y: s.cur.Y})
	s.dirty = false
}

// --- moveTo (spec §4.D Move-to) ---

func (s *Screen) moveTo(x, y int, absolute bool) {
	s.markDirty(s.absRow(s.cur.Y))

	miny, maxy := 0, s.buf.rows-1
	if s.cur.HasState(StateOrigin) {
		miny, maxy = s.scroll.top, s.scroll.bottom
		if absolute {
			y += s.scroll.top
		}
	}
	if x < 0 {
		x = 0
	}
	if x > s.buf.cols {
		x = s.buf.cols
	}
	if y < miny {
		y = miny
	}
	if y > maxy {
		y = maxy
	}
	s.cur.X, s.cur.Y = x, y
	s.cur = s.cur.ClearState(StateWrapNext)
	s.markDirty(s.absRow(s.cur.Y))
}

// newLine implements spec §4.D New-line: scroll at the scroll-region
// bottom, otherwise move down one row. cr additionally returns to column 0.
func (s *Screen) newLine(cr bool) {
	if s.cur.Y == s.scroll.bottom {
		s.buf.ScrollUp(s.scroll.bottom, 1, s.cur.Attr)
		s.cur = s.cur.ClearState(StateWrapNext)
		s.markAllDirty()
	} else {
		s.moveTo(s.cur.X, s.cur.Y+1, false)
	}
	if cr {
		s.cur.X = 0
	}
}

func (s *Screen) reverseNewLine() {
	if s.cur.Y == s.scroll.top {
		s.buf.ScrollDown(s.scroll.top, s.scroll.bottom, 1, s.cur.Attr)
		s.markAllDirty()
	} else {
		s.moveTo(s.cur.X, s.cur.Y-1, false)
	}
}

// --- vtparse.Handler: text ---

// Print implements spec §4.D Print, one code point at a time.
func (s *Screen) Print(str string) {
	for _, r := range str {
		if s.modes.Has(ModeWrap) && s.cur.HasState(StateWrapNext) {
			s.newLine(true)
		}
		if s.modes.Has(ModeInsert) && s.cur.X < s.buf.cols {
			line := s.buf.Line(s.cur.Y)
			copy(line[s.cur.X+1:], line[s.cur.X:len(line)-1])
		}
		if s.cur.X < s.buf.cols {
			s.buf.SetGlyph(s.cur.X, s.cur.Y, Glyph{Attr: s.cur.Attr, Ch: r})
		}
		s.markDirty(s.absRow(s.cur.Y))
		if s.cur.X+1 < s.buf.cols {
			s.cur.X++
		} else {
			s.cur = s.cur.SetState(StateWrapNext)
		}
	}
}

func (s *Screen) RingBell() {}

func (s *Screen) LineFeed()    { s.newLine(s.modes.Has(ModeCRLF)) }
func (s *Screen) FormFeed()    { s.newLine(s.modes.Has(ModeCRLF)) }
func (s *Screen) Index()       { s.newLine(false) }
func (s *Screen) NextLine()    { s.newLine(true) }
func (s *Screen) ReverseIndex() { s.reverseNewLine() }

func (s *Screen) CursorLeft(n int) {
	x := s.cur.X - n
	if x < 0 {
		x = 0
	}
	s.moveTo(x, s.cur.Y, false)
}

func (s *Screen) SetCursorColumn(col int) { s.moveTo(col, s.cur.Y, false) }

// --- tabs ---

func (s *Screen) HorizontalTabSet() { s.tabs.Set(s.cur.X) }

func (s *Screen) ForwardTabStop(n int) {
	x := s.cur.X
	for i := 0; i < n; i++ {
		x = s.tabs.Next(x)
	}
	s.moveTo(x, s.cur.Y, false)
}

func (s *Screen) BackwardTabStop(n int) {
	x := s.cur.X
	for i := 0; i < n; i++ {
		x = s.tabs.Prev(x)
	}
	s.moveTo(x, s.cur.Y, false)
}

func (s *Screen) ClearTabs(mode vtparse.TabulationClearMode) {
	if mode == vtparse.TabulationClearModeAll {
		s.tabs.ClearAll()
	} else {
		s.tabs.ClearAt(s.cur.X)
	}
}

// --- cursor motion ---

func (s *Screen) MoveUp(n int)       { s.moveTo(s.cur.X, s.cur.Y-n, false) }
func (s *Screen) MoveDown(n int)     { s.moveTo(s.cur.X, s.cur.Y+n, false) }
func (s *Screen) MoveForward(n int)  { s.moveTo(s.cur.X+n, s.cur.Y, false) }
func (s *Screen) MoveBackward(n int) { s.moveTo(s.cur.X-n, s.cur.Y, false) }

func (s *Screen) MoveDownCr(n int) {
	s.moveTo(s.cur.X, s.cur.Y+n, false)
	s.cur.X = 0
}

func (s *Screen) MoveUpCr(n int) {
	s.moveTo(s.cur.X, s.cur.Y-n, false)
	s.cur.X = 0
}

func (s *Screen) Goto(row, col int) { s.moveTo(col, row, true) }
func (s *Screen) GotoCol(col int)   { s.moveTo(col, s.cur.Y, false) }
func (s *Screen) GotoLine(row int)  { s.moveTo(s.cur.X, row, false) }

// --- insert/delete/erase ---

func (s *Screen) InsertBlank(n int) {
	line := s.buf.Line(s.cur.Y)
	if s.cur.X >= len(line) {
		return
	}
	if n > len(line)-s.cur.X {
		n = len(line) - s.cur.X
	}
	copy(line[s.cur.X+n:], line[s.cur.X:len(line)-n])
	blank := blankGlyph(s.cur.Attr)
	for i := s.cur.X; i < s.cur.X+n; i++ {
		line[i] = blank
	}
	s.markDirty(s.absRow(s.cur.Y))
}

func (s *Screen) DeleteChars(n int) {
	line := s.buf.Line(s.cur.Y)
	if s.cur.X >= len(line) {
		return
	}
	if n > len(line)-s.cur.X {
		n = len(line) - s.cur.X
	}
	copy(line[s.cur.X:], line[s.cur.X+n:])
	blank := blankGlyph(s.cur.Attr)
	for i := len(line) - n; i < len(line); i++ {
		line[i] = blank
	}
	s.markDirty(s.absRow(s.cur.Y))
}

func (s *Screen) EraseChars(n int) {
	s.buf.ClearRect(s.cur.X, s.cur.Y, n, 1, s.cur.Attr)
	s.markDirty(s.absRow(s.cur.Y))
}

func (s *Screen) InsertBlankLines(n int) {
	if s.cur.Y < s.scroll.top || s.cur.Y > s.scroll.bottom {
		return
	}
	s.buf.ScrollDown(s.cur.Y, s.scroll.bottom, n, s.cur.Attr)
	s.markAllDirty()
}

// DeleteLines removes n lines starting at the cursor row and pulls the
// remaining lines within [cursor.y, scroll.bottom] up to fill the gap.
func (s *Screen) DeleteLines(n int) {
	if s.cur.Y < s.scroll.top || s.cur.Y > s.scroll.bottom {
		return
	}
	top, bottom := s.cur.Y, s.scroll.bottom
	for i := 0; i < n && bottom >= top; i++ {
		s.removeLineAt(top, bottom, s.cur.Attr)
	}
	s.markAllDirty()
}

// removeLineAt deletes the line at screen row top within [top, bottom],
// shifting [top+1, bottom] up by one and filling bottom with a blank.
func (s *Screen) removeLineAt(top, bottom int, attr uint32) {
	at := s.buf.base + top
	end := s.buf.base + bottom
	copy(s.buf.lines[at:end], s.buf.lines[at+1:end+1])
	s.buf.lines[end] = newLine(s.buf.cols, attr)
}

func (s *Screen) ClearScreen(mode vtparse.ClearMode) {
	switch mode {
	case vtparse.ClearModeBelow:
		s.buf.ClearRect(s.cur.X, s.cur.Y, s.buf.cols-s.cur.X, 1, s.cur.Attr)
		if s.cur.Y+1 < s.buf.rows {
			s.buf.ClearRect(0, s.cur.Y+1, s.buf.cols, s.buf.rows-s.cur.Y-1, s.cur.Attr)
		}
		s.markDirtyRange(s.cur.Y, s.buf.rows-1)
	case vtparse.ClearModeAbove:
		s.buf.ClearRect(0, s.cur.Y, s.cur.X+1, 1, s.cur.Attr)
		if s.cur.Y > 0 {
			s.buf.ClearRect(0, 0, s.buf.cols, s.cur.Y, s.cur.Attr)
		}
		s.markDirtyRange(0, s.cur.Y)
	case vtparse.ClearModeAll, vtparse.ClearModeSaved:
		s.buf.ClearRect(0, 0, s.buf.cols, s.buf.rows, s.cur.Attr)
		s.markAllDirty()
	}
}

func (s *Screen) ClearLine(mode vtparse.LineClearMode) {
	switch mode {
	case vtparse.LineClearModeRight:
		s.buf.ClearRect(s.cur.X, s.cur.Y, s.buf.cols-s.cur.X, 1, s.cur.Attr)
	case vtparse.LineClearModeLeft:
		s.buf.ClearRect(0, s.cur.Y, s.cur.X+1, 1, s.cur.Attr)
	case vtparse.LineClearModeAll:
		s.buf.ClearRect(0, s.cur.Y, s.buf.cols, 1, s.cur.Attr)
	}
	s.markDirty(s.absRow(s.cur.Y))
}

func (s *Screen) Decaln() {
	for y := 0; y < s.buf.rows; y++ {
		line := s.buf.Line(y)
		for x := range line {
			line[x] = Glyph{Attr: defaultAttr, Ch: 'E'}
		}
	}
	s.markAllDirty()
}

func (s *Screen) markDirtyRange(y0, y1 int) {
	s.markDirty(s.absRow(y0))
	s.markDirty(s.absRow(y1))
}

// --- scroll region ---

func (s *Screen) ScrollUp(n int)   { s.buf.ScrollUp(s.scroll.bottom, n, s.cur.Attr); s.markAllDirty() }
func (s *Screen) ScrollDown(n int) {
	s.buf.ScrollDown(s.scroll.top, s.scroll.bottom, n, s.cur.Attr)
	s.markAllDirty()
}

func (s *Screen) SetScrollRegion(top, bottom int) {
	if bottom < 0 || bottom >= s.buf.rows {
		bottom = s.buf.rows - 1
	}
	if top < 0 {
		top = 0
	}
	if top > bottom {
		top, bottom = 0, s.buf.rows-1
	}
	s.scroll = scrollRegion{top: top, bottom: bottom}
}

// --- save/restore cursor ---

func (s *Screen) SaveCursor() { s.saved = s.cur.Save() }

func (s *Screen) RestoreCursor() {
	s.cur = s.saved.Restore()
	s.moveTo(s.cur.X, s.cur.Y, false)
}

func (s *Screen) CursorPosition() (row, col int) { return s.cur.Y, s.cur.X }

// --- modes ---

func (s *Screen) SetMode(code int)   { s.setAnsiMode(code, true) }
func (s *Screen) UnsetMode(code int) { s.setAnsiMode(code, false) }

func (s *Screen) setAnsiMode(code int, on bool) {
	switch code {
	case 4:
		s.setMode(ModeInsert, on)
	case 20:
		s.setMode(ModeCRLF, on)
	}
}

func (s *Screen) setMode(m Modes, on bool) {
	if on {
		s.modes = s.modes.Set(m)
	} else {
		s.modes = s.modes.Clear(m)
	}
}

func (s *Screen) SetPrivateMode(code int)   { s.setPrivateMode(code, true) }
func (s *Screen) UnsetPrivateMode(code int) { s.setPrivateMode(code, false) }

func (s *Screen) setPrivateMode(code int, on bool) {
	switch code {
	case 1:
		s.setMode(ModeAppCursor, on)
	case 3:
		if s.allowWidthChange {
			if on {
				s.Resize(132, s.buf.rows, false)
			} else {
				s.Resize(80, s.buf.rows, false)
			}
		}
	case 5:
		s.setMode(ModeReverse, on)
	case 6:
		if on {
			s.cur = s.cur.SetState(StateOrigin)
		} else {
			s.cur = s.cur.ClearState(StateOrigin)
		}
		s.moveTo(0, 0, true)
	case 7:
		s.setMode(ModeWrap, on)
	case 12:
		// blink: cosmetic only, no Glyph/Cursor field tracks it.
	case 25:
		s.setMode(ModeHide, !on)
	case 40:
		s.allowWidthChange = on
	case 45:
		// reverse-wrap: not modeled; WRAP alone governs wrap behavior here.
	case 47, 1047:
		s.setAltScreen(on, false)
	case 67:
		// backspace-sends-BS: keyboard encoding, outside this library's scope.
	case 1000, 1002:
		s.setMode(ModeMouseBtn, on)
		if code == 1002 {
			s.setMode(ModeMouseMotion, on)
		}
	case 1010, 1011:
		// scroll-on-output / scroll-on-keystroke: no scrollback-viewport
		// concept in this model (scrollback is always part of Buffer).
	case 1036, 1039:
		// meta/alt-sends-ESC: keyboard encoding, outside this library's scope.
	case 1048:
		if on {
			s.SaveCursor()
		} else {
			s.RestoreCursor()
		}
	case 1049:
		if on {
			s.SaveCursor()
			s.setAltScreen(true, true)
		} else {
			s.setAltScreen(false, true)
			s.RestoreCursor()
		}
	}
}

// setAltScreen implements spec §4.D Alternate screen. clearOnEnable
// additionally clears the new alternate buffer (DECSET 1049's "+ clear").
func (s *Screen) setAltScreen(on, clearOnEnable bool) {
	if on == s.modes.Has(ModeAltScreen) {
		return
	}
	if on {
		s.alt = altScreenSlot{
			saved:  true,
			mode:   s.modes,
			buffer: s.buf,
			cursor: s.cur,
			scroll: s.scroll,
			tabs:   s.tabs,
		}
		cols, rows := s.buf.cols, s.buf.rows
		s.buf = NewBuffer(cols, rows)
		s.notify.emitAlternate(true)
		s.cur = NewCursor()
		s.scroll = fullRegion(rows)
		s.tabs = NewTabs(cols)
		s.modes = s.modes.Set(ModeAltScreen)
		if clearOnEnable {
			s.buf.ClearRect(0, 0, cols, rows, defaultAttr)
		}
		s.markAllDirty()
		return
	}
	if !s.alt.saved {
		return
	}
	s.buf = s.alt.buffer
	s.cur = s.alt.cursor
	s.scroll = s.alt.scroll
	s.tabs = s.alt.tabs
	s.modes = s.alt.mode.Clear(ModeAltScreen)
	s.alt = altScreenSlot{}
	s.notify.emitAlternate(false)
	s.dirty = false
	s.markAllDirty()
}

// --- SGR ---

func (s *Screen) SGR(attrs []vtparse.SGRAttr) {
	for _, a := range attrs {
		switch a.Kind {
		case vtparse.SGRReset:
			s.cur.Attr = defaultAttr
		case vtparse.SGRBoldOn:
			s.cur.Attr = SetAttr(s.cur.Attr, AttrBold)
		case vtparse.SGRBoldOff:
			s.cur.Attr = ClearAttr(s.cur.Attr, AttrBold)
		case vtparse.SGRItalicOn:
			s.cur.Attr = SetAttr(s.cur.Attr, AttrItalic)
		case vtparse.SGRItalicOff:
			s.cur.Attr = ClearAttr(s.cur.Attr, AttrItalic)
		case vtparse.SGRUnderlineOn:
			s.cur.Attr = SetAttr(s.cur.Attr, AttrUnderline)
		case vtparse.SGRUnderlineOff:
			s.cur.Attr = ClearAttr(s.cur.Attr, AttrUnderline)
		case vtparse.SGRBlinkOn:
			s.cur.Attr = SetAttr(s.cur.Attr, AttrBlink)
		case vtparse.SGRBlinkOff:
			s.cur.Attr = ClearAttr(s.cur.Attr, AttrBlink)
		case vtparse.SGRReverseOn:
			s.cur.Attr = SetAttr(s.cur.Attr, AttrReverse)
		case vtparse.SGRReverseOff:
			s.cur.Attr = ClearAttr(s.cur.Attr, AttrReverse)
		case vtparse.SGRInvisibleOn, vtparse.SGRInvisibleOff:
			// No bit in the packed attribute word represents "invisible"
			// (spec §3 defines NULL/REVERSE/UNDERLINE/BOLD/GFX/ITALIC/BLINK
			// only); the code is recognized and otherwise ignored.
		case vtparse.SGRForeground:
			s.cur.Attr = WithFg(s.cur.Attr, uint32(a.Value))
		case vtparse.SGRBackground:
			s.cur.Attr = WithBg(s.cur.Attr, uint32(a.Value))
		case vtparse.SGRForegroundBright:
			s.cur.Attr = WithFg(s.cur.Attr, uint32(a.Value)+8)
		case vtparse.SGRBackgroundBright:
			s.cur.Attr = WithBg(s.cur.Attr, uint32(a.Value)+8)
		case vtparse.SGRForegroundDefault:
			s.cur.Attr = WithFg(s.cur.Attr, DefaultFg)
		case vtparse.SGRBackgroundDefault:
			s.cur.Attr = WithBg(s.cur.Attr, DefaultBg)
		}
	}
}

// --- identification / status / title / clipboard ---

func (s *Screen) IdentifyTerminal()          {}
func (s *Screen) IdentifyTerminalSecondary() {}
func (s *Screen) DeviceStatus(args []string) {}

func (s *Screen) SetTitle(title string) {
	s.title = title
	s.notify.emitTitle(title)
}

func (s *Screen) ClipboardStore(selector byte, data []byte) {
	s.clipboard[selector] = append([]byte(nil), data...)
}

func (s *Screen) ClipboardLoad(selector byte) []byte {
	return s.clipboard[selector]
}

func (s *Screen) SetApplicationKeypad(on bool) { s.setMode(ModeAppKeypad, on) }

func (s *Screen) HardReset() { s.hardReset(s.buf.cols, s.buf.rows) }

func (s *Screen) SoftReset() {
	s.modes = ModeWrap | ModeEcho
	s.scroll = fullRegion(s.buf.rows)
	s.cur = NewCursor()
}

// --- facade support ---

// Resize implements spec §4.D Resize.
func (s *Screen) Resize(cols, rows int, silent bool) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == s.buf.cols && rows == s.buf.rows {
		return
	}
	oldRows := s.buf.rows
	wasDirty := s.dirty
	s.buf.Resize(cols, rows, defaultAttr)
	s.tabs = NewTabs(cols)
	s.scroll = fullRegion(rows)
	if s.cur.X > cols {
		s.cur.X = cols
	}
	if s.cur.Y >= rows {
		s.cur.Y = rows - 1
	}
	if !silent {
		s.notify.emitResize(cols, rows)
	}
	if wasDirty || rows < oldRows {
		s.markAllDirty()
	}
}

func (s *Screen) Buffer() *Buffer  { return s.buf }
func (s *Screen) Title() string    { return s.title }
func (s *Screen) Mode() Modes      { return s.modes }
func (s *Screen) Cursor() CursorPos { return CursorPos{X: s.cur.X, Y: s.cur.Y} }
