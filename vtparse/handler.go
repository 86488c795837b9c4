package vtparse

// Handler receives the semantic events the parser decodes from raw bytes.
// A screen model implements Handler to turn these into grid mutations; the
// shape mirrors one-method-per-event, the same pattern go-ansicode exposes
// to headlessterm (confirmed via headlessterm's handler.go/terminal.go),
// generalized to the events this spec names.
//
// Mutating methods return nothing: the parser never needs a result back
// from a mutation, only from the two query methods (CursorPosition,
// ClipboardLoad) it needs to synthesize direct pty writebacks (DSR/CPR/
// OSC 52 query) without routing them through the screen model.
type Handler interface {
	// Print appends a run of already character-set-translated text at the
	// cursor, per the wrap/insert semantics in spec §4.D.
	Print(s string)

	// RingBell handles BEL (0x07).
	RingBell()

	// LineFeed handles LF/VT (and FF, via FormFeed) — advances to the next
	// row, scrolling if at the scroll region's bottom, optionally also
	// returning to column 0 when CRLF mode is set.
	LineFeed()
	// FormFeed handles FF (0x0C).
	FormFeed()
	// Index handles ESC D (IND): like LineFeed but never applies CRLF mode.
	Index()
	// NextLine handles ESC E (NEL): like Index but always also returns to
	// column 0.
	NextLine()
	// ReverseIndex handles ESC M (RI): move up, scrolling down if at the
	// scroll region's top.
	ReverseIndex()

	// CursorLeft handles BS (0x08): move left n columns without wrapping.
	CursorLeft(n int)
	// SetCursorColumn handles CR (0x0D): move to an absolute column
	// (0-based) on the current row.
	SetCursorColumn(col int)

	// HorizontalTabSet handles HTS (ESC H): set a tab stop at the cursor
	// column.
	HorizontalTabSet()
	// ForwardTabStop handles HT (0x09) and CHT (CSI I): advance n tab
	// stops forward.
	ForwardTabStop(n int)
	// BackwardTabStop handles CBT (CSI Z): move n tab stops backward.
	BackwardTabStop(n int)
	// ClearTabs handles TBC (CSI g).
	ClearTabs(mode TabulationClearMode)

	// MoveUp/MoveDown/MoveForward/MoveBackward handle CUU/CUD/CUF/CUB.
	MoveUp(n int)
	MoveDown(n int)
	MoveForward(n int)
	MoveBackward(n int)
	// MoveDownCr/MoveUpCr handle CNL/CPL: relative move plus return to
	// column 0.
	MoveDownCr(n int)
	MoveUpCr(n int)
	// Goto handles CUP/HVP (CSI H/f): absolute move, 0-based.
	Goto(row, col int)
	// GotoCol handles CHA (CSI G): absolute column on the current row.
	GotoCol(col int)
	// GotoLine handles VPA (CSI d): absolute row, current column.
	GotoLine(row int)

	// InsertBlank handles ICH (CSI @): shift the row right by n, inserting
	// blanks at the cursor.
	InsertBlank(n int)
	// DeleteChars handles DCH (CSI P): shift the row left by n, starting
	// at the cursor.
	DeleteChars(n int)
	// EraseChars handles ECH (CSI X): blank n cells starting at the
	// cursor without shifting.
	EraseChars(n int)
	// InsertBlankLines handles IL (CSI L).
	InsertBlankLines(n int)
	// DeleteLines handles DL (CSI M).
	DeleteLines(n int)

	// ClearScreen handles ED (CSI J).
	ClearScreen(mode ClearMode)
	// ClearLine handles EL (CSI K).
	ClearLine(mode LineClearMode)
	// Decaln handles ESC # 8 (DECALN): fill the screen with 'E'.
	Decaln()

	// ScrollUp/ScrollDown handle SU/SD (CSI S/T).
	ScrollUp(n int)
	ScrollDown(n int)
	// SetScrollRegion handles DECSTBM (CSI r), 0-based inclusive bounds.
	SetScrollRegion(top, bottom int)

	// SaveCursor/RestoreCursor handle DECSC/DECRC (ESC 7/8) and the ANSI.SYS
	// CSI s/u equivalents.
	SaveCursor()
	RestoreCursor()
	// CursorPosition is a query: the parser needs the current cursor
	// coordinates (0-based) to format a CPR reply without involving the
	// screen model in pty writeback.
	CursorPosition() (row, col int)

	// SetMode/UnsetMode handle ANSI SM/RM (CSI h/l) by raw numeric code.
	SetMode(code int)
	UnsetMode(code int)
	// SetPrivateMode/UnsetPrivateMode handle DECSET/DECRST (CSI ?h/?l) by
	// raw numeric code; unrecognized codes are the screen model's concern
	// to ignore (spec §4.C "unknown codes are logged and ignored").
	SetPrivateMode(code int)
	UnsetPrivateMode(code int)

	// SGR handles CSI m: the full, already-decoded list of attribute
	// tokens for one sequence. A bare CSI m arrives as a single SGRReset
	// token; unrecognized codes are dropped, so the list may be empty.
	SGR(attrs []SGRAttr)

	// IdentifyTerminal handles primary DA (CSI c) and DECID (ESC Z); the
	// parser itself writes the reply bytes, this call only lets the
	// screen model observe the query if it wants to.
	IdentifyTerminal()
	// IdentifyTerminalSecondary handles secondary DA (CSI >c).
	IdentifyTerminalSecondary()
	// DeviceStatus handles DSR (CSI n / CSI ?n); args are the raw
	// parameter strings (spec §9: "use the parser's state.args()").
	DeviceStatus(args []string)

	// SetTitle handles OSC 0/2.
	SetTitle(title string)

	// ClipboardStore handles an OSC 52 set (non-"?" payload), already
	// base64-decoded.
	ClipboardStore(selector byte, data []byte)
	// ClipboardLoad handles an OSC 52 query ("?" payload); the parser
	// base64-encodes the returned bytes itself and writes the reply.
	ClipboardLoad(selector byte) []byte

	// SetApplicationKeypad handles ESC = / ESC > (DECKPAM/DECKPNM).
	SetApplicationKeypad(on bool)

	// HardReset handles RIS (ESC c).
	HardReset()
	// SoftReset handles DECSTR (CSI !p).
	SoftReset()
}

// ClearMode is the argument to ED (CSI J).
type ClearMode int

const (
	ClearModeBelow ClearMode = iota // 0 (default)
	ClearModeAbove                  // 1
	ClearModeAll                    // 2
	ClearModeSaved                  // 3: "erase saved lines", treated as a full clear
)

// LineClearMode is the argument to EL (CSI K).
type LineClearMode int

const (
	LineClearModeRight LineClearMode = iota // 0 (default)
	LineClearModeLeft                       // 1
	LineClearModeAll                        // 2
)

// TabulationClearMode is the argument to TBC (CSI g).
type TabulationClearMode int

const (
	TabulationClearModeCurrent TabulationClearMode = iota // 0 (default)
	TabulationClearModeAll     TabulationClearMode = 3
)

// SGRKind discriminates one decoded SGR (CSI m) attribute token.
type SGRKind int

const (
	SGRReset SGRKind = iota
	SGRBoldOn
	SGRBoldOff
	SGRItalicOn
	SGRItalicOff
	SGRUnderlineOn
	SGRUnderlineOff
	SGRBlinkOn
	SGRBlinkOff
	SGRReverseOn
	SGRReverseOff
	SGRInvisibleOn
	SGRInvisibleOff
	SGRForeground // Value = 0-7 (30-37; 40-47 for SGRBackground) or a 256-color palette index (38;5;n/48;5;n)
	SGRBackground
	SGRForegroundBright
	SGRBackgroundBright
	SGRForegroundDefault
	SGRBackgroundDefault
)

// SGRAttr is one decoded SGR attribute token. Value carries the color index
// for SGRForeground/SGRBackground/SGRForegroundBright/SGRBackgroundBright;
// it is unused for the rest of the kinds.
type SGRAttr struct {
	Kind  SGRKind
	Value int
}
