package vtparse

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Fixed writeback payloads (spec §6).
var (
	primaryDAReply   = []byte("\x1b[?1;2c")
	secondaryDAReply = []byte("\x1b[>0;256;0c")
)

// Parser drives a byte stream through the CC1/ESC/CSI/OSC/DCS/APC/PM state
// machine and dispatches decoded semantic events to a Handler. It keeps the
// currently designated G0-G3 character sets and the GL/GR selectors,
// because character-set translation of plain text happens here, before a
// Print event ever reaches the handler (spec §4.C).
type Parser struct {
	state ParserState

	handler Handler
	writer  io.Writer
	logger  Logger
	opts    Options
	now     func() time.Time

	g       [4]*Charmap
	glIndex int
	grIndex int

	savedG       [4]*Charmap
	savedGLIndex int
	savedGRIndex int

	pendingSlot int
}

// ParserOption configures a Parser during construction, the same
// functional-options shape headlessterm uses for Terminal (terminal.go).
type ParserOption func(*Parser)

// WithWriter sets the writer the parser uses for direct pty writebacks (DA,
// DECID, DSR/CPR, OSC 52 query replies). Defaults to io.Discard.
func WithWriter(w io.Writer) ParserOption {
	return func(p *Parser) { p.writer = w }
}

// WithLogger sets the Logger used for warn-on-unknown diagnostics.
// Defaults to NoopLogger.
func WithLogger(l Logger) ParserOption {
	return func(p *Parser) { p.logger = l }
}

// WithOptions sets the parser tunables in one call (spec §6).
func WithOptions(o Options) ParserOption {
	return func(p *Parser) { p.opts = o }
}

// NewParser creates a Parser dispatching decoded events to h. G0 defaults
// to US ASCII, selected by both GL and GR, matching a freshly reset VT220.
func NewParser(h Handler, opts ...ParserOption) *Parser {
	p := &Parser{
		handler: h,
		writer:  io.Discard,
		logger:  NoopLogger{},
		opts:    DefaultOptions(),
		now:     time.Now,
	}
	for i := range p.g {
		p.g[i] = usASCII
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Feed processes one chunk of inbound pty bytes to completion, dispatching
// every semantic event synchronously before returning. It returns
// ErrParserStuck only if a parse routine is implemented incorrectly —
// every other malformed-input condition is handled silently per spec §7.
func (p *Parser) Feed(data []byte) error {
	p.state.reset(data)

	if p.state.fun == routineString || p.state.fun == routineStringEsc {
		limit := time.Duration(p.opts.OSCTimeLimitMs) * time.Millisecond
		if limit > 0 && p.now().Sub(p.stringDeadlineBase()) > limit {
			p.abortString()
		}
	}

	for !p.state.isComplete() {
		beforeFun, beforePos := p.state.fun, p.state.pos
		switch p.state.fun {
		case routineUnknown:
			p.parseUnknown()
		case routineEsc:
			p.parseEsc()
		case routineEscDesignate:
			p.parseEscDesignate()
		case routineEscHash:
			p.parseEscHash()
		case routineCSI:
			p.parseCSI()
		case routineString:
			p.parseString()
		case routineStringEsc:
			p.parseStringEsc()
		}
		if p.state.fun == beforeFun && p.state.pos == beforePos {
			return ErrParserStuck
		}
	}
	return nil
}

func (p *Parser) stringDeadlineBase() time.Time {
	return time.UnixMilli(p.state.stringStartMs)
}

// --- parse_unknown ---

func (p *Parser) parseUnknown() {
	start := p.state.pos
	buf := p.state.buf

	for p.state.pos < len(buf) {
		b := buf[p.state.pos]
		if b < 0x80 {
			if b < 0x20 || b == 0x7F {
				break
			}
			p.state.pos++
			continue
		}
		r, size := utf8.DecodeRune(buf[p.state.pos:])
		if r == utf8.RuneError && size <= 1 {
			p.state.pos++ // BadUtf8: substitute '?' below via Print of raw run up to here
			continue
		}
		if r >= 0x80 && r <= 0x9F {
			break // C1 control, decoded
		}
		p.state.pos += size
	}

	if p.state.pos > start {
		p.emitPrint(buf[start:p.state.pos])
	}

	if p.state.pos >= len(buf) {
		return
	}

	b := buf[p.state.pos]
	if b < 0x80 {
		p.state.pos++
		p.dispatchCC1(b)
		return
	}
	r, size := utf8.DecodeRune(buf[p.state.pos:])
	p.state.pos += size
	p.dispatchC1(byte(r))
}

// emitPrint translates a run of plain text through the active GL/GR
// character maps and forwards it to the handler. Malformed UTF-8 bytes are
// substituted with '?' (spec §7 BadUtf8).
func (p *Parser) emitPrint(raw []byte) {
	var b strings.Builder
	b.Grow(len(raw))
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c < 0x80 {
			b.WriteRune(p.g[p.glIndex].Lookup(c))
			i++
			continue
		}
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteRune('?')
			i++
			continue
		}
		if r < 0x100 {
			b.WriteRune(p.g[p.grIndex].Lookup(byte(r)))
		} else {
			b.WriteRune(r)
		}
		i += size
	}
	p.handler.Print(b.String())
}

func (p *Parser) dispatchCC1(b byte) {
	switch b {
	case 0x00, 0x05, 0x11, 0x13, 0x18, 0x1A, 0x7F:
		// NUL, ENQ, XON, XOFF, CAN, SUB, DEL: ignored.
	case 0x07:
		p.handler.RingBell()
	case 0x08:
		p.handler.CursorLeft(1)
	case 0x09:
		p.handler.ForwardTabStop(1)
	case 0x0A, 0x0B:
		p.handler.LineFeed()
	case 0x0C:
		p.handler.FormFeed()
	case 0x0D:
		p.handler.SetCursorColumn(0)
	case 0x0E:
		p.glIndex = 1 // SO: GL := G1
	case 0x0F:
		p.glIndex = 0 // SI: GL := G0
	case 0x1B:
		p.state.fun = routineEsc
	default:
		p.warnUnknown("C0", fmt.Sprintf("0x%02X", b))
	}
}

func (p *Parser) dispatchC1(b byte) {
	switch b {
	case 0x84:
		p.handler.Index()
	case 0x85:
		p.handler.NextLine()
	case 0x88:
		p.handler.HorizontalTabSet()
	case 0x8D:
		p.handler.ReverseIndex()
	case 0x90:
		p.enterString(stringDCS)
	case 0x9B:
		p.enterCSI()
	case 0x9C:
		// lone ST outside a string sequence: ignore.
	case 0x9D:
		p.enterString(stringOSC)
	case 0x9E:
		p.enterString(stringPM)
	case 0x9F:
		p.enterString(stringAPC)
	default:
		p.warnUnknown("C1", fmt.Sprintf("0x%02X", b))
	}
}

// --- parse_esc ---

func designateSlot(b byte) int {
	switch b {
	case '(', '-':
		return 0
	case ')', '.':
		return 1
	case '*', '/':
		return 2
	case '+':
		return 3
	}
	return 0
}

func (p *Parser) parseEsc() {
	b, ok := p.state.consume()
	if !ok {
		return
	}
	switch b {
	case 0x1B:
		p.state.resetFun() // ESC ESC: reset without dispatch
	case 'D':
		p.handler.Index()
		p.state.resetFun()
	case 'E':
		p.handler.NextLine()
		p.state.resetFun()
	case 'H':
		p.handler.HorizontalTabSet()
		p.state.resetFun()
	case 'M':
		p.handler.ReverseIndex()
		p.state.resetFun()
	case 'P':
		p.enterString(stringDCS)
	case 'Z':
		p.writeback(primaryDAReply)
		p.handler.IdentifyTerminal()
		p.state.resetFun()
	case '[':
		p.enterCSI()
	case ']':
		p.enterString(stringOSC)
	case '^':
		p.enterString(stringPM)
	case '_':
		p.enterString(stringAPC)
	case '7':
		p.saveCharsets()
		p.handler.SaveCursor()
		p.state.resetFun()
	case '8':
		p.handler.RestoreCursor()
		p.restoreCharsets()
		p.state.resetFun()
	case '=':
		p.handler.SetApplicationKeypad(true)
		p.state.resetFun()
	case '>':
		p.handler.SetApplicationKeypad(false)
		p.state.resetFun()
	case 'c':
		p.handler.HardReset()
		p.state.resetFun()
	case 'n':
		p.glIndex = 2 // LS2
		p.state.resetFun()
	case 'o':
		p.glIndex = 3 // LS3
		p.state.resetFun()
	case '|':
		p.grIndex = 3 // LS3R
		p.state.resetFun()
	case '}':
		p.grIndex = 2 // LS2R
		p.state.resetFun()
	case '~':
		p.grIndex = 1 // LS1R
		p.state.resetFun()
	case '(', ')', '*', '+', '-', '.', '/':
		p.pendingSlot = designateSlot(b)
		p.state.fun = routineEscDesignate
	case '#':
		p.state.fun = routineEscHash
	default:
		p.warnUnknown("ESC", string(b))
		p.state.resetFun()
	}
}

func (p *Parser) parseEscDesignate() {
	b, ok := p.state.consume()
	if !ok {
		return
	}
	p.g[p.pendingSlot] = charmapByDesignator(b)
	p.state.resetFun()
}

func (p *Parser) parseEscHash() {
	b, ok := p.state.consume()
	if !ok {
		return
	}
	if b == '8' {
		p.handler.Decaln()
	} else {
		p.warnUnknown("ESC", "#"+string(b))
	}
	p.state.resetFun()
}

func (p *Parser) saveCharsets() {
	p.savedG = p.g
	p.savedGLIndex = p.glIndex
	p.savedGRIndex = p.grIndex
}

func (p *Parser) restoreCharsets() {
	p.g = p.savedG
	p.glIndex = p.savedGLIndex
	p.grIndex = p.savedGRIndex
}

// --- parse_csi ---

func (p *Parser) enterCSI() {
	p.state.fun = routineCSI
	p.state.resetArgs("")
}

func (p *Parser) parseCSI() {
	b, ok := p.state.consume()
	if !ok {
		return
	}

	switch {
	case b < 0x20:
		// Embedded C0 controls execute immediately without disturbing the
		// in-flight parameter accumulation (spec §4.C).
		p.dispatchCC1(b)
	case b >= '0' && b <= '9':
		p.appendParamDigit(b)
	case b == ';':
		p.state.args = append(p.state.args, "")
	case b == ':':
		// Sub-parameters are not modeled (true-color SGR, a non-goal, is the
		// only sequence family that uses them); swallow within the current
		// argument so the integer prefix still parses.
	case b >= 0x20 && b <= 0x3F:
		if p.paramStarted() {
			p.state.trailingMod = append(p.state.trailingMod, b)
		} else {
			p.state.leadingMod = append(p.state.leadingMod, b)
		}
	case b >= 0x40 && b <= 0x7E:
		p.dispatchCSIFinal(b)
		p.state.resetFun()
	default:
		p.state.resetFun() // unexpected byte aborts the sequence
	}
}

func (p *Parser) paramStarted() bool {
	return len(p.state.args) > 1 || (len(p.state.args) == 1 && p.state.args[0] != "")
}

func (p *Parser) appendParamDigit(b byte) {
	if len(p.state.args) == 0 {
		p.state.args = append(p.state.args, "")
	}
	p.state.args[len(p.state.args)-1] += string(b)
}

func (p *Parser) dispatchCSIFinal(b byte) {
	lead := string(p.state.leadingMod)
	trail := string(p.state.trailingMod)

	switch b {
	case '@':
		p.handler.InsertBlank(p.state.intArg(0, 1))
	case 'A':
		p.handler.MoveUp(p.state.intArg(0, 1))
	case 'B':
		p.handler.MoveDown(p.state.intArg(0, 1))
	case 'C':
		p.handler.MoveForward(p.state.intArg(0, 1))
	case 'D':
		p.handler.MoveBackward(p.state.intArg(0, 1))
	case 'E':
		p.handler.MoveDownCr(p.state.intArg(0, 1))
	case 'F':
		p.handler.MoveUpCr(p.state.intArg(0, 1))
	case 'G':
		p.handler.GotoCol(p.state.intArg(0, 1) - 1)
	case 'H', 'f':
		row := p.state.intArg(0, 1) - 1
		col := p.state.intArg(1, 1) - 1
		p.handler.Goto(row, col)
	case 'I':
		p.handler.ForwardTabStop(p.state.intArg(0, 1))
	case 'Z':
		p.handler.BackwardTabStop(p.state.intArg(0, 1))
	case 'J':
		p.handler.ClearScreen(ClearMode(p.state.rawIntArg(0, 0)))
	case 'K':
		p.handler.ClearLine(LineClearMode(p.state.rawIntArg(0, 0)))
	case 'L':
		p.handler.InsertBlankLines(p.state.intArg(0, 1))
	case 'M':
		p.handler.DeleteLines(p.state.intArg(0, 1))
	case 'P':
		p.handler.DeleteChars(p.state.intArg(0, 1))
	case 'S':
		p.handler.ScrollUp(p.state.intArg(0, 1))
	case 'T':
		p.handler.ScrollDown(p.state.intArg(0, 1))
	case 'X':
		p.handler.EraseChars(p.state.intArg(0, 1))
	case 'c':
		if lead == ">" {
			p.writeback(secondaryDAReply)
			p.handler.IdentifyTerminalSecondary()
		} else {
			p.writeback(primaryDAReply)
			p.handler.IdentifyTerminal()
		}
	case 'd':
		p.handler.GotoLine(p.state.intArg(0, 1) - 1)
	case 'g':
		p.handler.ClearTabs(TabulationClearMode(p.state.rawIntArg(0, 0)))
	case 'h':
		if lead == "?" {
			p.dispatchPrivateModes(true)
		} else {
			p.dispatchModes(true)
		}
	case 'l':
		if lead == "?" {
			p.dispatchPrivateModes(false)
		} else {
			p.dispatchModes(false)
		}
	case 'm':
		p.dispatchSGR()
	case 'n':
		p.dispatchDSR(lead)
	case 'r':
		top := p.state.intArg(0, 1) - 1
		bottom := p.state.rawIntArg(1, 0) - 1
		p.handler.SetScrollRegion(top, bottom)
		p.handler.Goto(0, 0)
	case 's':
		if lead != "?" {
			p.handler.SaveCursor()
		}
	case 'u':
		if lead != "?" {
			p.handler.RestoreCursor()
		}
	case 'p':
		if lead == "!" || trail == "!" {
			p.handler.SoftReset()
		} else {
			p.warnUnknown("CSI", lead+trail+"p")
		}
	default:
		p.warnUnknown("CSI", lead+trail+string(b))
	}
}

func (p *Parser) dispatchModes(set bool) {
	for _, raw := range p.state.args {
		code, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if set {
			p.handler.SetMode(code)
		} else {
			p.handler.UnsetMode(code)
		}
	}
}

func (p *Parser) dispatchPrivateModes(set bool) {
	for _, raw := range p.state.args {
		code, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if set {
			p.handler.SetPrivateMode(code)
		} else {
			p.handler.UnsetPrivateMode(code)
		}
	}
}

func (p *Parser) dispatchSGR() {
	raws := p.state.args
	if len(raws) == 0 || (len(raws) == 1 && raws[0] == "") {
		p.handler.SGR([]SGRAttr{{Kind: SGRReset}})
		return
	}

	var attrs []SGRAttr
	for i := 0; i < len(raws); i++ {
		n, err := strconv.Atoi(raws[i])
		if err != nil {
			continue
		}
		switch {
		case n == 0:
			attrs = append(attrs, SGRAttr{Kind: SGRReset})
		case n == 1:
			attrs = append(attrs, SGRAttr{Kind: SGRBoldOn})
		case n == 22:
			attrs = append(attrs, SGRAttr{Kind: SGRBoldOff})
		case n == 3:
			attrs = append(attrs, SGRAttr{Kind: SGRItalicOn})
		case n == 23:
			attrs = append(attrs, SGRAttr{Kind: SGRItalicOff})
		case n == 4:
			attrs = append(attrs, SGRAttr{Kind: SGRUnderlineOn})
		case n == 24:
			attrs = append(attrs, SGRAttr{Kind: SGRUnderlineOff})
		case n == 5:
			attrs = append(attrs, SGRAttr{Kind: SGRBlinkOn})
		case n == 25:
			attrs = append(attrs, SGRAttr{Kind: SGRBlinkOff})
		case n == 7:
			attrs = append(attrs, SGRAttr{Kind: SGRReverseOn})
		case n == 27:
			attrs = append(attrs, SGRAttr{Kind: SGRReverseOff})
		case n == 8:
			attrs = append(attrs, SGRAttr{Kind: SGRInvisibleOn})
		case n == 28:
			attrs = append(attrs, SGRAttr{Kind: SGRInvisibleOff})
		case n >= 30 && n <= 37:
			attrs = append(attrs, SGRAttr{Kind: SGRForeground, Value: n - 30})
		case n == 38:
			if i+2 < len(raws) && raws[i+1] == "5" {
				idx, _ := strconv.Atoi(raws[i+2])
				attrs = append(attrs, SGRAttr{Kind: SGRForeground, Value: idx})
				i += 2
			}
		case n == 39:
			attrs = append(attrs, SGRAttr{Kind: SGRForegroundDefault})
		case n >= 40 && n <= 47:
			attrs = append(attrs, SGRAttr{Kind: SGRBackground, Value: n - 40})
		case n == 48:
			if i+2 < len(raws) && raws[i+1] == "5" {
				idx, _ := strconv.Atoi(raws[i+2])
				attrs = append(attrs, SGRAttr{Kind: SGRBackground, Value: idx})
				i += 2
			}
		case n == 49:
			attrs = append(attrs, SGRAttr{Kind: SGRBackgroundDefault})
		case n >= 90 && n <= 97:
			attrs = append(attrs, SGRAttr{Kind: SGRForegroundBright, Value: n - 90})
		case n >= 100 && n <= 107:
			attrs = append(attrs, SGRAttr{Kind: SGRBackgroundBright, Value: n - 100})
		}
	}
	p.handler.SGR(attrs)
}

func (p *Parser) dispatchDSR(lead string) {
	code := p.state.rawIntArg(0, 0)
	p.handler.DeviceStatus(p.state.args)

	if lead == "?" {
		if code == 6 {
			row, col := p.handler.CursorPosition()
			p.writeback([]byte(fmt.Sprintf("\x1b[?%d;%dR", row+1, col+1)))
		} else {
			p.warnUnknown("DSR", "?"+strconv.Itoa(code))
		}
		return
	}

	switch code {
	case 5:
		p.writeback([]byte("\x1b[0n"))
	case 6:
		row, col := p.handler.CursorPosition()
		p.writeback([]byte(fmt.Sprintf("\x1b[%d;%dR", row+1, col+1)))
	case 15:
		p.writeback([]byte("\x1b[?13n"))
	case 25:
		p.writeback([]byte("\x1b[?20n"))
	case 26:
		p.writeback([]byte("\x1b[?27;1n"))
	case 53:
		p.writeback([]byte("\x1b[?53n"))
	default:
		p.warnUnknown("DSR", strconv.Itoa(code))
	}
}

// --- parse_until_string_terminator ---

func (p *Parser) enterString(kind stringKind) {
	p.state.fun = routineString
	p.state.kind = kind
	p.state.args = []string{""}
	p.state.stringLen = 0
	p.state.stringStartMs = p.now().UnixMilli()
}

func (p *Parser) parseString() {
	b, ok := p.state.consume()
	if !ok {
		return
	}
	switch b {
	case 0x07:
		p.completeString()
	case 0x1B:
		p.state.fun = routineStringEsc
	default:
		p.state.args[0] += string(b)
		p.state.stringLen++
		if p.state.stringLen > p.opts.MaxStringSequence {
			p.abortString()
		}
	}
}

func (p *Parser) parseStringEsc() {
	b, ok := p.state.consume()
	if !ok {
		return
	}
	if b == '\\' {
		p.completeString()
		return
	}
	// Not ST: push the byte back so default parsing reprocesses it, and
	// abort with no event emitted (spec §4.C).
	p.state.pos--
	p.abortString()
}

func (p *Parser) abortString() {
	p.state.resetFun()
}

func (p *Parser) completeString() {
	payload := p.state.args[0]
	kind := p.state.kind
	p.state.resetFun()

	switch kind {
	case stringOSC:
		p.dispatchOSC(payload)
	case stringDCS:
		p.warnUnknown("DCS", payload)
	case stringPM:
		p.warnUnknown("PM", payload)
	case stringAPC:
		p.warnUnknown("APC", payload)
	}
}

func (p *Parser) dispatchOSC(payload string) {
	idx := strings.IndexByte(payload, ';')
	if idx < 0 {
		p.warnUnknown("OSC", payload)
		return
	}
	code := payload[:idx]
	data := payload[idx+1:]

	switch code {
	case "0", "2":
		p.handler.SetTitle(data)
	case "52":
		p.dispatchClipboard(data)
	default:
		p.warnUnknown("OSC", code)
	}
}

func (p *Parser) dispatchClipboard(data string) {
	idx := strings.IndexByte(data, ';')
	if idx < 0 {
		p.warnUnknown("OSC", "52")
		return
	}
	selectors := data[:idx]
	payload := data[idx+1:]

	var selector byte = 'c'
	if len(selectors) > 0 {
		selector = selectors[0]
	}

	if payload == "?" {
		raw := p.handler.ClipboardLoad(selector)
		encoded := base64.StdEncoding.EncodeToString(raw)
		p.writeback([]byte(fmt.Sprintf("\x1b]52;%c;%s\x07", selector, encoded)))
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return
	}
	p.handler.ClipboardStore(selector, decoded)
}

func (p *Parser) writeback(b []byte) {
	if p.writer != nil {
		p.writer.Write(b)
	}
}

func (p *Parser) warnUnknown(table, code string) {
	if p.opts.Warn {
		p.logger.Warnf("vtparse: unrecognized %s sequence %q", table, code)
	}
}
