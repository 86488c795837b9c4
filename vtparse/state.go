package vtparse

import "strconv"

// routine identifies which parse routine is currently consuming input.
type routine int

const (
	routineUnknown      routine = iota // scan for the next C0/C1 control
	routineEsc                         // one byte after ESC
	routineEscDesignate                // one byte after ESC ( ) * + - . /
	routineEscHash                     // one byte after ESC #
	routineCSI                         // CSI parameter/modifier/final accumulation
	routineString                      // OSC/DCS/APC/PM, terminated by ST or BEL
	routineStringEsc                   // ESC seen inside a string sequence, awaiting \
)

// stringKind distinguishes which ST-terminated sequence routineString is
// currently accumulating, so termination dispatches to the right table.
type stringKind int

const (
	stringNone stringKind = iota
	stringOSC
	stringDCS
	stringAPC
	stringPM
)

// ParserState is the parser's mutable cursor into the current input chunk:
// the buffer under analysis, the read position, the active parse routine,
// the accumulated CSI/OSC parameter list, and the two CSI modifier-byte
// accumulators. It carries no semantics of its own beyond bookkeeping for
// the routines in parser.go.
type ParserState struct {
	buf []byte
	pos int

	fun routine
	kind stringKind

	args        []string
	leadingMod  []byte
	trailingMod []byte

	stringStartMs int64 // wall-clock ms timestamp of the first byte of the current string sequence
	stringLen     int
}

// reset rebinds the state to a new input chunk and rewinds the position to
// its start, without touching the active routine or parameters.
func (s *ParserState) reset(buf []byte) {
	s.buf = buf
	s.pos = 0
}

// resetFun returns the parser to its default routine and clears all
// accumulated parameters and modifiers. Called whenever a sequence
// terminates, aborts, or is rejected.
func (s *ParserState) resetFun() {
	s.fun = routineUnknown
	s.kind = stringNone
	s.args = nil
	s.leadingMod = s.leadingMod[:0]
	s.trailingMod = s.trailingMod[:0]
	s.stringLen = 0
}

// resetArgs clears the parameter list, optionally seeding it with a single
// initial argument (an empty arg0 leaves the list empty).
func (s *ParserState) resetArgs(arg0 string) {
	if arg0 == "" {
		s.args = s.args[:0]
		return
	}
	s.args = append(s.args[:0], arg0)
}

// advance moves the read position forward by n bytes, never past the end of
// buf.
func (s *ParserState) advance(n int) {
	s.pos += n
	if s.pos > len(s.buf) {
		s.pos = len(s.buf)
	}
}

// peek returns the byte at the current position, and false if the buffer is
// exhausted.
func (s *ParserState) peek() (byte, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	return s.buf[s.pos], true
}

// peekBuf returns the unconsumed remainder of the current chunk.
func (s *ParserState) peekBuf() []byte {
	return s.buf[s.pos:]
}

// consume returns the byte at the current position and advances past it.
func (s *ParserState) consume() (byte, bool) {
	b, ok := s.peek()
	if ok {
		s.pos++
	}
	return b, ok
}

// isComplete reports whether the entire chunk has been consumed.
func (s *ParserState) isComplete() bool {
	return s.pos >= len(s.buf)
}

// intArg parses the i-th parameter as a non-negative decimal integer. A
// missing parameter (index out of range), an empty parameter string, or an
// explicit "0" all return def — VT parameter conventions treat an explicit
// zero as "absent" for motion/count parameters.
func (s *ParserState) intArg(i int, def int) int {
	if i < 0 || i >= len(s.args) {
		return def
	}
	raw := s.args[i]
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	if n == 0 {
		return def
	}
	return n
}

// rawIntArg parses the i-th parameter without the implicit-zero-means-absent
// rule, returning def only when the parameter is genuinely missing or
// unparsable. Used where 0 is a meaningful value in its own right (ED/EL/TBC
// modes, DSR codes, the DECSTBM bottom margin).
func (s *ParserState) rawIntArg(i int, def int) int {
	if i < 0 || i >= len(s.args) {
		return def
	}
	raw := s.args[i]
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
