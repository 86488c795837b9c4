package vtterm

// Modes is the terminal's mode bitmask, tracked on Screen.
type Modes uint32

const (
	ModeWrap Modes = 1 << iota
	ModeInsert
	ModeAppKeypad
	ModeAltScreen
	ModeCRLF
	ModeMouseBtn
	ModeMouseMotion
	ModeReverse
	ModeKbdLock
	ModeHide
	ModeEcho
	ModeAppCursor
	ModeMouseSGR
)

// Has reports whether every bit of m is set.
func (s Modes) Has(m Modes) bool { return s&m == m }

// Set returns s with m's bits set.
func (s Modes) Set(m Modes) Modes { return s | m }

// Clear returns s with m's bits cleared.
func (s Modes) Clear(m Modes) Modes { return s &^ m }
