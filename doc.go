// Package vtterm provides a headless VT100/VT220/xterm-compatible terminal
// emulator: a two-stage pipeline that turns a pty's raw byte stream into an
// in-memory grid of styled glyphs, a cursor, modes, tab stops, a scroll
// region, and a window title.
//
// # Architecture
//
// The [vtparse] package is stage one: a byte-level state machine decoding
// C0/C1 controls, ESC/CSI/OSC/DCS/APC/PM sequences, and character-set
// designations into semantic events delivered to a [vtparse.Handler].
// vtterm's [Screen] is stage two: it implements that interface, mutating a
// [Buffer] of [Glyph] values, a [Cursor], a set of [Modes], tab stops, an
// alternate-screen slot, and dirty-region tracking, and emits coarse
// refresh/title/alternate/resize notifications through [Terminal]'s
// subscription methods.
//
// # Quick start
//
//	term := vtterm.New(vtterm.WithSize(80, 24), vtterm.WithWriter(ptyIn))
//	term.OnRefresh(func(dirty [2]int, lines []vtterm.Line, cur vtterm.CursorPos) {
//	    // repaint rows dirty[0]..dirty[1]
//	})
//	io.Copy(term, ptyOut)
//
// # Dual buffers
//
// Terminal maintains exactly one buffer at a time, swapping to a fresh
// alternate-screen grid on DECSET 47/1047/1049 and restoring the primary
// grid verbatim on the matching reset, per [Screen]'s alternate-screen
// algorithm.
//
// # Scope
//
// This package implements the emulator core only. Spawning a pty, reading
// its bytes, and writing replies back to it is the caller's job — see
// cmd/vttermdemo for a worked example using creack/pty and x/term. Drawing
// glyphs to pixels, keyboard-to-byte encoding, true-color SGR, sixel/Kitty
// images, bracketed paste, bidi text, and double-width lines are explicitly
// out of scope.
package vtterm
