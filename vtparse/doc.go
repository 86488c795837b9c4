// Package vtparse is the byte-level half of the terminal emulator: it scans
// a stream of pty bytes, drives the C0/C1/ESC/CSI/OSC/DCS/APC/PM state
// machine, and dispatches decoded semantic events through a Handler.
//
// vtparse never touches a grid. It owns only the things that affect how the
// next bytes are interpreted: the parameter accumulator (ParserState), the
// currently designated G0-G3 character sets and the GL/GR selectors that
// choose between them, and the CC1/ESC/CSI/OSC dispatch tables. Everything
// that mutates displayed state — cursor motion, scrolling, erase, SGR — is
// forwarded to a Handler implementation, normally a vtterm.Screen.
package vtparse
