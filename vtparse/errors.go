package vtparse

import "errors"

// ErrParserStuck is returned by Feed when a parse routine fails to advance
// any of {buf, pos, fun} — a programming error in the state machine, not a
// malformed-input condition. Every other error kind the spec defines
// (UnknownSequence, InvalidStringSequence, BadUtf8) is handled silently,
// optionally logged, and never surfaces as a returned error.
var ErrParserStuck = errors.New("vtparse: parser routine failed to advance state")
