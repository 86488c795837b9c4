package vtparse

import "testing"

func TestParserStateIntArgDefaultsOnZero(t *testing.T) {
	s := &ParserState{args: []string{"0"}}
	if got := s.intArg(0, 7); got != 7 {
		t.Errorf("intArg(0) = %d, want 7 (explicit zero is absent)", got)
	}
}

func TestParserStateIntArgMissing(t *testing.T) {
	s := &ParserState{}
	if got := s.intArg(0, 3); got != 3 {
		t.Errorf("intArg on missing arg = %d, want default 3", got)
	}
}

func TestParserStateIntArgParses(t *testing.T) {
	s := &ParserState{args: []string{"42"}}
	if got := s.intArg(0, 1); got != 42 {
		t.Errorf("intArg = %d, want 42", got)
	}
}

func TestParserStateRawIntArgKeepsZero(t *testing.T) {
	s := &ParserState{args: []string{"0"}}
	if got := s.rawIntArg(0, 9); got != 0 {
		t.Errorf("rawIntArg(0) = %d, want 0 (no absent-zero rule)", got)
	}
}

func TestParserStateConsumeAdvances(t *testing.T) {
	s := &ParserState{}
	s.reset([]byte("ab"))

	b, ok := s.consume()
	if !ok || b != 'a' {
		t.Fatalf("consume() = %q, %v; want 'a', true", b, ok)
	}
	if s.pos != 1 {
		t.Errorf("pos = %d, want 1", s.pos)
	}
	if s.isComplete() {
		t.Error("isComplete() = true after one byte of two")
	}
	s.consume()
	if !s.isComplete() {
		t.Error("isComplete() = false after consuming all bytes")
	}
}

func TestParserStateResetFunClearsAccumulators(t *testing.T) {
	s := &ParserState{
		fun:         routineCSI,
		args:        []string{"1", "2"},
		leadingMod:  []byte("?"),
		trailingMod: []byte("$"),
	}
	s.resetFun()
	if s.fun != routineUnknown {
		t.Errorf("fun = %v, want routineUnknown", s.fun)
	}
	if len(s.args) != 0 || len(s.leadingMod) != 0 || len(s.trailingMod) != 0 {
		t.Error("resetFun did not clear accumulators")
	}
}
