package vtterm

import (
	"bytes"
	"testing"
)

func TestNewDefaultsTo80x24(t *testing.T) {
	vt := New()
	if vt.Buffer().Cols() != 80 || vt.Buffer().Rows() != 24 {
		t.Fatalf("default geometry = %dx%d, want 80x24", vt.Buffer().Cols(), vt.Buffer().Rows())
	}
}

func TestWriteReturnsBytesConsumed(t *testing.T) {
	vt := New(WithSize(10, 5))
	n, err := vt.Write([]byte("hi"))
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if n != 2 {
		t.Fatalf("Write returned %d, want 2", n)
	}
}

func TestResizeFiresOnResize(t *testing.T) {
	vt := New(WithSize(10, 5))
	var got [2]int
	calls := 0
	vt.OnResize(func(cols, rows int) {
		calls++
		got = [2]int{cols, rows}
	})
	vt.Resize(20, 10)
	if calls != 1 {
		t.Fatalf("OnResize fired %d times, want 1", calls)
	}
	if got != [2]int{20, 10} {
		t.Fatalf("resize args = %v, want [20 10]", got)
	}
	if vt.Buffer().Cols() != 20 || vt.Buffer().Rows() != 10 {
		t.Fatalf("buffer geometry = %dx%d, want 20x10", vt.Buffer().Cols(), vt.Buffer().Rows())
	}
}

func TestResizeToCurrentGeometryIsNoOp(t *testing.T) {
	vt := New(WithSize(10, 5))
	vt.Write([]byte("hello"))
	before := string(runesOf(vt.Buffer().Line(0)[:5]))

	calls := 0
	vt.OnResize(func(int, int) { calls++ })
	vt.Resize(10, 5)

	if calls != 0 {
		t.Fatalf("OnResize fired on a no-op resize")
	}
	after := string(runesOf(vt.Buffer().Line(0)[:5]))
	if before != after {
		t.Fatalf("contents changed on no-op resize: %q -> %q", before, after)
	}
}

func TestOnTitleFiresOnOSC(t *testing.T) {
	vt := New(WithSize(10, 5))
	var title string
	vt.OnTitle(func(s string) { title = s })

	vt.Write([]byte("\x1b]0;hello\x07"))

	if title != "hello" {
		t.Fatalf("title = %q, want %q", title, "hello")
	}
	if vt.Title() != "hello" {
		t.Fatalf("Title() = %q, want %q", vt.Title(), "hello")
	}
}

func TestWriteUsesPtyWriterForReplies(t *testing.T) {
	var pty bytes.Buffer
	vt := New(WithSize(10, 5), WithWriter(&pty))
	vt.Write([]byte("\x1b[5n"))
	if pty.String() != "\x1b[0n" {
		t.Fatalf("DSR reply = %q, want %q", pty.String(), "\x1b[0n")
	}
}
