package vtterm

import (
	"bytes"
	"fmt"
	"testing"
)

// Scenario 1 (spec §8.1): plain print.
func TestScenarioPlainPrint(t *testing.T) {
	vt := New(WithSize(40, 24))
	var dirty [2]int
	fired := 0
	vt.OnRefresh(func(d [2]int, lines []Line, cur CursorPos) {
		fired++
		dirty = d
	})

	vt.Write([]byte("test"))

	line := vt.Buffer().Line(0)
	got := string(runesOf(line[:4]))
	if got != "test" {
		t.Fatalf("row 0 prefix = %q, want \"test\"", got)
	}
	for x := 4; x < 40; x++ {
		if line[x].Ch != ' ' {
			t.Fatalf("row 0 col %d = %q, want blank", x, line[x].Ch)
		}
	}
	if fired != 1 {
		t.Fatalf("refresh fired %d times, want 1", fired)
	}
	if dirty != [2]int{0, 0} {
		t.Fatalf("dirty = %v, want [0 0]", dirty)
	}
	if cur := vt.Cursor(); cur.X != 4 || cur.Y != 0 {
		t.Fatalf("cursor = %+v, want (4,0)", cur)
	}
}

// Scenario 2 (spec §8.2): line wrap.
func TestScenarioLineWrap(t *testing.T) {
	vt := New(WithSize(40, 24))
	vt.Write(bytes.Repeat([]byte("E"), 50))

	row0 := vt.Buffer().Line(0)
	for x := 0; x < 40; x++ {
		if row0[x].Ch != 'E' {
			t.Fatalf("row 0 col %d = %q, want 'E'", x, row0[x].Ch)
		}
	}
	row1 := vt.Buffer().Line(1)
	for x := 0; x < 10; x++ {
		if row1[x].Ch != 'E' {
			t.Fatalf("row 1 col %d = %q, want 'E'", x, row1[x].Ch)
		}
	}
	for x := 10; x < 40; x++ {
		if row1[x].Ch != ' ' {
			t.Fatalf("row 1 col %d = %q, want blank", x, row1[x].Ch)
		}
	}
	cur := vt.Cursor()
	if cur.X != 10 || cur.Y != 1 {
		t.Fatalf("cursor = %+v, want (10,1)", cur)
	}
}

// Scenario 3 (spec §8.3): scroll region.
func TestScenarioScrollRegion(t *testing.T) {
	vt := New(WithSize(40, 24))

	var in bytes.Buffer
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&in, "%d\n\r", i)
	}
	in.WriteString("\x1b[1;23r")
	in.WriteString("\x1b[23;1H")
	in.WriteString("29\r\n30")
	in.WriteString("\x1b[1;24r")
	vt.Write(in.Bytes())

	check := func(absRow int, want string) {
		line := vt.Buffer().AbsLine(absRow)
		got := string(runesOf(line[:len(want)]))
		if got != want {
			t.Errorf("abs row %d = %q, want %q", absRow, got, want)
		}
	}
	check(23, "23")
	check(24, "24")
	check(29, "29")
	check(30, "30")
}

// Scenario 4 (spec §8.4): alternate screen round-trip.
func TestScenarioAlternateScreenRoundTrip(t *testing.T) {
	vt := New(WithSize(40, 24))
	var transitions []bool
	vt.OnAlternate(func(on bool) { transitions = append(transitions, on) })

	vt.Write([]byte("A"))
	vt.Write([]byte("\x1b[?1049h"))
	vt.Write([]byte("B"))
	vt.Write([]byte("\x1b[?1049l"))

	row0 := vt.Buffer().Line(0)
	if row0[0].Ch != 'A' {
		t.Fatalf("row 0 col 0 = %q, want 'A'", row0[0].Ch)
	}
	if cur := vt.Cursor(); cur.X != 1 || cur.Y != 0 {
		t.Fatalf("cursor = %+v, want (1,0) restored", cur)
	}
	if len(transitions) != 2 || transitions[0] != true || transitions[1] != false {
		t.Fatalf("alternate transitions = %v, want [true false]", transitions)
	}
}

// Scenario 5 (spec §8.5): primary DA reply.
func TestScenarioPrimaryDAReply(t *testing.T) {
	var pty bytes.Buffer
	vt := New(WithSize(40, 24), WithWriter(&pty))

	vt.Write([]byte("\x1b[c"))

	if pty.String() != "\x1b[?1;2c" {
		t.Fatalf("pty write = %q, want %q", pty.String(), "\x1b[?1;2c")
	}
	row0 := vt.Buffer().Line(0)
	if row0[0].Ch != ' ' {
		t.Fatalf("DA reply caused a visible mutation: %q", row0[0].Ch)
	}
}

// Scenario 6 (spec §8.6): SGR reset and color.
func TestScenarioSGRResetAndColor(t *testing.T) {
	vt := New(WithSize(40, 24))
	vt.Write([]byte("\x1b[31mX\x1b[0mY"))

	row0 := vt.Buffer().Line(0)
	if row0[0].Ch != 'X' || Fg(row0[0].Attr) != 1 {
		t.Fatalf("glyph 0 = %q fg=%d, want 'X' fg=1", row0[0].Ch, Fg(row0[0].Attr))
	}
	if row0[1].Ch != 'Y' || row0[1].Attr != defaultAttr {
		t.Fatalf("glyph 1 = %q attr=%d, want 'Y' with default attr", row0[1].Ch, row0[1].Attr)
	}
}

func runesOf(l Line) []rune {
	out := make([]rune, len(l))
	for i, g := range l {
		out[i] = g.Ch
	}
	return out
}
