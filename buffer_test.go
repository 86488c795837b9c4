package vtterm

import "testing"

func TestNewBufferAllBlank(t *testing.T) {
	b := NewBuffer(4, 3)
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if b.Base() != 0 {
		t.Errorf("Base() = %d, want 0", b.Base())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if g := b.Glyph(x, y); g.Ch != ' ' {
				t.Errorf("Glyph(%d,%d) = %q, want blank", x, y, g.Ch)
			}
		}
	}
}

func TestScrollUpFullRegionGrowsBase(t *testing.T) {
	b := NewBuffer(4, 3)
	b.SetGlyph(0, 0, Glyph{Ch: 'x'})
	b.ScrollUp(2, 1, defaultAttr)

	if b.Base() != 1 {
		t.Fatalf("Base() = %d, want 1", b.Base())
	}
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	if g := b.AbsLine(0)[0]; g.Ch != 'x' {
		t.Errorf("scrolled-off line lost, got %q", g.Ch)
	}
	if g := b.Glyph(2, 2); g.Ch != ' ' {
		t.Errorf("new bottom line not blank: %q", g.Ch)
	}
}

func TestScrollUpNonFullRegionStillGrowsScrollback(t *testing.T) {
	// Open Question 1: a scroll confined to rows [0,1] of a 3-row screen
	// still inserts at base+bottom and grows base unconditionally.
	b := NewBuffer(4, 3)
	b.ScrollUp(1, 1, defaultAttr)

	if b.Base() != 1 {
		t.Fatalf("Base() = %d, want 1 (grows even for a partial region)", b.Base())
	}
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
}

func TestScrollDownPreservesBase(t *testing.T) {
	b := NewBuffer(4, 3)
	b.SetGlyph(0, 2, Glyph{Ch: 'z'})
	b.ScrollDown(0, 2, 1, defaultAttr)

	if b.Base() != 0 {
		t.Errorf("Base() = %d, want 0 (ScrollDown never grows scrollback)", b.Base())
	}
	if g := b.Glyph(0, 0); g.Ch != ' ' {
		t.Errorf("top row after ScrollDown = %q, want blank", g.Ch)
	}
	if g := b.Glyph(0, 2); g.Ch == 'z' {
		t.Error("bottom row still has the scrolled-away glyph")
	}
}

func TestClearRectClampsToBounds(t *testing.T) {
	b := NewBuffer(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			b.SetGlyph(x, y, Glyph{Ch: 'x'})
		}
	}
	b.ClearRect(-1, -1, 3, 3, defaultAttr)

	if g := b.Glyph(0, 0); g.Ch != ' ' {
		t.Errorf("Glyph(0,0) = %q, want cleared", g.Ch)
	}
	if g := b.Glyph(3, 2); g.Ch != 'x' {
		t.Errorf("Glyph(3,2) = %q, want untouched 'x'", g.Ch)
	}
}

func TestResizeGrowsAndShrinksRows(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Resize(4, 5, defaultAttr)
	if b.Rows() != 5 || b.Len() != 5 {
		t.Fatalf("after growing: Rows()=%d Len()=%d, want 5,5", b.Rows(), b.Len())
	}

	b.Resize(4, 1, defaultAttr)
	if b.Rows() != 1 || b.Len() != 1 {
		t.Fatalf("after shrinking: Rows()=%d Len()=%d, want 1,1", b.Rows(), b.Len())
	}
}

func TestResizeColsPadsEachLine(t *testing.T) {
	b := NewBuffer(2, 1)
	b.SetGlyph(0, 0, Glyph{Ch: 'a'})
	b.Resize(4, 1, defaultAttr)
	if b.Cols() != 4 {
		t.Fatalf("Cols() = %d, want 4", b.Cols())
	}
	if g := b.Glyph(0, 0); g.Ch != 'a' {
		t.Errorf("existing glyph lost on column grow: %q", g.Ch)
	}
	if g := b.Glyph(3, 0); g.Ch != ' ' {
		t.Errorf("new column not blank: %q", g.Ch)
	}
}

func TestCloneIsDeepCopy(t *testing.T) {
	b := NewBuffer(2, 2)
	b.SetGlyph(0, 0, Glyph{Ch: 'a'})
	clone := b.Clone()
	clone.SetGlyph(0, 0, Glyph{Ch: 'b'})

	if g := b.Glyph(0, 0); g.Ch != 'a' {
		t.Errorf("original mutated through clone: %q", g.Ch)
	}
}
