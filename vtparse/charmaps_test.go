package vtparse

import "testing"

func TestCharmapByDesignatorDefaultsToASCII(t *testing.T) {
	m := charmapByDesignator('X') // not a real designator byte
	if m != usASCII {
		t.Errorf("charmapByDesignator(unknown) = %v, want usASCII", m.Name)
	}
}

func TestDecSpecialGraphicsGL(t *testing.T) {
	m := charmapByDesignator('0')
	if got := m.Lookup('q'); got != '─' {
		t.Errorf("DEC graphics 'q' = %q, want '─'", got)
	}
	if got := m.Lookup('A'); got != 'A' {
		t.Errorf("DEC graphics 'A' (unmapped) = %q, want passthrough 'A'", got)
	}
}

func TestCharmapGRMirrorsGL(t *testing.T) {
	m := charmapByDesignator('0')
	gl := m.Lookup('q')
	gr := m.Lookup('q' | 0x80)
	if gl != gr {
		t.Errorf("GR mirror mismatch: GL %q != GR %q", gl, gr)
	}
}

func TestUKNationalPoundSign(t *testing.T) {
	m := charmapByDesignator('A')
	if got := m.Lookup('#'); got != '£' {
		t.Errorf("UK '#' = %q, want '£'", got)
	}
}

func TestFrenchCanadianKeySpelledCorrectly(t *testing.T) {
	m := charmapByDesignator('Q')
	if m.Name != "french canadian" {
		t.Errorf("designator 'Q' name = %q, want \"french canadian\"", m.Name)
	}
}
