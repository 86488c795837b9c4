package vtparse

// Charmap is a static, immutable table translating bytes in the GL range
// (0x20-0x7E) into display code points for one designated VT character set.
// A GR variant is derived automatically by mirroring each GL key with its
// high bit set, so the same table also serves the GR half of the encoding
// space (0xA0-0xFE). Unmapped bytes pass through unchanged. Charmaps are
// pure and stateless: built once at package init and never mutated.
type Charmap struct {
	Name  string
	table [256]rune // 0 means "no override, passthrough"
}

func newCharmap(name string, overrides map[byte]rune) *Charmap {
	m := &Charmap{Name: name}
	for k, v := range overrides {
		m.table[k] = v
		m.table[k|0x80] = v
	}
	return m
}

// GL substitutes each byte of s that falls in this map's GL range
// (0x20-0x7E) with its designated code point. Bytes with no override, and
// all bytes outside the GL range, pass through unchanged.
func (m *Charmap) GL(s []byte) string {
	return m.translate(s, false)
}

// GR substitutes each byte of s that falls in this map's GR range
// (0xA0-0xFE, the GL range mirrored with the high bit set) with its
// designated code point. Bytes with no override, and all bytes below 0x80,
// pass through unchanged.
func (m *Charmap) GR(s []byte) string {
	return m.translate(s, true)
}

func (m *Charmap) translate(s []byte, gr bool) string {
	out := make([]rune, 0, len(s))
	for _, b := range s {
		if m != nil && (b >= 0x80) == gr {
			if r := m.table[b]; r != 0 {
				out = append(out, r)
				continue
			}
		}
		out = append(out, rune(b))
	}
	return string(out)
}

// Lookup translates a single byte through this map, honoring whichever half
// (GL or GR) the byte's value falls into. The parser translates every byte
// of a plain-text run through Lookup.
func (m *Charmap) Lookup(b byte) rune {
	if m == nil {
		return rune(b)
	}
	if r := m.table[b]; r != 0 {
		return r
	}
	return rune(b)
}

// charmapByDesignator looks up the static table for a single designator
// byte, as used by G0-G3 designation sequences (ESC ( / ) / * / + / - / . / /).
func charmapByDesignator(b byte) *Charmap {
	if m, ok := charmaps[b]; ok {
		return m
	}
	return charmaps['B']
}

// DEC Special Graphics (line drawing), designator '0'.
var decSpecialGraphics = newCharmap("dec special graphics", map[byte]rune{
	'_': ' ',
	'`': '◆', // diamond
	'a': '▒', // checkerboard
	'b': '␉', // HT symbol
	'c': '␌', // FF symbol
	'd': '␍', // CR symbol
	'e': '␊', // LF symbol
	'f': '°', // degree
	'g': '±', // plus/minus
	'h': '␤', // NL symbol
	'i': '␋', // VT symbol
	'j': '┘', // lower right corner
	'k': '┐', // upper right corner
	'l': '┌', // upper left corner
	'm': '└', // lower left corner
	'n': '┼', // crossing lines
	'o': '⎺', // scan line 1
	'p': '⎻', // scan line 3
	'q': '─', // horizontal line
	'r': '⎼', // scan line 7
	's': '⎽', // scan line 9
	't': '├', // left tee
	'u': '┤', // right tee
	'v': '┴', // bottom tee
	'w': '┬', // top tee
	'x': '│', // vertical line
	'y': '≤', // less-or-equal
	'z': '≥', // greater-or-equal
	'{': 'π', // pi
	'|': '≠', // not equal
	'}': '£', // pound sterling
	'~': '·', // middle dot
})

var usASCII = newCharmap("us ascii", nil)

var ukNational = newCharmap("uk", map[byte]rune{
	'#': '£', // pound sterling
})

var dutchNational = newCharmap("dutch", map[byte]rune{
	'#': '£',
	'@': '¾',
	'[': 'ĳ', // ij ligature
	'\\': '½',
	']': '|',
	'{': '¨',
	'|': 'f',
	'}': '¼',
	'~': '´',
})

var finnishNational = newCharmap("finnish", map[byte]rune{
	'[':  'Ä',
	'\\': 'Ö',
	']':  'Å',
	'^':  'Ü',
	'`':  'é',
	'{':  'ä',
	'|':  'ö',
	'}':  'å',
	'~':  'ü',
})

var frenchNational = newCharmap("french", map[byte]rune{
	'#':  '£',
	'@':  'à',
	'[':  '°',
	'\\': 'ç',
	']':  '§',
	'{':  'é',
	'|':  'ù',
	'}':  'è',
	'~':  '¨',
})

// French Canadian. The source table this was ported from keyed this entry
// under a misspelled name; normalized here to "french canadian".
var frenchCanadianNational = newCharmap("french canadian", map[byte]rune{
	'@':  'à',
	'[':  'â',
	'\\': 'ç',
	']':  'ê',
	'^':  'î',
	'`':  'ô',
	'{':  'é',
	'|':  'ù',
	'}':  'è',
	'~':  'û',
})

var germanNational = newCharmap("german", map[byte]rune{
	'@':  '§',
	'[':  'Ä',
	'\\': 'Ö',
	']':  'Ü',
	'{':  'ä',
	'|':  'ö',
	'}':  'ü',
	'~':  'ß',
})

var italianNational = newCharmap("italian", map[byte]rune{
	'#':  '£',
	'@':  '§',
	'[':  '°',
	'\\': 'ç',
	']':  'é',
	'`':  'ù',
	'{':  'à',
	'|':  'ò',
	'}':  'è',
	'~':  'ì',
})

var norwegianDanishNational = newCharmap("norwegian danish", map[byte]rune{
	'@':  'Ä',
	'[':  'Æ',
	'\\': 'Ø',
	']':  'Å',
	'^':  'Ü',
	'`':  'ä',
	'{':  'æ',
	'|':  'ø',
	'}':  'å',
	'~':  'ü',
})

var spanishNational = newCharmap("spanish", map[byte]rune{
	'#':  '£',
	'@':  '§',
	'[':  '¡',
	'\\': 'Ñ',
	']':  '¿',
	'{':  '°',
	'|':  'ñ',
	'}':  'ç',
})

var swedishNational = newCharmap("swedish", map[byte]rune{
	'@':  'É',
	'[':  'Ä',
	'\\': 'Ö',
	']':  'Å',
	'^':  'Ü',
	'`':  'é',
	'{':  'ä',
	'|':  'ö',
	'}':  'å',
	'~':  'ü',
})

var swissNational = newCharmap("swiss", map[byte]rune{
	'#':  'ù',
	'@':  'à',
	'[':  'é',
	'\\': 'ç',
	']':  'ê',
	'^':  'î',
	'_':  'è',
	'`':  'ô',
	'{':  'ä',
	'|':  'ö',
	'}':  'ü',
	'~':  'û',
})

// charmaps maps a single VT designator byte to its static table, as used by
// ESC ( ) * + - . / (designate character set into G0-G3).
var charmaps = map[byte]*Charmap{
	'B': usASCII,
	'0': decSpecialGraphics,
	'1': decSpecialGraphics,
	'2': decSpecialGraphics,
	'A': ukNational,
	'4': dutchNational,
	'C': finnishNational,
	'5': finnishNational,
	'R': frenchNational,
	'Q': frenchCanadianNational,
	'K': germanNational,
	'Y': italianNational,
	'E': norwegianDanishNational,
	'6': norwegianDanishNational,
	'Z': spanishNational,
	'H': swedishNational,
	'7': swedishNational,
	'=': swissNational,
}
