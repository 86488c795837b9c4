package vtterm

// Glyph is a packed, fixed-size cell: a single code point plus a 32-bit
// attribute word. The word is the on-wire representation — background in
// bits 0-8, foreground in bits 9-17, an attribute bitmask in bits 18-31 —
// and every caller goes through the named accessors below rather than
// twiddling bits directly, the same discipline headlessterm's Cell gives
// its color.Color/CellFlags fields (cell.go), generalized to a packed word.
type Glyph struct {
	Attr uint32
	Ch   rune
}

const (
	attrBgMask   = 0x1FF        // bits 0-8
	attrFgShift  = 9
	attrFgMask   = 0x1FF << attrFgShift // bits 9-17
	attrFlagShift = 18
)

// Attribute flags packed into bits 18-31 of a Glyph's Attr word.
const (
	AttrNone      uint32 = 0
	AttrReverse   uint32 = 1 << (attrFlagShift + 0)
	AttrUnderline uint32 = 1 << (attrFlagShift + 1)
	AttrBold      uint32 = 1 << (attrFlagShift + 2)
	AttrGfx       uint32 = 1 << (attrFlagShift + 3)
	AttrItalic    uint32 = 1 << (attrFlagShift + 4)
	AttrBlink     uint32 = 1 << (attrFlagShift + 5)
)

// DefaultBg and DefaultFg are the color indices meaning "no explicit color
// set" for background and foreground respectively.
const (
	DefaultBg uint32 = 256
	DefaultFg uint32 = 257
)

// packAttr builds an attribute word from a background index, foreground
// index, and flag bitmask. An index too large for its 9-bit field is
// replaced by the default index rather than overflowing into an adjacent
// field.
func packAttr(bg, fg uint32, flags uint32) uint32 {
	if bg > attrBgMask {
		bg = DefaultBg
	}
	if fg > 0x1FF {
		fg = DefaultFg
	}
	return (bg & attrBgMask) | ((fg & 0x1FF) << attrFgShift) | (flags &^ (attrBgMask | attrFgMask))
}

// Bg returns the background color index (0-511; DefaultBg means unset).
func Bg(attr uint32) uint32 { return attr & attrBgMask }

// Fg returns the foreground color index (0-511; DefaultFg means unset).
func Fg(attr uint32) uint32 { return (attr & attrFgMask) >> attrFgShift }

// WithBg returns attr with its background index replaced.
func WithBg(attr, bg uint32) uint32 {
	return packAttr(bg, Fg(attr), flagsOf(attr))
}

// WithFg returns attr with its foreground index replaced.
func WithFg(attr, fg uint32) uint32 {
	return packAttr(Bg(attr), fg, flagsOf(attr))
}

func flagsOf(attr uint32) uint32 {
	return attr &^ (attrBgMask | attrFgMask)
}

// HasAttr reports whether attr carries every bit of flag set.
func HasAttr(attr, flag uint32) bool {
	return attr&flag == flag
}

// SetAttr returns attr with flag bits set.
func SetAttr(attr, flag uint32) uint32 {
	return attr | (flag &^ (attrBgMask | attrFgMask))
}

// ClearAttr returns attr with flag bits cleared.
func ClearAttr(attr, flag uint32) uint32 {
	return attr &^ (flag &^ (attrBgMask | attrFgMask))
}

// ToggleReverse returns attr with AttrReverse flipped. SGR 7/27 and DECSCNM
// (private mode 5) both flip this bit rather than set/clear unconditionally
// in some VTs; vtterm always uses explicit set/clear (SGR 7 sets, SGR 27
// clears), so this exists only for symmetry with the named-accessor
// discipline and is unused by the parser path.
func ToggleReverse(attr uint32) uint32 {
	return attr ^ AttrReverse
}

// defaultAttr is the attribute word of a freshly reset cell: default
// colors, no flags.
var defaultAttr = packAttr(DefaultBg, DefaultFg, AttrNone)

// blankGlyph is the glyph a clear/erase operation fills with, carrying the
// given attribute word (typically the current cursor template) and a
// space character.
func blankGlyph(attr uint32) Glyph {
	return Glyph{Attr: attr, Ch: ' '}
}
