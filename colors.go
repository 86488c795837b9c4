package vtterm

import "image/color"

// Palette is the standard 256-color VT/xterm palette: 16 named colors
// (0-15), a 216-entry color cube (16-231), and 24 grayscale steps
// (232-255). Kept from headlessterm's colors.go, reshaped from a
// `color.Color`-valued cell field to a resolver over the packed glyph
// attribute's color *index* (spec §3: bg/fg are indices, not colors).
var Palette = [256]color.RGBA{
	{0, 0, 0, 255},
	{205, 49, 49, 255},
	{13, 188, 121, 255},
	{229, 229, 16, 255},
	{36, 114, 200, 255},
	{188, 63, 188, 255},
	{17, 168, 205, 255},
	{229, 229, 229, 255},

	{102, 102, 102, 255},
	{241, 76, 76, 255},
	{35, 209, 139, 255},
	{245, 245, 67, 255},
	{59, 142, 234, 255},
	{214, 112, 214, 255},
	{41, 184, 219, 255},
	{255, 255, 255, 255},
}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for bl := 0; bl < 6; bl++ {
				Palette[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(bl * 51), A: 255}
				i++
			}
		}
	}
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		Palette[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}
}

// DefaultForegroundColor and DefaultBackgroundColor back the DefaultFg/
// DefaultBg packed indices (spec §3: index 256/257 mean "default").
var (
	DefaultForegroundColor = color.RGBA{R: 229, G: 229, B: 229, A: 255}
	DefaultBackgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// ResolveColor maps a packed bg/fg index (as returned by [Bg] or [Fg]) to
// an RGBA color, for a renderer consuming Buffer contents. fg selects
// which default applies when idx denotes "unset".
func ResolveColor(idx uint32, fg bool) color.RGBA {
	switch {
	case idx < 256:
		return Palette[idx]
	case idx == DefaultFg, idx == DefaultBg:
		if fg {
			return DefaultForegroundColor
		}
		return DefaultBackgroundColor
	default:
		if fg {
			return DefaultForegroundColor
		}
		return DefaultBackgroundColor
	}
}
