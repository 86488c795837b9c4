package vtparse

// Options holds the tunable parser behavior: the two abort thresholds for
// ST-terminated string sequences, the warn-on-unknown toggle, and whether
// 132-column mode (DECCOLM, DECSET 3) is allowed to resize the screen.
// Parser itself only consumes the first three; the last is read by the
// screen model (vtterm.Screen) from the same struct so a host configures
// both stages from one value.
type Options struct {
	AllowWidthChange  bool
	OSCTimeLimitMs    int
	MaxStringSequence int
	Warn              bool
}

// DefaultOptions returns the library's default tunables.
func DefaultOptions() Options {
	return Options{
		AllowWidthChange:  true,
		OSCTimeLimitMs:    2000,
		MaxStringSequence: 1024,
		Warn:              true,
	}
}
