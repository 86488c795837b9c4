package vtterm

// RefreshFunc is called with the dirty range (absolute buffer rows), the
// corresponding slice of buffer lines (which can include scrollback rows),
// and the cursor position, at most once per input chunk.
type RefreshFunc func(dirty [2]int, slice []Line, cursor CursorPos)

// AlternateFunc is called when the alternate screen is entered or left.
type AlternateFunc func(on bool)

// TitleFunc is called on OSC 0/2.
type TitleFunc func(title string)

// ResizeFunc is called on an external resize (unless silent).
type ResizeFunc func(cols, rows int)

// notifier is a plural, subscribable event registry: every Terminal event
// can have any number of subscribers, fanned out to synchronously in
// registration order. Grounded on headlessterm's Provider/Noop pattern
// (providers.go), but shaped as a slice of subscribers per event rather
// than a single provider slot.
type notifier struct {
	refresh   []RefreshFunc
	alternate []AlternateFunc
	title     []TitleFunc
	resize    []ResizeFunc
}

func (n *notifier) onRefresh(f RefreshFunc)     { n.refresh = append(n.refresh, f) }
func (n *notifier) onAlternate(f AlternateFunc) { n.alternate = append(n.alternate, f) }
func (n *notifier) onTitle(f TitleFunc)         { n.title = append(n.title, f) }
func (n *notifier) onResize(f ResizeFunc)       { n.resize = append(n.resize, f) }

func (n *notifier) emitRefresh(dirty [2]int, slice []Line, cursor CursorPos) {
	for _, f := range n.refresh {
		f(dirty, slice, cursor)
	}
}

func (n *notifier) emitAlternate(on bool) {
	for _, f := range n.alternate {
		f(on)
	}
}

func (n *notifier) emitTitle(s string) {
	for _, f := range n.title {
		f(s)
	}
}

func (n *notifier) emitResize(cols, rows int) {
	for _, f := range n.resize {
		f(cols, rows)
	}
}
