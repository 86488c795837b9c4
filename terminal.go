package vtterm

import (
	"io"

	"github.com/dgvt/vtterm/vtparse"
)

// Terminal is the spec §4.E Public Facade: construction, geometry,
// accessors, resize, and notification subscription. Grounded on
// headlessterm's own Terminal (terminal.go), which is likewise the single
// entry point wrapping a screen model and an io.Writer byte sink, rebuilt
// here against vtterm's Screen/vtparse.Parser instead of go-ansicode.
type Terminal struct {
	screen *Screen
	parser *vtparse.Parser
	pty    io.Writer
}

// Option configures a Terminal during construction, headlessterm's own
// functional-options shape (terminal.go: WithSize/WithResponse/...).
type Option func(*terminalConfig)

type terminalConfig struct {
	cols, rows int
	pty        io.Writer
	logger     vtparse.Logger
	parserOpts vtparse.Options
}

// WithSize sets the initial geometry. Defaults to 80x24.
func WithSize(cols, rows int) Option {
	return func(c *terminalConfig) { c.cols, c.rows = cols, rows }
}

// WithWriter sets the pty writeback sink for DA/DSR/CPR/OSC 52 replies.
func WithWriter(w io.Writer) Option {
	return func(c *terminalConfig) { c.pty = w }
}

// WithLogger sets the vtparse.Logger used for unrecognized-sequence
// warnings.
func WithLogger(l vtparse.Logger) Option {
	return func(c *terminalConfig) { c.logger = l }
}

// WithParserOptions sets the spec §6 parser tunables directly.
func WithParserOptions(o vtparse.Options) Option {
	return func(c *terminalConfig) { c.parserOpts = o }
}

// New creates a Terminal, hard-reset, ready to consume pty bytes via
// Write.
func New(opts ...Option) *Terminal {
	cfg := terminalConfig{cols: 80, rows: 24, pty: io.Discard, logger: vtparse.NoopLogger{}, parserOpts: vtparse.DefaultOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Terminal{pty: cfg.pty}
	t.screen = NewScreen(cfg.cols, cfg.rows, &notifier{})
	t.screen.allowWidthChange = cfg.parserOpts.AllowWidthChange
	t.parser = vtparse.NewParser(t.screen,
		vtparse.WithWriter(cfg.pty),
		vtparse.WithLogger(cfg.logger),
		vtparse.WithOptions(cfg.parserOpts),
	)
	return t
}

// Write feeds one chunk of pty bytes through the parser and screen model,
// emitting at most one refresh notification before returning (spec §5).
func (t *Terminal) Write(p []byte) (int, error) {
	if err := t.parser.Feed(p); err != nil {
		return 0, err
	}
	t.screen.Flush()
	return len(p), nil
}

// Resize adjusts the geometry (spec §4.E resize(cols, rows)).
func (t *Terminal) Resize(cols, rows int) {
	t.screen.Resize(cols, rows, false)
	t.screen.Flush()
}

// Cursor returns the current cursor position.
func (t *Terminal) Cursor() CursorPos { return t.screen.Cursor() }

// Buffer returns the active screen buffer (primary or alternate).
func (t *Terminal) Buffer() *Buffer { return t.screen.Buffer() }

// Title returns the current window title.
func (t *Terminal) Title() string { return t.screen.Title() }

// Mode returns the current mode bitmask.
func (t *Terminal) Mode() Modes { return t.screen.Mode() }

// Pty returns the writer replies are sent to.
func (t *Terminal) Pty() io.Writer { return t.pty }

// OnRefresh subscribes to refresh notifications.
func (t *Terminal) OnRefresh(f RefreshFunc) { t.screen.notify.onRefresh(f) }

// OnAlternate subscribes to alternate-screen transitions.
func (t *Terminal) OnAlternate(f AlternateFunc) { t.screen.notify.onAlternate(f) }

// OnTitle subscribes to title changes.
func (t *Terminal) OnTitle(f TitleFunc) { t.screen.notify.onTitle(f) }

// OnResize subscribes to resize notifications.
func (t *Terminal) OnResize(f ResizeFunc) { t.screen.notify.onResize(f) }
