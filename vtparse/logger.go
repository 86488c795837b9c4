package vtparse

import "log"

// Logger receives warnings for unknown or ignored dispatch codes when
// Options.Warn is set. It is the same Provider/Noop shape headlessterm
// uses for its Bell/Title/APC/... side channels (providers.go), applied
// here to the one ambient side effect this parser exposes.
type Logger interface {
	Warnf(format string, args ...any)
}

// NoopLogger discards all warnings. The default when no Logger is supplied.
type NoopLogger struct{}

// Warnf implements Logger.
func (NoopLogger) Warnf(format string, args ...any) {}

// StdLogger adapts the standard library's *log.Logger to Logger.
type StdLogger struct {
	L *log.Logger
}

// Warnf implements Logger.
func (s StdLogger) Warnf(format string, args ...any) {
	if s.L == nil {
		return
	}
	s.L.Printf(format, args...)
}
