package pgwire

import "go.uber.org/zap"

// Logger is the structured logging sink a Decoder reports through. It is
// satisfied by *zap.SugaredLogger; callers on other logging stacks can
// adapt with a small shim.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
}

// nopLogger discards everything. It is the default when no logger is
// configured, so the zero-config decode path never pays for logging.
type nopLogger struct{}

func (nopLogger) Debugw(string, ...any) {}
func (nopLogger) Warnw(string, ...any)  {}

// ZapLogger adapts a *zap.Logger to Logger.
func ZapLogger(l *zap.Logger) Logger {
	return l.Sugar()
}
