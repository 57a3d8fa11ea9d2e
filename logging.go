package gizmo

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type level string

const (
	levelDebug level = "DEBUG"
	levelInfo  level = "INFO"
	levelWarn  level = "WARN"
	levelError level = "ERROR"
)

// DefaultLogger writes debug and info lines to one stream and warnings and
// errors to another, each line tagged with an optional prefix.
type DefaultLogger struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewLogger(os.Stdout, os.Stderr, prefix, debug)
}

func NewLogger(out, errOut io.Writer, prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(out, "", flags),
		err:    log.New(errOut, "", flags),
	}
}

// newConfiguredLogger returns nil when logging is disabled.
func newConfiguredLogger(c LogConfig) Logger {
	if !c.Enabled {
		return nil
	}
	return NewDefaultLogger(c.Prefix, c.Debug)
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) write(lv level, format string, args ...any) {
	if lv == levelDebug && !l.DebugEnabled() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		msg = fmt.Sprintf("[%s] %s: %s", l.prefix, lv, msg)
	} else {
		msg = fmt.Sprintf("%s: %s", lv, msg)
	}
	dst := l.out
	if lv == levelWarn || lv == levelError {
		dst = l.err
	}
	dst.Print(msg)
}

func (l *DefaultLogger) Debugf(format string, args ...any) { l.write(levelDebug, format, args...) }
func (l *DefaultLogger) Infof(format string, args ...any) { l.write(levelInfo, format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any) { l.write(levelWarn, format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.write(levelError, format, args...) }

// sessionLogger prefixes every line with the id of the session that wrote it,
// so several gizmos can share one logger.
type sessionLogger struct {
	Logger
	tag string
}

func forSession(l Logger, id string) Logger {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return &sessionLogger{Logger: l, tag: "session " + short + ": "}
}

func (s *sessionLogger) Debugf(format string, args ...any) { s.Logger.Debugf(s.tag+format, args...) }
func (s *sessionLogger) Infof(format string, args ...any) { s.Logger.Infof(s.tag+format, args...) }
func (s *sessionLogger) Warnf(format string, args ...any) { s.Logger.Warnf(s.tag+format, args...) }
func (s *sessionLogger) Errorf(format string, args ...any) { s.Logger.Errorf(s.tag+format, args...) }

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool { return false }
func (n *nopLogger) SetDebug(enabled bool) {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any) {}
func (n *nopLogger) Warnf(format string, args ...any) {}
func (n *nopLogger) Errorf(format string, args ...any) {}
