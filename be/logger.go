package be

import (
	"log"
	"os"
)

// StdLogger is the default Logger, backed by the standard library's
// log.Logger. No logging library appears in the example corpus this
// module draws its ambient stack from, so diagnostics here follow the
// corpus's own practice of writing plain, unstructured trace lines.
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger returns a StdLogger writing to os.Stderr with a "be: " prefix.
func NewStdLogger() *StdLogger {
	return &StdLogger{l: log.New(os.Stderr, "be: ", log.LstdFlags)}
}

// Logf implements Logger.
func (s *StdLogger) Logf(format string, args ...interface{}) {
	s.l.Printf(format, args...)
}
