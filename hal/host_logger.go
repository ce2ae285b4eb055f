package hal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type hostLogger struct {
	l *logrus.Logger
}

// NewLogger returns a line logger writing to w at the given level
// ("debug", "info", "warn", ...). An unknown level falls back to info.
func NewLogger(w io.Writer, level string) DebugLogger {
	if w == nil {
		w = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		DisableQuote:     true,
		QuoteEmptyFields: true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return &hostLogger{l: l}
}

func (h *hostLogger) WriteLineString(s string) { h.l.Info(s) }
func (h *hostLogger) WriteLineBytes(b []byte)  { h.l.Info(string(b)) }
func (h *hostLogger) Debug(s string)           { h.l.Debug(s) }
