package hal

import (
	"io"
	"os"
)

// NewWriterLogger returns a Logger writing newline-delimited lines to w.
func NewWriterLogger(w io.Writer) Logger { return &writerLogger{w: w} }

// NewStderrLogger returns the default host diagnostic logger.
func NewStderrLogger() Logger { return NewWriterLogger(os.Stderr) }

type writerLogger struct {
	w io.Writer
}

func (l *writerLogger) WriteLineString(s string) {
	io.WriteString(l.w, s)
	io.WriteString(l.w, "\n")
}

func (l *writerLogger) WriteLineBytes(b []byte) {
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
