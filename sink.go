package funccall

import (
	"bytes"
	"io"
)

// WriteFunc is a log destination built from a plain write function.
// It implements io.Writer, so it can be handed straight to NewLogger.
//
// Example:
//
//	sink := WriteFunc(os.Stderr.Write).Tee(WriteFunc(file.Write)).Prefix("[demo] ")
//	log, _ := NewLogger(cfg, sink)
type WriteFunc func(p []byte) (n int, err error)

// Write implements io.Writer.
func (f WriteFunc) Write(p []byte) (int, error) {
	return f(p)
}

// Tee sends each write to f and then to every other sink in order.
// It stops at the first sink that fails or writes short.
func (f WriteFunc) Tee(others ...WriteFunc) WriteFunc {
	sinks := append([]WriteFunc{f}, others...)
	return func(p []byte) (int, error) {
		for _, sink := range sinks {
			n, err := sink(p)
			if err != nil {
				return n, err
			}
			if n != len(p) {
				return n, io.ErrShortWrite
			}
		}
		return len(p), nil
	}
}

// Prefix starts every non-empty line with prefix. The reported count is
// the caller's byte count, not the prefixed one.
func (f WriteFunc) Prefix(prefix string) WriteFunc {
	if prefix == "" {
		return f
	}
	return func(p []byte) (int, error) {
		var out bytes.Buffer
		for _, line := range bytes.SplitAfter(p, []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			out.WriteString(prefix)
			out.Write(line)
		}
		if _, err := f(out.Bytes()); err != nil {
			return 0, err
		}
		return len(p), nil
	}
}
