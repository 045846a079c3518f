package harness

import (
	"bytes"
	"strings"
)

// SerialWatcher accumulates bytes written to a serial sink and reports
// whether a test ROM's well-known "Passed"/"Failed" marker has
// appeared, the same detection blargg- and mooneye-style test ROMs use.
type SerialWatcher struct {
	buf bytes.Buffer
}

// Write implements io.Writer so a SerialWatcher can be installed
// directly via Bus.SetSerialWriter.
func (w *SerialWatcher) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// String returns everything captured so far.
func (w *SerialWatcher) String() string { return w.buf.String() }

// Passed reports whether the captured output contains a pass marker.
func (w *SerialWatcher) Passed() bool {
	s := strings.ToLower(w.buf.String())
	return strings.Contains(s, "passed")
}

// Failed reports whether the captured output contains a fail marker.
func (w *SerialWatcher) Failed() bool {
	s := strings.ToLower(w.buf.String())
	return strings.Contains(s, "failed")
}

// Done reports whether either marker has appeared.
func (w *SerialWatcher) Done() bool {
	return w.Passed() || w.Failed()
}
