//go:build !linux

package pollexec

import "os"

// newWakeFiles creates a pipe for wake-up notifications (non-Linux
// platforms). The buffered byte is the durable wake flag.
func newWakeFiles() (r, w *os.File, err error) {
	return os.Pipe()
}
