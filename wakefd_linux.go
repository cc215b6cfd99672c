//go:build linux

package pollexec

import (
	"os"

	"golang.org/x/sys/unix"
)

// newWakeFiles creates an eventfd for wake-up notifications (Linux). The
// single eventfd serves as both the read and write end; the kernel counter
// is the durable wake flag, and a read consumes the whole counter.
//
// The fd is non-blocking so os.NewFile registers it with the runtime
// poller: reads park the goroutine, not the thread, and Close releases a
// pending read.
func newWakeFiles() (r, w *os.File, err error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, nil, err
	}
	f := os.NewFile(uintptr(fd), "eventfd")
	return f, f, nil
}
