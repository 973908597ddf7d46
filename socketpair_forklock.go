//go:build darwin || solaris

package wakepair

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// socketpairNonblock creates a socket pair then sets close-on-exec and
// non-blocking mode on both ends. On failure, both ends are closed.
func socketpairNonblock() ([2]int, error) {
	// same as os/exec: hold ForkLock so no child inherits the fds before
	// close-on-exec is set
	syscall.ForkLock.RLock()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err == nil {
		unix.CloseOnExec(fds[0])
		unix.CloseOnExec(fds[1])
	}
	syscall.ForkLock.RUnlock()
	if err != nil {
		return fds, fmt.Errorf("socketpair: %w", err)
	}

	cleanup := func() {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
	}

	if err := unix.SetNonblock(fds[0], true); err != nil {
		cleanup()
		return fds, fmt.Errorf("set nonblock: %w", err)
	}
	if err := unix.SetNonblock(fds[1], true); err != nil {
		cleanup()
		return fds, fmt.Errorf("set nonblock: %w", err)
	}

	return fds, nil
}
