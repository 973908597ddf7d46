//go:build dragonfly || freebsd || linux || netbsd || openbsd

package wakepair

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// socketpairNonblock creates a non-blocking, close-on-exec socket pair,
// atomically, using the SOCK_NONBLOCK and SOCK_CLOEXEC type flags.
func socketpairNonblock() ([2]int, error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return fds, fmt.Errorf("socketpair: %w", err)
	}
	return fds, nil
}
