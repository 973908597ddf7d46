//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package wakepair

import (
	"time"

	"golang.org/x/sys/unix"
)

// unixPoll is replaced in tests.
var unixPoll = unix.Poll

// readFD reads from a non-blocking descriptor, retrying on EINTR.
func readFD(fd int, buf []byte) (int, error) {
	for {
		n, err := unix.Read(fd, buf)
		if err != unix.EINTR {
			return n, err
		}
	}
}

// writeFD writes to a non-blocking descriptor, retrying on EINTR.
func writeFD(fd int, buf []byte) (int, error) {
	for {
		n, err := unix.Write(fd, buf)
		if err != unix.EINTR {
			return n, err
		}
	}
}

// pollReadable blocks until fd is readable, or timeout milliseconds elapse
// (negative is infinite). EINTR restarts the poll with the remaining time,
// as the Go runtime routinely interrupts threads (SIGURG).
func pollReadable(fd int, timeout int) (bool, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(time.Duration(timeout) * time.Millisecond)
	}
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		fds[0].Revents = 0
		n, err := unixPoll(fds, timeout)
		if err == unix.EINTR {
			if timeout > 0 {
				if remaining := time.Until(deadline); remaining > 0 {
					timeout = timeoutMillis(remaining)
				} else {
					timeout = 0
				}
			}
			continue
		}
		if err != nil {
			return false, &WaitError{Op: "poll", Err: err}
		}
		if n == 0 {
			return false, nil
		}
		revents := fds[0].Revents
		switch {
		case revents&unix.POLLIN != 0:
			return true, nil
		case revents&unix.POLLNVAL != 0:
			return false, &WaitError{Op: "poll", Err: unix.EBADF}
		case revents&unix.POLLHUP != 0:
			return false, &WaitError{Op: "poll", Err: unix.EPIPE}
		default:
			return false, &WaitError{Op: "poll", Err: unix.EIO}
		}
	}
}
