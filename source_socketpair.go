//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package wakepair

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

// sentinel is the single byte written per notification.
var sentinel = [1]byte{0}

// socketPair is a connected AF_UNIX stream pair, with one end dedicated to
// each direction.
type socketPair struct {
	readFd  int
	writeFd int
}

func newSocketPair() (*socketPair, error) {
	fds, err := socketpairNonblock()
	if err != nil {
		return nil, err
	}
	return &socketPair{readFd: fds[0], writeFd: fds[1]}, nil
}

func (*socketPair) kind() SourceKind { return SourceSocketPair }

func (s *socketPair) fd() int { return s.readFd }

func (*socketPair) descriptors() int { return 2 }

func (s *socketPair) notify() error {
	n, err := writeFD(s.writeFd, sentinel[:])
	if err != nil {
		return err
	}
	if n != len(sentinel) {
		return io.ErrShortWrite
	}
	return nil
}

func (s *socketPair) wait(timeout int) (bool, error) {
	return pollReadable(s.readFd, timeout)
}

// drain reads until the socket would block. Multiple bytes are tolerated,
// even though at most one is written per pending event.
func (s *socketPair) drain() error {
	var buf [16]byte
	for {
		n, err := readFD(s.readFd, buf[:])
		switch {
		case err == unix.EAGAIN:
			return nil
		case err != nil:
			return err
		case n == 0:
			// peer closed, nothing further can arrive
			return nil
		}
	}
}

func (s *socketPair) close() error {
	return errors.Join(unix.Close(s.readFd), unix.Close(s.writeFd))
}
