//go:build linux

package wakepair

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
)

// eventFD uses one eventfd as both the read and the write endpoint.
// The counter is only ever incremented by one per pending event, and a
// single read resets it to zero.
type eventFD struct {
	efd int
}

func newEventFD() (*eventFD, error) {
	efd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, fmt.Errorf("eventfd: %w", err)
	}
	return &eventFD{efd: efd}, nil
}

func (*eventFD) kind() SourceKind { return SourceEventFD }

func (e *eventFD) fd() int { return e.efd }

func (*eventFD) descriptors() int { return 1 }

func (e *eventFD) notify() error {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	_, err := writeFD(e.efd, buf[:])
	return err
}

func (e *eventFD) wait(timeout int) (bool, error) {
	return pollReadable(e.efd, timeout)
}

func (e *eventFD) drain() error {
	var buf [8]byte
	for {
		_, err := readFD(e.efd, buf[:])
		if err == unix.EAGAIN {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (e *eventFD) close() error {
	return unix.Close(e.efd)
}
