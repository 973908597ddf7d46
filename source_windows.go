//go:build windows

package wakepair

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// waitTimeout is the WAIT_TIMEOUT result of WaitForSingleObject.
const waitTimeout = 0x00000102

// winEvent is a manual-reset event object. Being manual-reset, a set event
// stays signaled for every concurrent waiter until drained, matching the
// level-triggered behavior of the descriptor based sources.
type winEvent struct {
	handle windows.Handle
}

func newSource(kind SourceKind) (eventSource, error) {
	switch kind {
	case SourceAuto, SourceEvent:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
	h, err := windows.CreateEvent(nil, 1, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("CreateEvent: %w", err)
	}
	return &winEvent{handle: h}, nil
}

func (*winEvent) kind() SourceKind { return SourceEvent }

func (*winEvent) fd() int { return -1 }

func (*winEvent) descriptors() int { return 1 }

func (e *winEvent) notify() error {
	return windows.SetEvent(e.handle)
}

func (e *winEvent) wait(timeout int) (bool, error) {
	ms := uint32(windows.INFINITE)
	if timeout >= 0 {
		ms = uint32(timeout)
	}
	event, err := windows.WaitForSingleObject(e.handle, ms)
	switch event {
	case windows.WAIT_OBJECT_0:
		return true, nil
	case waitTimeout:
		return false, nil
	}
	if err == nil {
		err = fmt.Errorf("unexpected wait result 0x%x", event)
	}
	return false, &WaitError{Op: "WaitForSingleObject", Err: err}
}

func (e *winEvent) drain() error {
	return windows.ResetEvent(e.handle)
}

func (e *winEvent) close() error {
	return windows.CloseHandle(e.handle)
}
