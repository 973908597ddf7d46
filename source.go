package wakepair

import (
	"fmt"
	"math"
	"time"
)

// SourceKind selects the OS facility backing a [Pair].
type SourceKind int

const (
	// SourceAuto picks the preferred kind for the platform: SourceEventFD on
	// linux, SourceSocketPair on other unix systems, SourceEvent on windows.
	SourceAuto SourceKind = iota
	// SourceSocketPair uses a connected AF_UNIX stream socket pair, one end
	// for writing and the other for reading (unix only).
	SourceSocketPair
	// SourceEventFD uses a single eventfd as both endpoints (linux only).
	SourceEventFD
	// SourceEvent uses a manual-reset kernel event object (windows only).
	SourceEvent
)

var sourceKindNames = [...]string{
	SourceAuto:       "auto",
	SourceSocketPair: "socketpair",
	SourceEventFD:    "eventfd",
	SourceEvent:      "event",
}

// String returns the name of the kind, as accepted by ParseSourceKind.
func (k SourceKind) String() string {
	if k.valid() {
		return sourceKindNames[k]
	}
	return fmt.Sprintf("SourceKind(%d)", int(k))
}

func (k SourceKind) valid() bool {
	return k >= 0 && int(k) < len(sourceKindNames)
}

// ParseSourceKind returns the kind with the given name, see SourceKind.String.
func ParseSourceKind(s string) (SourceKind, error) {
	for k, name := range sourceKindNames {
		if name == s {
			return SourceKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown source kind %q", ErrInvalidOption, s)
}

// eventSource abstracts the waitable OS resource behind a Pair.
// Implementations hold no lock: Pair serializes notify/drain, and wait must
// be safe to call concurrently with itself and with notify.
type eventSource interface {
	kind() SourceKind
	// fd returns the readable descriptor, or -1 if there is none.
	fd() int
	// descriptors is the number of descriptors or handles owned.
	descriptors() int
	// notify writes a single unit, without blocking.
	notify() error
	// wait blocks until readable or the timeout (ms, negative is infinite)
	// elapses, failures are returned as *WaitError.
	wait(timeout int) (bool, error)
	// drain consumes everything readable, without blocking.
	drain() error
	close() error
}

// timeoutMillis converts a Wait timeout to whole milliseconds, rounding up,
// so that only an explicit zero is a non-blocking probe.
func timeoutMillis(d time.Duration) int {
	if d < 0 {
		return -1
	}
	ms := d / time.Millisecond
	if d%time.Millisecond != 0 {
		ms++
	}
	if ms > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(ms)
}
