//go:build linux

package wakepair

import (
	"fmt"
)

func newSource(kind SourceKind) (eventSource, error) {
	switch kind {
	case SourceAuto, SourceEventFD:
		return newEventFD()
	case SourceSocketPair:
		return newSocketPair()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
}
