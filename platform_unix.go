//go:build darwin || dragonfly || freebsd || netbsd || openbsd || solaris

package wakepair

import (
	"fmt"
)

func newSource(kind SourceKind) (eventSource, error) {
	switch kind {
	case SourceAuto, SourceSocketPair:
		return newSocketPair()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
}
