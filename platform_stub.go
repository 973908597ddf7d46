//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !windows

package wakepair

import (
	"fmt"
)

// newSource returns an error for unsupported platforms.
func newSource(kind SourceKind) (eventSource, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
}
