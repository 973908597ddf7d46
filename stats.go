package wakepair

import (
	"sync/atomic"
)

// live resource accounting, package wide
var (
	livePairs       atomic.Int64
	liveDescriptors atomic.Int64
)

// Resources is a count of OS resources held by open pairs.
type Resources struct {
	// Pairs is the number of pairs created but not yet closed.
	Pairs int64
	// Descriptors is the number of file descriptors (or handles, on windows)
	// owned by those pairs.
	Descriptors int64
}

// Outstanding reports the resources currently held by every open [Pair] in
// the process. Once all pairs are closed, both counts are zero.
func Outstanding() Resources {
	return Resources{
		Pairs:       livePairs.Load(),
		Descriptors: liveDescriptors.Load(),
	}
}

// Stats is a point in time snapshot of the counters of a single [Pair].
type Stats struct {
	// Notified counts Signal calls that wrote to the source.
	Notified uint64
	// Coalesced counts Signal calls that found an event already pending.
	Coalesced uint64
	// Dropped counts Signal calls that failed to write.
	Dropped uint64
	// Woken counts Wait calls that observed an event. Waiters woken by the
	// same readiness notification each count, so Woken may exceed Notified.
	Woken uint64
	// TimedOut counts Wait calls that reached their timeout.
	TimedOut uint64
	// Errors counts Wait calls that failed.
	Errors uint64
}

type pairStats struct {
	notified  atomic.Uint64
	coalesced atomic.Uint64
	dropped   atomic.Uint64
	woken     atomic.Uint64
	timedOut  atomic.Uint64
	errors    atomic.Uint64
}

func (x *pairStats) snapshot() Stats {
	return Stats{
		Notified:  x.notified.Load(),
		Coalesced: x.coalesced.Load(),
		Dropped:   x.dropped.Load(),
		Woken:     x.woken.Load(),
		TimedOut:  x.timedOut.Load(),
		Errors:    x.errors.Load(),
	}
}
