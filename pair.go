// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package wakepair

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/logiface"
)

// SignalResult is the outcome of [Pair.Signal].
type SignalResult uint8

const (
	_ SignalResult = iota
	// Notified indicates a new event was made pending.
	Notified
	// Coalesced indicates an event was already pending, and nothing was
	// written.
	Coalesced
	// Dropped indicates the notification could not be written, e.g. due to
	// resource exhaustion, or because the pair was closed. No event is
	// pending as a result of the call.
	Dropped
)

// String implements fmt.Stringer.
func (x SignalResult) String() string {
	switch x {
	case Notified:
		return "notified"
	case Coalesced:
		return "coalesced"
	case Dropped:
		return "dropped"
	default:
		return fmt.Sprintf("SignalResult(%d)", uint8(x))
	}
}

// Delivered returns true if an event is pending as a result of the call.
func (x SignalResult) Delivered() bool {
	return x == Notified || x == Coalesced
}

// dropLogCategory is the catrate category for dropped signal warnings.
const dropLogCategory = "signal.dropped"

// Pair is a wakeup primitive backed by a waitable OS resource.
//
// Any number of goroutines may call [Pair.Signal] and [Pair.Wait]
// concurrently. Signals coalesce: at most one event is pending at a time.
// The zero value is not usable, see [New].
type Pair struct {
	src     eventSource
	logger  *logiface.Logger[logiface.Event]
	limiter *catrate.Limiter
	stats   pairStats
	mu      sync.Mutex
	closed  atomic.Bool
	// signaled is guarded by mu
	signaled bool
}

// New creates a Pair, initially unsignaled. Failures to allocate the OS
// resources wrap [ErrCreate], and any partially created resources are
// released before returning.
func New(opts ...Option) (*Pair, error) {
	cfg, err := resolvePairOptions(opts)
	if err != nil {
		return nil, err
	}

	src, err := newSource(cfg.source)
	if err != nil {
		cfg.logger.Err().
			Err(err).
			Str("source", cfg.source.String()).
			Log("wakepair: create failed")
		return nil, fmt.Errorf("%w: %w", ErrCreate, err)
	}

	return newPair(src, cfg), nil
}

func newPair(src eventSource, cfg *pairOptions) *Pair {
	p := &Pair{
		src:     src,
		logger:  cfg.logger,
		limiter: cfg.limiter,
	}

	livePairs.Add(1)
	liveDescriptors.Add(int64(src.descriptors()))

	p.logger.Debug().
		Str("source", src.kind().String()).
		Int("fd", src.fd()).
		Log("wakepair: created")

	return p
}

// Signal makes an event pending, unless one already is, in which case it is
// a no-op that returns [Coalesced]. It never blocks, except on the internal
// mutex.
//
// Delivery is best effort: if the write fails, the result is [Dropped], no
// event is pending, and retrying is left to the caller.
func (p *Pair) Signal() SignalResult {
	if p.closed.Load() {
		p.stats.dropped.Add(1)
		p.logDrop(ErrClosed)
		return Dropped
	}

	p.mu.Lock()
	if p.signaled {
		p.mu.Unlock()
		p.stats.coalesced.Add(1)
		return Coalesced
	}
	err := p.src.notify()
	if err == nil {
		p.signaled = true
	}
	p.mu.Unlock()

	if err != nil {
		p.stats.dropped.Add(1)
		p.logDrop(err)
		return Dropped
	}

	p.stats.notified.Add(1)
	return Notified
}

// Wait blocks until an event is pending, or the timeout elapses. A negative
// timeout blocks indefinitely, zero polls without blocking, and positive
// values are rounded up to whole milliseconds.
//
// It returns true if an event was observed, in which case the pending state
// has been cleared, and false on timeout. Failures of the underlying
// readiness wait are returned as a *[WaitError], without affecting the
// pending state.
//
// Each event wakes at least one waiter, but is NOT broadcast: when several
// goroutines wait concurrently, the first to observe the event consumes it.
// Others woken by the same readiness notification also return true, while
// the rest continue waiting.
func (p *Pair) Wait(timeout time.Duration) (bool, error) {
	if p.closed.Load() {
		return false, ErrClosed
	}

	ok, err := p.src.wait(timeoutMillis(timeout))
	if err != nil {
		p.stats.errors.Add(1)
		p.logger.Err().
			Err(err).
			Str("source", p.src.kind().String()).
			Log("wakepair: wait failed")
		return false, err
	}
	if !ok {
		p.stats.timedOut.Add(1)
		return false, nil
	}

	p.consume()
	p.stats.woken.Add(1)
	return true, nil
}

// Acknowledge consumes any pending event without waiting, returning true if
// the pair was signaled. It is intended for callers that embed [Pair.FD] in
// their own poll loop, and call Acknowledge when it is reported readable.
func (p *Pair) Acknowledge() bool {
	if p.closed.Load() {
		return false
	}
	return p.consume()
}

// consume drains the source and clears the pending state.
func (p *Pair) consume() (signaled bool) {
	p.mu.Lock()
	err := p.src.drain()
	signaled = p.signaled
	p.signaled = false
	p.mu.Unlock()

	if err != nil {
		p.logger.Err().
			Err(err).
			Str("source", p.src.kind().String()).
			Log("wakepair: drain failed")
	}
	return
}

// FD returns the readable descriptor, suitable for use with select, poll,
// epoll or kqueue, or -1 if the source has no descriptor (windows).
// The descriptor must not be read from or closed directly, see
// [Pair.Acknowledge].
func (p *Pair) FD() int {
	return p.src.fd()
}

// Source returns the kind of the event source in use, never SourceAuto.
func (p *Pair) Source() SourceKind {
	return p.src.kind()
}

// Stats returns a snapshot of the counters for this pair.
func (p *Pair) Stats() Stats {
	return p.stats.snapshot()
}

// Close releases the OS resources. Subsequent calls return [ErrClosed].
//
// Close must not be called concurrently with Wait or Signal: callers must
// ensure all other goroutines have stopped using the pair first.
func (p *Pair) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	err := p.src.close()

	livePairs.Add(-1)
	liveDescriptors.Add(-int64(p.src.descriptors()))

	if err != nil {
		p.logger.Err().
			Err(err).
			Str("source", p.src.kind().String()).
			Log("wakepair: close failed")
		return fmt.Errorf("wakepair: close: %w", err)
	}

	p.logger.Debug().
		Str("source", p.src.kind().String()).
		Log("wakepair: closed")
	return nil
}

func (p *Pair) logDrop(err error) {
	if p.logger == nil {
		return
	}
	if _, ok := p.limiter.Allow(dropLogCategory); !ok {
		return
	}
	b := p.logger.Warning().
		Err(err).
		Str("source", p.src.kind().String())
	if errors.Is(err, ErrClosed) {
		b = b.Bool("closed", true)
	}
	b.Log("wakepair: signal dropped")
}
