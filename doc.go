// Package wakepair implements a cross-goroutine wakeup primitive, backed by a
// waitable OS resource rather than a condition variable.
//
// One or more goroutines call [Pair.Signal] to make an event pending, while
// any number of goroutines block in [Pair.Wait], with a timeout, until an
// event is observed. Because the pair is backed by a descriptor (an eventfd or
// a socket pair on unix, see [SourceKind]), it can also be embedded in an
// external select/poll/epoll loop, via [Pair.FD] and [Pair.Acknowledge].
//
// # Semantics
//
//   - Signals coalesce: while an event is pending, further signals write
//     nothing, and a single Wait consumes them all.
//   - Each event wakes at least one waiter. It is not a broadcast.
//   - Signal is best effort, see [Dropped].
//   - No payload is transmitted, only the presence of a pending event.
//
// # Usage
//
//	pair, err := wakepair.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pair.Close()
//
//	go func() {
//	    time.Sleep(time.Second)
//	    pair.Signal()
//	}()
//
//	ok, err := pair.Wait(1500 * time.Millisecond)
//
// [Pair.Close] must only be called once all other goroutines have stopped
// using the pair.
package wakepair
