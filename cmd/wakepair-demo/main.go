// Command wakepair-demo exercises a wakepair.Pair from several goroutines.
//
// Two waiters block with different timeouts, while the main goroutine signals
// after a delay. With the defaults, the short waiter (500ms) times out before
// the signal at 1s, and the long waiter (1.5s) observes it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/joeycumines/go-wakepair"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// lockedWriter serializes writes, stumpy does not.
type lockedWriter struct {
	w  io.Writer
	mu sync.Mutex
}

func (x *lockedWriter) Write(b []byte) (int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.w.Write(b)
}

type waiter struct {
	name    string
	timeout time.Duration
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("wakepair-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		short   = fs.Duration("short", 500*time.Millisecond, "timeout of the first waiter")
		long    = fs.Duration("long", 1500*time.Millisecond, "timeout of the second waiter")
		delay   = fs.Duration("delay", time.Second, "delay before signaling")
		source  = fs.String("source", wakepair.SourceAuto.String(), "event source: auto, socketpair, eventfd or event")
		verbose = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	kind, err := wakepair.ParseSourceKind(*source)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	level := logiface.LevelInformational
	if *verbose {
		level = logiface.LevelDebug
	}
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(&lockedWriter{w: stderr})),
		stumpy.L.WithLevel(level),
	).Logger()

	pair, err := wakepair.New(
		wakepair.WithLogger(logger),
		wakepair.WithSource(kind),
	)
	if err != nil {
		logger.Err().Err(err).Log("failed to create pair")
		return 1
	}

	var wg sync.WaitGroup
	for _, w := range [...]waiter{{"short", *short}, {"long", *long}} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info().
				Str("waiter", w.name).
				Dur("timeout", w.timeout).
				Log("waiting")
			start := time.Now()
			ok, err := pair.Wait(w.timeout)
			if err != nil {
				logger.Err().
					Str("waiter", w.name).
					Err(err).
					Log("wait failed")
				return
			}
			outcome := "timeout"
			if ok {
				outcome = "occurred"
			}
			logger.Info().
				Str("waiter", w.name).
				Str("outcome", outcome).
				Dur("elapsed", time.Since(start)).
				Log("wait returned")
		}()
	}

	logger.Info().Dur("delay", *delay).Log("signaling after delay")
	time.Sleep(*delay)
	result := pair.Signal()
	logger.Info().Stringer("result", result).Log("signaled")

	wg.Wait()

	stats := pair.Stats()
	if err := pair.Close(); err != nil {
		logger.Err().Err(err).Log("failed to close pair")
		return 1
	}

	res := wakepair.Outstanding()
	logger.Info().
		Uint64("woken", stats.Woken).
		Uint64("timed_out", stats.TimedOut).
		Int64("outstanding_pairs", res.Pairs).
		Int64("outstanding_descriptors", res.Descriptors).
		Log("shutdown")

	return 0
}
