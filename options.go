// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package wakepair

import (
	"fmt"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/logiface"
)

// pairOptions holds configuration options for Pair creation.
type pairOptions struct {
	logger  *logiface.Logger[logiface.Event]
	limiter *catrate.Limiter
	source  SourceKind
}

// defaultDropLogRates limits dropped signal warnings, per pair.
var defaultDropLogRates = map[time.Duration]int{
	time.Second: 1,
	time.Minute: 10,
}

// Option configures a Pair instance.
type Option interface {
	applyPair(*pairOptions) error
}

// pairOptionImpl implements Option.
type pairOptionImpl struct {
	applyPairFunc func(*pairOptions) error
}

func (p *pairOptionImpl) applyPair(opts *pairOptions) error {
	return p.applyPairFunc(opts)
}

// WithLogger configures structured logging. A nil logger (the default)
// disables logging entirely.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &pairOptionImpl{func(opts *pairOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithSource selects the event source backing the pair.
// See SourceKind for available kinds. Defaults to SourceAuto.
func WithSource(kind SourceKind) Option {
	return &pairOptionImpl{func(opts *pairOptions) error {
		if !kind.valid() {
			return fmt.Errorf("%w: unknown source kind %d", ErrInvalidOption, int(kind))
		}
		opts.source = kind
		return nil
	}}
}

// WithDropLogRates sets the rate limits applied to the warning logged when
// [Pair.Signal] drops a notification. The rates have the same semantics as
// [catrate.NewLimiter], and must be valid per that function.
func WithDropLogRates(rates map[time.Duration]int) Option {
	return &pairOptionImpl{func(opts *pairOptions) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrInvalidOption, r)
			}
		}()
		opts.limiter = catrate.NewLimiter(rates)
		return nil
	}}
}

// resolvePairOptions applies Option instances to pairOptions.
func resolvePairOptions(opts []Option) (*pairOptions, error) {
	cfg := &pairOptions{
		source: SourceAuto,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyPair(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.limiter == nil && cfg.logger != nil {
		cfg.limiter = catrate.NewLimiter(defaultDropLogRates)
	}
	return cfg, nil
}
