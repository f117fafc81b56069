package bfs

import (
	"context"
	"errors"
)

// ErrNeighbors wraps a failure to enumerate a vertex's neighbours.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// Options tunes a component scan. Build it with the With* functions.
type Options struct {
	// Ctx is checked before each dequeue.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext makes the scan return ctx.Err() once ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
