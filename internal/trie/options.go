package trie

import "github.com/rs/zerolog"

// Option configures a PrefixMap at construction.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	capacity int
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger traces node allocation and pruning at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCapacity pre-sizes the arena node pool. Tree ignores it.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
