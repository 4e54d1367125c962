package aitken

import "github.com/cwbudde/algo-aitken/sequence/diff"

// Option configures an acceleration run.
type Option func(*config)

type config struct {
	stencil    diff.Stencil
	iterations int
}

func defaultConfig() config {
	return config{
		stencil:    diff.Forward,
		iterations: 1,
	}
}

// WithStencil selects the difference stencil. The default is [diff.Forward].
func WithStencil(s diff.Stencil) Option {
	return func(c *config) {
		c.stencil = s
	}
}

// WithIterations sets how many times the transform is applied. The default
// is 1. Values below 1 are reported as [ErrInvalidArgument] when the
// transform runs.
func WithIterations(n int) Option {
	return func(c *config) {
		c.iterations = n
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
