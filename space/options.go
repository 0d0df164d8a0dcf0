// SPDX-License-Identifier: MIT

// Package space: functional configuration.

package space

import "go.uber.org/zap"

// options carries Space configuration.
type options struct {
	logger *zap.Logger
	strict bool
}

// Option configures a Space at creation time.
type Option func(*options)

// WithLogger attaches a logger for arena and cut tracing. The default is
// a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			panic("space: WithLogger(nil)")
		}
		o.logger = l
	}
}

// WithStrictChecks makes every polytope intern run the full closure
// validation and panic on violation. Intended for puzzle development;
// release callers validate on demand with CheckElement.
func WithStrictChecks() Option {
	return func(o *options) { o.strict = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
