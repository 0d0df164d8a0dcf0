// SPDX-License-Identifier: MIT

// Package group: functional configuration for group construction.

package group

import "go.uber.org/zap"

// options carries construction-time configuration.
type options struct {
	logger *zap.Logger
}

// Option configures group construction.
type Option func(*options)

// WithLogger attaches a logger for closure progress tracing. The default
// is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			panic("group: WithLogger(nil)")
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
