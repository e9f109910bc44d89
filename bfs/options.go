package bfs

import (
	"github.com/rs/zerolog"
	"github.com/tingshowliu/distbfs/aggregate"
)

type options struct {
	cfg aggregate.Config
	log zerolog.Logger
}

func defaultOptions() options {
	return options{cfg: aggregate.ConfigFromEnv(), log: zerolog.Nop()}
}

// Option configures an aggregated BFS kernel call.
type Option func(*options)

// WithAggregatorConfig overrides the aggregator's buffer capacity and yield
// frequency for this call, instead of reading them from the environment.
func WithAggregatorConfig(cfg aggregate.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger attaches a structured logger for per-round diagnostics
// (frontier sizes, round count). The default is a disabled logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}
