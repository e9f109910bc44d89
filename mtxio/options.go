package mtxio

import "github.com/rs/zerolog"

type options struct {
	log zerolog.Logger
}

func defaultOptions() options {
	return options{log: zerolog.Nop()}
}

// Option configures a reader call.
type Option func(*options)

// WithLogger attaches a structured logger for header diagnostics. The
// default is a disabled logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}
