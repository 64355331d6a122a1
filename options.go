package binio

type options struct {
	logger *Logger
}

func defaultOptions() options {
	return options{
		logger: NoopLogger(),
	}
}

// Option configures Reader and Writer construction.
type Option func(*options)

// WithLogger configures structured logging for open, close and failed
// positioned operations. If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
