package classix

import "fmt"

// Option configures an Encoder built with New.
type Option func(e *Encoder) error

// WithObservabilityHook adds a hook notified around every Process call.
func WithObservabilityHook(hook ObservabilityHook) Option {
	return func(e *Encoder) error {
		if hook == nil {
			return fmt.Errorf("%w: observability hook cannot be nil", ErrInvalidConfiguration)
		}
		e.hooks = append(e.hooks, hook)
		return nil
	}
}

// WithMetricsCollector records classix.* counters and timings into collector.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(e *Encoder) error {
		if collector == nil {
			return fmt.Errorf("%w: metrics collector cannot be nil", ErrInvalidConfiguration)
		}
		e.metrics = collector
		return nil
	}
}

// WithLogger logs every Process call through logger.
func WithLogger(logger Logger) Option {
	return func(e *Encoder) error {
		if logger == nil {
			return fmt.Errorf("%w: logger cannot be nil", ErrInvalidConfiguration)
		}
		e.logger = logger
		return nil
	}
}

// WithRandomSource replaces the crypto/rand backed source used to generate keys.
func WithRandomSource(rng RandomSource) Option {
	return func(e *Encoder) error {
		if rng == nil {
			return fmt.Errorf("%w: random source cannot be nil", ErrInvalidConfiguration)
		}
		e.rng = rng
		return nil
	}
}

// WithDictionary enables passphrase key generation from dict.
func WithDictionary(dict *Dictionary) Option {
	return func(e *Encoder) error {
		if dict == nil || dict.Len() == 0 {
			return fmt.Errorf("%w: dictionary cannot be empty", ErrInvalidConfiguration)
		}
		e.dictionary = dict
		return nil
	}
}
