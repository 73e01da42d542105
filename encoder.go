package classix

import (
	"fmt"
	"math/rand/v2"

	"github.com/hengadev/classix/internal/monitoring"
	"github.com/hengadev/classix/internal/security"
)

// Encoder exposes the classical ciphers. The cipher methods are pure functions of their
// arguments, so the zero value is ready to use and an Encoder may be shared between
// goroutines. New and NewFromConfig add instrumentation and key generation for Process.
type Encoder struct {
	hooks      []ObservabilityHook
	metrics    MetricsCollector
	logger     Logger
	rng        RandomSource
	dictionary *Dictionary

	hook ObservabilityHook
}

// New creates an Encoder from options.
//
// Example usage:
//
//	enc, err := classix.New(
//	    classix.WithMetricsCollector(collector),
//	    classix.WithRandomSource(rand.New(rand.NewPCG(1, 2))),
//	)
func New(options ...Option) (*Encoder, error) {
	e := &Encoder{}
	for i, opt := range options {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("invalid option %d: %w", i+1, err)
		}
	}

	if e.rng == nil {
		e.rng = security.NewSecureRandom()
	}

	hooks := append([]ObservabilityHook(nil), e.hooks...)
	if e.logger != nil {
		hooks = append(hooks, monitoring.NewLoggingObservabilityHook(e.logger))
	}
	if e.metrics != nil {
		hooks = append(hooks, monitoring.NewMetricsObservabilityHook(e.metrics))
	}
	switch len(hooks) {
	case 0:
		e.hook = &monitoring.NoOpObservabilityHook{}
	case 1:
		e.hook = hooks[0]
	default:
		e.hook = monitoring.NewCompositeObservabilityHook(hooks...)
	}
	return e, nil
}

// NewFromConfig validates cfg and builds an Encoder logging through a structured logger,
// drawing keys from the configured random source and, when set, the dictionary file.
func NewFromConfig(cfg Config, extra ...Option) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	level, _ := monitoring.ParseLogLevel(cfg.LogLevel)
	format, _ := monitoring.ParseLogFormat(cfg.LogFormat)
	logger := monitoring.NewStructuredLogger(monitoring.LoggerConfig{
		Level:     level,
		Format:    format,
		Component: "encoder",
		Fields:    map[string]any{"version": Version},
	})

	options := []Option{WithLogger(logger)}
	if cfg.RandomSource == RandomSourceSeeded {
		options = append(options, WithRandomSource(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))))
	}
	if cfg.DictionaryPath != "" {
		dict, err := LoadDictionary(cfg.DictionaryPath)
		if err != nil {
			return nil, err
		}
		options = append(options, WithDictionary(dict))
	}
	return New(append(options, extra...)...)
}

func (e *Encoder) observer() ObservabilityHook {
	if e.hook == nil {
		return &monitoring.NoOpObservabilityHook{}
	}
	return e.hook
}

func (e *Encoder) random() RandomSource {
	if e.rng == nil {
		return security.NewSecureRandom()
	}
	return e.rng
}

// Dictionary returns the configured dictionary, or nil.
func (e *Encoder) Dictionary() *Dictionary { return e.dictionary }
