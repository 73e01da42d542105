package classix

import (
	"fmt"
	"os"

	"github.com/hengadev/classix/internal/monitoring"
	"github.com/hengadev/errsx"
)

// Config holds the settings used by NewFromConfig.
//
// Every field is optional; Validate applies defaults. Configuration can come from any source
// (LoadConfigFromEnvironment, a file, or code).
//
// Example usage:
//
//	cfg := classix.Config{
//	    LogLevel:     "debug",
//	    RandomSource: classix.RandomSourceSeeded,
//	    Seed:         42,
//	}
//
//	enc, err := classix.NewFromConfig(cfg)
type Config struct {
	// LogLevel is one of debug, info, warn, error. Default: info
	LogLevel string `env:"CLASSIX_LOG_LEVEL" yaml:"log_level"`

	// LogFormat is one of json, text, console. Default: text
	LogFormat string `env:"CLASSIX_LOG_FORMAT" yaml:"log_format"`

	// DictionaryPath is a word list file enabling passphrase keys. Optional.
	DictionaryPath string `env:"CLASSIX_DICTIONARY_PATH" yaml:"dictionary_path"`

	// RandomSource is "secure" (crypto/rand) or "seeded" (math/rand/v2 PCG seeded with Seed).
	// Seeded keys are reproducible and only meant for tests and demos. Default: secure
	RandomSource string `env:"CLASSIX_RANDOM_SOURCE" yaml:"random_source"`

	// Seed feeds the seeded random source.
	Seed uint64 `env:"CLASSIX_SEED" yaml:"seed"`
}

// Validate checks every field, applying defaults to empty ones. All problems are reported
// together as an errsx.Map keyed by field name.
func (c *Config) Validate() error {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.RandomSource == "" {
		c.RandomSource = DefaultRandomSource
	}

	var errs errsx.Map
	if _, err := monitoring.ParseLogLevel(c.LogLevel); err != nil {
		errs.Set("log_level", err)
	}
	if _, err := monitoring.ParseLogFormat(c.LogFormat); err != nil {
		errs.Set("log_format", err)
	}
	if c.RandomSource != RandomSourceSecure && c.RandomSource != RandomSourceSeeded {
		errs.Set("random_source", fmt.Errorf("random source must be %q or %q, got %q", RandomSourceSecure, RandomSourceSeeded, c.RandomSource))
	}
	if c.DictionaryPath != "" {
		if info, err := os.Stat(c.DictionaryPath); err != nil {
			errs.Set("dictionary_path", fmt.Errorf("dictionary not accessible: %w", err))
		} else if info.IsDir() {
			errs.Set("dictionary_path", fmt.Errorf("dictionary path %s is a directory", c.DictionaryPath))
		}
	}
	return errs.AsError()
}
