package classix

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// LoadConfigFromEnvironment reads a Config from CLASSIX_* environment variables and validates
// it.
//
// Recognised variables:
//   - CLASSIX_LOG_LEVEL: debug, info, warn, error (default: info)
//   - CLASSIX_LOG_FORMAT: json, text, console (default: text)
//   - CLASSIX_DICTIONARY_PATH: word list for passphrase keys
//   - CLASSIX_RANDOM_SOURCE: secure or seeded (default: secure)
//   - CLASSIX_SEED: seed for the seeded source
//
// Example usage:
//
//	cfg, err := classix.LoadConfigFromEnvironment()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enc, err := classix.NewFromConfig(cfg)
func LoadConfigFromEnvironment() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse environment: %w", ErrInvalidConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: configuration validation failed: %w", ErrInvalidConfiguration, err)
	}
	return cfg, nil
}
