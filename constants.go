package classix

// Environment variable names
const (
	// EnvLogLevel selects the log level: debug, info, warn or error.
	EnvLogLevel = "CLASSIX_LOG_LEVEL"

	// EnvLogFormat selects the log format: json, text or console.
	EnvLogFormat = "CLASSIX_LOG_FORMAT"

	// EnvDictionaryPath points at a word list, one word per line, for passphrase keys.
	EnvDictionaryPath = "CLASSIX_DICTIONARY_PATH"

	// EnvRandomSource selects "secure" (crypto/rand) or "seeded" key generation.
	EnvRandomSource = "CLASSIX_RANDOM_SOURCE"

	// EnvSeed is the seed used when EnvRandomSource is "seeded".
	EnvSeed = "CLASSIX_SEED"
)

// Random sources
const (
	RandomSourceSecure = "secure"
	RandomSourceSeeded = "seeded"
)

// Default values
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultRandomSource = RandomSourceSecure
)
