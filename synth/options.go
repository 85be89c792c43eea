package synth

import "github.com/erraggy/typeforge/forgeerrors"

const (
	// DefaultExtractionThreshold is the minimum property count at which an
	// unnamed object schema is hoisted to a named declaration.
	DefaultExtractionThreshold = 3

	// DefaultFingerprintCacheSize is the default capacity of the per-run
	// fingerprint cache.
	DefaultFingerprintCacheSize = 1024
)

// Option is a function that configures a synthesis run.
type Option func(*config) error

// config holds configuration for a synthesis run.
type config struct {
	index       *NameIndex
	logger      Logger
	threshold   int
	fpCacheSize int
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		index:       NewNameIndex(),
		logger:      NopLogger{},
		threshold:   DefaultExtractionThreshold,
		fpCacheSize: DefaultFingerprintCacheSize,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithNameIndex supplies the component name index built from the
// specification's named-schema registry. Author-given names from the index
// always take precedence over synthesized fallback names.
func WithNameIndex(ix *NameIndex) Option {
	return func(cfg *config) error {
		if ix != nil {
			cfg.index = ix
		}
		return nil
	}
}

// WithLogger sets the logger used for diagnostics during synthesis.
// The default is NopLogger.
func WithLogger(logger Logger) Option {
	return func(cfg *config) error {
		if logger != nil {
			cfg.logger = logger
		}
		return nil
	}
}

// WithExtractionThreshold overrides the property count at which unnamed
// object schemas are hoisted. The threshold must be at least 1.
func WithExtractionThreshold(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return &forgeerrors.InputError{
				Index:   -1,
				Field:   "extraction threshold",
				Message: "must be at least 1",
			}
		}
		cfg.threshold = n
		return nil
	}
}

// WithFingerprintCacheSize overrides the capacity of the per-run fingerprint
// cache. The size must be at least 1.
func WithFingerprintCacheSize(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return &forgeerrors.InputError{
				Index:   -1,
				Field:   "fingerprint cache size",
				Message: "must be at least 1",
			}
		}
		cfg.fpCacheSize = n
		return nil
	}
}
