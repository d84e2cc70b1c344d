package config

// CASConfig holds connection parameters for a cas.Store backend.
type CASConfig struct {
	// Address is the backend's connection string (for example, a
	// bucket URL or a host:port pair). An empty Address selects an
	// in-memory cas.MemStore, used for local development.
	Address string `json:"address"`

	// MaxBlobBytes records a maximum blob size for the backend. Nothing
	// in this module reads it: neither the config layer nor
	// cas.MemStore rejects a write by size.
	MaxBlobBytes int64 `json:"maxBlobBytes"`
}

// NATSConfig holds connection parameters for the messaging layer a
// rebaser service publishes change notifications to.
type NATSConfig struct {
	URL           string `json:"url"`
	SubjectPrefix string `json:"subjectPrefix"`
}

// Config is the full configuration bundle for cmd/rebaserd. The graph
// engine itself (package snapshot) never reads it; only the service
// entry point does, to construct its cas.Store and to locate the secret
// encryption key before handing control to its RPC tier.
type Config struct {
	CAS                     CASConfig  `json:"cas"`
	NATS                    NATSConfig `json:"nats"`
	SecretEncryptionKeyPath string     `json:"secretEncryptionKeyPath"`
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithCAS overrides the CAS connection parameters.
func WithCAS(cfg CASConfig) Option {
	return func(c *Config) { c.CAS = cfg }
}

// WithNATS overrides the NATS connection parameters.
func WithNATS(cfg NATSConfig) Option {
	return func(c *Config) { c.NATS = cfg }
}

// WithSecretEncryptionKeyPath overrides the secret encryption key path.
func WithSecretEncryptionKeyPath(path string) Option {
	return func(c *Config) { c.SecretEncryptionKeyPath = path }
}

// defaultSecretEncryptionKeyPath matches the original system's
// development-mode default location for the encryption key.
const defaultSecretEncryptionKeyPath = "/run/wsgraph/secret_encryption.key"

// Default returns a Config with the same baseline defaults a freshly
// unmarshaled, all-comments-stripped config file would produce: no CAS
// address (selecting an in-memory store), no NATS URL, and the default
// secret encryption key path.
func Default(opts ...Option) *Config {
	c := &Config{
		SecretEncryptionKeyPath: defaultSecretEncryptionKeyPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
