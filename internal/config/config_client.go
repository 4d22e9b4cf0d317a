package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DSN is the path of the local SQLite database file.
	DSN string
}

// ClientWorkers contains the client's sync scheduling settings.
type ClientWorkers struct {
	// SyncDelay is the debounce quiet period.
	SyncDelay time.Duration
	// SyncInterval is the retry job period. Zero disables the job.
	SyncInterval time.Duration
	// TeardownTimeout bounds the push run on shutdown.
	TeardownTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	// LogFile is the client log file path.
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view.
// overrides carries values taken from the client command line; it may be nil.
// Command-line flags of the process are not parsed here since the client CLI
// owns them.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withOverrides(overrides).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DSN: dsn},
		Workers: ClientWorkers{
			SyncDelay:       cfg.Workers.SyncDelay,
			SyncInterval:    cfg.Workers.SyncInterval,
			TeardownTimeout: cfg.Workers.TeardownTimeout,
		},
		LogFile: cfg.Log.File,
	}
}
