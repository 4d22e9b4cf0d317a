package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_DefaultsDSN(t *testing.T) {
	cfg := NewClientConfig(defaultConfig())

	assert.Equal(t, DefaultClientDSN, cfg.Storage.DSN)
	assert.Equal(t, DefaultSyncDelay, cfg.Workers.SyncDelay)
	assert.Zero(t, cfg.Workers.SyncInterval)
	require.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig { return NewClientConfig(defaultConfig()) }

	tests := []struct {
		name   string
		mutate func(*ClientConfig)
		want   error
	}{
		{name: "in-memory dsn", mutate: func(c *ClientConfig) { c.Storage.DSN = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, want: ErrInvalidAdapterConfigs},
		{name: "zero delay", mutate: func(c *ClientConfig) { c.Workers.SyncDelay = 0 }, want: ErrInvalidWorkerConfigs},
		{name: "negative interval", mutate: func(c *ClientConfig) { c.Workers.SyncInterval = -time.Second }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	base := defaultConfig()
	base.Storage.DB.DSN = "postgres://localhost/flashcards"
	base.App.TokenSignKey = "secret"

	cfg := NewServerConfig(base)
	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)

	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg = NewServerConfig(defaultConfig())
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestGetServerConfig_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/db")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")

	cfg, err := GetServerConfig([]string{"-d", "postgres://flag/db"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://flag/db", cfg.DSN)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
}

func TestGetClientConfig_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ADAPTER_ADDRESS", "http://env:8080")

	cfg, err := GetClientConfig(&StructuredConfig{
		Storage: Storage{DB: DB{DSN: "mine.db"}},
		Workers: Workers{SyncInterval: time.Minute},
	})
	require.NoError(t, err)

	assert.Equal(t, "http://env:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "mine.db", cfg.Storage.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}
