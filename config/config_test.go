package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.IdleTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())

	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "child_wallet", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, int32(2), cfg.Database.MinConns)
	assert.True(t, cfg.Database.AutoMigrate)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)

	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "child-wallet", cfg.JWT.Issuer)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "child-wallet", cfg.Telemetry.ServiceName)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.Webhook.Enabled)
	assert.Equal(t, 10*time.Second, cfg.Webhook.Timeout)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
storage:
  driver: "memory"
database:
  host: "db.example.com"
  port: 5433
  user: "appuser"
  password: "secret123"
  dbname: "testdb"
  sslmode: "require"
redis:
  enabled: false
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
jwt:
  secret: "my-jwt-secret"
  expiry: "2h"
  issuer: "test-wallet"
log:
  level: "debug"
  pretty: true
telemetry:
  enabled: true
  endpoint: "http://collector:4318"
ratelimit:
  enabled: false
webhook:
  enabled: true
  url: "https://hooks.example.com/wallet"
  secret: "hook-secret"
  timeout: "3s"
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)

	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "appuser", cfg.Database.User)
	assert.Equal(t, "secret123", cfg.Database.Password)
	assert.Equal(t, "testdb", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)

	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "redispwd", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, "my-jwt-secret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "test-wallet", cfg.JWT.Issuer)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)

	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "http://collector:4318", cfg.Telemetry.Endpoint)
	assert.False(t, cfg.RateLimit.Enabled)

	assert.True(t, cfg.Webhook.Enabled)
	assert.Equal(t, "https://hooks.example.com/wallet", cfg.Webhook.URL)
	assert.Equal(t, 3*time.Second, cfg.Webhook.Timeout)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CWL_SERVER_PORT", "3000")
	t.Setenv("CWL_DATABASE_HOST", "env-db-host")
	t.Setenv("CWL_JWT_SECRET", "env-secret")
	t.Setenv("CWL_STORAGE_DRIVER", "memory")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "env-db-host", cfg.Database.Host)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Storage:   StorageConfig{Driver: StorageMemory},
			JWT:       JWTConfig{Secret: "s", Expiry: time.Hour},
			Redis:     RedisConfig{Enabled: true},
			RateLimit: RateLimitConfig{Enabled: true, Requests: 10, Window: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "sqlite" }, "unknown storage driver"},
		{"missing secret", func(c *Config) { c.JWT.Secret = "" }, "jwt.secret"},
		{"zero expiry", func(c *Config) { c.JWT.Expiry = 0 }, "jwt.expiry"},
		{"ratelimit without redis", func(c *Config) { c.Redis.Enabled = false }, "ratelimit requires redis"},
		{"ratelimit zero window", func(c *Config) { c.RateLimit.Window = 0 }, "ratelimit.requests"},
		{"webhook without url", func(c *Config) { c.Webhook = WebhookConfig{Enabled: true, Secret: "s"} }, "webhook requires"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{Driver: "sqlite"},
		Server:  ServerConfig{Port: 70000},
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"unknown storage driver", "server.port", "jwt.secret", "jwt.expiry"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server: [unclosed"), 0o600))

	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "plain",
			cfg:  DatabaseConfig{Host: "localhost", Port: 5432, User: "wallet", Password: "pw", DBName: "child_wallet", SSLMode: "disable"},
			want: "postgres://wallet:pw@localhost:5432/child_wallet?sslmode=disable",
		},
		{
			name: "escaped password",
			cfg:  DatabaseConfig{Host: "db", Port: 5433, User: "wallet", Password: "p@ss/word", DBName: "cw", SSLMode: "require"},
			want: "postgres://wallet:p%40ss%2Fword@db:5433/cw?sslmode=require",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestAddr(t *testing.T) {
	assert.Equal(t, "redis.local:6380", RedisConfig{Host: "redis.local", Port: 6380}.Addr())
	assert.Equal(t, "[::1]:8080", ServerConfig{Host: "::1", Port: 8080}.Addr())
}
