package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
}

type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	Mode              string        `mapstructure:"mode"` // debug, release, test
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	OpenAPIPath       string        `mapstructure:"openapi_path"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins"` // extra WebSocket origin patterns
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL URL with credentials escaped.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

type RedisConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"` // OTLP/HTTP collector URL
	ServiceName string `mapstructure:"service_name"`
}

type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"` // per caller per window
	Window   time.Duration `mapstructure:"window"`
}

type WebhookConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	URL     string        `mapstructure:"url"`
	Secret  string        `mapstructure:"secret"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Validate reports every setting the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	driver := c.Storage.Driver
	check(driver == StoragePostgres || driver == StorageMemory, "unknown storage driver %q", driver)
	check(c.Server.Port >= 0 && c.Server.Port <= 65535, "server.port %d out of range", c.Server.Port)
	check(c.JWT.Secret != "", "jwt.secret is required")
	check(c.JWT.Expiry > 0, "jwt.expiry must be positive")
	if c.RateLimit.Enabled {
		check(c.Redis.Enabled, "ratelimit requires redis.enabled")
		check(c.RateLimit.Requests > 0 && c.RateLimit.Window > 0,
			"ratelimit.requests and ratelimit.window must be positive")
	}
	if c.Webhook.Enabled {
		check(c.Webhook.URL != "" && c.Webhook.Secret != "", "webhook requires url and secret")
	}
	return errors.Join(errs...)
}

var defaults = map[string]any{
	"server.host":                "0.0.0.0",
	"server.port":                8080,
	"server.mode":                "debug",
	"server.read_header_timeout": "5s",
	"server.idle_timeout":        "2m",
	"server.shutdown_timeout":    "10s",
	"server.openapi_path":        "docs/api/openapi.yaml",
	"storage.driver":             StoragePostgres,
	"database.host":              "localhost",
	"database.port":              5432,
	"database.user":              "postgres",
	"database.password":          "postgres",
	"database.dbname":            "child_wallet",
	"database.sslmode":           "disable",
	"database.max_conns":         20,
	"database.min_conns":         2,
	"database.conn_max_lifetime": "30m",
	"database.auto_migrate":      true,
	"redis.enabled":              true,
	"redis.host":                 "localhost",
	"redis.port":                 6379,
	"redis.password":             "",
	"redis.db":                   0,
	"redis.pool_size":            10,
	"redis.dial_timeout":         "5s",
	"jwt.secret":                 "",
	"jwt.expiry":                 "12h",
	"jwt.issuer":                 "child-wallet",
	"log.level":                  "info",
	"log.pretty":                 false,
	"telemetry.enabled":          false,
	"telemetry.endpoint":         "",
	"telemetry.service_name":     "child-wallet",
	"ratelimit.enabled":          true,
	"ratelimit.requests":         100,
	"ratelimit.window":           "1m",
	"webhook.enabled":            false,
	"webhook.url":                "",
	"webhook.secret":             "",
	"webhook.timeout":            "10s",
}

// Load layers defaults, then the YAML file, then CWL_-prefixed environment
// variables (CWL_DATABASE_HOST sets database.host). Without a path it looks
// for config.yaml in . and ./config; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("CWL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
