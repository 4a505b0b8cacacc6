// Package config loads server settings from defaults, an optional config file, a .env file,
// MECH_ARMOR_* environment variables and command line flags, in increasing precedence.
package config

import (
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. MECH_ARMOR_REDIS_ADDR
	EnvPrefix = "MECH_ARMOR"

	configName = "mech-armor"

	// MaxHistoryLimit bounds drafts.history_limit
	MaxHistoryLimit = 1000
)

// Database drivers accepted for db.driver
const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

// Config is the fully resolved server configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Drafts  DraftsConfig  `mapstructure:"drafts"`
	DB      DBConfig      `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig configures the gRPC listener
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// RedisConfig configures draft storage. With Enabled false drafts live in memory.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DraftsConfig configures draft lifetime and undo depth
type DraftsConfig struct {
	TTL          time.Duration `mapstructure:"ttl"`
	HistoryLimit int           `mapstructure:"history_limit"`
}

// DBConfig configures the loadout database
type DBConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// LogConfig configures the default slog logger
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig toggles otel metric collection
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("drafts.ttl", 24*time.Hour)
	v.SetDefault("drafts.history_limit", 50)

	v.SetDefault("db.driver", DBDriverSQLite)
	v.SetDefault("db.dsn", "file:loadouts.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("metrics.enabled", false)
}

// New returns a viper instance with defaults and environment overrides installed
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadDotEnv loads .env style files into the process environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "failed to load %s", path)
		}
	}
	return nil
}

// Load reads the config file (an explicit path, or mech-armor.yaml in . and $HOME/.mech-armor)
// and resolves the final Config. A missing default config file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.mech-armor")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !stderrors.As(err, &notFound) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file")
		}
	}

	return FromViper(v)
}

// FromViper decodes and validates the current values of v
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Validate checks ranges and enumerations of every key
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		vb.Field("server.port", "must be between 1 and 65535")
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		vb.RequiredField("redis.addr")
	}
	if c.Redis.DB < 0 {
		vb.Field("redis.db", "cannot be negative")
	}

	if c.Drafts.TTL < 0 {
		vb.Field("drafts.ttl", "cannot be negative")
	}
	if c.Drafts.HistoryLimit < 1 || c.Drafts.HistoryLimit > MaxHistoryLimit {
		vb.Fieldf("drafts.history_limit", "must be between 1 and %d", MaxHistoryLimit)
	}

	errors.ValidateEnum("db.driver", c.DB.Driver, []string{DBDriverSQLite, DBDriverPostgres}, vb)
	if c.DB.DSN == "" {
		vb.RequiredField("db.dsn")
	}

	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", strings.ToLower(c.Log.Format), []string{"text", "json"}, vb)

	return vb.Build()
}

// SlogLevel maps log.level onto a slog level. Unknown values read as info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger writing to w in the configured format
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
