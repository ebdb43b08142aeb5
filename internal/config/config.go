package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// ErrUnknownStoreDriver is returned when store.driver names no supported store
var ErrUnknownStoreDriver = errors.New("unknown store driver")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env        string     `mapstructure:"env"` // current application environment (local, dev, production)
	HTTP       HTTP       `mapstructure:"http"`
	Store      Store      `mapstructure:"store"`
	DB         DB         `mapstructure:"database"`
	SQLite     SQLite     `mapstructure:"sqlite"`
	Redis      Redis      `mapstructure:"redis"`
	Pagination Pagination `mapstructure:"pagination"`
	CORS       CORS       `mapstructure:"cors"`
}

// HTTP configures the API server.
type HTTP struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Store selects the question store.
type Store struct {
	Driver string `mapstructure:"driver"` // postgres, sqlite or memory
	Seed   bool   `mapstructure:"seed"`   // create the default categories on startup
}

// DB contains PostgreSQL connection parameters. URL wins over the parts.
type DB struct {
	URL             string        `mapstructure:"url"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	MaxConnections  int           `mapstructure:"max_connections"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// SQLite contains the SQLite database location.
type SQLite struct {
	Path string `mapstructure:"path"`
}

// Redis configures cross-instance event fan-out. An empty Addr disables it.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

// Pagination configures question listing.
type Pagination struct {
	PageSize int `mapstructure:"page_size"`
}

// CORS lists the origins allowed to call the API.
type CORS struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Load reads configuration from an optional .env file, an optional
// config/config.yaml and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("database.host", "POSTGRES_HOST")
	_ = v.BindEnv("database.port", "POSTGRES_PORT")
	_ = v.BindEnv("database.user", "POSTGRES_USER")
	_ = v.BindEnv("database.password", "POSTGRES_PASSWORD")
	_ = v.BindEnv("database.name", "POSTGRES_DB")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("pagination.page_size", "QUESTIONS_PER_PAGE")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that have no usable fallback.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, c.Store.Driver)
	}
	if c.Pagination.PageSize <= 0 {
		return fmt.Errorf("pagination.page_size must be positive, got %d", c.Pagination.PageSize)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("store.driver", DriverPostgres)
	v.SetDefault("store.seed", true)
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "trivia")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("sqlite.path", "./trivia.db")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", "trivia:questions")
	v.SetDefault("pagination.page_size", 10)
	v.SetDefault("cors.allow_origins", []string{"*"})
}
