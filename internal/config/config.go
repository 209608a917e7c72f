package config

import (
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	App      AppConfig      `koanf:"app"`
	Database DatabaseConfig `koanf:"db"`
	JWT      JWTConfig      `koanf:"jwt"`
	Activity ActivityConfig `koanf:"activity"`
	Mongo    MongoConfig    `koanf:"mongo"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"ssl_mode"`
	MaxConns int32  `koanf:"max_conns"`
	MinConns int32  `koanf:"min_conns"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string `koanf:"secret"`
	AccessExpiration string `koanf:"access_expiration"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Name        string `koanf:"name"`
	Port        int    `koanf:"port"`
	Env         string `koanf:"env"`
	LogLevel    string `koanf:"log_level"`
	FrontendURL string `koanf:"frontend_url"`
}

// ActivityConfig tunes the asynchronous activity recorder.
type ActivityConfig struct {
	Store         string        `koanf:"store"` // postgres | mongodb
	QueueSize     int           `koanf:"queue_size"`
	BatchSize     int           `koanf:"batch_size"`
	FlushInterval time.Duration `koanf:"flush_interval"`
	Workers       int           `koanf:"workers"`
}

type MongoConfig struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
}

const (
	ActivityStorePostgres = "postgres"
	ActivityStoreMongo    = "mongodb"
)

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		App: AppConfig{
			Name:        "hris-report",
			Port:        8080,
			Env:         "development",
			LogLevel:    "info",
			FrontendURL: "http://localhost:3000",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Name:     "cmlabs-hris",
			SSLMode:  "disable",
			MaxConns: 25,
			MinConns: 5,
		},
		JWT: JWTConfig{
			AccessExpiration: "1h",
		},
		Activity: ActivityConfig{
			Store:         ActivityStorePostgres,
			QueueSize:     1000,
			BatchSize:     100,
			FlushInterval: 5 * time.Second,
			Workers:       2,
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "hris",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "hris",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return ErrJWTSecretRequired
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.App.Port)
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAccessExpiration, err)
	}
	switch c.Activity.Store {
	case ActivityStorePostgres:
	case ActivityStoreMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return ErrMongoRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownActivityStore, c.Activity.Store)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.Database.SSLMode),
	}
	return u.String()
}
