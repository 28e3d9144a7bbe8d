package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage driver names
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		// Driver selects the substrate: memory, file, sqlite or postgres
		Driver string `yaml:"driver" env:"STORAGE_DRIVER"`
		// Path is the data directory (file driver) or database file (sqlite)
		Path string `yaml:"path" env:"STORAGE_PATH"`
		// DSN is the connection string for the postgres driver
		DSN string `yaml:"dsn" env:"STORAGE_DSN"`
		// Watch enables the external-change watcher (file driver only)
		Watch bool `yaml:"watch" env:"STORAGE_WATCH"`
	} `yaml:"storage"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration  string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		RefreshTokenExpiration string `yaml:"refresh_token_expiration" env:"JWT_REFRESH_TOKEN_EXPIRATION"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Storage.Driver = DriverFile
	config.Storage.Path = "data"
	config.Storage.Watch = false

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.RefreshTokenExpiration = "720h"
	config.JWT.Issuer = "internhub"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// loadFromEnv overrides config fields from environment variables
func loadFromEnv(config *Config) {
	setString := func(target *string, key string) {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*target = value
		}
	}

	setString(&config.Server.Port, "SERVER_PORT")
	setString(&config.Server.Mode, "SERVER_MODE")
	setString(&config.Storage.Driver, "STORAGE_DRIVER")
	setString(&config.Storage.Path, "STORAGE_PATH")
	setString(&config.Storage.DSN, "STORAGE_DSN")
	setString(&config.JWT.Secret, "JWT_SECRET")
	setString(&config.JWT.AccessTokenExpiration, "JWT_ACCESS_TOKEN_EXPIRATION")
	setString(&config.JWT.RefreshTokenExpiration, "JWT_REFRESH_TOKEN_EXPIRATION")
	setString(&config.JWT.Issuer, "JWT_ISSUER")
	setString(&config.Logging.Level, "LOG_LEVEL")
	setString(&config.Logging.Format, "LOG_FORMAT")

	if value, ok := os.LookupEnv("STORAGE_WATCH"); ok {
		config.Storage.Watch = value == "true" || value == "1"
	}
}

// validateConfig checks the configuration for inconsistencies
func validateConfig(config *Config) error {
	switch config.Storage.Driver {
	case DriverMemory:
	case DriverFile, DriverSQLite:
		if config.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s driver", config.Storage.Driver)
		}
	case DriverPostgres:
		if config.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.Storage.Watch && config.Storage.Driver != DriverFile {
		return fmt.Errorf("storage.watch is only supported by the file driver")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid jwt.access_token_expiration: %w", err)
	}
	if _, err := time.ParseDuration(config.JWT.RefreshTokenExpiration); err != nil {
		return fmt.Errorf("invalid jwt.refresh_token_expiration: %w", err)
	}

	return nil
}

// AccessTokenExp returns the parsed access token lifetime
func (c *Config) AccessTokenExp() time.Duration {
	d, _ := time.ParseDuration(c.JWT.AccessTokenExpiration)
	return d
}

// RefreshTokenExp returns the parsed refresh token lifetime
func (c *Config) RefreshTokenExp() time.Duration {
	d, _ := time.ParseDuration(c.JWT.RefreshTokenExpiration)
	return d
}
