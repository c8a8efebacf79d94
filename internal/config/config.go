package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. URLMANAGER_DATABASE_NAME.
const EnvPrefix = "URLMANAGER"

// Config represents the main structure mapping the entire application configuration.
// This struct uses mapstructure tags to map YAML keys to Go struct fields.
type Config struct {
	// Database configuration section for SQLite settings
	Database struct {
		Name          string `mapstructure:"name"`           // SQLite database file name
		SchemaVersion int    `mapstructure:"schema_version"` // Bumping it drops and recreates the urls table
	} `mapstructure:"database"`

	// Export configuration
	Export struct {
		Dir string `mapstructure:"dir"` // Directory receiving CSV/JSON/XML/YAML exports
	} `mapstructure:"export"`

	// Log configuration
	Log struct {
		Level  string `mapstructure:"level"`  // debug, info, warn or error
		Pretty bool   `mapstructure:"pretty"` // Console encoder instead of JSON lines
	} `mapstructure:"log"`
}

// LoadConfig loads the application configuration using Viper.
// If configFile is empty, ./configs/config.yaml is used when present.
// A .env file in the working directory is loaded first so its variables
// can override file values through the URLMANAGER_ prefix.
func LoadConfig(configFile string) (*Config, error) {
	// A missing .env is fine, anything else is reported
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// "database.name" becomes URLMANAGER_DATABASE_NAME
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath("./configs")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Set default values for all configuration options
	v.SetDefault("database.name", "urls.db")
	v.SetDefault("database.schema_version", 1)
	v.SetDefault("export.dir", "exports")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Not fatal: defaults and env still apply
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Database.Name == "" {
		return nil, fmt.Errorf("database.name must not be empty")
	}
	if cfg.Database.SchemaVersion < 1 {
		return nil, fmt.Errorf("database.schema_version must be >= 1, got %d", cfg.Database.SchemaVersion)
	}

	return &cfg, nil
}
