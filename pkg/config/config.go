package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment names
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Roster   RosterConfig
	Seed     SeedConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RosterConfig selects and configures the roster data source.
// Source is one of: seed, file, http, postgres.
type RosterConfig struct {
	Source       string        `mapstructure:"source"`
	FilePath     string        `mapstructure:"file_path"`
	URL          string        `mapstructure:"url"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// SeedConfig configures the synthetic roster generator
type SeedConfig struct {
	DriverCount int    `mapstructure:"driver_count"`
	EMTCount    int    `mapstructure:"emt_count"`
	WindowStart string `mapstructure:"window_start"` // YYYY-MM-DD
}

// Validate checks that the configuration is valid for the given environment.
// In production/staging the roster source must be explicitly reachable.
func (c *Config) Validate() error {
	env := c.Server.Environment
	switch c.Roster.Source {
	case "seed", "file", "http", "postgres":
	default:
		return fmt.Errorf("unknown roster source %q", c.Roster.Source)
	}

	if env == EnvProduction || env == EnvStaging {
		if c.Roster.Source == "seed" {
			return errors.New("seed roster source not allowed in " + env + " - set AMBUTRACK_ROSTER_SOURCE")
		}
		if c.Roster.Source == "postgres" && c.Database.Host == "localhost" {
			return errors.New("localhost database not allowed in " + env + " - set AMBUTRACK_DATABASE_HOST")
		}
		if c.Roster.Source == "http" && (c.Roster.URL == "" || strings.Contains(c.Roster.URL, "localhost")) {
			return errors.New("AMBUTRACK_ROSTER_URL must be set to a non-localhost value in " + env)
		}
	}
	return nil
}

// Load loads configuration from environment and config files.
// This function applies development defaults and is suitable for local development.
// For production use, prefer LoadWithValidation which enforces required configuration.
func Load(serviceName string) (*Config, error) {
	return loadConfig(serviceName)
}

// LoadWithValidation loads configuration and validates it for the current
// environment. Use this in service main() for fail-fast behavior.
func LoadWithValidation(serviceName string) (*Config, error) {
	cfg, err := loadConfig(serviceName)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

// loadConfig is the internal configuration loader
func loadConfig(serviceName string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("AMBUTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from config file if exists
	v.SetConfigName(serviceName)
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ambutrack")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8085)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.environment", EnvDevelopment)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "ambutrack")
	v.SetDefault("database.password", "devpassword")
	v.SetDefault("database.database", "ambutrack_attendance")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	// Roster source defaults
	v.SetDefault("roster.source", "seed")
	v.SetDefault("roster.file_path", "./UserAttendance.json")
	v.SetDefault("roster.url", "")
	v.SetDefault("roster.fetch_timeout", 10*time.Second)

	// Seed generator defaults (mirror the dashboard's synthetic data set)
	v.SetDefault("seed.driver_count", 50)
	v.SetDefault("seed.emt_count", 50)
	v.SetDefault("seed.window_start", "2025-01-01")
}
