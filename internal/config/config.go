package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration. Values are resolved with
// the precedence explicit override > environment variable > config file >
// built-in default.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// DatabaseConfig contains PostgreSQL connection settings. URL, when set,
// wins over the discrete fields.
type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SMTPConfig contains email service settings.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// StorageConfig contains the form document store settings. An empty
// DocumentRoot falls back to the per-user default directory.
type StorageConfig struct {
	DocumentRoot string `yaml:"document_root"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains the health probe interval and cron schedules.
type SchedulerConfig struct {
	HealthCheckSeconds int    `yaml:"health_check_seconds"`
	SendFormReminders  string `yaml:"send_form_reminders"`
}

// Overrides carries explicit (command-line) settings that outrank every
// other source.
type Overrides struct {
	DatabaseURL      string
	DatabaseUser     string
	DatabasePassword string
}

// Load reads configuration from a YAML file, then applies environment
// variables and the explicit overrides. A missing config file is not an
// error; env, overrides and defaults still apply.
func Load(configPath string, overrides Overrides) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.overrideWithEnv()
	cfg.apply(overrides)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables. The
// KUD_DB_* names are the legacy variables of the desktop app and take
// precedence over the generic DB_* names.
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}
	if val := os.Getenv("KUD_DB_URL"); val != "" {
		c.Database.URL = val
	}
	if val := os.Getenv("KUD_DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("KUD_DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}

	// SMTP
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}
	if val := os.Getenv("SMTP_FROM"); val != "" {
		c.SMTP.From = val
	}

	// Storage
	if val := os.Getenv("DOCUMENT_ROOT"); val != "" {
		c.Storage.DocumentRoot = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

func (c *Config) apply(o Overrides) {
	if o.DatabaseURL != "" {
		c.Database.URL = o.DatabaseURL
	}
	if o.DatabaseUser != "" {
		c.Database.User = o.DatabaseUser
	}
	if o.DatabasePassword != "" {
		c.Database.Password = o.DatabasePassword
	}
}

func (c *Config) applyDefaults() {
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.User == "" {
		c.Database.User = "kud"
	}
	if c.Database.Password == "" {
		c.Database.Password = "kud"
	}
	if c.Database.Database == "" {
		c.Database.Database = "kud_karadjordje"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Scheduler.HealthCheckSeconds == 0 {
		c.Scheduler.HealthCheckSeconds = 30
	}
	if c.Scheduler.SendFormReminders == "" {
		c.Scheduler.SendFormReminders = "0 9 * * *" // daily at 9 AM
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	}
	if c.Scheduler.HealthCheckSeconds < 0 {
		return fmt.Errorf("invalid health check interval: %d", c.Scheduler.HealthCheckSeconds)
	}
	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string. An
// explicitly configured URL is used verbatim.
func (c *Config) GetDatabaseConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}
