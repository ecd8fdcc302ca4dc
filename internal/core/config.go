// Package core provides configuration management for the lifebattery service.
package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all service configuration with validation. The engine's
// dose-response calibration lives in its own versioned file (Engine.
// CalibrationPath) so research updates never touch service config.
type Config struct {
	App struct {
		Name     string `yaml:"name"`
		Version  string `yaml:"version"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"app"`

	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Host           string `yaml:"host"`
		Port           int    `yaml:"port"`
		User           string `yaml:"user"`
		Password       string `yaml:"password"`
		DBName         string `yaml:"dbname"`
		MaxConnections int    `yaml:"max_connections"`
	} `yaml:"database"`

	Engine struct {
		// CalibrationPath points at the YAML dose-response table.
		// Empty means the compiled-in default table.
		CalibrationPath string `yaml:"calibration_path"`
	} `yaml:"engine"`
}

// LoadConfig reads and validates configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	config.ApplyEnvOverrides()
	return &config, nil
}

// Validate checks if configuration values are valid.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name cannot be empty")
	}
	if c.App.Version == "" {
		return fmt.Errorf("app.version cannot be empty")
	}
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of: debug, info, warn, error")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database.host cannot be empty")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("database.port must be between 1 and 65535")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname cannot be empty")
	}
	if c.Database.MaxConnections <= 0 {
		return fmt.Errorf("database.max_connections must be positive")
	}

	return nil
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if host := os.Getenv("LIFEBATTERY_DB_HOST"); host != "" {
		c.Database.Host = host
	}
	if user := os.Getenv("LIFEBATTERY_DB_USER"); user != "" {
		c.Database.User = user
	}
	if password := os.Getenv("LIFEBATTERY_DB_PASSWORD"); password != "" {
		c.Database.Password = password
	}
	if dbname := os.Getenv("LIFEBATTERY_DB_NAME"); dbname != "" {
		c.Database.DBName = dbname
	}
	if calibration := os.Getenv("LIFEBATTERY_CALIBRATION_PATH"); calibration != "" {
		c.Engine.CalibrationPath = calibration
	}
	if logLevel := os.Getenv("LIFEBATTERY_LOG_LEVEL"); logLevel != "" {
		c.App.LogLevel = logLevel
	}
}

// GetDatabaseURL returns the PostgreSQL connection string.
func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable&pool_max_conns=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		c.Database.MaxConnections,
	)
}
