package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/username/working-days-api/internal/schedule"
)

// Config represents application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Business BusinessConfig `mapstructure:"business"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

// HolidaysConfig represents holiday supplier configuration
type HolidaysConfig struct {
	URL            string `mapstructure:"url"`
	FallbackFile   string `mapstructure:"fallback_file"`
	CacheTTL       string `mapstructure:"cache_ttl"`
	RequestTimeout string `mapstructure:"request_timeout"`
}

// BusinessConfig represents the business-hours profile
type BusinessConfig struct {
	Timezone   string `mapstructure:"timezone"`
	WorkStart  int    `mapstructure:"work_start"`
	LunchStart int    `mapstructure:"lunch_start"`
	LunchEnd   int    `mapstructure:"lunch_end"`
	WorkEnd    int    `mapstructure:"work_end"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load loads configuration from file. A missing config file is not an
// error; defaults cover every key.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	defaults := schedule.DefaultProfile()
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("holidays.url", "https://content.capta.co/Recruitment/WorkingDays.json")
	v.SetDefault("holidays.cache_ttl", "24h")
	v.SetDefault("holidays.request_timeout", "10s")
	v.SetDefault("business.timezone", defaults.Timezone)
	v.SetDefault("business.work_start", defaults.WorkStart)
	v.SetDefault("business.lunch_start", defaults.LunchStart)
	v.SetDefault("business.lunch_end", defaults.LunchEnd)
	v.SetDefault("business.work_end", defaults.WorkEnd)
	v.SetDefault("log.level", "info")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.working-days-api")
		v.AddConfigPath("/etc/working-days-api")
	}

	// Read environment variables
	v.AutomaticEnv()

	// Read config file; running on defaults alone is fine
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is required")
	}
	if c.Holidays.URL == "" && c.Holidays.FallbackFile == "" {
		return fmt.Errorf("one of holidays.url or holidays.fallback_file is required")
	}
	if err := c.Business.Profile().Validate(); err != nil {
		return fmt.Errorf("business: %w", err)
	}
	return nil
}

// Profile returns the business-hours profile described by the config.
func (c *BusinessConfig) Profile() schedule.Profile {
	return schedule.Profile{
		WorkStart:  c.WorkStart,
		LunchStart: c.LunchStart,
		LunchEnd:   c.LunchEnd,
		WorkEnd:    c.WorkEnd,
		Timezone:   c.Timezone,
	}
}

// GetCacheTTL returns holiday cache TTL duration
func (c *HolidaysConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// GetRequestTimeout returns holiday request timeout duration
func (c *HolidaysConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

// GetShutdownTimeout returns server shutdown timeout duration
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}
