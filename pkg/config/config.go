// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Every deployment parameter has an explicit default or a validation error

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Drafts contains draft workbook storage configuration
	Drafts DraftsConfig

	// Health contains cache health probe configuration
	Health HealthConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/sqlite/memory)
	Type string

	// TTL is the cache entry lifetime in seconds, 0 means no expiry
	TTL int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Host is the Redis server host
	Host string

	// Port is the Redis server port
	Port string

	// Password is the Redis authentication password, may be empty
	Password string

	// DB is the Redis database number
	DB int
}

// Address returns the host:port dial address for the Redis server.
func (c RedisConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the cache database file path
	Path string
}

// DraftsConfig holds draft workbook storage configuration
type DraftsConfig struct {
	// Dir is the directory containing draft timetable workbooks
	Dir string
}

// HealthConfig holds health probe configuration
type HealthConfig struct {
	// Interval is the probe interval in seconds
	Interval int

	// Timeout is the per-probe timeout in seconds
	Timeout int

	// Retries is the number of consecutive failures before unhealthy
	Retries int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			TTL:  getEnvAsIntOrDefault("CACHE_TTL", 3600),
			Redis: RedisConfig{
				Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
				Port:     getEnvOrDefault("REDIS_PORT", "6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
		},
		Drafts: DraftsConfig{
			Dir: getEnvOrDefault("DRAFTS_DIR", "drafts"),
		},
		Health: HealthConfig{
			Interval: getEnvAsIntOrDefault("HEALTH_INTERVAL", 5),
			Timeout:  getEnvAsIntOrDefault("HEALTH_TIMEOUT", 5),
			Retries:  getEnvAsIntOrDefault("HEALTH_RETRIES", 5),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535, got %q", c.Server.Port)
	}

	switch c.Cache.Type {
	case "redis":
		if c.Cache.Redis.Host == "" {
			return errors.New("redis host cannot be empty when using redis cache")
		}
		if c.Cache.Redis.Port == "" {
			return errors.New("redis port cannot be empty when using redis cache")
		}
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite cache path cannot be empty when using sqlite cache")
		}
	case "memory":
	default:
		return errors.New("cache type must be 'redis', 'sqlite' or 'memory'")
	}

	if c.Cache.TTL < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	if c.Drafts.Dir == "" {
		return errors.New("drafts directory cannot be empty")
	}

	if c.Health.Interval < 1 {
		return errors.New("health probe interval must be at least 1 second")
	}
	if c.Health.Timeout < 1 {
		return errors.New("health probe timeout must be at least 1 second")
	}
	if c.Health.Retries < 1 {
		return errors.New("health probe retries must be at least 1")
	}

	return nil
}
