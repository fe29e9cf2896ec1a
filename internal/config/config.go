// Package config provides configuration management for the application
package config

import (
	"os"
	"strconv"
	"time"
)

// Storage backend names accepted by ROOMEASE_STORAGE_BACKEND.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendFile   = "file"
)

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// TTL for bookings (0 means no expiration)
	BookingTTL time.Duration
}

// StorageConfig selects and configures the booking store backend.
type StorageConfig struct {
	Backend string
	// StateDir holds the JSON state files for the file backend.
	StateDir string
	Redis    RedisConfig
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port        string
	CatalogPath string
	// RatePerSecond and RateBurst configure the API rate limiter.
	RatePerSecond float64
	RateBurst     int
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	// Parse TTL from environment variable (in hours); bookings do not
	// expire by default.
	ttlHours, _ := strconv.Atoi(getEnv("REDIS_BOOKING_TTL_HOURS", "0"))
	ttl := time.Duration(ttlHours) * time.Hour

	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return RedisConfig{
		URI:        getEnv("REDIS_URI_ROOMEASE", ""),
		Host:       getEnv("REDIS_HOST_ROOMEASE", getEnv("REDIS_ADDRESS", "localhost")),
		Port:       getEnv("REDIS_PORT_ROOMEASE", "6379"),
		Username:   getEnv("REDIS_USERNAME_ROOMEASE", ""),
		Password:   getEnv("REDIS_PASSWORD_ROOMEASE", getEnv("REDIS_PASSWORD", "")),
		DB:         db,
		KeyPrefix:  getEnv("REDIS_KEY_PREFIX", "roomease:"),
		BookingTTL: ttl,
	}
}

// GetStorageConfig loads the storage backend configuration from
// environment variables. The default is the in-memory store.
func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Backend:  getEnv("ROOMEASE_STORAGE_BACKEND", BackendMemory),
		StateDir: getEnv("ROOMEASE_STATE_DIR", "./data"),
		Redis:    GetRedisConfig(),
	}
}

// GetServerConfig loads the HTTP server configuration from environment
// variables.
func GetServerConfig() ServerConfig {
	rate, err := strconv.ParseFloat(getEnv("ROOMEASE_RATE_LIMIT", "50"), 64)
	if err != nil || rate <= 0 {
		rate = 50
	}
	burst, err := strconv.Atoi(getEnv("ROOMEASE_RATE_BURST", "100"))
	if err != nil || burst <= 0 {
		burst = 100
	}

	return ServerConfig{
		Port:          getEnv("PORT", "8080"),
		CatalogPath:   getEnv("ROOMEASE_CATALOG_PATH", "./data/rooms.json"),
		RatePerSecond: rate,
		RateBurst:     burst,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
