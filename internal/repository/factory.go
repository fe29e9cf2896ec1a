// Package repository provides the initialization for repository implementations
package repository

import (
	"fmt"

	"github.com/roomease/roomease/internal/config"
	"github.com/roomease/roomease/internal/repository/file"
	"github.com/roomease/roomease/internal/repository/memory"
	"github.com/roomease/roomease/internal/repository/redis"
)

// NewRepository builds the configured repository backend. Unknown
// backends fall back to the in-memory store.
func NewRepository(cfg config.StorageConfig) (Repository, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		repo, err := redis.NewRepository(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis repository: %w", err)
		}
		return repo, nil
	case config.BackendFile:
		repo, err := file.NewRepository(cfg.StateDir)
		if err != nil {
			return nil, fmt.Errorf("file repository: %w", err)
		}
		return repo, nil
	default:
		return memory.NewRepository(), nil
	}
}
