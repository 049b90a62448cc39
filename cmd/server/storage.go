package main

import (
	"context"
	"fmt"

	"lifecover/internal/adapters/cache"
	"lifecover/internal/adapters/persistence/models"
	"lifecover/internal/adapters/persistence/repositories"
	"lifecover/internal/config"

	"go.uber.org/zap"
)

// storage holds the repositories a server run needs and how to release them
type storage struct {
	users       repositories.UserRepository
	submissions repositories.SubmissionRepository
	// store is the uncached submission repository, used for retention sweeps
	store repositories.SubmissionRepository
	redis *cache.RedisCache
}

func (s *storage) close(log *zap.Logger) {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Warn("closing redis", zap.Error(err))
		}
	}
	if err := config.CloseDatabase(); err != nil {
		log.Warn("closing database", zap.Error(err))
	}
}

// openStorage connects the configured database (or in-memory store) and the optional redis cache
func openStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (*storage, error) {
	s := &storage{}

	if cfg.Database.Driver == "memory" {
		log.Warn("⚠️ using in-memory storage; data is lost on restart")
		s.users = repositories.NewUserRepositoryMemory()
		s.store = repositories.NewSubmissionRepositoryMemory()
	} else {
		db, err := config.ConnectDatabase(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}

		// Auto migrate (creates tables if not exist)
		if err := models.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("auto migrating: %w", err)
		}
		log.Info("✅ Database migration completed")

		s.users = repositories.NewUserRepository(db)
		s.store = repositories.NewSubmissionRepository(db)
	}

	s.submissions = s.store
	if cfg.Redis.Enabled() {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			// The cache is an optimisation; serve uncached rather than fail.
			log.Warn("⚠️ redis unavailable, serving without cache", zap.Error(err))
		} else {
			log.Info("✅ Redis cache connected", zap.String("addr", cfg.Redis.Addr))
			s.redis = redisCache
			s.submissions = repositories.NewCachedSubmissionRepository(s.store, redisCache, cfg.Redis.TTL, log)
		}
	}

	return s, nil
}
