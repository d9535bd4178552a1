package app

import (
	"context"
	"errors"

	"staff-service/internal/auth/profile"
	"staff-service/internal/config"
	"staff-service/internal/db"
	"staff-service/internal/logger"
	"staff-service/internal/orphan"
	"staff-service/internal/redis"
	"staff-service/internal/supabase"
)

// Infra holds the optional backing services. Nil fields are not configured.
type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		database, err := db.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		if err := db.RunMigration(ctx, database.DB); err != nil {
			_ = database.Close()
			return nil, err
		}

		infra.DB = database
		logger.Info("database ready", nil)
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			_ = infra.Close()
			return nil, err
		}

		infra.Redis = redisClient
		logger.Info("redis ready", nil)
	}

	return infra, nil
}

// profileStore picks Postgres when a DSN is configured and the Supabase
// REST API otherwise.
func (i *Infra) profileStore(project *supabase.Project) profile.Store {
	if i.DB != nil {
		return profile.NewDBStore(i.DB)
	}
	return profile.NewRESTStore(project)
}

func (i *Infra) orphanLedger() orphan.Ledger {
	if i.Redis != nil {
		return orphan.NewRedisLedger(i.Redis.Client)
	}
	return orphan.Nop{}
}

func (i *Infra) Close() error {
	var errs []error
	if i.DB != nil {
		errs = append(errs, i.DB.Close())
	}
	if i.Redis != nil {
		errs = append(errs, i.Redis.Close())
	}
	return errors.Join(errs...)
}
