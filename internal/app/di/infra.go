// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cotacao_moedas/internal/platform/config"
	"cotacao_moedas/internal/platform/db"
	httphandler "cotacao_moedas/internal/platform/http/handler"
	infraredis "cotacao_moedas/internal/platform/redis"
)

// NewLogger installs a text slog handler at the configured level as the default logger.
func NewLogger(cfg *config.Config) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// OpenDatabase connects to the configured database and migrates models when enabled.
func OpenDatabase(cfg *config.Config, models ...any) (*gorm.DB, error) {
	dc := cfg.Database
	return db.Open(db.Config{
		Driver:     dc.Driver,
		SQLitePath: dc.SQLitePath,
		User:       dc.User,
		Password:   dc.Password,
		Name:       dc.Name,
		Host:       dc.Host,
		Port:       dc.Port,
		SSLMode:    dc.SSLMode,
	}, dc.ConnectTimeout, dc.AutoMigrate, models...)
}

// OpenRedis returns a connected client, or nil when Redis is not configured or unreachable.
func OpenRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if !cfg.RedisEnabled() {
		log.Println("[WARN] REDIS_HOST is not set. Running without Redis.")
		return nil
	}
	rdb, err := infraredis.NewRedisClient(ctx, infraredis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		return nil
	}
	return rdb
}

// HealthChecks reports the reachability of the database and, when present, Redis.
func HealthChecks(gdb *gorm.DB, rdb *redis.Client) map[string]httphandler.Check {
	checks := map[string]httphandler.Check{}
	if gdb != nil {
		checks["database"] = func(ctx context.Context) error {
			return db.Ping(ctx, gdb)
		}
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	return checks
}
