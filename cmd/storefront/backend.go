package main

import (
	"context"
	"fmt"
	"io"

	"github.com/angelmondragon/storefront/api/controllers"
	"github.com/angelmondragon/storefront/pkg/config"
	"github.com/angelmondragon/storefront/pkg/db"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/angelmondragon/storefront/pkg/migrate"
	"github.com/angelmondragon/storefront/pkg/persistence"
	"github.com/angelmondragon/storefront/pkg/redis"
)

// backend is the persistence adapter chosen by config plus the clients that
// own its connections.
type backend struct {
	adapter persistence.Adapter
	pingers map[string]controllers.Pinger
	closers []io.Closer
}

func openBackend(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*backend, error) {
	b := &backend{pingers: map[string]controllers.Pinger{}}

	var adapter persistence.Adapter
	switch cfg.Persistence.Driver {
	case config.PersistenceDriverMemory:
		adapter = persistence.NewMemory()

	case config.PersistenceDriverSQLite, config.PersistenceDriverPostgres:
		dbClient, err := db.New(ctx, cfg, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap database: %w", err)
		}
		b.closers = append(b.closers, dbClient)
		if err := migrate.MaybeRun(ctx, cfg, logg, dbClient); err != nil {
			_ = dbClient.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		b.pingers["database"] = dbClient
		adapter = persistence.NewSQL(dbClient.DB())

	case config.PersistenceDriverRedis:
		redisClient, err := redis.New(ctx, cfg.Redis, cfg.Persistence.Namespace, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap redis: %w", err)
		}
		b.closers = append(b.closers, redisClient)
		b.pingers["redis"] = redisClient
		adapter = persistence.NewRedis(redisClient, cfg.Redis.RecordTTL)

	default:
		return nil, fmt.Errorf("unsupported persistence driver %q", cfg.Persistence.Driver)
	}

	adapter = persistence.WithTimeout(adapter, cfg.Persistence.WriteTimeout)
	b.adapter = persistence.WithPrefix(adapter, cfg.Persistence.SessionID)
	return b, nil
}
