package app

import (
	"context"
	"log"
	"time"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/database/migration"
	dbpostgres "skill-swap/internal/database/postgres"
	"skill-swap/internal/database/seeder"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/recordstore"
	recpostgres "skill-swap/internal/recordstore/postgres"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Store  recordstore.Store
	Cache  *cache.Redis
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := recpostgres.NewStore(db)

	// Demo members make a fresh development install browsable; production
	// directories start empty.
	if cfg.App.Environment == "development" {
		runner := seeder.Runner{Seeders: []seeder.Seeder{seeder.ProfilesSeeder{}}}
		if err := runner.Run(ctx, store); err != nil {
			logger.Printf("[Seed] demo data skipped: %v", err)
		}
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Store:  store,
		Cache:  cache.NewRedis(cfg.Redis, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
