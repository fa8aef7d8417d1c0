package routes

import (
	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/delivery/http/handler"
	v1 "skill-swap/internal/delivery/http/routes/v1"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/recordstore"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg   config.Config
	db    database.DB
	store recordstore.Store
	redis *cache.Redis

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, store recordstore.Store, redis *cache.Redis) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		store:  store,
		redis:  redis,
		health: handler.NewHealthHandler(),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.store, r.redis)
}
