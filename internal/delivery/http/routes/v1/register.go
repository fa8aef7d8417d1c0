package v1

import (
	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/recordstore"
	"skill-swap/internal/repository"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, store recordstore.Store, redis *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	accountRepo := repository.NewPostgresAccountRepository(db)
	profileRepo := repository.NewRecordProfileRepository(store)
	swapRepo := repository.NewRecordSwapRepository(store)

	var dirCache usecase.DirectoryCache
	if redis != nil {
		dirCache = redis
	}

	authUC := usecase.NewAuthUsecase(accountRepo, profileRepo, dirCache, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo, dirCache)
	directoryUC := usecase.NewDirectoryUsecase(profileRepo, dirCache)
	swapUC := usecase.NewSwapUsecase(swapRepo, profileRepo)

	authHandler := handler.NewAuthHandler(authUC)
	skillHandler := handler.NewSkillHandler()
	profileHandler := handler.NewProfileHandler(profileUC)
	directoryHandler := handler.NewDirectoryHandler(directoryUC)
	swapHandler := handler.NewSwapHandler(swapUC)

	authHandler.RegisterRoutes(r.Group("/auth"))
	skillHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())

	profileHandler.RegisterRoutes(protected.Group("/me"))
	directoryHandler.RegisterRoutes(protected)
	swapHandler.RegisterRoutes(protected)
}
