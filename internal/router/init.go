package router

import (
	"newsroom-api/internal/application"
	"newsroom-api/internal/container"
	"newsroom-api/internal/infrastructure/mongodb"
	handlers "newsroom-api/internal/interface/http"
	"newsroom-api/internal/router/modules"
)

// InitModules builds every feature module from container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	db := container.GetMongo()
	logger := container.GetLogger()

	articleRepo := mongodb.NewArticleRepository(db, cfg.ArticlesColl)
	articleSvc := application.NewArticleService(articleRepo, logger)
	articleHandler := handlers.NewArticleHandler(articleSvc, logger, container.GetGCS(), cfg.GCSBucket)

	userRepo := mongodb.NewUserRepository(db, cfg.UsersColl)
	userSvc := application.NewUserService(userRepo, container.GetJWT(), logger)
	userHandler := handlers.NewUserHandler(userSvc, logger, cfg, container.GetRabbitPub())

	r.Add(modules.NewArticleModule(articleHandler, container.GetJWT()))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
}
