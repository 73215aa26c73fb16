package router

import (
	"github.com/aivio/aivio-api/internal/application"
	"github.com/aivio/aivio-api/internal/container"
	pginfra "github.com/aivio/aivio-api/internal/infrastructure/postgres"
	handlers "github.com/aivio/aivio-api/internal/interface/http"
	"github.com/aivio/aivio-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup; each module builds its own
// repositories, services and handlers from the container singletons.
func InitModules(r *Registry) {
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	recRepo := pginfra.NewRecommendationRepository(container.GetPGPool())

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	recSvc := application.NewRecommendationService(recRepo, container.GetScorer(), logger)
	analysisSvc := application.NewAnalysisService()
	chatSvc := application.NewChatService()

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(container.GetPGPool(), container.GetConfig().Version)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewRecommendationModule(handlers.NewRecommendationHandler(recSvc, logger), container.GetJWT()))
	r.Add(modules.NewAnalysisModule(handlers.NewAnalysisHandler(analysisSvc)))
	r.Add(modules.NewChatModule(handlers.NewChatHandler(chatSvc)))
	r.Add(modules.NewDebugModule())
}
