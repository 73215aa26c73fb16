package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aivio/aivio-api/internal/container"
	handlers "github.com/aivio/aivio-api/internal/interface/http"
	"github.com/aivio/aivio-api/internal/interface/middleware"
	"github.com/aivio/aivio-api/pkg/helpers"
)

// RecommendationModule wires the bearer-protected recommendation endpoints.
// Protected: POST /recommendations/, GET /recommendations/history

type RecommendationModule struct {
	Handler *handlers.RecommendationHandler
	JWT     *helpers.JWTManager
}

func NewRecommendationModule(h *handlers.RecommendationHandler, jwt *helpers.JWTManager) *RecommendationModule {
	return &RecommendationModule{Handler: h, JWT: jwt}
}

func (m *RecommendationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/recommendations")
	auth.Use(middleware.JWTAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/", m.Handler.Recommend)
		auth.GET("/history", m.Handler.History)
	}
}
