package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aivio/aivio-api/internal/container"
	handlers "github.com/aivio/aivio-api/internal/interface/http"
	"github.com/aivio/aivio-api/internal/interface/middleware"
)

// AnalysisModule wires the public sentiment endpoint.
// Public: POST /analysis/sentiment

type AnalysisModule struct {
	Handler *handlers.AnalysisHandler
}

func NewAnalysisModule(h *handlers.AnalysisHandler) *AnalysisModule {
	return &AnalysisModule{Handler: h}
}

func (m *AnalysisModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	rg.POST("/analysis/sentiment", rl, m.Handler.Sentiment)
}
