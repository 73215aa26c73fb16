package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/aivio/aivio-api/internal/interface/http"
)

// HealthModule wires the unauthenticated liveness endpoints.
// Public: GET /, GET /health

type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Root)
	rg.GET("/health", m.Handler.Health)
}
