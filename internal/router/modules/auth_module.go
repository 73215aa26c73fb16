package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aivio/aivio-api/internal/container"
	handlers "github.com/aivio/aivio-api/internal/interface/http"
	"github.com/aivio/aivio-api/internal/interface/middleware"
)

// AuthModule wires the public registration and token endpoints.
// Public: POST /auth/register, POST /auth/token

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	tokenLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/token", tokenLimiter, m.Handler.Token)
}
