package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aivio/aivio-api/internal/container"
	handlers "github.com/aivio/aivio-api/internal/interface/http"
	"github.com/aivio/aivio-api/internal/interface/middleware"
)

// ChatModule wires the public chatbot endpoint.
// Public: POST /chat/

type ChatModule struct {
	Handler *handlers.ChatHandler
}

func NewChatModule(h *handlers.ChatHandler) *ChatModule {
	return &ChatModule{Handler: h}
}

func (m *ChatModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	rg.POST("/chat/", rl, m.Handler.Chat)
}
