package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aivio/aivio-api/internal/application"
	"github.com/aivio/aivio-api/pkg/response"
	"github.com/aivio/aivio-api/pkg/validation"
)

type ChatHandler struct {
	Svc *application.ChatService
}

func NewChatHandler(svc *application.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

type chatRequest struct {
	// Pointer so an empty message is valid input (empty_input intent) while
	// a missing field is a validation error.
	Message *string `json:"message" binding:"required"`
	Context string  `json:"context"`
}

// Chat POST /chat/
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	c.JSON(http.StatusOK, h.Svc.Respond(*req.Message))
}
