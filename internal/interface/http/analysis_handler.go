package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aivio/aivio-api/internal/application"
	"github.com/aivio/aivio-api/pkg/response"
	"github.com/aivio/aivio-api/pkg/validation"
)

type AnalysisHandler struct {
	Svc *application.AnalysisService
}

func NewAnalysisHandler(svc *application.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{Svc: svc}
}

type analysisRequest struct {
	// Pointer so a present-but-empty string reaches the empty-text check
	// (400) while a missing field stays a validation error (422).
	Text *string `json:"text" binding:"required"`
}

// Sentiment POST /analysis/sentiment
func (h *AnalysisHandler) Sentiment(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}
	if *req.Text == "" {
		response.Detail(c, http.StatusBadRequest, "Text cannot be empty")
		return
	}

	c.JSON(http.StatusOK, h.Svc.Classify(*req.Text))
}
