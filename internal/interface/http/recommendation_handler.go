package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aivio/aivio-api/internal/application"
	"github.com/aivio/aivio-api/internal/interface/middleware"
	"github.com/aivio/aivio-api/pkg/response"
	"github.com/aivio/aivio-api/pkg/validation"
)

type RecommendationHandler struct {
	Svc    *application.RecommendationService
	Logger *logrus.Logger
}

func NewRecommendationHandler(svc *application.RecommendationService, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{Svc: svc, Logger: logger}
}

type recommendRequest struct {
	// An empty list is valid and yields an empty result; only a missing or
	// null field is a validation error.
	ItemIDs []int64 `json:"item_ids" binding:"required"`
}

// Recommend POST /recommendations/
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, validation.ToDetails(err))
		return
	}

	userID := middleware.UserID(c)
	items, err := h.Svc.Recommend(c.Request.Context(), userID, req.ItemIDs)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", userID).Error("recommend failed")
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":         userID,
		"recommendations": items,
	})
}

// History GET /recommendations/history?limit=N
func (h *RecommendationHandler) History(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.ValidationError(c, map[string]string{"limit": "must be a positive integer"})
			return
		}
		limit = n
	}

	userID := middleware.UserID(c)
	items, err := h.Svc.History(c.Request.Context(), userID, limit)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", userID).Error("history failed")
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, items)
}
