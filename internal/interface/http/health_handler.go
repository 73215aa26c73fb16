package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	Pool    *pgxpool.Pool // nil when the startup connection failed
	Version string
}

func NewHealthHandler(pool *pgxpool.Pool, version string) *HealthHandler {
	return &HealthHandler{Pool: pool, Version: version}
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	database := "unavailable"
	if h.Pool != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := h.Pool.Ping(ctx); err == nil {
			database = "ok"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": database,
		"version":  h.Version,
	})
}

// Root GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Aivio API",
		"docs":    "/docs",
		"health":  "/health",
	})
}
