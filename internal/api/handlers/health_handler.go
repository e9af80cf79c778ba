// internal/api/handlers/health_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	DB *mongo.Database
}

// Health is public; the identity provider probes it without a token.
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{"status": "ok"}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": err.Error()})
			return
		}
		status["mongo"] = "ok"
	}
	c.JSON(http.StatusOK, status)
}
