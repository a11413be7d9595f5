package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"concierge/database"
	"concierge/utils"
)

// Health reports liveness of the service and its backing stores.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"status": "ok"}
	code := http.StatusOK

	if database.MongoClient != nil {
		if err := database.MongoClient.Ping(ctx, nil); err != nil {
			status["mongo"] = "unreachable"
			code = http.StatusServiceUnavailable
		} else {
			status["mongo"] = "ok"
		}
	}

	if cache := utils.GetSessionCacheClient(); cache != nil {
		if err := cache.Ping(ctx).Err(); err != nil {
			status["redis"] = "unreachable"
			code = http.StatusServiceUnavailable
		} else {
			status["redis"] = "ok"
		}
	}

	c.JSON(code, status)
}
