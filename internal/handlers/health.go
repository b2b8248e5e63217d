package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitrineimob/vitrine-api/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.opentelemetry.io/otel"
)

// HealthResponse reports the state of the service and its dependencies
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthCheck godoc
// @Summary Service health
// @Description Reports API, MongoDB and Redis health.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Success 503 {object} HealthResponse "One or more dependencies are down"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "HealthCheck")
	defer span.End()

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Services:  map[string]string{},
	}

	if err := config.MongoDB.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		response.Status = "degraded"
		response.Services["mongodb"] = "down"
	} else {
		response.Services["mongodb"] = "up"
	}

	if config.Redis != nil {
		if err := config.Redis.Ping(ctx).Err(); err != nil {
			response.Status = "degraded"
			response.Services["redis"] = "down"
		} else {
			response.Services["redis"] = "up"
		}
	}

	status := http.StatusOK
	if response.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}
