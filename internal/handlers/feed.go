package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"github.com/vitrineimob/vitrine-api/internal/observability"
	"github.com/vitrineimob/vitrine-api/internal/services"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// GetFeed godoc
// @Summary Portal XML feed
// @Description Builds the property export feed for a portal in its native XML layout. When propertyId is set the feed carries only that property.
// @Tags feeds
// @Produce xml
// @Param portal path string true "Portal identifier (zap, imovelweb, casamineira, chavesnamao, tecimob)"
// @Param agentId query string true "Agent ID owning the properties"
// @Param propertyId query string false "Restrict the feed to a single property"
// @Success 200 {string} string "XML feed"
// @Failure 400 {object} ErrorResponse "Missing agentId"
// @Failure 404 {object} ErrorResponse "Unknown portal"
// @Failure 500 {object} ErrorResponse "Feed generation failed"
// @Router /v1/feeds/{portal} [get]
func GetFeed(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetFeed")
	defer span.End()

	agentID := c.Query("agentId")
	if agentID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Parâmetro agentId é obrigatório"})
		return
	}

	portal := c.Param("portal")
	if services.FeedServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Serviço de feeds não inicializado"})
		return
	}

	xml, err := services.FeedServiceInstance.Build(ctx, portal, agentID, c.Query("propertyId"))
	if err != nil {
		if errors.Is(err, models.ErrUnknownPortal) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Portal desconhecido: " + portal})
			return
		}
		observability.Logger().Error("failed to build portal feed",
			zap.String("portal", portal),
			zap.String("agent_id", agentID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Falha ao gerar o arquivo XML"})
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}
