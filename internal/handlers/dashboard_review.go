package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrineimob/vitrine-api/internal/middleware"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"github.com/vitrineimob/vitrine-api/internal/observability"
	"github.com/vitrineimob/vitrine-api/internal/services"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// ListReviews godoc
// @Summary List the agent's reviews, pending included
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Review
// @Router /v1/dashboard/reviews [get]
func ListReviews(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListReviews")
	defer span.End()

	reviews, err := services.ReviewServiceInstance.ListByAgent(ctx, middleware.AgentID(c), false)
	if err != nil {
		observability.Logger().Error("failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao listar avaliações"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ApproveReview godoc
// @Summary Approve a review for public display
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "Review approved"
// @Failure 404 {object} ErrorResponse "Review not found"
// @Router /v1/dashboard/reviews/{id}/approve [post]
func ApproveReview(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ApproveReview")
	defer span.End()

	if err := services.ReviewServiceInstance.Approve(ctx, middleware.AgentID(c), c.Param("id")); err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Avaliação não encontrada"})
			return
		}
		observability.Logger().Error("failed to approve review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao aprovar avaliação"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "Review deleted"
// @Failure 404 {object} ErrorResponse "Review not found"
// @Router /v1/dashboard/reviews/{id} [delete]
func DeleteReview(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "DeleteReview")
	defer span.End()

	if err := services.ReviewServiceInstance.Delete(ctx, middleware.AgentID(c), c.Param("id")); err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Avaliação não encontrada"})
			return
		}
		observability.Logger().Error("failed to delete review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao excluir avaliação"})
		return
	}
	c.Status(http.StatusNoContent)
}
