package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitrineimob/vitrine-api/internal/middleware"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"github.com/vitrineimob/vitrine-api/internal/observability"
	"github.com/vitrineimob/vitrine-api/internal/services"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// GetMyProfile godoc
// @Summary Get the authenticated agent's profile
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Agent
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Router /v1/dashboard/profile [get]
func GetMyProfile(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetMyProfile")
	defer span.End()

	agent, err := services.AgentServiceInstance.GetByID(ctx, middleware.AgentID(c))
	if err != nil {
		if errors.Is(err, models.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Corretor não encontrado"})
			return
		}
		observability.Logger().Error("failed to load profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar perfil"})
		return
	}
	c.JSON(http.StatusOK, agent)
}

// UpdateMyProfile godoc
// @Summary Update the authenticated agent's profile
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param agent body models.AgentInput true "Profile data"
// @Success 204 "Profile updated"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 409 {object} ErrorResponse "Slug already taken"
// @Router /v1/dashboard/profile [put]
func UpdateMyProfile(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateMyProfile")
	defer span.End()

	var in models.AgentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	if err := services.AgentServiceInstance.Update(ctx, middleware.AgentID(c), &in); err != nil {
		switch {
		case errors.Is(err, models.ErrAgentNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Corretor não encontrado"})
		case errors.Is(err, models.ErrSlugTaken):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Endereço do site já está em uso"})
		default:
			observability.Logger().Error("failed to update profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao atualizar perfil"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSubscription godoc
// @Summary Get the agent's subscription
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Subscription
// @Failure 404 {object} ErrorResponse "Subscription not found"
// @Router /v1/dashboard/subscription [get]
func GetSubscription(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetSubscription")
	defer span.End()

	sub, err := services.SubscriptionServiceInstance.Get(ctx, middleware.AgentID(c))
	if err != nil {
		if errors.Is(err, models.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Assinatura não encontrada"})
			return
		}
		observability.Logger().Error("failed to load subscription", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar assinatura"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// SubscriptionUpdateRequest carries a billing update reported by the payment
// provider integration.
type SubscriptionUpdateRequest struct {
	Plan      string    `json:"plan" binding:"required"`
	Status    string    `json:"status" binding:"required"`
	PeriodEnd time.Time `json:"period_end" binding:"required"`
}

// UpdateSubscription godoc
// @Summary Update the agent's subscription
// @Description Applies a plan or status change reported by the billing provider. Requires the admin role.
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subscription body handlers.SubscriptionUpdateRequest true "Subscription data"
// @Success 204 "Subscription updated"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Subscription not found"
// @Router /v1/dashboard/subscription [put]
func UpdateSubscription(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateSubscription")
	defer span.End()

	var req SubscriptionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	plan := models.Plan(req.Plan)
	if plan != models.PlanTrial && plan != models.PlanEssencial && plan != models.PlanProfissional {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Plano inválido: " + req.Plan})
		return
	}
	status := models.SubscriptionStatus(req.Status)
	if status != models.SubTrialing && status != models.SubActive &&
		status != models.SubPastDue && status != models.SubCanceled {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status inválido: " + req.Status})
		return
	}

	if err := services.SubscriptionServiceInstance.Update(ctx, middleware.AgentID(c), plan, status, req.PeriodEnd); err != nil {
		if errors.Is(err, models.ErrSubscriptionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Assinatura não encontrada"})
			return
		}
		observability.Logger().Error("failed to update subscription", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao atualizar assinatura"})
		return
	}
	c.Status(http.StatusNoContent)
}
