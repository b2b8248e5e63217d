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

// ListLeads godoc
// @Summary List the agent's leads
// @Description Returns the agent's leads newest first, optionally filtered by status.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (new, read, archived)"
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Items per page (default 20, max 100)"
// @Success 200 {array} models.Lead
// @Router /v1/dashboard/leads [get]
func ListLeads(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListLeads")
	defer span.End()

	agentID := middleware.AgentID(c)

	page, perPage, err := services.ValidatePaginationParams(c.DefaultQuery("page", "1"), c.DefaultQuery("per_page", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	status := models.LeadStatus(c.Query("status"))
	if status != "" && !models.ValidLeadStatus(status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status inválido: " + string(status)})
		return
	}

	leads, err := services.LeadServiceInstance.ListByAgent(ctx, agentID, status)
	if err != nil {
		observability.Logger().Error("failed to list leads",
			zap.String("agent_id", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao listar contatos"})
		return
	}
	c.JSON(http.StatusOK, services.Paginate(leads, page, perPage))
}

// UpdateLeadStatus godoc
// @Summary Change a lead's status
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param status body handlers.StatusUpdateRequest true "New status (new, read, archived)"
// @Success 204 "Status updated"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Router /v1/dashboard/leads/{id}/status [patch]
func UpdateLeadStatus(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateLeadStatus")
	defer span.End()

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	status := models.LeadStatus(req.Status)
	if !models.ValidLeadStatus(status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status inválido: " + req.Status})
		return
	}

	if err := services.LeadServiceInstance.UpdateStatus(ctx, middleware.AgentID(c), c.Param("id"), status); err != nil {
		if errors.Is(err, models.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contato não encontrado"})
			return
		}
		observability.Logger().Error("failed to update lead status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao atualizar status"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteLead godoc
// @Summary Delete a lead
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 204 "Lead deleted"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Router /v1/dashboard/leads/{id} [delete]
func DeleteLead(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "DeleteLead")
	defer span.End()

	if err := services.LeadServiceInstance.Delete(ctx, middleware.AgentID(c), c.Param("id")); err != nil {
		if errors.Is(err, models.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Contato não encontrado"})
			return
		}
		observability.Logger().Error("failed to delete lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao excluir contato"})
		return
	}
	c.Status(http.StatusNoContent)
}
