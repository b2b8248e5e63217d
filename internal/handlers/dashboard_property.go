package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrineimob/vitrine-api/internal/middleware"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"github.com/vitrineimob/vitrine-api/internal/observability"
	"github.com/vitrineimob/vitrine-api/internal/services"
	"github.com/vitrineimob/vitrine-api/internal/utils"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// maxImportBytes caps uploaded XML payloads at 10 MiB.
const maxImportBytes = 10 << 20

// CreateProperty godoc
// @Summary Create a property listing
// @Description Creates a listing for the authenticated agent. Fails when the subscription plan limit for active properties is reached.
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param property body models.Property true "Property data"
// @Success 201 {object} models.Property
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 402 {object} ErrorResponse "Plan limit reached"
// @Router /v1/dashboard/properties [post]
func CreateProperty(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateProperty")
	defer span.End()

	agentID := middleware.AgentID(c)

	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	if result := utils.ValidateProperty(&property); !result.IsValid {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: result.Errors[0].Message})
		return
	}

	if err := services.PropertyServiceInstance.Create(ctx, agentID, &property); err != nil {
		if errors.Is(err, models.ErrPlanLimitReached) {
			c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: "Limite de imóveis do plano atingido"})
			return
		}
		observability.Logger().Error("failed to create property",
			zap.String("agent_id", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao criar imóvel"})
		return
	}
	c.JSON(http.StatusCreated, property)
}

// ListProperties godoc
// @Summary List the agent's properties
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (ativo, vendido, alugado)"
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Items per page (default 20, max 100)"
// @Success 200 {array} models.Property
// @Router /v1/dashboard/properties [get]
func ListProperties(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListProperties")
	defer span.End()

	agentID := middleware.AgentID(c)

	page, perPage, err := services.ValidatePaginationParams(c.DefaultQuery("page", "1"), c.DefaultQuery("per_page", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	status := models.PropertyStatus(c.Query("status"))
	if status != "" && !models.ValidPropertyStatus(status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status inválido: " + string(status)})
		return
	}

	properties, err := services.PropertyServiceInstance.ListByAgent(ctx, agentID, status)
	if err != nil {
		observability.Logger().Error("failed to list properties",
			zap.String("agent_id", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao listar imóveis"})
		return
	}
	c.JSON(http.StatusOK, services.Paginate(properties, page, perPage))
}

// GetProperty godoc
// @Summary Get one of the agent's properties
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} ErrorResponse "Property not found"
// @Router /v1/dashboard/properties/{id} [get]
func GetProperty(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetProperty")
	defer span.End()

	property, err := services.PropertyServiceInstance.GetByID(ctx, middleware.AgentID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Imóvel não encontrado"})
			return
		}
		observability.Logger().Error("failed to load property", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar imóvel"})
		return
	}
	c.JSON(http.StatusOK, property)
}

// UpdateProperty godoc
// @Summary Update a property listing
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param property body models.Property true "Property data"
// @Success 200 {object} models.Property
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Router /v1/dashboard/properties/{id} [put]
func UpdateProperty(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateProperty")
	defer span.End()

	agentID := middleware.AgentID(c)

	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	if result := utils.ValidateProperty(&property); !result.IsValid {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: result.Errors[0].Message})
		return
	}

	if err := services.PropertyServiceInstance.Update(ctx, agentID, c.Param("id"), &property); err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Imóvel não encontrado"})
			return
		}
		observability.Logger().Error("failed to update property", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao atualizar imóvel"})
		return
	}
	c.JSON(http.StatusOK, property)
}

// UpdatePropertyStatus godoc
// @Summary Change a property's status
// @Description Marks a listing as ativo, vendido or alugado. Sold and rented listings leave the public site and the portal feeds.
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param status body handlers.StatusUpdateRequest true "New status"
// @Success 204 "Status updated"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Router /v1/dashboard/properties/{id}/status [patch]
func UpdatePropertyStatus(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdatePropertyStatus")
	defer span.End()

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	status := models.PropertyStatus(req.Status)
	if !models.ValidPropertyStatus(status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Status inválido: " + req.Status})
		return
	}

	if err := services.PropertyServiceInstance.UpdateStatus(ctx, middleware.AgentID(c), c.Param("id"), status); err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Imóvel não encontrado"})
			return
		}
		observability.Logger().Error("failed to update property status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao atualizar status"})
		return
	}
	c.Status(http.StatusNoContent)
}

// StatusUpdateRequest carries a status transition for a property or lead.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ImportProperties godoc
// @Summary Import properties from a Carga XML file
// @Description Parses an uploaded Carga XML document and creates one listing per item. Import stops when the plan limit is reached; items already counted remain created.
// @Tags dashboard
// @Accept xml
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ImportResult
// @Failure 400 {object} ErrorResponse "Malformed XML"
// @Failure 402 {object} ErrorResponse "Plan limit reached during import"
// @Router /v1/dashboard/properties/import [post]
func ImportProperties(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ImportProperties")
	defer span.End()

	agentID := middleware.AgentID(c)

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Erro ao ler o arquivo enviado"})
		return
	}

	imported, skipped, err := services.PropertyServiceInstance.ImportXML(ctx, agentID, data)
	if err != nil {
		if errors.Is(err, models.ErrPlanLimitReached) {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":    "Limite de imóveis do plano atingido durante a importação",
				"imported": imported,
				"skipped":  skipped,
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Arquivo XML inválido: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, ImportResult{Imported: imported, Skipped: skipped})
}

// ImportResult summarizes an XML import run.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// SuggestPropertyDescription godoc
// @Summary Suggest a listing description
// @Description Generates a description draft from the listing's attributes.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} handlers.DescriptionSuggestion
// @Failure 404 {object} ErrorResponse "Property not found"
// @Router /v1/dashboard/properties/{id}/describe [post]
func SuggestPropertyDescription(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SuggestPropertyDescription")
	defer span.End()

	property, err := services.PropertyServiceInstance.GetByID(ctx, middleware.AgentID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Imóvel não encontrado"})
			return
		}
		observability.Logger().Error("failed to load property", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar imóvel"})
		return
	}
	c.JSON(http.StatusOK, DescriptionSuggestion{Description: services.SuggestDescription(property)})
}

// DescriptionSuggestion carries a generated description draft.
type DescriptionSuggestion struct {
	Description string `json:"description"`
}
