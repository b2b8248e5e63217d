package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"github.com/vitrineimob/vitrine-api/internal/observability"
	"github.com/vitrineimob/vitrine-api/internal/services"
	"github.com/vitrineimob/vitrine-api/internal/utils"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// resolveAgent loads the active agent behind a public site slug.
func resolveAgent(ctx context.Context, c *gin.Context) (*models.Agent, bool) {
	if services.AgentServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Serviço de corretores não inicializado"})
		return nil, false
	}
	agent, err := services.AgentServiceInstance.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, models.ErrAgentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Corretor não encontrado"})
			return nil, false
		}
		observability.Logger().Error("failed to load agent by slug",
			zap.String("slug", c.Param("slug")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar corretor"})
		return nil, false
	}
	return agent, true
}

// GetAgentProfile godoc
// @Summary Public agent profile
// @Description Returns the public profile of an active agent by site slug.
// @Tags public
// @Produce json
// @Param slug path string true "Agent site slug"
// @Success 200 {object} models.Agent
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Router /v1/agents/{slug} [get]
func GetAgentProfile(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetAgentProfile")
	defer span.End()

	agent, ok := resolveAgent(ctx, c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, agent)
}

// SearchProperties godoc
// @Summary Search an agent's active properties
// @Description Filters the agent's active listings by keyword, location, type, operation, price range, bedrooms and garage. All filters are combined; when the combination yields nothing and a keyword was given, listings whose description mentions the keyword are returned instead.
// @Tags public
// @Produce json
// @Param slug path string true "Agent site slug"
// @Param q query string false "Free text keyword"
// @Param city query string false "Exact city"
// @Param neighborhood query string false "Neighborhood (substring)"
// @Param type query string false "Property type"
// @Param operation query string false "venda or aluguel"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param garage query bool false "Garage required"
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Items per page (default 20, max 100)"
// @Success 200 {array} models.Property
// @Failure 400 {object} ErrorResponse "Invalid pagination"
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Router /v1/agents/{slug}/properties [get]
func SearchProperties(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SearchProperties")
	defer span.End()

	agent, ok := resolveAgent(ctx, c)
	if !ok {
		return
	}

	page, perPage, err := services.ValidatePaginationParams(c.DefaultQuery("page", "1"), c.DefaultQuery("per_page", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	criteria := parseCriteria(c, agent.ID)
	properties, err := services.PropertyServiceInstance.Search(ctx, agent.ID, criteria)
	if err != nil {
		observability.Logger().Error("property search failed",
			zap.String("agent_id", agent.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar imóveis"})
		return
	}

	c.JSON(http.StatusOK, services.Paginate(properties, page, perPage))
}

// GetPublicProperty godoc
// @Summary Public property detail
// @Tags public
// @Produce json
// @Param slug path string true "Agent site slug"
// @Param id path string true "Property ID"
// @Success 200 {object} models.Property
// @Failure 404 {object} ErrorResponse "Property not found"
// @Router /v1/agents/{slug}/properties/{id} [get]
func GetPublicProperty(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetPublicProperty")
	defer span.End()

	agent, ok := resolveAgent(ctx, c)
	if !ok {
		return
	}

	property, err := services.PropertyServiceInstance.GetByID(ctx, agent.ID, c.Param("id"))
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

// SubmitLead godoc
// @Summary Submit a contact lead
// @Description Records a visitor contact for the agent. The lead is classified as seller, buyer or other from its message and page context.
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Agent site slug"
// @Param lead body models.LeadInput true "Lead data"
// @Success 201 {object} models.Lead
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Router /v1/agents/{slug}/leads [post]
func SubmitLead(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SubmitLead")
	defer span.End()

	agent, ok := resolveAgent(ctx, c)
	if !ok {
		return
	}

	var in models.LeadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	if result := utils.ValidateLeadInput(&in); !result.IsValid {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: result.Errors[0].Message})
		return
	}

	lead, err := services.LeadServiceInstance.Create(ctx, agent.ID, &in)
	if err != nil {
		observability.Logger().Error("failed to create lead",
			zap.String("agent_id", agent.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao registrar contato"})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// ListPublicPosts godoc
// @Summary Published blog posts
// @Tags public
// @Produce json
// @Param slug path string true "Agent site slug"
// @Success 200 {array} models.BlogPost
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Router /v1/agents/{slug}/posts [get]
func ListPublicPosts(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListPublicPosts")
	defer span.End()

	agent, ok := resolveAgent(ctx, c)
	if !ok {
		return
	}

	posts, err := services.BlogServiceInstance.ListByAgent(ctx, agent.ID, true)
	if err != nil {
		observability.Logger().Error("failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar publicações"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPublicPost godoc
// @Summary Published blog post by slug
// @Tags public
// @Produce json
// @Param slug path string true "Agent site slug"
// @Param postSlug path string true "Post slug"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} ErrorResponse "Post not found"
// @Router /v1/agents/{slug}/posts/{postSlug} [get]
func GetPublicPost(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetPublicPost")
	defer span.End()

	agent, ok := resolveAgent(ctx, c)
	if !ok {
		return
	}

	post, err := services.BlogServiceInstance.GetBySlug(ctx, agent.ID, c.Param("postSlug"))
	if err != nil {
		if errors.Is(err, models.ErrBlogPostNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Publicação não encontrada"})
			return
		}
		observability.Logger().Error("failed to load post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar publicação"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListPublicReviews godoc
// @Summary Approved reviews
// @Tags public
// @Produce json
// @Param slug path string true "Agent site slug"
// @Success 200 {array} models.Review
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Router /v1/agents/{slug}/reviews [get]
func ListPublicReviews(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListPublicReviews")
	defer span.End()

	agent, ok := resolveAgent(ctx, c)
	if !ok {
		return
	}

	reviews, err := services.ReviewServiceInstance.ListByAgent(ctx, agent.ID, true)
	if err != nil {
		observability.Logger().Error("failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao buscar avaliações"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// SubmitReview godoc
// @Summary Submit a review
// @Description Records a visitor review. Reviews are held for moderation and only appear publicly after the agent approves them.
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Agent site slug"
// @Param review body models.ReviewInput true "Review data"
// @Success 201 {object} models.Review
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Router /v1/agents/{slug}/reviews [post]
func SubmitReview(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SubmitReview")
	defer span.End()

	agent, ok := resolveAgent(ctx, c)
	if !ok {
		return
	}

	var in models.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	review, err := services.ReviewServiceInstance.Create(ctx, agent.ID, &in)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// RegisterAgent godoc
// @Summary Register a new agent
// @Description Creates an agent account with a trial subscription.
// @Tags public
// @Accept json
// @Produce json
// @Param agent body models.AgentInput true "Agent data"
// @Success 201 {object} models.Agent
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 409 {object} ErrorResponse "Slug already taken"
// @Router /v1/agents [post]
func RegisterAgent(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "RegisterAgent")
	defer span.End()

	if services.AgentServiceInstance == nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Serviço de corretores não inicializado"})
		return
	}

	var in models.AgentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	agent, err := services.AgentServiceInstance.Register(ctx, &in)
	if err != nil {
		if errors.Is(err, models.ErrSlugTaken) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Endereço do site já está em uso"})
			return
		}
		observability.Logger().Error("agent registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao registrar corretor"})
		return
	}
	c.JSON(http.StatusCreated, agent)
}
