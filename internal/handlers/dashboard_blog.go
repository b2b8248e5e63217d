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

// CreateBlogPost godoc
// @Summary Create a blog post
// @Description Creates a post for the agent's site. The post slug is derived from the title and must be unique per agent.
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body models.BlogPostInput true "Post data"
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 409 {object} ErrorResponse "Slug already taken"
// @Router /v1/dashboard/posts [post]
func CreateBlogPost(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateBlogPost")
	defer span.End()

	agentID := middleware.AgentID(c)

	var in models.BlogPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	post, err := services.BlogServiceInstance.Create(ctx, agentID, &in)
	if err != nil {
		if errors.Is(err, models.ErrSlugTaken) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Já existe uma publicação com esse título"})
			return
		}
		observability.Logger().Error("failed to create post",
			zap.String("agent_id", agentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao criar publicação"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// ListBlogPosts godoc
// @Summary List the agent's posts, drafts included
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BlogPost
// @Router /v1/dashboard/posts [get]
func ListBlogPosts(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListBlogPosts")
	defer span.End()

	posts, err := services.BlogServiceInstance.ListByAgent(ctx, middleware.AgentID(c), false)
	if err != nil {
		observability.Logger().Error("failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao listar publicações"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// UpdateBlogPost godoc
// @Summary Update a blog post
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param post body models.BlogPostInput true "Post data"
// @Success 204 "Post updated"
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Router /v1/dashboard/posts/{id} [put]
func UpdateBlogPost(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateBlogPost")
	defer span.End()

	var in models.BlogPostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Payload inválido: " + err.Error()})
		return
	}

	if err := services.BlogServiceInstance.Update(ctx, middleware.AgentID(c), c.Param("id"), &in); err != nil {
		if errors.Is(err, models.ErrBlogPostNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Publicação não encontrada"})
			return
		}
		observability.Logger().Error("failed to update post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao atualizar publicação"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBlogPost godoc
// @Summary Delete a blog post
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 204 "Post deleted"
// @Failure 404 {object} ErrorResponse "Post not found"
// @Router /v1/dashboard/posts/{id} [delete]
func DeleteBlogPost(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "DeleteBlogPost")
	defer span.End()

	if err := services.BlogServiceInstance.Delete(ctx, middleware.AgentID(c), c.Param("id")); err != nil {
		if errors.Is(err, models.ErrBlogPostNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Publicação não encontrada"})
			return
		}
		observability.Logger().Error("failed to delete post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro ao excluir publicação"})
		return
	}
	c.Status(http.StatusNoContent)
}
