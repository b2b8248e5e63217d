package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vitrineimob/vitrine-api/internal/config"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"github.com/vitrineimob/vitrine-api/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// BlogService handles agent-site articles
type BlogService struct {
	database *mongo.Database
	logger   *zap.Logger
}

// NewBlogService creates a new blog service instance
func NewBlogService(database *mongo.Database, logger *zap.Logger) *BlogService {
	return &BlogService{
		database: database,
		logger:   logger,
	}
}

func (s *BlogService) collection() *mongo.Collection {
	return s.database.Collection(config.AppConfig.BlogPostCollection)
}

// Create inserts a post; the slug is derived from the title and must be
// unique within the agent's site.
func (s *BlogService) Create(ctx context.Context, agentID string, in *models.BlogPostInput) (*models.BlogPost, error) {
	now := time.Now().UTC()
	post := &models.BlogPost{
		ID:         uuid.NewString(),
		AgentID:    agentID,
		Title:      in.Title,
		Slug:       utils.Slugify(in.Title),
		Body:       in.Body,
		CoverImage: in.CoverImage,
		Published:  in.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := s.collection().InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to insert blog post: %w", err)
	}
	return post, nil
}

// Update replaces the mutable fields of a post
func (s *BlogService) Update(ctx context.Context, agentID, id string, in *models.BlogPostInput) error {
	update := bson.M{"$set": bson.M{
		"title":       in.Title,
		"slug":        utils.Slugify(in.Title),
		"body":        in.Body,
		"cover_image": in.CoverImage,
		"published":   in.Published,
		"updated_at":  time.Now().UTC(),
	}}

	result, err := s.collection().UpdateOne(ctx, bson.M{"_id": id, "agent_id": agentID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrSlugTaken
		}
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrBlogPostNotFound
	}
	return nil
}

// Delete removes a post
func (s *BlogService) Delete(ctx context.Context, agentID, id string) error {
	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": id, "agent_id": agentID})
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrBlogPostNotFound
	}
	return nil
}

// ListByAgent returns the agent's posts; publishedOnly restricts to what
// the public site shows.
func (s *BlogService) ListByAgent(ctx context.Context, agentID string, publishedOnly bool) ([]models.BlogPost, error) {
	filter := bson.M{"agent_id": agentID}
	if publishedOnly {
		filter["published"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, nil
}

// GetBySlug fetches one published post for the public site
func (s *BlogService) GetBySlug(ctx context.Context, agentID, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.collection().FindOne(ctx,
		bson.M{"agent_id": agentID, "slug": slug, "published": true}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrBlogPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find blog post: %w", err)
	}
	return &post, nil
}
